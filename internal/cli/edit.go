package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"bayplan/pkg/model"
	"bayplan/pkg/project"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// newEditCmd creates the edit command: an interactive parameter editor for
// one group. Every accepted edit immediately reconciles the height
// invariant, so the numbers on screen are always consistent.
func newEditCmd() *cobra.Command {
	var groupName string

	cmd := &cobra.Command{
		Use:   "edit [design file]",
		Short: "Interactively edit one group's parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd.Context(), args[0], groupName)
		},
	}

	cmd.Flags().StringVarP(&groupName, "group", "g", "", "group to edit (id or name, default: first)")

	return cmd
}

func runEdit(ctx context.Context, input, groupName string) error {
	logger := loggerFromContext(ctx)

	proj, err := project.Load(input)
	if err != nil {
		return err
	}

	g := proj.Groups[0]
	if groupName != "" {
		if g, err = proj.Find(groupName); err != nil {
			return err
		}
	}

	m := newEditModel(g)
	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	em := final.(editModel)
	if !em.saved {
		logger.Info("No changes saved")
		return nil
	}
	if err := proj.Save(input); err != nil {
		return err
	}
	printSuccess("Saved %s", input)
	printDimensions(g)
	return nil
}

// =============================================================================
// editModel - Interactive parameter editing
// =============================================================================

// fieldKind selects how a row reacts to enter/space.
type fieldKind int

const (
	fieldFloat fieldKind = iota
	fieldInt
	fieldBool
	fieldLevel // one level height, with a lock toggle on space
)

// editField is one editable row. apply parses the entered text, mutates the
// group, and runs the one reconciliation pass that edit requires.
type editField struct {
	label string
	kind  fieldKind
	level int // level index for fieldLevel rows
	value func(g *model.BayGroup) string
	apply func(g *model.BayGroup, text string) error
}

// editModel is the bubbletea model for the parameter editor.
type editModel struct {
	group   *model.BayGroup
	fields  []editField
	cursor  int
	editing bool
	input   string
	editErr string
	saved   bool
}

func newEditModel(g *model.BayGroup) editModel {
	return editModel{group: g, fields: buildFields(g)}
}

// buildFields assembles the row list. Called again after any edit that
// changes the number of levels.
func buildFields(g *model.BayGroup) []editField {
	fields := []editField{
		{
			label: "Bays",
			kind:  fieldInt,
			value: func(g *model.BayGroup) string { return strconv.Itoa(g.NumBays) },
			apply: func(g *model.BayGroup, text string) error {
				n, err := strconv.Atoi(text)
				if err != nil {
					return err
				}
				g.NumBays = n
				model.UpdateTotalHeight(g)
				return nil
			},
		},
		{
			label: "Bay width",
			kind:  fieldFloat,
			value: func(g *model.BayGroup) string { return fmtMM(g.BayWidth) },
			apply: applyFloat(func(g *model.BayGroup, v float64) { g.BayWidth = v }),
		},
		{
			label: "Columns per bay",
			kind:  fieldInt,
			value: func(g *model.BayGroup) string { return strconv.Itoa(g.NumCols) },
			apply: func(g *model.BayGroup, text string) error {
				n, err := strconv.Atoi(text)
				if err != nil {
					return err
				}
				g.NumCols = n
				model.UpdateTotalHeight(g)
				return nil
			},
		},
		{
			label: "Rows (levels)",
			kind:  fieldInt,
			value: func(g *model.BayGroup) string { return strconv.Itoa(g.NumRows) },
			apply: func(g *model.BayGroup, text string) error {
				n, err := strconv.Atoi(text)
				if err != nil {
					return err
				}
				if n < 1 {
					return fmt.Errorf("rows must be at least 1")
				}
				g.SetNumRows(n)
				model.UpdateTotalHeight(g)
				return nil
			},
		},
		{
			label: "Shelf thickness",
			kind:  fieldFloat,
			value: func(g *model.BayGroup) string { return fmtMM(g.ShelfThickness) },
			apply: applyFloat(func(g *model.BayGroup, v float64) { g.ShelfThickness = v }),
		},
		{
			label: "Side panel thickness",
			kind:  fieldFloat,
			value: func(g *model.BayGroup) string { return fmtMM(g.SidePanelThickness) },
			apply: applyFloat(func(g *model.BayGroup, v float64) { g.SidePanelThickness = v }),
		},
		{
			label: "Bin split thickness",
			kind:  fieldFloat,
			value: func(g *model.BayGroup) string { return fmtMM(g.BinSplitThickness) },
			apply: applyFloat(func(g *model.BayGroup, v float64) { g.BinSplitThickness = v }),
		},
		{
			label: "Ground clearance",
			kind:  fieldFloat,
			value: func(g *model.BayGroup) string { return fmtMM(g.GroundClearance) },
			apply: applyFloat(func(g *model.BayGroup, v float64) { g.GroundClearance = v }),
		},
		{
			label: "Top cap",
			kind:  fieldBool,
			value: func(g *model.BayGroup) string {
				if g.HasTopCap {
					return "yes"
				}
				return "no"
			},
		},
		{
			label: "Total height",
			kind:  fieldFloat,
			value: func(g *model.BayGroup) string { return fmtMM(g.TotalHeight) },
			apply: func(g *model.BayGroup, text string) error {
				v, err := strconv.ParseFloat(text, 64)
				if err != nil {
					return err
				}
				g.TotalHeight = v
				model.DistributeTotalHeight(g)
				return nil
			},
		},
	}

	for i := g.NumRows - 1; i >= 0; i-- {
		level := i
		fields = append(fields, editField{
			label: fmt.Sprintf("Level %s", model.LevelName(level)),
			kind:  fieldLevel,
			level: level,
			value: func(g *model.BayGroup) string { return fmtMM(g.LevelHeights[level]) },
			apply: func(g *model.BayGroup, text string) error {
				v, err := strconv.ParseFloat(text, 64)
				if err != nil {
					return err
				}
				g.LevelHeights[level] = v
				model.UpdateTotalHeight(g)
				return nil
			},
		})
	}
	return fields
}

// applyFloat wraps a float setter with parse-then-reconcile handling.
func applyFloat(set func(*model.BayGroup, float64)) func(*model.BayGroup, string) error {
	return func(g *model.BayGroup, text string) error {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return err
		}
		set(g, v)
		model.UpdateTotalHeight(g)
		return nil
	}
}

func fmtMM(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func (m editModel) Init() tea.Cmd {
	return nil
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		switch key.String() {
		case "esc":
			m.editing = false
			m.input = ""
			m.editErr = ""
		case "enter":
			f := m.fields[m.cursor]
			if err := f.apply(m.group, strings.TrimSpace(m.input)); err != nil {
				m.editErr = err.Error()
				return m, nil
			}
			m.editing = false
			m.input = ""
			m.editErr = ""
			m.fields = buildFields(m.group)
			if m.cursor >= len(m.fields) {
				m.cursor = len(m.fields) - 1
			}
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			s := key.String()
			if len(s) == 1 && (s[0] >= '0' && s[0] <= '9' || s[0] == '.' || s[0] == '-') {
				m.input += s
			}
		}
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
	case "enter":
		f := m.fields[m.cursor]
		if f.kind == fieldBool {
			m.group.HasTopCap = !m.group.HasTopCap
			model.UpdateTotalHeight(m.group)
			return m, nil
		}
		m.editing = true
		m.input = ""
		m.editErr = ""
	case " ":
		f := m.fields[m.cursor]
		if f.kind == fieldLevel {
			m.group.LevelLocked[f.level] = !m.group.LevelLocked[f.level]
		}
	case "s":
		m.saved = true
		return m, tea.Quit
	}
	return m, nil
}

func (m editModel) View() string {
	g := m.group
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Edit " + g.Name))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ edit/toggle  space lock level  s save  q quit"))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		suffix := ""
		if f.kind == fieldLevel {
			if g.LevelLocked[f.level] {
				suffix = "  " + StyleWarning.Render("locked")
			}
		}

		line := fmt.Sprintf("%s%-22s %10s%s", cursor, f.label, f.value(g), suffix)
		if i == m.cursor {
			if m.editing {
				line = fmt.Sprintf("%s%-22s %s", cursor, f.label, listSelectedStyle.Render(m.input+"█"))
			} else {
				line = listSelectedStyle.Render(line)
			}
		} else {
			line = listNormalStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.editErr != "" {
		b.WriteString("\n")
		b.WriteString(styleIconError.Render(iconError) + " " + m.editErr)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(strings.Repeat("─", 44)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %d shelves, %d dividers, %d bins\n",
		StyleDim.Render("width"), StyleValue.Render(fmtMM(g.TotalWidth())+" mm"),
		StyleDim.Render("bin"), StyleValue.Render(fmtMM(g.BinWidth())+" mm"),
		StyleDim.Render("parts:"), g.ShelfCount(), g.DividerCount(), g.BinCount()))

	if errs := model.Validate(g); len(errs) > 0 {
		b.WriteString("\n")
		for _, msg := range errs.Messages() {
			b.WriteString("  " + styleIconError.Render(iconError) + " " + StyleWarning.Render(msg) + "\n")
		}
	} else {
		b.WriteString("\n  " + styleIconSuccess.Render(iconSuccess) + " " + StyleSuccess.Render("valid") + "\n")
	}

	return b.String()
}
