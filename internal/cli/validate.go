package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"bayplan/pkg/errors"
	"bayplan/pkg/model"
	"bayplan/pkg/project"
)

// newValidateCmd creates the validate command. It checks every group in a
// design file and reports every violation, not just the first.
func newValidateCmd() *cobra.Command {
	var groupFilter string

	cmd := &cobra.Command{
		Use:   "validate [design file]",
		Short: "Check a design file and report every violation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), args[0], groupFilter)
		},
	}

	cmd.Flags().StringVarP(&groupFilter, "group", "g", "", "validate only this group (id or name)")

	return cmd
}

func runValidate(ctx context.Context, input, groupFilter string) error {
	logger := loggerFromContext(ctx)

	proj, err := project.Load(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded design file: %d groups", len(proj.Groups))

	groups := proj.Groups
	if groupFilter != "" {
		g, err := proj.Find(groupFilter)
		if err != nil {
			return err
		}
		groups = []*model.BayGroup{g}
	}

	total := 0
	for _, g := range groups {
		errs := model.Validate(g)
		if len(errs) == 0 {
			printSuccess("%s", g.Name)
			continue
		}
		total += len(errs)
		fmt.Println(StyleTitle.Render(g.Name))
		for _, msg := range errs.Messages() {
			printError("%s", msg)
		}
	}

	if total > 0 {
		return errors.New(errors.ErrCodeInvalidDimension, "%d violation(s) in %s", total, input)
	}
	printSuccess("%d group(s) valid", len(groups))
	return nil
}
