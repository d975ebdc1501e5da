package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"bayplan/pkg/errors"
	"bayplan/pkg/model"
	"bayplan/pkg/project"
)

// newInitCmd creates the init command, which writes a starter design file
// with one default group.
func newInitCmd() *cobra.Command {
	var name string
	var force bool

	cmd := &cobra.Command{
		Use:   "init [design file]",
		Short: "Write a starter design file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.Context(), args[0], name, force)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "Bay group 1", "name of the starter group")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func runInit(ctx context.Context, path, name string, force bool) error {
	logger := loggerFromContext(ctx)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrCodeInvalidProject, "%s already exists (use --force to overwrite)", path)
		}
	}

	g := model.New(name)
	p := &project.Project{
		Path: path,
		Defaults: project.Defaults{
			BayWidth:       model.DefaultBayWidth,
			ShelfThickness: model.DefaultShelfThickness,
			NumCols:        model.DefaultNumCols,
			NumRows:        model.DefaultNumRows,
			LevelHeight:    model.DefaultLevelHeight,
		},
		Groups: []*model.BayGroup{g},
	}
	if err := p.Save(path); err != nil {
		return err
	}

	logger.Debugf("Created group %s (%s)", g.Name, g.ID)
	printSuccess("Created %s", path)
	printDimensions(g)
	return nil
}
