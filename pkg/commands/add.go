package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/entropy/pkg/commands/options"
	"tableflip.dev/entropy/pkg/runner/add"
	"tableflip.dev/entropy/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task or a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTask(cmd)
	addProject(cmd)

	topLevel.AddCommand(cmd)
}

func addTask(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	lo := &options.ListOptions{}

	cmd := &cobra.Command{
		Use:   "task",
		Short: "Add a task",
		Example: `
entropy add task write the report
entropy add task --list work --estimate 3 review the design
entropy add task --parent <project-id> draft the outline
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			to.Title = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := add.Add{
				ListID:      lo.ListID,
				Title:       to.Title,
				Estimate:    to.Estimate,
				ParentID:    to.ParentID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddListArgs(cmd, lo)
	options.AddEstimateArgs(cmd, to)
	options.AddParentArgs(cmd, to)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addProject(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	lo := &options.ListOptions{}

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Add a project",
		Example: `
entropy add project ship the release
entropy add project --list work quarterly planning
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			to.Title = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := add.Add{
				ListID:      lo.ListID,
				Title:       to.Title,
				Project:     true,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddListArgs(cmd, lo)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
