package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/entropy/pkg/commands/options"
	"tableflip.dev/entropy/pkg/runner/edit"
	"tableflip.dev/entropy/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id> [new title]",
		Short: "Edit a task's title or estimate",
		Example: `
entropy edit 171dff69 rewrite the intro
entropy edit 171dff69 --estimate 5
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			if len(args) > 1 {
				to.Title = strings.Join(args[1:], " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:          args[0],
				Title:       to.Title,
				Estimate:    to.Estimate,
				EstimateSet: cmd.Flags().Changed("estimate"),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddEstimateArgs(cmd, to)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
