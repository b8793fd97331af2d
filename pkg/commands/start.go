package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/entropy/pkg/runner/focus"
	"tableflip.dev/entropy/pkg/store"
)

func addStart(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "start <id>",
		Short: "Start a focus session on a task",
		Long: base.Wrap80("Start a focus session on a task. Only one session " +
			"can run at a time, and projects can not be started directly."),
		Example: `
entropy start 171dff69-f8b9-9dca-171dff69f8b99dca
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := focus.Start{
				ID:          args[0],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
