package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/entropy/pkg/runner/toggle"
	"tableflip.dev/entropy/pkg/store"
)

func addDone(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Long: base.Wrap80("Toggle a task's completion. Completing the last " +
			"active subtask of a project completes the project too. Toggling " +
			"a subtask back does not reopen the project."),
		Example: `
entropy done 171dff69-f8b9-9dca-171dff69f8b99dca
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
			s := toggle.Toggle{
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
