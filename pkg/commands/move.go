package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/entropy/pkg/commands/options"
	"tableflip.dev/entropy/pkg/runner/move"
	"tableflip.dev/entropy/pkg/store"
)

func addMove(topLevel *cobra.Command) {
	lo := &options.ListOptions{}

	cmd := &cobra.Command{
		Use:   "move <src-id> <dst-id>",
		Short: "Move a task to another task's slot",
		Long: base.Wrap80("Move a task to another task's slot. Both tasks " +
			"must be siblings in the same list: both roots, or both subtasks " +
			"of the same project."),
		Example: `
entropy move --list work 171dff69 28ae01bc
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 2 {
				return errors.New("requires a source id and a destination id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := move.Move{
				ListID:      lo.ListID,
				SrcID:       args[0],
				DstID:       args[1],
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
