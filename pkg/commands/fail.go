package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/entropy/pkg/runner/focus"
	"tableflip.dev/entropy/pkg/store"
)

func addFail(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "fail <reason>",
		Short: "Fail the running focus session",
		Long: base.Wrap80("Fail the running focus session and log why. The " +
			"reason is one of internal (your own distraction), external " +
			"(someone interrupted), or cognitive (the task was wrong)."),
		Example: `
entropy fail external
`,
		ValidArgs: []string{"internal", "external", "cognitive"},
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a reason: internal, external, or cognitive")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := focus.Fail{
				Reason:      args[0],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
