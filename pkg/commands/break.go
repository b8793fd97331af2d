package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/entropy/pkg/runner/focus"
	"tableflip.dev/entropy/pkg/store"
)

func addBreak(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "break",
		Short: "Finish the current break",
		Example: `
entropy break
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := focus.FinishBreak{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
