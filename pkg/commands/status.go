package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/entropy/pkg/commands/options"
	"tableflip.dev/entropy/pkg/runner/focus"
	"tableflip.dev/entropy/pkg/store"
)

func addStatus(topLevel *cobra.Command) {
	wo := &options.WatchOptions{}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		Long: base.Wrap80("Show the current session and its remaining time. " +
			"With --watch it keeps printing, picking up changes made from " +
			"other terminals."),
		Example: `
entropy status
entropy status --watch
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := focus.Status{
				Watch:       wo.Watch,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddWatchArgs(cmd, wo)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
