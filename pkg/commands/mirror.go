package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/entropy/pkg/runner/mirror"
	"tableflip.dev/entropy/pkg/store"
)

func addMirror(topLevel *cobra.Command) {
	days := 7

	cmd := &cobra.Command{
		Use:   "mirror",
		Short: "Review logged sessions and daily stats",
		Example: `
entropy mirror
entropy mirror --days 30
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := mirror.Mirror{
				Days:        days,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 7, "Days of stats to show.")

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
