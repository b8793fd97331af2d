package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/entropy/pkg/runner/focus"
	"tableflip.dev/entropy/pkg/store"
)

func addCrystallize(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "crystallize",
		Aliases: []string{"complete"},
		Short:   "Crystallize the running focus session",
		Long: base.Wrap80("Crystallize the running focus session: credit the " +
			"task a completed focus interval, log it, and begin the break."),
		Example: `
entropy crystallize
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := focus.Crystallize{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
