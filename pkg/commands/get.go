package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/entropy/pkg/commands/options"
	"tableflip.dev/entropy/pkg/runner/get"
	"tableflip.dev/entropy/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get [list]",
		Short: "Get the visible tasks of a list",
		Long: base.Wrap80("Get the visible tasks of a list. The done list is " +
			"virtual: it collects completed tasks from every list. Archived " +
			"tasks never show."),
		Example: `
entropy get
entropy get work
entropy get done --show-id
entropy get --all
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 0 {
				lo.ListID = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				ListID:      lo.ListID,
				All:         lo.All,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddListArgs(cmd, lo)
	options.AddAllListsArg(cmd, lo)
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
