package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/entropy/pkg/runner/archive"
	"tableflip.dev/entropy/pkg/store"
)

func addRm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"archive"},
		Short:   "Archive a task",
		Long: base.Wrap80("Archive a task. Archiving a project archives its " +
			"direct subtasks with it. Archived tasks keep their history but " +
			"never show in any view."),
		Example: `
entropy rm 171dff69-f8b9-9dca-171dff69f8b99dca
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
			s := archive.Archive{
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
