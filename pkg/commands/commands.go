package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "entropy",
		Short: base.Wrap80("Focus sessions and task lists on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addDone(topLevel)
	addEdit(topLevel)
	addRm(topLevel)
	addMove(topLevel)
	addStart(topLevel)
	addCrystallize(topLevel)
	addFail(topLevel)
	addBreak(topLevel)
	addStatus(topLevel)
	addMirror(topLevel)
	addVersion(topLevel)
}
