package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions
type TaskOptions struct {
	Title    string
	Estimate int
	ParentID string
}

func AddEstimateArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().IntVarP(&o.Estimate, "estimate", "e", 0,
		"Estimated focus sessions for the task.")
}

func AddParentArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.ParentID, "parent", "p", "",
		"Add the task as a subtask of this project.")
}
