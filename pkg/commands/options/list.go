// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ListOptions captures common list selection flags for commands.
type ListOptions struct {
	ListID string
	All    bool
}

// AddListArgs wires list-related flags on the provided command.
func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().StringVarP(&o.ListID, "list", "l", "inbox",
		"Specify the list.")
}

// AddAllListsArg registers the flag that operates on all lists.
func AddAllListsArg(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Show every list.")
}
