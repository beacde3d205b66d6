// Package img holds the "boxctl img" command group.
package img

import (
	"boxctl/cmd/boxctl/cmdutil"

	"github.com/spf13/cobra"
)

// Cmd returns the parent "boxctl img" command. conn points to the root
// persistent connection flag values.
func Cmd(conn *cmdutil.ConnectionFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "img",
		Short: "Work with stored images",
	}

	cmd.AddCommand(listCmd(conn))
	return cmd
}
