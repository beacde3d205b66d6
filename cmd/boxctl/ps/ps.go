// Package ps holds the "boxctl ps" command group.
package ps

import (
	"boxctl/cmd/boxctl/cmdutil"

	"github.com/spf13/cobra"
)

// Cmd returns the parent "boxctl ps" command. conn points to the root
// persistent connection flag values.
func Cmd(conn *cmdutil.ConnectionFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ps",
		Short: "Show and control container processes",
	}

	cmd.AddCommand(infoCmd(conn))
	cmd.AddCommand(killCmd(conn))
	cmd.AddCommand(statusCmd(conn))
	return cmd
}
