package ps

import (
	"fmt"

	"boxctl/cmd/boxctl/cmdutil"
	"boxctl/cmd/boxctl/ui"
	"boxctl/internal/lifecycle"

	"github.com/spf13/cobra"
)

func killCmd(conn *cmdutil.ConnectionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "kill <container_name>",
		Short: "Send a termination signal to a running container",
		Long: "Send a graceful termination signal (SIGTERM unless configured " +
			"otherwise) to the named container. The signal is issued once; the " +
			"container is not verified to have stopped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, cfg, err := conn.Dial()
			if err != nil {
				return err
			}
			defer func() {
				_ = rt.Close()
			}()

			issuer := lifecycle.NewIssuerWithSignal(rt, cfg.Signal)
			name := args[0]
			if err := issuer.Kill(cmd.Context(), name); err != nil {
				return err
			}

			fmt.Println(ui.SuccessMsg("sent %s to container %s", issuer.Signal(), ui.Accent(name)))
			return nil
		},
	}
}
