package ps

import (
	"fmt"
	"strconv"
	"strings"

	"boxctl/cmd/boxctl/cmdutil"
	"boxctl/cmd/boxctl/ui"
	"boxctl/internal/inventory"

	"github.com/spf13/cobra"
)

func statusCmd(conn *cmdutil.ConnectionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status <container_name>",
		Short: "Show the detail view of a single container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, _, err := conn.Dial()
			if err != nil {
				return err
			}
			defer func() {
				_ = rt.Close()
			}()

			detail, err := inventory.NewService(rt).Detail(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			size := "-"
			if detail.SizeRootFs != nil {
				size = strconv.FormatInt(*detail.SizeRootFs, 10)
			}

			fmt.Print(ui.KeyValues("",
				ui.KV("ID", detail.ID),
				ui.KV("Name", strings.TrimPrefix(detail.Name, "/")),
				ui.KV("Image", detail.Image),
				ui.KV("Size", size),
				ui.KV("State", detail.Status),
			))
			return nil
		},
	}
}
