package ps

import (
	"fmt"

	"boxctl/cmd/boxctl/cmdutil"
	"boxctl/cmd/boxctl/ui"
	"boxctl/internal/inventory"

	"github.com/spf13/cobra"
)

func infoCmd(conn *cmdutil.ConnectionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "List running containers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, _, err := conn.Dial()
			if err != nil {
				return err
			}
			defer func() {
				_ = rt.Close()
			}()

			rows, err := inventory.NewService(rt).ContainerRows(cmd.Context())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println(ui.Muted("no running containers"))
				return nil
			}

			tableRows := make([][]string, 0, len(rows))
			for _, row := range rows {
				tableRows = append(tableRows, []string{row.ID, row.Name, row.Image, row.State})
			}

			fmt.Println(ui.Table([]string{"ID", "Container Name", "Image", "State"}, tableRows))
			return nil
		},
	}
}
