package img

import (
	"fmt"

	"boxctl/cmd/boxctl/cmdutil"
	"boxctl/cmd/boxctl/ui"
	"boxctl/internal/inventory"

	"github.com/spf13/cobra"
)

func listCmd(conn *cmdutil.ConnectionFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all stored images, dangling ones included",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, _, err := conn.Dial()
			if err != nil {
				return err
			}
			defer func() {
				_ = rt.Close()
			}()

			rows, err := inventory.NewService(rt).ImageRows(cmd.Context())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println(ui.Muted("no images stored"))
				return nil
			}

			tableRows := make([][]string, 0, len(rows))
			for _, row := range rows {
				tableRows = append(tableRows, []string{row.ID, row.Tag, row.SizeKB})
			}

			fmt.Println(ui.Table([]string{"ID", "Image Tag", "Size(KB)"}, tableRows))
			return nil
		},
	}
}
