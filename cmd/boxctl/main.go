package main

import (
	"fmt"
	"os"

	"boxctl/cmd/boxctl/cmdutil"
	imgcmd "boxctl/cmd/boxctl/img"
	pscmd "boxctl/cmd/boxctl/ps"
	"boxctl/cmd/boxctl/ui"
	"boxctl/internal/logging"
	"boxctl/internal/support/buildinfo"

	"github.com/spf13/cobra"
)

func main() {
	var (
		debug   bool
		noColor bool
		conn    cmdutil.ConnectionFlags
	)
	if err := logging.Configure(logging.LevelWarn); err != nil {
		_, _ = os.Stderr.WriteString("configure logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "boxctl",
		Short:         "Inspect and control the local container runtime",
		Version:       buildinfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logging.LevelWarn
			if debug {
				level = logging.LevelDebug
			}
			if err := logging.Configure(level); err != nil {
				return err
			}
			ui.ConfigureColors(noColor)
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")

	// Connection flags — available to all subcommands.
	root.PersistentFlags().StringVar(&conn.ConfigPath, "config", "", "Config file path")
	root.PersistentFlags().StringVar(&conn.Host, "host", "", "Runtime endpoint override")

	root.AddCommand(imgcmd.Cmd(&conn))
	root.AddCommand(pscmd.Cmd(&conn))

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
