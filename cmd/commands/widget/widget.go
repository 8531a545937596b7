package widget

import (
	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "widget",
		Short: "Inspect the page-to-widget handoff",
		Long: `Inspect the values a Creator page hands to the embedded widget at
load time.`,
	}

	cmd.AddCommand(ParamsCommand())

	return cmd
}
