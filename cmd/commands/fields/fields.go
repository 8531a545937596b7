package fields

import (
	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Format record field values",
		Long: `Format record field values the way the widget renders them.

Covers merge field substitution in message templates and US phone
number display.`,
	}

	cmd.AddCommand(MergeCommand())
	cmd.AddCommand(PhoneCommand())

	return cmd
}
