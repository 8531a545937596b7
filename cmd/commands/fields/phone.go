package fields

import (
	"fmt"

	"github.com/pgrowth/tppgUtil/internal/fields"

	"github.com/spf13/cobra"
)

// PhoneCommand returns the "fields phone" command.
func PhoneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "phone <number>",
		Short: "Format a phone number for display",
		Long: `Format a phone number for display.

Ten digits render as (AAA) BBB-CCCC and eleven digits with a leading 1
render as +1 (AAA) BBB-CCCC, ignoring any punctuation in the input.
Anything else passes through unchanged.

Examples:
  tppg fields phone 4155550134
  tppg fields phone 1-415-555-0134`,
		Args:         cobra.ExactArgs(1),
		RunE:         runPhone,
		SilenceUsage: true,
	}
}

func runPhone(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), fields.FormatPhone(args[0]))
	return nil
}
