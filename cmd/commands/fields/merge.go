package fields

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pgrowth/tppgUtil/internal/fields"

	"github.com/spf13/cobra"
)

// MergeCommand returns the "fields merge" command.
func MergeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <template> [field=value ...]",
		Short: "Substitute merge fields in a message template",
		Long: `Substitute merge fields in a message template.

Every ${Field} token is replaced with the matching record value. Values
come from --values as a JSON object, from field=value arguments, or
both; field=value arguments win on conflict. Fields with no value
render as empty strings, the way the widget blanks missing record
fields.

Examples:
  tppg fields merge 'Hello ${Name}!' Name=Ada
  tppg fields merge --values '{"Name": "Ada", "Status": "Open"}' '${Name}: ${Status}'`,
		Args:         cobra.MinimumNArgs(1),
		RunE:         runMerge,
		SilenceUsage: true,
	}

	cmd.Flags().String("values", "", "Record values as a JSON object")

	return cmd
}

func runMerge(cmd *cobra.Command, args []string) error {
	values := map[string]string{}

	if raw, _ := cmd.Flags().GetString("values"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &values); err != nil {
			return fmt.Errorf("invalid JSON in --values: %w", err)
		}
	}

	for _, pair := range args[1:] {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return fmt.Errorf("invalid field assignment %q: expected field=value", pair)
		}
		values[name] = value
	}

	fmt.Fprintln(cmd.OutOrStdout(), fields.Merge(args[0], values))
	return nil
}
