package widget

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/pgrowth/tppgUtil/internal/widget"

	"github.com/spf13/cobra"
)

// ParamsCommand returns the "widget params" command.
func ParamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params <query-string>",
		Short: "Parse a widget iframe query string",
		Long: `Parse the query string a Creator page passes to the widget iframe
and print the values the widget would see. A leading "?" is accepted.
Unrecognized keys are listed after the known ones.

Examples:
  tppg widget params 'recordId=3100000000123456789&viewLinkName=All_Leads'
  tppg widget params '?appLinkName=crm' -o json`,
		Args:         cobra.ExactArgs(1),
		RunE:         runParams,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "text", "Output format: text or json")

	return cmd
}

func runParams(cmd *cobra.Command, args []string) error {
	params, err := widget.ParseParams(args[0])
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "text":
		out := cmd.OutOrStdout()
		known := []struct{ key, value string }{
			{"recordId", params.RecordID},
			{"appLinkName", params.AppLinkName},
			{"viewLinkName", params.ViewLinkName},
			{"formLinkName", params.FormLinkName},
		}
		for _, kv := range known {
			if kv.value == "" {
				fmt.Fprintf(out, "%s: (not set)\n", kv.key)
				continue
			}
			fmt.Fprintf(out, "%s: %s\n", kv.key, kv.value)
		}

		extras := make([]string, 0, len(params.Extra))
		for key := range params.Extra {
			extras = append(extras, key)
		}
		sort.Strings(extras)
		for _, key := range extras {
			fmt.Fprintf(out, "%s: %s\n", key, params.Extra[key])
		}
	case "json":
		data, err := json.MarshalIndent(params, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	default:
		return fmt.Errorf("unknown output format %q (valid: text, json)", output)
	}

	return nil
}
