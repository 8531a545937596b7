package link

import (
	"fmt"

	"github.com/pgrowth/tppgUtil/internal/util"
	"github.com/pgrowth/tppgUtil/internal/widget"

	"github.com/spf13/cobra"
)

// FormCommand returns the "link form" command.
func FormCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "form [link-name]",
		Short: "Print the deep link to a form page",
		Long: `Print the deep link to a form page.

The form comes from the argument, the --form flag, or the configured
default-form, in that order.

Example:
  tppg link form Leads`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runForm,
		SilenceUsage: true,
	}
}

func runForm(cmd *cobra.Command, args []string) error {
	host, owner, app, err := webHost(cmd)
	if err != nil {
		return err
	}

	form := cmd.Flag("form").Value.String()
	if len(args) > 0 {
		form = args[0]
	}
	if form == "" {
		return fmt.Errorf("%s", errNoForm)
	}
	if err := util.ValidateLinkName(form); err != nil {
		return fmt.Errorf("invalid form %q: %w", form, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), widget.FormURL(host, owner, app, form))
	return nil
}
