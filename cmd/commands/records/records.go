package records

import (
	"errors"
	"fmt"
	"os"

	"github.com/pgrowth/tppgUtil/internal/config"
	"github.com/pgrowth/tppgUtil/internal/creator"
	"github.com/pgrowth/tppgUtil/internal/draftstore"
	"github.com/pgrowth/tppgUtil/internal/records"
	"github.com/pgrowth/tppgUtil/internal/services/auth"
	"github.com/pgrowth/tppgUtil/internal/swrcache"

	"github.com/spf13/cobra"
)

// errNoReport is the guidance printed when no report can be resolved.
const errNoReport = "no report specified: pass one or set a default with 'tppg config set default-report <link-name>'"

// NewCommand returns the top-level "records" Cobra command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Work with Zoho Creator records",
		Long: `List, inspect, create, update, and delete records in a Creator
application. Submissions are drafted locally first, so interrupted or
rejected creates can be listed and resumed later.`,
		PersistentPreRunE: resolveApplication,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(UpdateCommand())
	cmd.AddCommand(DeleteCommand())
	cmd.AddCommand(StatsCommand())
	cmd.AddCommand(DraftsCommand())
	cmd.AddCommand(ResumeCommand())
	cmd.AddCommand(PruneCommand())

	cmd.PersistentFlags().String("owner", "", "Creator account owner (overrides config)")
	cmd.PersistentFlags().String("app", "", "Application link name (overrides config)")
	cmd.PersistentFlags().String("report", "", "Report link name (overrides default-report)")
	cmd.PersistentFlags().String("form", "", "Form link name (overrides default-form)")

	return cmd
}

// resolveApplication fills the owner/app/report/form flags from config for
// any the user did not set explicitly. Emptiness is not an error here:
// subcommands that need the API get the error from newRecordService, while
// local ones (drafts) run without an owner at all.
func resolveApplication(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fill := func(name, value string) error {
		if cmd.Flag(name).Changed || value == "" {
			return nil
		}
		return cmd.Flag(name).Value.Set(value)
	}

	if err := fill("owner", cfg.Owner); err != nil {
		return err
	}
	if err := fill("app", cfg.AppLinkName); err != nil {
		return err
	}
	if err := fill("report", cfg.DefaultReport); err != nil {
		return err
	}
	return fill("form", cfg.DefaultForm)
}

// reportArg resolves the report link name from the positional argument,
// falling back to the --report flag.
func reportArg(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cmd.Flag("report").Value.String()
}

// serviceFactory builds the record service for a command invocation.
// Tests swap it for one backed by a fake API.
var serviceFactory = newRecordService

func newRecordService(cmd *cobra.Command) (*records.Service, error) {
	owner := cmd.Flag("owner").Value.String()
	if owner == "" {
		return nil, fmt.Errorf("no account owner specified: use --owner or set one with 'tppg config set owner <name>'")
	}
	app := cmd.Flag("app").Value.String()
	if app == "" {
		return nil, fmt.Errorf("no application specified: use --app or set one with 'tppg config set app <link-name>'")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	dc, err := creator.ParseDataCenter(cfg.DataCenter)
	if err != nil {
		return nil, err
	}

	token, err := auth.DefaultStore().GetToken(string(dc))
	if err != nil {
		if errors.Is(err, auth.ErrTokenNotFound) {
			return nil, fmt.Errorf("not authenticated for data center %s: run 'tppg auth login %s'", dc, dc)
		}
		return nil, err
	}

	api := creator.New(dc, owner, app, creator.WithToken(token))

	var opts []records.Option
	if os.Getenv("TPPG_NO_CACHE") != "1" {
		opts = append(opts, records.WithCache(swrcache.NewDefault()))
	}
	// Draft persistence is best effort: creates still submit when the
	// local database cannot be opened.
	if drafts, err := draftStoreFactory(); err == nil {
		opts = append(opts, records.WithDrafts(drafts))
	}

	return records.New(api, opts...), nil
}

// draftStoreFactory opens the local draft store. Tests swap it for one
// backed by a temp file.
var draftStoreFactory = func() (draftstore.Repository, error) {
	return draftstore.Open()
}
