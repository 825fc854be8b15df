package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdindex/internal/configloader"
	"github.com/yaklabco/mdindex/internal/logging"
	"github.com/yaklabco/mdindex/internal/ui/pretty"
	"github.com/yaklabco/mdindex/pkg/config"
	"github.com/yaklabco/mdindex/pkg/syncer"
)

// ErrStaleFiles is returned when --check finds out-of-date indexes. It is
// a signal for the exit code, not a condition worth logging.
var ErrStaleFiles = errors.New("stale index files found")

type syncFlags struct {
	root      string
	titleMode string
	check     bool
}

func newSyncCommand() *cobra.Command {
	flags := &syncFlags{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Regenerate the landing, all-notes, and category indexes",
		Long:  syncLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSync(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.root, "root", ".", "repository root containing the site config and notes directory")
	cmd.Flags().StringVar(&flags.titleMode, "title-mode", "", "note title source: filename or heading")
	cmd.Flags().BoolVar(&flags.check, "check", false, "report stale files without writing; exit 1 if any")

	return cmd
}

const syncLongDescription = `Regenerate the derived Markdown indexes under the notes directory.

The landing index and the flattened all-notes index are rebuilt from the
MkDocs navigation plus any category directories the navigation does not
mention, and every category directory gets its own index page. Each file
is compared against its current content and only rewritten on change.

Examples:
  mdindex sync                       # Sync the current repository
  mdindex sync --root ~/notes-repo   # Sync another checkout
  mdindex sync --title-mode heading  # Titles from first-level headings
  mdindex sync --check               # CI: fail if any index is stale`

func runSync(cmd *cobra.Command, flags *syncFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	// Flags become the highest-precedence config layer.
	cliCfg := &config.Config{
		TitleMode: config.TitleMode(flags.titleMode),
		Check:     flags.check,
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   flags.root,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldPath, loadResult.LoadedFrom)
	}
	logger.Debug("configuration resolved",
		logging.FieldRoot, flags.root,
		logging.FieldNotesDir, cfg.NotesDir,
		logging.FieldNavFile, cfg.NavFile,
		logging.FieldTitleMode, cfg.TitleMode,
		logging.FieldCheck, cfg.Check,
	)

	result, err := syncer.New(flags.root, cfg).Run(ctx)
	if err != nil {
		return err
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stdout))

	out := cmd.OutOrStdout()
	for _, outcome := range result.Files {
		fmt.Fprint(out, styles.FormatFileOutcome(outcome))
	}
	fmt.Fprint(out, styles.FormatSummaryOneLine(result.Stats))

	if result.HasFailures() {
		return fmt.Errorf("%d output files failed to write", result.Stats.Failed)
	}
	if cfg.Check && result.Stats.Stale > 0 {
		return ErrStaleFiles
	}
	return nil
}
