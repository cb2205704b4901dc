package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mediafold/mediafold/consolidate"
	"github.com/mediafold/mediafold/internal/config"
	"github.com/mediafold/mediafold/internal/logging"
)

// NewRunCmd creates and returns the run subcommand for the mediafold CLI.
// It performs the actual library consolidation.
func NewRunCmd() *cobra.Command {
	var (
		configPath string
		sourceRoot string
		outputRoot string
		imagesOnly bool
		move       bool
		dryRun     bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Consolidate a media library into the flattened output layout",
		Long: `Consolidate a source media library into <output>/images/ plus one merged
<output>/metadata.json.

Filenames are sanitized and de-duplicated, thumbnails are excluded, and each
output record's file reference is rewritten to the placed filename. Per-folder
errors (malformed sidecars, vanished files) are logged and skipped; only a
failure to write the final metadata document aborts the run.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(configPath)
			if err != nil {
				log.Fatalf("Failed to load config: %v", err)
			}
			if sourceRoot != "" {
				cfg.SourceRoot = sourceRoot
			}
			if outputRoot != "" {
				cfg.OutputRoot = outputRoot
			}
			if imagesOnly {
				cfg.Mode = config.ModeImagesOnly
			}
			if move {
				cfg.FileOp = config.OpMove
			}
			cfg.DryRun = dryRun
			cfg.Verbose = verbose
			if verbose {
				cfg.LogLevel = "debug"
			}
			if err := cfg.Finalize(); err != nil {
				log.Fatalf("Invalid configuration: %v", err)
			}
			runRun(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to TOML config file")
	cmd.Flags().StringVarP(&sourceRoot, "source", "s", "", "Root of the source media library")
	cmd.Flags().StringVarP(&outputRoot, "output", "o", "", "Root of the output directory")
	cmd.Flags().BoolVar(&imagesOnly, "images-only", false, "Process only image files")
	cmd.Flags().BoolVar(&move, "move", false, "Move files out of the source instead of copying")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without making changes")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func runRun(cmd *cobra.Command, cfg *config.Config) {
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	summary, err := consolidate.New(cfg, logger).Run(cmd.Context())
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}

	if cfg.DryRun {
		fmt.Println("DRY RUN - no changes were made")
		fmt.Println("Files that would be placed:")
		for _, p := range summary.Planned {
			fmt.Printf("  %s -> %s\n", p.Source, p.Name)
		}
	}

	fmt.Println(renderSummary(summary))
	if summary.Degraded {
		fmt.Println("Run completed DEGRADED: collision faults indicate stale files in the output directory.")
	}
}
