package cmd

import (
	"github.com/mediafold/mediafold/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the mediafold CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mediafold",
		Short: "mediafold - consolidate a media library into a flattened export",
		Long: `mediafold consolidates a library of media folders and their JSON sidecars
into a single flattened output directory plus one merged metadata document.

Each source folder holds one sidecar (metadata.json) and the media files it
describes. mediafold sanitizes filenames, resolves name collisions, excludes
thumbnails, and rewrites every record's file reference to the final output
name, so the merged document never points at a file that does not exist.

Use subcommands to perform different operations:
  - run: consolidate a library into the flattened output layout
  - scan: inventory a library without touching anything
  - verify: check a produced output directory for consistency
  - seed: generate a sample library for testing`,
		Version: version.GetFullVersion(),
	}

	groupLibrary := "library"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupLibrary,
		Title: "Library Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	runCmd := NewRunCmd()
	scanCmd := NewScanCmd()
	verifyCmd := NewVerifyCmd()
	seedCmd := NewSeedCmd()

	runCmd.GroupID = groupLibrary
	scanCmd.GroupID = groupLibrary
	verifyCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
