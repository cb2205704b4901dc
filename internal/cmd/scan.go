package cmd

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mediafold/mediafold/internal/logging"
	"github.com/mediafold/mediafold/library"
	"github.com/mediafold/mediafold/naming"
)

// NewScanCmd creates and returns the scan subcommand for the mediafold CLI.
// It inventories a library without modifying anything.
func NewScanCmd() *cobra.Command {
	var (
		sidecarName string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "scan [PATH]",
		Short: "Inventory a media library",
		Long: `Walk a source library and report how many folders carry a sidecar and how
the media files break down by type. Nothing is copied, moved, or written.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := "./"
			if len(args) > 0 {
				path = args[0]
			}
			runScan(path, sidecarName, verbose)
		},
	}

	cmd.Flags().StringVar(&sidecarName, "sidecar", "metadata.json", "Per-folder metadata filename to look for")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every discovered folder")

	return cmd
}

func runScan(path, sidecarName string, verbose bool) {
	level := "warn"
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{Level: level})
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	folders := 0
	byCategory := map[naming.Category]int{}
	unsupported := 0
	total := 0

	opts := library.Options{SidecarName: sidecarName}
	for entry := range library.Walk(path, opts, logger) {
		folders++
		if verbose {
			fmt.Printf("%s (%d files)\n", entry.Dir, len(entry.Media))
		}
		for _, m := range entry.Media {
			total++
			base := filepath.Base(m)
			if !naming.Supported(base) {
				unsupported++
				continue
			}
			byCategory[naming.Classify(base)]++
		}
	}

	rows := [][2]string{
		{"Folders with sidecar", strconv.Itoa(folders)},
		{"Media files", strconv.Itoa(total)},
		{"Images", strconv.Itoa(byCategory[naming.CategoryImage])},
		{"Videos", strconv.Itoa(byCategory[naming.CategoryVideo])},
		{"Audio", strconv.Itoa(byCategory[naming.CategoryAudio])},
		{"Documents", strconv.Itoa(byCategory[naming.CategoryDocument])},
		{"Other supported", strconv.Itoa(byCategory[naming.CategoryOther])},
		{"Unsupported", strconv.Itoa(unsupported)},
	}
	fmt.Println(renderCounts("Library inventory", rows))
}
