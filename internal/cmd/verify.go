package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewVerifyCmd creates and returns the verify subcommand for the mediafold CLI.
// It checks a produced output directory for internal consistency.
func NewVerifyCmd() *cobra.Command {
	var (
		outputRoot string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a consolidated output directory",
		Long: `Check that a produced output directory is internally consistent: every
record in metadata.json references a file that exists in images/, no two
records share a file reference, and media files with no record are reported.

Exits non-zero when any record is inconsistent. Orphaned media files are
reported but are not an error.`,
		Run: func(cmd *cobra.Command, args []string) {
			runVerify(outputRoot, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputRoot, "output", "o", "", "Path to the output directory to verify (required)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every checked record")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runVerify(outputRoot string, verbose bool) {
	metadataPath := filepath.Join(outputRoot, "metadata.json")
	imagesDir := filepath.Join(outputRoot, "images")

	data, err := os.ReadFile(metadataPath)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", metadataPath, err)
	}
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		log.Fatalf("Failed to parse %s: %v", metadataPath, err)
	}

	var problems int
	referenced := make(map[string]bool)

	for i, rec := range records {
		name, _ := rec["filename"].(string)
		if name == "" {
			fmt.Printf("record %d: missing filename field\n", i)
			problems++
			continue
		}
		if verbose {
			fmt.Printf("checking record %d: %s\n", i, name)
		}
		if referenced[name] {
			fmt.Printf("record %d: duplicate reference to %s\n", i, name)
			problems++
		}
		referenced[name] = true
		if _, err := os.Stat(filepath.Join(imagesDir, name)); err != nil {
			fmt.Printf("record %d: dangling reference %s: %v\n", i, name, err)
			problems++
		}
	}

	var orphans int
	listing, err := os.ReadDir(imagesDir)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", imagesDir, err)
	}
	for _, de := range listing {
		if de.IsDir() {
			continue
		}
		if !referenced[de.Name()] {
			orphans++
			if verbose {
				fmt.Printf("orphaned media file (no record): %s\n", de.Name())
			}
		}
	}

	fmt.Printf("\nVerification complete:\n")
	fmt.Printf("  Records checked: %d\n", len(records))
	fmt.Printf("  Problems: %d\n", problems)
	fmt.Printf("  Orphaned media files: %d\n", orphans)

	if problems > 0 {
		os.Exit(1)
	}
}
