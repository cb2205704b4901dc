package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the mediafold CLI.
// It generates a sample media library for testing run, scan, and verify.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath  string
		folderCount int
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a sample media library for testing",
		Long: `Generate a sample library tree for testing mediafold functionality.

Creates folders each holding a metadata.json sidecar and a few media files
with deliberately messy names (spaces, punctuation, mixed case). Some folders
get a thumbnails subdirectory so exclusion paths get exercised too. Media
content is a UUID line, so duplicate-name collisions are real collisions of
distinct content.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(outputPath, folderCount, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&folderCount, "count", "c", 25, "Number of library folders to generate")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

// mediaNamePool cycles through names that exercise normalization and
// collision resolution: spaces, punctuation, unicode, duplicates.
var mediaNamePool = []string{
	"Cover Art.png",
	"image.png",
	"Photo 001.JPG",
	"Café Shoot (final).jpeg",
	"clip.mov",
	"notes & ideas.pdf",
	"image.png",
	"Song Demo.mp3",
}

func runSeed(outputPath string, folderCount int, verbose bool) {
	if verbose {
		fmt.Printf("Generating %d library folders in %s\n", folderCount, outputPath)
	}

	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	filesCreated := 0
	for i := 0; i < folderCount; i++ {
		dir := filepath.Join(outputPath, fmt.Sprintf("Album %03d", i+1))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("Warning: Failed to create directory %s: %v", dir, err)
			continue
		}

		sidecar := map[string]any{
			"id":    uuid.New().String(),
			"title": fmt.Sprintf("Album %03d", i+1),
			"tags":  []string{"sample", fmt.Sprintf("batch-%d", i%5)},
		}
		data, err := json.MarshalIndent(sidecar, "", "  ")
		if err != nil {
			log.Printf("Warning: Failed to marshal sidecar for %s: %v", dir, err)
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, "metadata.json"), data, 0o644); err != nil {
			log.Printf("Warning: Failed to write sidecar in %s: %v", dir, err)
			continue
		}

		// One to three media files per folder, names cycling through the
		// pool so duplicates land in different folders.
		count := 1 + i%3
		for j := 0; j < count; j++ {
			name := mediaNamePool[(i+j)%len(mediaNamePool)]
			content := uuid.New().String() + "\n"
			if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
				log.Printf("Warning: Failed to write file %s: %v", name, err)
				continue
			}
			filesCreated++
		}

		// Every fourth folder gets a thumbnails subdirectory.
		if i%4 == 0 {
			thumbs := filepath.Join(dir, "thumbnails")
			if err := os.MkdirAll(thumbs, 0o755); err == nil {
				content := uuid.New().String() + "\n"
				if err := os.WriteFile(filepath.Join(thumbs, "preview_thumbnail.jpg"), []byte(content), 0o644); err != nil {
					log.Printf("Warning: Failed to write thumbnail in %s: %v", thumbs, err)
				}
			}
		}

		if verbose && (i+1)%10 == 0 {
			fmt.Printf("Created %d/%d folders...\n", i+1, folderCount)
		}
	}

	if verbose {
		fmt.Printf("Successfully created %d folders with %d media files\n", folderCount, filesCreated)
	}
}
