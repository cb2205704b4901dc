// Package cmd provides the command-line interface implementation for mediafold.
//
// It uses the Cobra library for command structure and Fang for styling.
// The package is organized into the following commands:
//   - run: consolidate a library into the flattened output layout
//   - scan: inventory a library without touching anything
//   - verify: check a produced output directory for consistency
//   - seed: generate a sample library for testing
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command.
package cmd
