package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"xml-compare-api/core/xmldiff"

	"github.com/spf13/cobra"
)

var (
	// Flags for the compare command
	ignorePaths      []string
	ignoreProperties []string
	quietCompare     bool
)

// compareCmd compares two local XML files and prints the result.
var compareCmd = &cobra.Command{
	Use:   "compare <file1> <file2>",
	Short: "Compare two local XML files",
	Long: `Compare two local XML files and print the comparison result as JSON.

Exits with status 1 when the documents differ, so the command can be
used in scripts and CI pipelines.

Examples:
  # Plain comparison
  compare expected.xml actual.xml

  # Ignore a subtree and an attribute
  compare expected.xml actual.xml --ignore-path "/root/meta/*" --ignore-property date

  # Only the exit code, no output
  compare expected.xml actual.xml --quiet`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringArrayVar(&ignorePaths, "ignore-path", nil, "Path pattern to exclude (repeatable; exact, trailing * or trailing /)")
	compareCmd.Flags().StringArrayVar(&ignoreProperties, "ignore-property", nil, "Attribute key or tag name to exclude (repeatable)")
	compareCmd.Flags().BoolVar(&quietCompare, "quiet", false, "Suppress output, report via exit code only")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	doc1, err := flattenFile(args[0])
	if err != nil {
		return err
	}
	doc2, err := flattenFile(args[1])
	if err != nil {
		return err
	}

	result := xmldiff.Compare(doc1, doc2, ignorePaths, ignoreProperties)

	if !quietCompare {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}

	if !result.Matched {
		// Distinguish "documents differ" from usage errors without
		// printing a second error message.
		os.Exit(1)
	}
	return nil
}

func flattenFile(path string) (xmldiff.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := xmldiff.Flatten(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}
