package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the registered project kinds",
	Long: `List every project kind the classifier knows about, built-in and
user-defined, with the project files and language extensions each one
matches.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, kind := range registry.All() {
			fmt.Printf("%s\n", kind.Name)
			fmt.Printf("  project files: %s\n", joinOrNone(kind.ProjectFiles))
			fmt.Printf("  extensions:    %s\n", joinOrNone(kind.LanguageExts))
		}
		return nil
	},
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
