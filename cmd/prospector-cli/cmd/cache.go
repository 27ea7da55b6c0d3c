package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"prospector/internal/adapters/cachefile"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or reset the project cache",
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show where the cache lives and what it holds",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("path:    %s\n", store.Path())
		fmt.Printf("entries: %d\n", store.Len())

		if generated := cachefile.GeneratedAt(store.Path()); !generated.IsZero() {
			fmt.Printf("written: %s (%s ago)\n",
				generated.Format(time.RFC3339),
				time.Since(generated).Round(time.Second),
			)
		} else {
			fmt.Println("written: never")
		}
		return nil
	},
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete every cached entry",
	Long: `Delete the cache file. The next discovery run rescans every
configured folder from scratch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.Clean(); err != nil {
			return err
		}
		fmt.Println("cache cleaned")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheInfoCmd)
	cacheCmd.AddCommand(cacheCleanCmd)
}
