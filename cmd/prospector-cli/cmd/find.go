package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"prospector/internal/adapters/render"
	"prospector/internal/application/commands"
	"prospector/internal/domain"
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Find projects matching a wildcard query",
	Long: `Find projects whose name or path component matches a wildcard query.

Wildcards:
  ?  an optional character
  _  a required character
  #  one or more digits
  *  any text

Fixed text matches case-insensitively.

Examples:
  prospector-cli find 'api*'
  prospector-cli find 'release-#'
  prospector-cli find '*' --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := domain.ParseQuery(args[0])
		if err != nil {
			return err
		}

		renderer, err := render.New(render.Format(format))
		if err != nil {
			return err
		}

		find := commands.NewFindCommand(engine, query, opts)
		projects, err := find.Execute(context.Background())
		if err != nil && len(projects) == 0 {
			return err
		}
		if err != nil {
			// Results survived a cache persistence failure; show them
			// and report the failure on stderr.
			cmd.PrintErrln(err)
		}

		return renderer.Render(os.Stdout, projects)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every discovered project",
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer, err := render.New(render.Format(format))
		if err != nil {
			return err
		}

		list := commands.NewListCommand(engine, opts)
		projects, err := list.Execute(context.Background())
		if err != nil && len(projects) == 0 {
			return err
		}
		if err != nil {
			cmd.PrintErrln(err)
		}

		return renderer.Render(os.Stdout, projects)
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(listCmd)
}
