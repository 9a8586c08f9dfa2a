package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/pixolin/wpplugin/cmd"
	"github.com/pixolin/wpplugin/constants"
	"github.com/pixolin/wpplugin/entity"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "wpplugin <search term>",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       constants.Version,
	Args:          cobra.ExactArgs(1),
	Short:         "🔌 Search the WordPress plugin directory",
	Long:          "Search the WordPress plugin directory, pick a plugin and get its link on your clipboard.\nHandy when mentioning plugins in support forums.",
}

/* contextualize converts a HandlerFunction to a cobra function
 */
func contextualize(fn entity.HandlerFunction, panicFn entity.PanicFunction) entity.CobraFunction {
	return func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		defer func() {
			if r := recover(); r != nil {
				panicFn(ctx, fmt.Sprint(r), string(debug.Stack()))
			}
		}()

		req := &entity.CommandRequest{
			Cmd:  cmd,
			Args: args,
		}
		return fn(ctx, req)
	}
}

func init() {
	// Initializes all commands
	handler := cmd.New()

	rootCmd.RunE = contextualize(handler.Search, handler.Panic)
	rootCmd.Flags().Bool("html", false, "copy an HTML link (<a href=...>) instead of the bare URL")
	rootCmd.Flags().Bool("open", false, "also open the selected plugin page in the browser")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "locale",
		Short: "Set the plugin directory locale used for links",
		RunE:  contextualize(handler.Locale, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "docs",
		Short: "Open WordPress plugin directory pages in the browser",
		RunE:  contextualize(handler.Docs, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Get version of the wpplugin CLI",
		RunE:  contextualize(handler.Version, handler.Panic),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if strings.Contains(err.Error(), "unknown command") {
			suggStr := "\nS"

			suggestions := rootCmd.SuggestionsFor(os.Args[1])
			if len(suggestions) > 0 {
				suggStr = fmt.Sprintf(" Did you mean \"%s\"?\nIf not, s", suggestions[0])
			}

			fmt.Println(fmt.Sprintf("Unknown command \"%s\" for \"%s\".%s"+
				"ee \"wpplugin --help\" for available commands.",
				os.Args[1], rootCmd.CommandPath(), suggStr))
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
