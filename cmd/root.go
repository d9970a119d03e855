// Package cmd implements the command-line interface for ytui.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ytui-cli/ytui/color"
	"github.com/ytui-cli/ytui/constant"
	"github.com/ytui-cli/ytui/icon"
	"github.com/ytui-cli/ytui/key"
	"github.com/ytui-cli/ytui/log"
	"github.com/ytui-cli/ytui/mini"
	"github.com/ytui-cli/ytui/style"
	"github.com/ytui-cli/ytui/util"
	"github.com/ytui-cli/ytui/version"
	"github.com/ytui-cli/ytui/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().IntP("limit", "l", 0, "Maximum number of search results to request")
	lo.Must0(viper.BindPFlag(key.SearchLimit, rootCmd.PersistentFlags().Lookup("limit")))

	rootCmd.PersistentFlags().StringP("source", "S", "", "Search source prefix passed to the extractor")
	lo.Must0(viper.BindPFlag(key.SearchSource, rootCmd.PersistentFlags().Lookup("source")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the ytui application.
var rootCmd = &cobra.Command{
	Use:   constant.Ytui + " [query]",
	Short: "A minimalist command-line interface for video discovery and playback",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A minimalist command-line interface for video discovery and playback"),
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckDependencies()

		options := mini.Options{
			Query: strings.Join(args, " "),
		}

		err := mini.Run(&options)
		if err != nil && err.Error() != "interrupt" {
			handleErr(err)
		}
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
