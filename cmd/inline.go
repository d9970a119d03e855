// Package cmd implements the command-line interface for ytui.
package cmd

import (
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ytui-cli/ytui/filesystem"
	"github.com/ytui-cli/ytui/key"
	"github.com/ytui-cli/ytui/inline"
	"github.com/ytui-cli/ytui/query"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "The search query to execute for video discovery")
	inlineCmd.Flags().StringP("pick", "p", "", "Criteria for selecting a single video from the search results")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("resolve", "r", false, "Resolve direct stream URLs for the selected videos")
	inlineCmd.Flags().BoolP("play", "P", false, "Hand the selected video to the media player")
	inlineCmd.Flags().BoolP("enqueue", "e", false, "Append to the running player's playlist instead of replacing playback")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(viper.BindPFlag(key.PlayerEnqueue, inlineCmd.Flags().Lookup("enqueue")))
	lo.Must0(inlineCmd.MarkFlagRequired("query"))

	_ = inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `Initialize the application for automated execution and data extraction using inline mode.

Video selectors:
  first - first video in the list
  last - last video in the list
  [number] - select video by index (starting from 0)
  @[substring]@ - select the first video whose title contains the substring

Without a selector every search result is emitted. Playback requires a selector.`,
	PreRun: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("play")) {
			lo.Must0(cmd.MarkFlagRequired("pick"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		output := lo.Must(cmd.Flags().GetString("output"))
		var writer io.Writer
		if output != "" {
			f, err := filesystem.API().Create(output)
			handleErr(err)
			writer = f
		} else {
			writer = os.Stdout
		}

		picker := mo.None[inline.VideoPicker]()
		if pick := lo.Must(cmd.Flags().GetString("pick")); pick != "" {
			fn, err := inline.ParseVideoPicker(pick)
			handleErr(err)
			picker = mo.Some(fn)
		}

		options := &inline.Options{
			Out:     writer,
			Query:   lo.Must(cmd.Flags().GetString("query")),
			Json:    lo.Must(cmd.Flags().GetBool("json")),
			Resolve: lo.Must(cmd.Flags().GetBool("resolve")),
			Play:    lo.Must(cmd.Flags().GetBool("play")),
			Enqueue: viper.GetBool(key.PlayerEnqueue),
			Picker:  picker,
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates the JSON schema for the structured inline mode output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured inline mode output",
	Run: func(cmd *cobra.Command, args []string) {
		schema, err := inline.Schema()
		handleErr(err)

		_, err = os.Stdout.Write(append(schema, '\n'))
		handleErr(err)
	},
}
