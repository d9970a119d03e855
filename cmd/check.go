// Package cmd implements the command-line interface for ytui.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/ytui-cli/ytui/constant"
	"github.com/ytui-cli/ytui/icon"
	"github.com/ytui-cli/ytui/style"
	"github.com/ytui-cli/ytui/tool"
)

// CheckDependencies verifies the availability of the external tools the application
// delegates to: the stream extractor and the media player.
func CheckDependencies() {
	if tool.Extractor().IsAbsent() {
		printMissingDependencyError(constant.ExtractorName)
		os.Exit(1)
	}

	if tool.Player().IsAbsent() {
		printMissingDependencyError(constant.PlayerName)
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The required dependency '%s' was not found on your system.", dep))
	suggestion := fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(tool.InstallHint(dep)))

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
