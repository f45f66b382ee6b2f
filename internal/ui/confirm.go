package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm displays a warning box describing a destructive operation and
// prompts the user for a yes/no answer. Returns true if the user confirmed.
func Confirm(title string, warnings []string) bool {
	width := GetTerminalWidth()

	var lines []string

	titleLine := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true).
		Render(fmt.Sprintf("   ⚠  WARNING  ─  %s", title))
	lines = append(lines, "")
	lines = append(lines, titleLine)
	lines = append(lines, "")

	for _, warning := range warnings {
		bulletStyle := lipgloss.NewStyle().Foreground(TextColor)
		lines = append(lines, bulletStyle.Render("   • "+warning))
	}
	lines = append(lines, "")

	content := strings.Join(lines, "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(WarningColor).
		Width(width-2).
		Padding(0, 2).
		Render(content)

	fmt.Println(box)
	fmt.Println()

	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	fmt.Print(promptStyle.Render("Proceed? [y/N]: "))

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		fmt.Println()
		return false
	}

	input = strings.ToLower(strings.TrimSpace(input))
	if input == "y" || input == "yes" {
		fmt.Println()
		return true
	}

	fmt.Println()
	cancelStyle := lipgloss.NewStyle().Foreground(MutedColor)
	fmt.Println(cancelStyle.Render("  Operation cancelled."))
	fmt.Println()
	return false
}

// StartupResetConfirmation is a pre-configured confirmation for changing
// the startup position. The startups endpoint cannot update a single
// outlet, so the device resets the startup state of outlets 1-3 to "off"
// on every call.
func StartupResetConfirmation(position string) bool {
	return Confirm(
		"STARTUP STATE CHANGE",
		[]string{
			fmt.Sprintf("Outlet 0 startup state will be set to %q", position),
			"Outlets 1-3 startup state will be reset to \"off\"",
			"The device API does not support partial startup updates",
			"Use --yes to skip this prompt in scripts",
		},
	)
}
