package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Result represents a success or failure box rendered after a command
type Result struct {
	Success         bool
	Title           string     // e.g., "Switch position updated"
	Details         [][2]string // Ordered key-value details to display
	Error           error      // Error (for failure results)
	Troubleshooting []string   // Troubleshooting tips (for failure results)
	Width           int        // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details [][2]string) *Result {
	return &Result{
		Success: true,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, troubleshooting []string) *Result {
	return &Result{
		Success:         false,
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
	}
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	if r.Success {
		return r.renderSuccess()
	}
	return r.renderFailure()
}

func (r *Result) renderSuccess() string {
	var lines []string

	titleLine := SuccessTitleStyle.Render(fmt.Sprintf("   %s  %s", SuccessMarker, r.Title))
	lines = append(lines, "")
	lines = append(lines, titleLine)
	lines = append(lines, "")

	for _, detail := range r.Details {
		keyStyled := ResultKeyStyle.Render(fmt.Sprintf("   %s:", detail[0]))
		valueStyled := ResultValueStyle.Render(detail[1])
		lines = append(lines, keyStyled+" "+valueStyled)
	}
	if len(r.Details) > 0 {
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SuccessColor).
		Width(r.width() - 2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

func (r *Result) renderFailure() string {
	var lines []string

	titleLine := ErrorTitleStyle.Render(fmt.Sprintf("   %s  %s", FailureMarker, r.Title))
	lines = append(lines, "")
	lines = append(lines, titleLine)
	lines = append(lines, "")

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   "+r.Error.Error()))
		lines = append(lines, "")
	}

	if len(r.Troubleshooting) > 0 {
		lines = append(lines, TroubleshootingTitleStyle.Render("   Troubleshooting:"))
		for _, tip := range r.Troubleshooting {
			lines = append(lines, TroubleshootingItemStyle.Render("   • "+tip))
		}
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ErrorColor).
		Width(r.width() - 2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

func (r *Result) width() int {
	if r.Width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return r.Width
}

// StatusPanel renders a bordered panel with a title and ordered key-value
// rows, used for the info command's detailed output.
func StatusPanel(title string, rows [][2]string) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, PanelTitleStyle.Render("   "+title))
	lines = append(lines, "")

	keyWidth := 0
	for _, row := range rows {
		if len(row[0]) > keyWidth {
			keyWidth = len(row[0])
		}
	}

	keyStyle := lipgloss.NewStyle().Foreground(MutedColor).Width(keyWidth + 4)
	valueStyle := lipgloss.NewStyle().Foreground(TextColor)

	for _, row := range rows {
		lines = append(lines, keyStyle.Render("   "+row[0]+":")+" "+valueStyle.Render(row[1]))
	}
	lines = append(lines, "")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(GetTerminalWidth() - 2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}
