// Package ui provides styled terminal output for sonoffctl commands.
//
// It wraps lipgloss with a shared color palette and a small set of
// building blocks: a bordered status panel for the info command, success
// and failure result boxes with optional troubleshooting tips, and a
// warning box with a yes/no prompt for destructive operations.
//
// Prompts are only shown when stdin and stdout are attached to a
// terminal; non-interactive callers (scripts, pipes) should pass --yes
// to the commands that require confirmation.
package ui
