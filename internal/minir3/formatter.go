package minir3

import (
	"fmt"
	"strings"
)

// Summary returns a one-line summary of the outlet state
func (i *Info) Summary() string {
	return fmt.Sprintf("outlet 0: power=%s startup=%s", i.Switch, i.Startup)
}

// FormatCompact returns a compact multi-line format suitable for terminal display
func (i *Info) FormatCompact() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Power:   %s\n", i.Switch))
	b.WriteString(fmt.Sprintf("Startup: %s\n", i.Startup))

	return b.String()
}

// FormatDetailed returns a formatted string with the full outlet-0 state
func (i *Info) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("=== Outlet 0 State ===\n")
	b.WriteString(fmt.Sprintf("Power State:      %s\n", i.Switch))
	b.WriteString(fmt.Sprintf("Startup Behavior: %s\n", describeStartup(i.Startup)))

	return b.String()
}

// describeStartup returns a human-readable explanation of a startup position
func describeStartup(p StartupPosition) string {
	switch p {
	case StartupOn:
		return "on (power on at boot)"
	case StartupOff:
		return "off (stay off at boot)"
	case StartupStay:
		return "stay (restore last known state)"
	default:
		return p.String()
	}
}
