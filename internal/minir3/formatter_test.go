package minir3

import (
	"strings"
	"testing"
)

func TestInfoSummary(t *testing.T) {
	info := &Info{Switch: SwitchOn, Startup: StartupStay}

	got := info.Summary()
	want := "outlet 0: power=on startup=stay"
	if got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestInfoFormatCompact(t *testing.T) {
	info := &Info{Switch: SwitchOff, Startup: StartupOff}

	got := info.FormatCompact()
	if !strings.Contains(got, "Power:   off") {
		t.Errorf("FormatCompact() missing power line:\n%s", got)
	}
	if !strings.Contains(got, "Startup: off") {
		t.Errorf("FormatCompact() missing startup line:\n%s", got)
	}
}

func TestInfoFormatDetailed(t *testing.T) {
	tests := []struct {
		startup StartupPosition
		want    string
	}{
		{StartupOn, "on (power on at boot)"},
		{StartupOff, "off (stay off at boot)"},
		{StartupStay, "stay (restore last known state)"},
	}

	for _, tt := range tests {
		t.Run(tt.startup.String(), func(t *testing.T) {
			info := &Info{Switch: SwitchOn, Startup: tt.startup}

			got := info.FormatDetailed()
			if !strings.Contains(got, tt.want) {
				t.Errorf("FormatDetailed() missing %q:\n%s", tt.want, got)
			}
		})
	}
}
