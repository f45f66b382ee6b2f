// Package tui provides interactive terminal components built on Bubble Tea.
//
// The package currently exposes a single component, the device picker, which
// lists the devices stored in the configuration registry and lets the user
// select one with fuzzy filtering:
//
//	selection, err := tui.RunPicker(registry)
//	if err != nil {
//		return err
//	}
//	if selection == nil {
//		// user cancelled
//		return nil
//	}
//
// The picker is only ever launched from an interactive terminal; callers are
// expected to check ui.IsInteractive first.
package tui
