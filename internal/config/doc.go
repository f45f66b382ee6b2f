// Package config manages the sonoffctl configuration file.
//
// The configuration is a YAML registry of named devices plus application
// preferences, stored at the OS-appropriate location (XDG config dir on
// Linux, LOCALAPPDATA on Windows). Registering a device once lets every
// command run without --device flags:
//
//	sonoffctl devices add bedroom 192.168.1.75
//	sonoffctl devices set-default bedroom
//	sonoffctl switch on
//
// Saves are atomic (write to a temporary file, then rename) so a crash
// mid-save never corrupts the registry.
package config
