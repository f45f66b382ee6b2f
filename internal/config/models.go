package config

import (
	"fmt"
	"sort"
	"time"
)

// Registry represents the entire user configuration file.
// It stores named devices and application preferences so commands can be
// run without repeating --device flags.
type Registry struct {
	Version     int                `yaml:"version"`
	Devices     map[string]*Device `yaml:"devices,omitempty"` // Keyed by user-chosen name
	Preferences *Preferences       `yaml:"preferences,omitempty"`
}

// Device represents a single known Sonoff device.
type Device struct {
	Host     string    `yaml:"host"`                // IP address or hostname
	Port     int       `yaml:"port"`                // DIY-mode API port (8081 on stock firmware)
	LastSeen time.Time `yaml:"last_seen,omitempty"` // Last successful exchange
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	DefaultDevice  string `yaml:"default_device,omitempty"` // Device name used when no --device flag is given
	TimeoutSeconds int    `yaml:"timeout_seconds"`          // HTTP request timeout
}

// DefaultPort is the DIY-mode API port used when a device is added
// without an explicit port.
const DefaultPort = 8081

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Devices: make(map[string]*Device),
		Preferences: &Preferences{
			TimeoutSeconds: 10,
		},
	}
}

// GetDevice retrieves a device by name.
// Returns nil if the device doesn't exist in the registry.
func (r *Registry) GetDevice(name string) *Device {
	return r.Devices[name]
}

// AddDevice adds or replaces a named device entry.
func (r *Registry) AddDevice(name, host string, port int) *Device {
	if r.Devices == nil {
		r.Devices = make(map[string]*Device)
	}
	if port == 0 {
		port = DefaultPort
	}

	device := &Device{Host: host, Port: port}
	r.Devices[name] = device
	return device
}

// RemoveDevice removes a named device entry. It also clears the default
// device preference if it pointed at the removed entry. Returns false if
// the name was not present.
func (r *Registry) RemoveDevice(name string) bool {
	if _, exists := r.Devices[name]; !exists {
		return false
	}
	delete(r.Devices, name)

	if r.Preferences != nil && r.Preferences.DefaultDevice == name {
		r.Preferences.DefaultDevice = ""
	}
	return true
}

// SetDefaultDevice marks a named device as the default target.
// Returns an error if the name is not in the registry.
func (r *Registry) SetDefaultDevice(name string) error {
	if _, exists := r.Devices[name]; !exists {
		return fmt.Errorf("unknown device %q (add it with 'sonoffctl devices add')", name)
	}

	if r.Preferences == nil {
		r.Preferences = &Preferences{TimeoutSeconds: 10}
	}
	r.Preferences.DefaultDevice = name
	return nil
}

// DefaultDevice returns the configured default device and its name.
// Returns nil, "" when no default is set.
func (r *Registry) DefaultDevice() (*Device, string) {
	if r.Preferences == nil || r.Preferences.DefaultDevice == "" {
		return nil, ""
	}
	name := r.Preferences.DefaultDevice
	return r.Devices[name], name
}

// TouchDevice updates the last-seen timestamp for a device after a
// successful exchange. Unknown names are ignored.
func (r *Registry) TouchDevice(name string) {
	if device, exists := r.Devices[name]; exists {
		device.LastSeen = time.Now()
	}
}

// DeviceNames returns the registered device names in sorted order.
func (r *Registry) DeviceNames() []string {
	names := make([]string, 0, len(r.Devices))
	for name := range r.Devices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
