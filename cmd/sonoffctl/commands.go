package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wjhx/sonoffctl/internal/config"
	"github.com/wjhx/sonoffctl/internal/minir3"
	"github.com/wjhx/sonoffctl/internal/tui"
	"github.com/wjhx/sonoffctl/internal/ui"
	"github.com/wjhx/sonoffctl/internal/urls"
)

// Device command flags
var (
	deviceFlag     string
	devicePort     int
	deviceTimeout  int
	outputFormat   string
	assumeYes      bool
	setDefaultFlag bool
)

func init() {
	// Common flags for device commands (persistent on root)
	rootCmd.PersistentFlags().StringVar(&deviceFlag, "device", "", "Device name from the registry, or an IP address/hostname")
	rootCmd.PersistentFlags().IntVar(&devicePort, "port", minir3.DefaultPort, "Device HTTP port")
	rootCmd.PersistentFlags().IntVar(&deviceTimeout, "timeout", 0, "Request timeout in seconds (0 uses the configured default)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(switchCmd)
	rootCmd.AddCommand(startupCmd)
	rootCmd.AddCommand(devicesCmd)
}

// target is the device a command will talk to, resolved from flags and the
// registry. Name is empty when the device was given as a raw address.
type target struct {
	Name string
	Host string
	Port int
}

// resolveTarget works out which device to talk to, in order of preference:
// the --device flag (registry name first, then raw address), the registry's
// default device, the only registered device, or an interactive picker.
func resolveTarget(cmd *cobra.Command) (*target, *config.Registry, error) {
	registry, err := config.LoadRegistry()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load device registry: %w", err)
	}

	portChanged := cmd.Flags().Changed("port")

	if deviceFlag != "" {
		if device := registry.GetDevice(deviceFlag); device != nil {
			port := device.Port
			if portChanged {
				port = devicePort
			}
			return &target{Name: deviceFlag, Host: device.Host, Port: port}, registry, nil
		}
		// Not a registered name: treat as a raw host/IP
		return &target{Host: deviceFlag, Port: devicePort}, registry, nil
	}

	if device, name := registry.DefaultDevice(); device != nil {
		port := device.Port
		if portChanged {
			port = devicePort
		}
		return &target{Name: name, Host: device.Host, Port: port}, registry, nil
	}

	names := registry.DeviceNames()
	if len(names) == 1 {
		device := registry.GetDevice(names[0])
		port := device.Port
		if portChanged {
			port = devicePort
		}
		return &target{Name: names[0], Host: device.Host, Port: port}, registry, nil
	}

	if len(names) > 1 && ui.IsInteractive() {
		selection, err := tui.RunPicker(registry)
		if err != nil {
			return nil, nil, err
		}
		if selection == nil {
			return nil, nil, fmt.Errorf("no device selected")
		}
		port := selection.Port
		if portChanged {
			port = devicePort
		}
		return &target{Name: selection.Name, Host: selection.Host, Port: port}, registry, nil
	}

	if len(names) > 1 {
		return nil, nil, fmt.Errorf("multiple devices registered; use --device to pick one of: %v", names)
	}
	return nil, nil, fmt.Errorf("no device specified; use --device <ip> or 'sonoffctl devices add'")
}

// newClient builds a device client for the target, applying the timeout from
// the --timeout flag or the registry preferences.
func newClient(t *target, registry *config.Registry) *minir3.Client {
	client := minir3.NewClient(t.Host, t.Port)

	seconds := deviceTimeout
	if seconds <= 0 {
		seconds = registry.Preferences.TimeoutSeconds
	}
	if seconds > 0 {
		client.SetTimeout(time.Duration(seconds) * time.Second)
	}
	return client
}

// recordSuccess updates the last-seen timestamp for a named device. Registry
// write failures are not fatal; the device call already succeeded.
func recordSuccess(t *target, registry *config.Registry) {
	if t.Name == "" {
		return
	}
	registry.TouchDevice(t.Name)
	if err := registry.Save(); err != nil {
		fmt.Printf("Warning: failed to update device registry: %v\n", err)
	}
}

// troubleshootingFor maps a device error to actionable hints.
func troubleshootingFor(err error) []string {
	switch {
	case minir3.IsNetworkError(err):
		return []string{
			"Ensure the device is powered on and in DIY mode",
			"Check that the device and this machine are on the same network",
			"Verify the IP address and port (default 8081)",
			"DIY mode setup guide: " + urls.DIYModeGuide,
		}
	case minir3.IsWrongParameters(err):
		return []string{
			"The device rejected the request body",
			"Check for a firmware update; older firmware rejects some fields",
			"API reference: " + urls.MiniR3HTTPAPI,
		}
	case minir3.IsDeviceError(err):
		return []string{
			"The device reported an error code for this operation",
			"Error codes are documented in the API reference: " + urls.MiniR3HTTPAPI,
		}
	case minir3.IsParseError(err):
		return []string{
			"The device sent a response this tool does not understand",
			"Confirm the target is a MINI R3 in DIY mode, not another service",
			"API reference: " + urls.MiniR3HTTPAPI,
		}
	case minir3.IsHTTPError(err):
		return []string{
			"The device answered with an unexpected HTTP status",
			"Confirm the target is a MINI R3 in DIY mode, not another service",
		}
	default:
		return nil
	}
}

func failure(title string, err error) error {
	fmt.Println(ui.NewFailureResult(title, err, troubleshootingFor(err)).Render())
	return err
}

// infoCmd reads the current device state
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show device state",
	Long: `Read the current state of a device.

Connects to the device and reports the relay position and the configured
power-on (startup) behavior.`,
	Example: `  # Show state of the default device
  sonoffctl info

  # Address a device directly by IP
  sonoffctl info --device 192.168.1.54

  # JSON output for scripting
  sonoffctl info --device bedroom --format json`,
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	t, registry, err := resolveTarget(cmd)
	if err != nil {
		return err
	}

	client := newClient(t, registry)
	info, err := client.FetchInfo()
	if err != nil {
		return failure(fmt.Sprintf("Failed to read %s:%d", t.Host, t.Port), err)
	}

	switch outputFormat {
	case "compact":
		fmt.Println(info.FormatCompact())
	case "json":
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "detailed":
		fallthrough
	default:
		if t.Name != "" {
			fmt.Printf("Device %s (%s:%d)\n\n", t.Name, t.Host, t.Port)
		}
		fmt.Println(info.FormatDetailed())
	}

	recordSuccess(t, registry)
	return nil
}

// switchCmd toggles the relay
var switchCmd = &cobra.Command{
	Use:   "switch <on|off>",
	Short: "Switch the relay on or off",
	Long: `Switch the device's relay to the given position.

The change takes effect immediately but does not alter the power-on
behavior; use 'sonoffctl startup' for that.`,
	Example: `  # Turn the default device on
  sonoffctl switch on

  # Turn a specific device off
  sonoffctl switch off --device 192.168.1.54`,
	Args: cobra.ExactArgs(1),
	RunE: runSwitch,
}

func runSwitch(cmd *cobra.Command, args []string) error {
	position, err := minir3.ParseSwitchPosition(args[0])
	if err != nil {
		return err
	}

	t, registry, err := resolveTarget(cmd)
	if err != nil {
		return err
	}

	client := newClient(t, registry)
	if err := client.SetSwitchPosition(position); err != nil {
		return failure(fmt.Sprintf("Failed to switch %s:%d", t.Host, t.Port), err)
	}

	fmt.Println(ui.NewSuccessResult("Relay switched", [][2]string{
		{"Device", t.Host},
		{"Power", position.String()},
	}).Render())

	recordSuccess(t, registry)
	return nil
}

// startupCmd configures power-on behavior
var startupCmd = &cobra.Command{
	Use:   "startup <on|off|stay>",
	Short: "Set the power-on behavior",
	Long: `Configure what the relay does when the device regains power.

  on    relay switches on after an outage
  off   relay stays off after an outage
  stay  relay restores its last position

WARNING: the device firmware applies startup settings to all four outlet
slots in one request. This tool sets the chosen behavior on the main relay
and resets the three unused slots to "off". On a single-outlet MINI R3 the
unused slots have no effect.`,
	Example: `  # Restore the last relay position after an outage
  sonoffctl startup stay

  # Always power on, without the confirmation prompt
  sonoffctl startup on --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runStartup,
}

func init() {
	startupCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runStartup(cmd *cobra.Command, args []string) error {
	position, err := minir3.ParseStartupPosition(args[0])
	if err != nil {
		return err
	}

	if !assumeYes {
		if !ui.IsInteractive() {
			return fmt.Errorf("refusing to change startup behavior without confirmation; re-run with --yes")
		}
		if !ui.StartupResetConfirmation(position.String()) {
			fmt.Println("Aborted.")
			return nil
		}
	}

	t, registry, err := resolveTarget(cmd)
	if err != nil {
		return err
	}

	client := newClient(t, registry)
	if err := client.SetStartupPosition(position); err != nil {
		return failure(fmt.Sprintf("Failed to configure %s:%d", t.Host, t.Port), err)
	}

	fmt.Println(ui.NewSuccessResult("Startup behavior set", [][2]string{
		{"Device", t.Host},
		{"Startup", position.String()},
	}).Render())

	recordSuccess(t, registry)
	return nil
}

// devicesCmd manages the local device registry
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Manage the local device registry",
	Long: `Manage the registry of named devices.

Registered devices can be addressed by name with --device and one of them
can be marked as the default for commands run without --device.`,
}

func init() {
	devicesCmd.AddCommand(devicesAddCmd)
	devicesCmd.AddCommand(devicesListCmd)
	devicesCmd.AddCommand(devicesRemoveCmd)
	devicesCmd.AddCommand(devicesSetDefaultCmd)

	devicesAddCmd.Flags().BoolVar(&setDefaultFlag, "default", false, "Make this the default device")
}

var devicesAddCmd = &cobra.Command{
	Use:   "add <name> <host>",
	Short: "Add a device to the registry",
	Example: `  # Register a device and make it the default
  sonoffctl devices add bedroom 192.168.1.54 --default

  # Register a device on a non-standard port
  sonoffctl devices add garage 192.168.1.60 --port 8082`,
	Args: cobra.ExactArgs(2),
	RunE: runDevicesAdd,
}

func runDevicesAdd(cmd *cobra.Command, args []string) error {
	name, host := args[0], args[1]

	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load device registry: %w", err)
	}

	registry.AddDevice(name, host, devicePort)
	if setDefaultFlag {
		if err := registry.SetDefaultDevice(name); err != nil {
			return err
		}
	}
	if err := registry.Save(); err != nil {
		return fmt.Errorf("failed to save device registry: %w", err)
	}

	fmt.Printf("Added device %q (%s:%d)\n", name, host, devicePort)
	if setDefaultFlag {
		fmt.Printf("%q is now the default device\n", name)
	}
	return nil
}

var devicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered devices",
	RunE:  runDevicesList,
}

func runDevicesList(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load device registry: %w", err)
	}

	names := registry.DeviceNames()
	if len(names) == 0 {
		fmt.Println("No devices registered.")
		fmt.Println("Use 'sonoffctl devices add <name> <host>' to register one.")
		return nil
	}

	rows := make([][2]string, 0, len(names))
	for _, name := range names {
		device := registry.GetDevice(name)
		label := name
		if name == registry.Preferences.DefaultDevice {
			label = name + " (default)"
		}
		rows = append(rows, [2]string{label, fmt.Sprintf("%s:%d", device.Host, device.Port)})
	}
	fmt.Println(ui.StatusPanel("Registered devices", rows))
	return nil
}

var devicesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a device from the registry",
	Args:  cobra.ExactArgs(1),
	RunE:  runDevicesRemove,
}

func runDevicesRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load device registry: %w", err)
	}

	if !registry.RemoveDevice(name) {
		return fmt.Errorf("no device named %q", name)
	}
	if err := registry.Save(); err != nil {
		return fmt.Errorf("failed to save device registry: %w", err)
	}

	fmt.Printf("Removed device %q\n", name)
	return nil
}

var devicesSetDefaultCmd = &cobra.Command{
	Use:   "set-default <name>",
	Short: "Set the default device",
	Args:  cobra.ExactArgs(1),
	RunE:  runDevicesSetDefault,
}

func runDevicesSetDefault(cmd *cobra.Command, args []string) error {
	name := args[0]

	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load device registry: %w", err)
	}

	if err := registry.SetDefaultDevice(name); err != nil {
		return err
	}
	if err := registry.Save(); err != nil {
		return fmt.Errorf("failed to save device registry: %w", err)
	}

	fmt.Printf("%q is now the default device\n", name)
	return nil
}
