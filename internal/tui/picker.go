package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wjhx/sonoffctl/internal/config"
)

// Selection is the device chosen in the picker.
type Selection struct {
	Name string
	Host string
	Port int
}

// deviceItem adapts a registry entry to the list.Item interface.
type deviceItem struct {
	name string
	host string
	port int
}

func (d deviceItem) Title() string       { return d.name }
func (d deviceItem) Description() string { return fmt.Sprintf("%s:%d", d.host, d.port) }
func (d deviceItem) FilterValue() string { return d.name }

// pickerKeyMap defines key bindings for the picker
type pickerKeyMap struct {
	Select key.Binding
	Quit   key.Binding
}

// PickerModel is a bubbletea model that lets the user choose one of the
// devices registered in the configuration file.
type PickerModel struct {
	deviceList list.Model
	keys       pickerKeyMap
	choice     *Selection
	quitting   bool
}

// NewPicker creates a picker over the named devices of a registry.
func NewPicker(registry *config.Registry) PickerModel {
	items := make([]list.Item, 0, len(registry.Devices))
	for _, name := range registry.DeviceNames() {
		device := registry.GetDevice(name)
		items = append(items, deviceItem{name: name, host: device.Host, port: device.Port})
	}

	delegate := list.NewDefaultDelegate()
	deviceList := list.New(items, delegate, 0, 0)
	deviceList.Title = "Select a device"
	deviceList.SetShowStatusBar(false)
	deviceList.SetFilteringEnabled(true)
	deviceList.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7D56F4")).
		Bold(true)

	keys := pickerKeyMap{
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	deviceList.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Select}
	}

	return PickerModel{
		deviceList: deviceList,
		keys:       keys,
	}
}

// Init implements tea.Model
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.deviceList.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// Let list filtering consume keys first
		if m.deviceList.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Select):
			if item, ok := m.deviceList.SelectedItem().(deviceItem); ok {
				m.choice = &Selection{Name: item.name, Host: item.host, Port: item.port}
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.deviceList, cmd = m.deviceList.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m PickerModel) View() string {
	if m.choice != nil || m.quitting {
		return ""
	}
	return m.deviceList.View()
}

// Choice returns the selected device, or nil if the picker was cancelled.
func (m PickerModel) Choice() *Selection {
	return m.choice
}

// RunPicker runs the interactive device picker and returns the selection.
// A nil Selection with a nil error means the user cancelled.
func RunPicker(registry *config.Registry) (*Selection, error) {
	program := tea.NewProgram(NewPicker(registry))

	model, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("device picker failed: %w", err)
	}

	picker, ok := model.(PickerModel)
	if !ok {
		return nil, fmt.Errorf("device picker returned unexpected model %T", model)
	}
	return picker.Choice(), nil
}
