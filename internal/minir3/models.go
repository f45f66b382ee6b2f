package minir3

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SwitchPosition is the power state of an outlet relay.
type SwitchPosition int

const (
	// SwitchOn powers the outlet on.
	SwitchOn SwitchPosition = iota
	// SwitchOff powers the outlet off.
	SwitchOff
)

// StartupPosition is the state an outlet assumes when the device powers on.
type StartupPosition int

const (
	// StartupOn powers the outlet on at boot.
	StartupOn StartupPosition = iota
	// StartupOff leaves the outlet off at boot.
	StartupOff
	// StartupStay restores the last known state at boot.
	StartupStay
)

// The DIY-mode API accepts exactly these lowercase tokens on the wire.
// The mappings are explicit tables rather than derived from the Go
// identifiers so the wire contract survives any renaming.
var (
	switchPositionTokens = map[SwitchPosition]string{
		SwitchOn:  "on",
		SwitchOff: "off",
	}
	switchPositionValues = map[string]SwitchPosition{
		"on":  SwitchOn,
		"off": SwitchOff,
	}

	startupPositionTokens = map[StartupPosition]string{
		StartupOn:   "on",
		StartupOff:  "off",
		StartupStay: "stay",
	}
	startupPositionValues = map[string]StartupPosition{
		"on":   StartupOn,
		"off":  StartupOff,
		"stay": StartupStay,
	}
)

// String returns the wire token for the position.
func (p SwitchPosition) String() string {
	if token, ok := switchPositionTokens[p]; ok {
		return token
	}
	return fmt.Sprintf("SwitchPosition(%d)", int(p))
}

// ParseSwitchPosition converts a wire token ("on" or "off") to a SwitchPosition.
func ParseSwitchPosition(token string) (SwitchPosition, error) {
	if p, ok := switchPositionValues[token]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("invalid switch position %q (must be \"on\" or \"off\")", token)
}

// MarshalJSON implements json.Marshaler.
func (p SwitchPosition) MarshalJSON() ([]byte, error) {
	token, ok := switchPositionTokens[p]
	if !ok {
		return nil, fmt.Errorf("invalid switch position value %d", int(p))
	}
	return json.Marshal(token)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *SwitchPosition) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return fmt.Errorf("switch position must be a JSON string: %w", err)
	}
	parsed, err := ParseSwitchPosition(token)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// String returns the wire token for the position.
func (p StartupPosition) String() string {
	if token, ok := startupPositionTokens[p]; ok {
		return token
	}
	return fmt.Sprintf("StartupPosition(%d)", int(p))
}

// ParseStartupPosition converts a wire token ("on", "off" or "stay") to a
// StartupPosition.
func ParseStartupPosition(token string) (StartupPosition, error) {
	if p, ok := startupPositionValues[token]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("invalid startup position %q (must be \"on\", \"off\" or \"stay\")", token)
}

// MarshalJSON implements json.Marshaler.
func (p StartupPosition) MarshalJSON() ([]byte, error) {
	token, ok := startupPositionTokens[p]
	if !ok {
		return nil, fmt.Errorf("invalid startup position value %d", int(p))
	}
	return json.Marshal(token)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *StartupPosition) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return fmt.Errorf("startup position must be a JSON string: %w", err)
	}
	parsed, err := ParseStartupPosition(token)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Info is the outlet-0 view of the device state as reported by
// POST /zeroconf/info. The device tracks four outlets but this client
// only addresses outlet 0.
type Info struct {
	// Switch is the current power state of outlet 0.
	Switch SwitchPosition `json:"switch"`

	// Startup is the boot-time state configured for outlet 0.
	Startup StartupPosition `json:"startup"`
}

// envelope is the {data, error} wrapper every DIY-mode endpoint returns.
// A zero error code means the request was accepted; data is only
// meaningful in that case.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error int             `json:"error"`
}

// hasData reports whether the envelope carries a non-null data object.
func (e *envelope) hasData() bool {
	return len(e.Data) > 0 && !bytes.Equal(e.Data, []byte("null"))
}

// infoData is the data payload of a successful info response. The device
// reports per-outlet arrays for the current switch state and the
// configured startup state.
type infoData struct {
	Switches  []switchEntry  `json:"switches"`
	Configure []startupEntry `json:"configure"`
}

// switchEntry is one outlet's power state, used in both the info response
// and the switches request.
type switchEntry struct {
	Switch SwitchPosition `json:"switch"`
	Outlet int            `json:"outlet"`
}

// startupEntry is one outlet's startup state, used in both the info
// response and the startups request.
type startupEntry struct {
	Startup StartupPosition `json:"startup"`
	Outlet  int             `json:"outlet"`
}

// ParseInfoResponse parses the raw body of a POST /zeroconf/info exchange
// into an Info value.
//
// A nonzero envelope code yields a device error. A success envelope whose
// data is missing, or whose switches/configure arrays carry no entry for
// outlet 0, yields a parse error; the device API guarantees outlet 0 is
// present, so its absence is a contract violation and is reported rather
// than assumed away.
func ParseInfoResponse(data []byte) (*Info, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, NewParseError("response is not valid JSON", err)
	}

	if env.Error != 0 {
		return nil, NewDeviceError(env.Error)
	}

	if !env.hasData() {
		return nil, NewParseError("success response carries no data", nil)
	}

	var payload infoData
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, NewParseError("response data does not match the info schema", err)
	}

	info := &Info{}

	found := false
	for _, entry := range payload.Switches {
		if entry.Outlet == 0 {
			info.Switch = entry.Switch
			found = true
			break
		}
	}
	if !found {
		return nil, NewParseError("outlet 0 missing from switches array", nil)
	}

	found = false
	for _, entry := range payload.Configure {
		if entry.Outlet == 0 {
			info.Startup = entry.Startup
			found = true
			break
		}
	}
	if !found {
		return nil, NewParseError("outlet 0 missing from configure array", nil)
	}

	return info, nil
}

// ParseSetResponse parses the raw body of a POST /zeroconf/startups or
// POST /zeroconf/switches exchange. These endpoints return no data on
// success; only the envelope code is meaningful.
func ParseSetResponse(data []byte) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return NewParseError("response is not valid JSON", err)
	}

	if env.Error != 0 {
		return NewDeviceError(env.Error)
	}

	return nil
}
