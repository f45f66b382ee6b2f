package minir3

import (
	"encoding/json"
	"testing"
)

// Test data - response bodies as emitted by DIY-mode firmware
const (
	validInfoResponse = `{"data":{"switches":[{"switch":"off","outlet":0}],"configure":[{"startup":"off","outlet":0}]},"error":0}`

	fourOutletInfoResponse = `{"data":{"switches":[{"switch":"on","outlet":3},{"switch":"on","outlet":0},{"switch":"off","outlet":1},{"switch":"off","outlet":2}],"configure":[{"startup":"off","outlet":1},{"startup":"stay","outlet":0},{"startup":"off","outlet":2},{"startup":"off","outlet":3}]},"error":0}`

	wrongParametersResponse = `{"data":null,"error":400}`
)

func TestSwitchPositionRoundTrip(t *testing.T) {
	tests := []struct {
		position SwitchPosition
		token    string
	}{
		{SwitchOn, `"on"`},
		{SwitchOff, `"off"`},
	}

	for _, tt := range tests {
		t.Run(tt.position.String(), func(t *testing.T) {
			data, err := json.Marshal(tt.position)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.token {
				t.Errorf("Marshal() = %s, want %s", data, tt.token)
			}

			var got SwitchPosition
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got != tt.position {
				t.Errorf("Unmarshal() = %v, want %v", got, tt.position)
			}
		})
	}
}

func TestStartupPositionRoundTrip(t *testing.T) {
	tests := []struct {
		position StartupPosition
		token    string
	}{
		{StartupOn, `"on"`},
		{StartupOff, `"off"`},
		{StartupStay, `"stay"`},
	}

	for _, tt := range tests {
		t.Run(tt.position.String(), func(t *testing.T) {
			data, err := json.Marshal(tt.position)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.token {
				t.Errorf("Marshal() = %s, want %s", data, tt.token)
			}

			var got StartupPosition
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got != tt.position {
				t.Errorf("Unmarshal() = %v, want %v", got, tt.position)
			}
		})
	}
}

func TestParsePositionRejectsUnknownTokens(t *testing.T) {
	if _, err := ParseSwitchPosition("stay"); err == nil {
		t.Error("ParseSwitchPosition(\"stay\") should fail, \"stay\" is startup-only")
	}
	if _, err := ParseSwitchPosition("ON"); err == nil {
		t.Error("ParseSwitchPosition(\"ON\") should fail, tokens are lowercase")
	}
	if _, err := ParseStartupPosition("toggle"); err == nil {
		t.Error("ParseStartupPosition(\"toggle\") should fail")
	}
}

func TestMarshalRejectsInvalidEnumValues(t *testing.T) {
	if _, err := json.Marshal(SwitchPosition(42)); err == nil {
		t.Error("Marshal of out-of-range SwitchPosition should fail")
	}
	if _, err := json.Marshal(StartupPosition(42)); err == nil {
		t.Error("Marshal of out-of-range StartupPosition should fail")
	}
}

func TestInfoRoundTrip(t *testing.T) {
	switches := []SwitchPosition{SwitchOn, SwitchOff}
	startups := []StartupPosition{StartupOn, StartupOff, StartupStay}

	for _, sw := range switches {
		for _, su := range startups {
			info := Info{Switch: sw, Startup: su}

			data, err := json.Marshal(info)
			if err != nil {
				t.Fatalf("Marshal(%+v) error = %v", info, err)
			}

			var got Info
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", data, err)
			}

			if got != info {
				t.Errorf("round trip = %+v, want %+v", got, info)
			}
		}
	}
}

func TestParseInfoResponse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Info
		wantErr func(error) bool
	}{
		{
			name:  "documented single-outlet response",
			input: validInfoResponse,
			want:  Info{Switch: SwitchOff, Startup: StartupOff},
		},
		{
			name:  "four outlets with outlet 0 out of order",
			input: fourOutletInfoResponse,
			want:  Info{Switch: SwitchOn, Startup: StartupStay},
		},
		{
			name:    "wrong parameters rejection",
			input:   wrongParametersResponse,
			wantErr: IsWrongParameters,
		},
		{
			name:    "unmapped device error code",
			input:   `{"data":null,"error":401}`,
			wantErr: IsDeviceError,
		},
		{
			name:    "null data on success envelope",
			input:   `{"data":null,"error":0}`,
			wantErr: IsParseError,
		},
		{
			name:    "absent data on success envelope",
			input:   `{"error":0}`,
			wantErr: IsParseError,
		},
		{
			name:    "outlet 0 missing from switches",
			input:   `{"data":{"switches":[{"switch":"on","outlet":1}],"configure":[{"startup":"off","outlet":0}]},"error":0}`,
			wantErr: IsParseError,
		},
		{
			name:    "outlet 0 missing from configure",
			input:   `{"data":{"switches":[{"switch":"on","outlet":0}],"configure":[{"startup":"off","outlet":2}]},"error":0}`,
			wantErr: IsParseError,
		},
		{
			name:    "unknown wire token",
			input:   `{"data":{"switches":[{"switch":"dimmed","outlet":0}],"configure":[{"startup":"off","outlet":0}]},"error":0}`,
			wantErr: IsParseError,
		},
		{
			name:    "not JSON at all",
			input:   `<html>503 Service Unavailable</html>`,
			wantErr: IsParseError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInfoResponse([]byte(tt.input))

			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("ParseInfoResponse() expected an error, got nil")
				}
				if !tt.wantErr(err) {
					t.Errorf("ParseInfoResponse() error category mismatch, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseInfoResponse() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("ParseInfoResponse() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestParseInfoResponseUnknownCodeCarriesRawCode(t *testing.T) {
	_, err := ParseInfoResponse([]byte(`{"data":null,"error":401}`))
	if err == nil {
		t.Fatal("expected an error")
	}

	code, ok := DeviceErrorCode(err)
	if !ok {
		t.Fatalf("expected a device error, got %v", err)
	}
	if code != 401 {
		t.Errorf("DeviceErrorCode() = %d, want 401", code)
	}
	if IsWrongParameters(err) {
		t.Error("code 401 must not be classified as wrong parameters")
	}
}

func TestParseSetResponse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr func(error) bool
	}{
		{
			name:  "accepted",
			input: `{"error":0}`,
		},
		{
			name:  "accepted with null data",
			input: `{"data":null,"error":0}`,
		},
		{
			name:    "wrong parameters",
			input:   wrongParametersResponse,
			wantErr: IsWrongParameters,
		},
		{
			name:    "unmapped code",
			input:   `{"error":503}`,
			wantErr: IsDeviceError,
		},
		{
			name:    "garbage body",
			input:   `ok`,
			wantErr: IsParseError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ParseSetResponse([]byte(tt.input))

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ParseSetResponse() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatal("ParseSetResponse() expected an error, got nil")
			}
			if !tt.wantErr(err) {
				t.Errorf("ParseSetResponse() error category mismatch, got %v", err)
			}
		})
	}
}
