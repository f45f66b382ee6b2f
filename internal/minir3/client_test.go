package minir3

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient("192.168.1.75", 8081)

	if client.BaseURL != "http://192.168.1.75:8081" {
		t.Errorf("BaseURL = %s, want http://192.168.1.75:8081", client.BaseURL)
	}

	if client.HTTPClient == nil {
		t.Fatal("HTTPClient should not be nil")
	}

	if client.HTTPClient.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", client.HTTPClient.Timeout, DefaultTimeout)
	}
}

func TestNewClientWithURL(t *testing.T) {
	client := NewClientWithURL("http://10.0.0.5:8081")

	if client.BaseURL != "http://10.0.0.5:8081" {
		t.Errorf("BaseURL = %s, want http://10.0.0.5:8081", client.BaseURL)
	}
}

func TestSetTimeout(t *testing.T) {
	client := NewClient("192.168.1.75", 8081)
	client.SetTimeout(5 * time.Second)

	if client.HTTPClient.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", client.HTTPClient.Timeout)
	}
}

// deviceStub records the last request and replies with a fixed body.
func deviceStub(t *testing.T, wantPath string, status int, response string) (*httptest.Server, *string) {
	t.Helper()

	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("request method = %s, want POST", r.Method)
		}
		if r.URL.Path != wantPath {
			t.Errorf("request path = %s, want %s", r.URL.Path, wantPath)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %s, want application/json", ct)
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("reading request body: %v", err)
		}
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))

	return server, &gotBody
}

func TestFetchInfo_Success(t *testing.T) {
	server, gotBody := deviceStub(t, "/zeroconf/info", http.StatusOK, validInfoResponse)
	defer server.Close()

	client := NewClientWithURL(server.URL)
	info, err := client.FetchInfo()
	if err != nil {
		t.Fatalf("FetchInfo() error = %v", err)
	}

	if *gotBody != `{"data":{}}` {
		t.Errorf("request body = %s, want {\"data\":{}}", *gotBody)
	}

	want := Info{Switch: SwitchOff, Startup: StartupOff}
	if *info != want {
		t.Errorf("FetchInfo() = %+v, want %+v", *info, want)
	}
}

func TestFetchInfo_DeviceError(t *testing.T) {
	// The firmware reports rejections as HTTP 400 with the error envelope
	server, _ := deviceStub(t, "/zeroconf/info", http.StatusBadRequest, wrongParametersResponse)
	defer server.Close()

	client := NewClientWithURL(server.URL)
	_, err := client.FetchInfo()

	if err == nil {
		t.Fatal("FetchInfo() should return error")
	}
	if !IsWrongParameters(err) {
		t.Errorf("FetchInfo() error should be wrong parameters, got %v", err)
	}
}

func TestFetchInfo_InvalidJSON(t *testing.T) {
	server, _ := deviceStub(t, "/zeroconf/info", http.StatusOK, "not valid JSON at all")
	defer server.Close()

	client := NewClientWithURL(server.URL)
	_, err := client.FetchInfo()

	if err == nil {
		t.Fatal("FetchInfo() should return error for invalid JSON")
	}
	if !IsParseError(err) {
		t.Errorf("FetchInfo() error should be parse error, got %T: %v", err, err)
	}
}

func TestFetchInfo_NetworkFailure(t *testing.T) {
	// Closed server guarantees connection refused
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClientWithURL(url)
	client.SetTimeout(time.Second)

	_, err := client.FetchInfo()

	if err == nil {
		t.Fatal("FetchInfo() should return error for unreachable device")
	}
	if !IsNetworkError(err) {
		t.Errorf("FetchInfo() error should be network error, got %T: %v", err, err)
	}
}

func TestSetStartupPosition_SendsExpectedRequest(t *testing.T) {
	server, gotBody := deviceStub(t, "/zeroconf/startups", http.StatusOK, `{"error":0}`)
	defer server.Close()

	client := NewClientWithURL(server.URL)
	if err := client.SetStartupPosition(StartupStay); err != nil {
		t.Fatalf("SetStartupPosition() error = %v", err)
	}

	want := `{"data":{"configure":[{"startup":"stay","outlet":0},{"startup":"off","outlet":1},{"startup":"off","outlet":2},{"startup":"off","outlet":3}]}}`
	if *gotBody != want {
		t.Errorf("request body = %s, want %s", *gotBody, want)
	}
}

func TestSetStartupPosition_DeviceError(t *testing.T) {
	server, _ := deviceStub(t, "/zeroconf/startups", http.StatusBadRequest, wrongParametersResponse)
	defer server.Close()

	client := NewClientWithURL(server.URL)
	err := client.SetStartupPosition(StartupStay)

	if err == nil {
		t.Fatal("SetStartupPosition() should return error")
	}
	if !IsWrongParameters(err) {
		t.Errorf("SetStartupPosition() error should be wrong parameters, got %v", err)
	}
}

func TestSetSwitchPosition_SendsExpectedRequest(t *testing.T) {
	server, gotBody := deviceStub(t, "/zeroconf/switches", http.StatusOK, `{"error":0}`)
	defer server.Close()

	client := NewClientWithURL(server.URL)
	if err := client.SetSwitchPosition(SwitchOn); err != nil {
		t.Fatalf("SetSwitchPosition() error = %v", err)
	}

	want := `{"data":{"switches":[{"switch":"on","outlet":0}]}}`
	if *gotBody != want {
		t.Errorf("request body = %s, want %s", *gotBody, want)
	}
}

func TestSetSwitchPosition_UnmappedCodeInEnvelope(t *testing.T) {
	// Unknown codes must come back as structured device errors, not crashes
	server, _ := deviceStub(t, "/zeroconf/switches", http.StatusOK, `{"data":null,"error":470}`)
	defer server.Close()

	client := NewClientWithURL(server.URL)
	err := client.SetSwitchPosition(SwitchOff)

	code, ok := DeviceErrorCode(err)
	if !ok {
		t.Fatalf("expected device error, got %v", err)
	}
	if code != 470 {
		t.Errorf("DeviceErrorCode() = %d, want 470", code)
	}
}

func TestPost_UnexpectedStatusWithoutEnvelope(t *testing.T) {
	server, _ := deviceStub(t, "/zeroconf/switches", http.StatusServiceUnavailable, "<html>busy</html>")
	defer server.Close()

	client := NewClientWithURL(server.URL)
	err := client.SetSwitchPosition(SwitchOn)

	if err == nil {
		t.Fatal("expected error for 503 response")
	}
	if !IsHTTPError(err) {
		t.Errorf("error should be HTTP error, got %T: %v", err, err)
	}
}
