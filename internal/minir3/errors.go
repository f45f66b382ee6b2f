package minir3

import (
	"errors"
	"fmt"
)

// Error types for device API operations

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a transport-level error (connection refused,
	// timeout, etc.). The underlying error is preserved via Unwrap.
	ErrTypeNetwork ErrorType = iota
	// ErrTypeHTTP indicates an HTTP-level error (non-200 status code)
	ErrTypeHTTP
	// ErrTypeParse indicates a malformed response (invalid JSON, schema
	// mismatch, or a success envelope missing outlet 0)
	ErrTypeParse
	// ErrTypeDevice indicates a nonzero error code in the response envelope
	ErrTypeDevice
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Malformed Response"
	case ErrTypeDevice:
		return "Device Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Device error codes returned in the response envelope.
const (
	// CodeWrongParameters is returned when the device rejects the request
	// parameters. It is the only nonzero code current firmware is known to
	// emit; any other code is still surfaced as a DeviceError rather than
	// treated as fatal.
	CodeWrongParameters = 400
)

// DeviceError represents an error that occurred while talking to the device
type DeviceError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (ErrTypeHTTP only)
	Code       int       // Envelope error code (ErrTypeDevice only)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *DeviceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *DeviceError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a transport-level error. The transport error is
// never recovered locally; it is carried unchanged in the chain.
func NewNetworkError(message string, err error) *DeviceError {
	return &DeviceError{
		Type:    ErrTypeNetwork,
		Message: message,
		Err:     err,
	}
}

// NewHTTPError creates an HTTP-level error for an unexpected status code
func NewHTTPError(statusCode int, message string) *DeviceError {
	return &DeviceError{
		Type:       ErrTypeHTTP,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewParseError creates a malformed-response error
func NewParseError(message string, err error) *DeviceError {
	return &DeviceError{
		Type:    ErrTypeParse,
		Message: message,
		Err:     err,
	}
}

// NewDeviceError creates an error for a nonzero envelope code. Code 400 is
// the documented "wrong parameters" rejection; unknown codes produce a
// generic message carrying the raw code so newer firmware revisions never
// crash callers.
func NewDeviceError(code int) *DeviceError {
	message := fmt.Sprintf("device error code %d", code)
	if code == CodeWrongParameters {
		message = "wrong parameters"
	}
	return &DeviceError{
		Type:    ErrTypeDevice,
		Message: message,
		Code:    code,
	}
}

// IsNetworkError checks if an error is a transport-level error
func IsNetworkError(err error) bool {
	var devErr *DeviceError
	return errors.As(err, &devErr) && devErr.Type == ErrTypeNetwork
}

// IsHTTPError checks if an error is an HTTP status error
func IsHTTPError(err error) bool {
	var devErr *DeviceError
	return errors.As(err, &devErr) && devErr.Type == ErrTypeHTTP
}

// IsParseError checks if an error is a malformed-response error
func IsParseError(err error) bool {
	var devErr *DeviceError
	return errors.As(err, &devErr) && devErr.Type == ErrTypeParse
}

// IsDeviceError checks if an error carries a nonzero envelope code
func IsDeviceError(err error) bool {
	var devErr *DeviceError
	return errors.As(err, &devErr) && devErr.Type == ErrTypeDevice
}

// IsWrongParameters checks if an error is the device's "wrong parameters"
// rejection (envelope code 400)
func IsWrongParameters(err error) bool {
	code, ok := DeviceErrorCode(err)
	return ok && code == CodeWrongParameters
}

// DeviceErrorCode extracts the envelope error code from an error chain.
// The second return value is false if the error is not a device error.
func DeviceErrorCode(err error) (int, bool) {
	var devErr *DeviceError
	if errors.As(err, &devErr) && devErr.Type == ErrTypeDevice {
		return devErr.Code, true
	}
	return 0, false
}
