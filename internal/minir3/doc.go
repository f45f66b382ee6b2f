// Package minir3 provides an HTTP client for the Sonoff mini R3 DIY-mode API.
//
// The DIY-mode firmware exposes a small JSON-over-HTTP API on the local
// network (port 8081 by default). This package covers reading the state of
// outlet 0 and setting two configuration values: the current power state
// and the boot-time (startup) state. The device must be switched into DIY
// mode first; see https://sonoff.tech/diy-developer/ for how to do that.
//
// # Usage Example
//
//	client := minir3.NewClient("192.168.1.75", minir3.DefaultPort)
//
//	info, err := client.FetchInfo()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(info.Summary())
//
//	if err := client.SetSwitchPosition(minir3.SwitchOn); err != nil {
//	    log.Fatal(err)
//	}
//
// # Outlet Addressing
//
// The device supports four outlets (0-3); this client always targets
// outlet 0. Setting the startup position resets the startup state of
// outlets 1-3 to "off" on every call, because the startups endpoint does
// not accept a partial update. Setting the switch position is a true
// partial update and leaves the other outlets untouched.
//
// # Error Handling
//
// Every failure is returned as a *DeviceError categorized by ErrorType:
// transport failures (with the underlying error preserved in the chain),
// unexpected HTTP status codes, malformed responses, and nonzero device
// error codes. Unknown envelope codes are surfaced with the raw code
// rather than treated as fatal, and a success response missing the
// outlet-0 entry is reported as a malformed response instead of crashing.
//
// # Concurrency
//
// A Client holds only immutable configuration and performs one HTTP
// exchange per call, so it is safe for concurrent use. There is no
// retrying, caching, or authentication; timeouts are configured on the
// underlying http.Client.
package minir3
