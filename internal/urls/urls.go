// Package urls provides centralized constants for all documentation URLs used
// throughout the application.
//
// All documentation URLs are defined here as exported constants so they can be
// updated in a single location before release.
package urls

// Documentation URLs for guides and troubleshooting

// DIYModeGuide is the vendor's overview of DIY mode, including how to put a
// device into DIY mode and join it to the local network.
const DIYModeGuide = "https://sonoff.tech/diy-developer/"

// MiniR3HTTPAPI is the vendor's HTTP API reference for the MINI R3,
// documenting the /zeroconf endpoints, request bodies, and error codes.
const MiniR3HTTPAPI = "https://sonoff.tech/sonoff-diy-developer-documentation-minir3-http-api/"
