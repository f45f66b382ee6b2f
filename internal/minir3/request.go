package minir3

// Request payload types for the three DIY-mode endpoints. All three share
// the nested {"data": ...} envelope the device expects.

// infoRequest is the fixed body for POST /zeroconf/info. It marshals to
// exactly {"data":{}}.
type infoRequest struct {
	Data struct{} `json:"data"`
}

// startupsRequest is the body for POST /zeroconf/startups.
type startupsRequest struct {
	Data struct {
		Configure []startupEntry `json:"configure"`
	} `json:"data"`
}

// switchesRequest is the body for POST /zeroconf/switches.
type switchesRequest struct {
	Data struct {
		Switches []switchEntry `json:"switches"`
	} `json:"data"`
}

func newInfoRequest() infoRequest {
	return infoRequest{}
}

// newStartupsRequest builds the body for POST /zeroconf/startups.
//
// The startups endpoint has no partial-update form: the device requires a
// startup state for all four outlets in every request. Outlet 0 carries
// the requested position and outlets 1-3 are always reset to "off", so
// any startup state previously configured on those outlets is lost on
// every call. This is a device API limitation, not a choice of this
// client.
func newStartupsRequest(position StartupPosition) startupsRequest {
	var req startupsRequest
	req.Data.Configure = []startupEntry{
		{Startup: position, Outlet: 0},
		{Startup: StartupOff, Outlet: 1},
		{Startup: StartupOff, Outlet: 2},
		{Startup: StartupOff, Outlet: 3},
	}
	return req
}

// newSwitchesRequest builds the body for POST /zeroconf/switches. Unlike
// startups, this endpoint accepts a partial update, so only outlet 0 is
// included and the other outlets keep their current state.
func newSwitchesRequest(position SwitchPosition) switchesRequest {
	var req switchesRequest
	req.Data.Switches = []switchEntry{
		{Switch: position, Outlet: 0},
	}
	return req
}
