package action

// WindowID selects a window or roof panel.
type WindowID int

const (
	WindowIDDriver WindowID = iota + 1
	WindowIDPassenger
	WindowIDRearLeft
	WindowIDRearRight
	WindowIDSunroof
)

const windowsEndpoint = "vehicle/windows"

// ControlSunroof opens or closes the sunroof.
func ControlSunroof(open bool) *Command {
	return &Command{
		Endpoint: windowsEndpoint,
		Body:     map[string]interface{}{"windowId": int(WindowIDSunroof), "open": open},
	}
}

// CloseDriverWindow closes the driver's window.
func CloseDriverWindow() *Command {
	return &Command{
		Endpoint: windowsEndpoint,
		Body:     map[string]interface{}{"windowId": int(WindowIDDriver), "open": false},
	}
}
