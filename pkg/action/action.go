// Package action builds the request payloads for remote vehicle commands.
//
// Builders validate their parameters and never contact the vehicle. Use the methods on
// [vehicle.Vehicle] (or [vehicle.Vehicle.ExecuteAction]) to send a Command.
package action

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a builder rejected one of its arguments.
var ErrInvalidParameter = errors.New("invalid command parameter")

// Command is a remote command addressed to the iSMART API.
type Command struct {
	// Endpoint is the API path relative to the base URL.
	Endpoint string
	// Body holds the command parameters. The VIN is added when the command is sent.
	Body map[string]interface{}
}

// Payload returns the JSON body for vin.
func (c *Command) Payload(vin string) map[string]interface{} {
	payload := make(map[string]interface{}, len(c.Body)+1)
	for k, v := range c.Body {
		payload[k] = v
	}
	payload["vin"] = vin
	return payload
}

func invalid(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, a...))
}

func checkRange(name string, value, low, high int) error {
	if value < low || value > high {
		return invalid("%s must be in the range [%d, %d], got %d", name, low, high, value)
	}
	return nil
}
