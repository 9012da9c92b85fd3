package vehicle

import (
	"context"
	"encoding/json"

	"github.com/ismart-tools/vehicle-command/pkg/action"
	"github.com/ismart-tools/vehicle-command/pkg/connector"
)

// Acknowledgement is returned by the API when it accepts a remote command.
type Acknowledgement struct {
	// EventID identifies the command in the vehicle's event log. Some commands are acknowledged
	// without one.
	EventID string
}

// A Vehicle represents a vehicle bound to an iSMART account.
type Vehicle struct {
	conn connector.Connector
	vin  string
}

// NewVehicle creates a new Vehicle that sends requests over conn.
func NewVehicle(conn connector.Connector) *Vehicle {
	return &Vehicle{conn: conn, vin: conn.VIN()}
}

func (v *Vehicle) VIN() string {
	return v.vin
}

// Disconnect closes the underlying connection. Subsequent commands fail.
func (v *Vehicle) Disconnect() {
	v.conn.Close()
}

// ExecuteAction sends a command built with the action package.
func (v *Vehicle) ExecuteAction(ctx context.Context, cmd *action.Command) (*Acknowledgement, error) {
	rsp, err := v.conn.Post(ctx, cmd.Endpoint, cmd.Payload(v.vin))
	if err != nil {
		return nil, err
	}
	ack := &Acknowledgement{EventID: rsp.EventID}
	if ack.EventID == "" && len(rsp.Data) > 0 {
		var data struct {
			EventID string `json:"eventId"`
		}
		// Not every command returns an object.
		if json.Unmarshal(rsp.Data, &data) == nil {
			ack.EventID = data.EventID
		}
	}
	return ack, nil
}

func (v *Vehicle) executeBuilt(ctx context.Context, cmd *action.Command, err error) (*Acknowledgement, error) {
	if err != nil {
		return nil, err
	}
	return v.ExecuteAction(ctx, cmd)
}
