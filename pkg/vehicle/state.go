package vehicle

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ismart-tools/vehicle-command/pkg/protocol"
)

const (
	statusEndpoint             = "vehicle/status"
	chargingStatusEndpoint     = "vehicle/charging/status"
	chargingManagementEndpoint = "vehicle/charging/management"
)

func queryEndpoint(endpoint, vin string) string {
	return endpoint + "?" + url.Values{"vin": {vin}}.Encode()
}

func (v *Vehicle) getState(ctx context.Context, endpoint string) (*structpb.Struct, error) {
	rsp, err := v.conn.Get(ctx, queryEndpoint(endpoint, v.vin))
	if err != nil {
		return nil, err
	}
	state := &structpb.Struct{}
	if len(rsp.Data) == 0 || string(rsp.Data) == "null" {
		return state, nil
	}
	if err := protojson.Unmarshal(rsp.Data, state); err != nil {
		return nil, fmt.Errorf("%w: %s", protocol.ErrBadResponse, err)
	}
	return state, nil
}

// VehicleStatus fetches basic vehicle information (battery voltage, mileage, locks, ...).
func (v *Vehicle) VehicleStatus(ctx context.Context) (*structpb.Struct, error) {
	return v.getState(ctx, statusEndpoint)
}

// ChargingStatus fetches the state of charge and charging progress.
func (v *Vehicle) ChargingStatus(ctx context.Context) (*structpb.Struct, error) {
	return v.getState(ctx, chargingStatusEndpoint)
}

// ChargingManagementData fetches real-time charging power and battery pack measurements.
func (v *Vehicle) ChargingManagementData(ctx context.Context) (*structpb.Struct, error) {
	return v.getState(ctx, chargingManagementEndpoint)
}

// Field returns the value at a dot-separated path, such as "basicVehicleStatus.mileage".
func Field(state *structpb.Struct, path string) (*structpb.Value, bool) {
	current := state
	parts := strings.Split(path, ".")
	for i, name := range parts {
		value, ok := current.GetFields()[name]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return value, true
		}
		current = value.GetStructValue()
		if current == nil {
			return nil, false
		}
	}
	return nil, false
}

// FieldString formats the value at path for display, or returns "?" if it is missing.
func FieldString(state *structpb.Struct, path string) string {
	value, ok := Field(state, path)
	if !ok {
		return "?"
	}
	switch k := value.GetKind().(type) {
	case *structpb.Value_NumberValue:
		return fmt.Sprintf("%g", k.NumberValue)
	case *structpb.Value_StringValue:
		return k.StringValue
	case *structpb.Value_BoolValue:
		return fmt.Sprintf("%t", k.BoolValue)
	default:
		return protojson.Format(value)
	}
}

// FormatState renders state as indented JSON.
func FormatState(state *structpb.Struct) string {
	return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Format(state)
}
