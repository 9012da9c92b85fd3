package vehicle

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ismart-tools/vehicle-command/pkg/action"
	"github.com/ismart-tools/vehicle-command/pkg/protocol"
)

func (v *Vehicle) Lock(ctx context.Context) (*Acknowledgement, error) {
	return v.ExecuteAction(ctx, action.Lock())
}

func (v *Vehicle) Unlock(ctx context.Context) (*Acknowledgement, error) {
	return v.ExecuteAction(ctx, action.Unlock())
}

func (v *Vehicle) OpenTailgate(ctx context.Context) (*Acknowledgement, error) {
	return v.ExecuteAction(ctx, action.OpenTailgate())
}

// AlarmSwitch reports whether the account owner is notified of an alarm type.
type AlarmSwitch struct {
	Type    action.AlarmType `json:"alarmType"`
	Enabled bool             `json:"alarmSwitch"`
}

// GetAlarmSwitches fetches the alarm notification settings.
func (v *Vehicle) GetAlarmSwitches(ctx context.Context) ([]AlarmSwitch, error) {
	rsp, err := v.conn.Get(ctx, queryEndpoint(action.AlarmEndpoint, v.vin))
	if err != nil {
		return nil, err
	}
	var data struct {
		Switches []AlarmSwitch `json:"alarmSwitchList"`
	}
	if len(rsp.Data) == 0 {
		return nil, nil
	}
	if err := json.Unmarshal(rsp.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: %s", protocol.ErrBadResponse, err)
	}
	return data.Switches, nil
}

// SetAlarmSwitches enables notifications for the listed alarm types and disables the rest.
func (v *Vehicle) SetAlarmSwitches(ctx context.Context, enabled []action.AlarmType) (*Acknowledgement, error) {
	cmd, err := action.SetAlarmSwitches(enabled)
	return v.executeBuilt(ctx, cmd, err)
}
