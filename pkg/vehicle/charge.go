// File implements commands related to vehicle charging.

package vehicle

import (
	"context"

	"github.com/ismart-tools/vehicle-command/pkg/action"
)

// ControlCharging starts charging, or stops it if stop is true.
func (v *Vehicle) ControlCharging(ctx context.Context, stop bool) (*Acknowledgement, error) {
	return v.ExecuteAction(ctx, action.ControlCharging(stop))
}

func (v *Vehicle) ControlChargingPortLock(ctx context.Context, unlock bool) (*Acknowledgement, error) {
	return v.ExecuteAction(ctx, action.ControlChargingPortLock(unlock))
}

func (v *Vehicle) SetTargetBatterySOC(ctx context.Context, code action.TargetBatteryCode) (*Acknowledgement, error) {
	cmd, err := action.SetTargetBatterySOC(code)
	return v.executeBuilt(ctx, cmd, err)
}

// SetScheduledCharging configures the daily charging window. Times are minutes after midnight.
func (v *Vehicle) SetScheduledCharging(ctx context.Context, startMinutes, endMinutes int, mode action.ScheduledChargingMode) (*Acknowledgement, error) {
	cmd, err := action.SetScheduledCharging(startMinutes, endMinutes, mode)
	return v.executeBuilt(ctx, cmd, err)
}

func (v *Vehicle) ControlBatteryHeating(ctx context.Context, enable bool) (*Acknowledgement, error) {
	return v.ExecuteAction(ctx, action.ControlBatteryHeating(enable))
}
