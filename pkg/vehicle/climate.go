package vehicle

import (
	"context"

	"github.com/ismart-tools/vehicle-command/pkg/action"
)

// StartAC turns on the air conditioning. See [action.StartAC] for the temperature scale.
func (v *Vehicle) StartAC(ctx context.Context, temperatureIdx int) (*Acknowledgement, error) {
	cmd, err := action.StartAC(temperatureIdx)
	return v.executeBuilt(ctx, cmd, err)
}

func (v *Vehicle) StopAC(ctx context.Context) (*Acknowledgement, error) {
	return v.ExecuteAction(ctx, action.StopAC())
}

func (v *Vehicle) StartFrontDefrost(ctx context.Context) (*Acknowledgement, error) {
	return v.ExecuteAction(ctx, action.StartFrontDefrost())
}

func (v *Vehicle) ControlHeatedSeats(ctx context.Context, left, right action.Level) (*Acknowledgement, error) {
	cmd, err := action.ControlHeatedSeats(left, right)
	return v.executeBuilt(ctx, cmd, err)
}

func (v *Vehicle) ControlRearWindowHeat(ctx context.Context, enable bool) (*Acknowledgement, error) {
	return v.ExecuteAction(ctx, action.ControlRearWindowHeat(enable))
}
