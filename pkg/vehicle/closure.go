package vehicle

import (
	"context"

	"github.com/ismart-tools/vehicle-command/pkg/action"
)

func (v *Vehicle) ControlSunroof(ctx context.Context, open bool) (*Acknowledgement, error) {
	return v.ExecuteAction(ctx, action.ControlSunroof(open))
}

func (v *Vehicle) CloseDriverWindow(ctx context.Context) (*Acknowledgement, error) {
	return v.ExecuteAction(ctx, action.CloseDriverWindow())
}
