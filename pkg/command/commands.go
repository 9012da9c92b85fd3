package command

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ismart-tools/vehicle-command/internal/log"
	"github.com/ismart-tools/vehicle-command/pkg/action"
	"github.com/ismart-tools/vehicle-command/pkg/schedule"
	"github.com/ismart-tools/vehicle-command/pkg/vehicle"
)

// Argument names accepted by ExecuteNamed.
const (
	ArgTemperature = "TEMPERATURE"
	ArgLeft        = "LEFT"
	ArgRight       = "RIGHT"
	ArgPercent     = "PERCENT"
	ArgStart       = "START"
	ArgEnd         = "END"
	ArgMode        = "MODE"
	ArgAlarms      = "ALARMS"
)

// DefaultTargetSOC is used when a target state of charge is not recognized.
const DefaultTargetSOC = 80

func acknowledge(out io.Writer, ack *vehicle.Acknowledgement, err error) error {
	if err != nil {
		return err
	}
	if ack.EventID == "" {
		fmt.Fprintln(out, "Command sent successfully")
	} else {
		fmt.Fprintf(out, "Command sent successfully. Event ID: %s\n", ack.EventID)
	}
	return nil
}

func intArg(args map[string]string, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(args[name]))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrCommandLineArgs, name)
	}
	return n, nil
}

func parseTime(hoursAndMinutes string) (int, error) {
	minutes, err := schedule.ParseTimeOfDay(hoursAndMinutes)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrCommandLineArgs, err)
	}
	return minutes, nil
}

func levelArg(args map[string]string, name string) (action.Level, error) {
	n, err := intArg(args, name)
	return action.Level(n), err
}

func onOffArg(args map[string]string, name string) (bool, error) {
	switch strings.ToLower(args[name]) {
	case "on", "true", "1", "enable":
		return true, nil
	case "off", "false", "0", "disable":
		return false, nil
	}
	return false, fmt.Errorf("%w: %s must be 'on' or 'off'", ErrCommandLineArgs, name)
}

// ParseAlarmTypes converts a comma-separated list of alarm names or numbers.
func ParseAlarmTypes(list string) ([]action.AlarmType, error) {
	byName := make(map[string]action.AlarmType)
	for _, t := range action.AlarmTypes() {
		byName[t.String()] = t
	}
	var types []action.AlarmType
	for _, item := range strings.Split(list, ",") {
		item = strings.ToUpper(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		if t, ok := byName[item]; ok {
			types = append(types, t)
			continue
		}
		n, err := strconv.Atoi(item)
		if err != nil || !action.AlarmType(n).Valid() {
			return nil, fmt.Errorf("%w: unknown alarm type %s", ErrCommandLineArgs, item)
		}
		types = append(types, action.AlarmType(n))
	}
	return types, nil
}

// TargetBatteryCode converts percent into a target code, falling back to DefaultTargetSOC.
func TargetBatteryCode(percent string) action.TargetBatteryCode {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(percent), "%"))
	if err == nil {
		if code, err := action.TargetBatteryCodeFromPercent(n); err == nil {
			return code
		}
	}
	log.Warning("Unsupported target state of charge '%s', using %d%%", percent, DefaultTargetSOC)
	code, _ := action.TargetBatteryCodeFromPercent(DefaultTargetSOC)
	return code
}

func printState(out io.Writer, title string, fields []string, state *structpb.Struct, err error) error {
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s:\n", title)
	for _, field := range fields {
		fmt.Fprintf(out, "  %s: %s\n", field, vehicle.FieldString(state, field))
	}
	log.Debug("%s", vehicle.FormatState(state))
	return nil
}

var vehicleStatusFields = []string{
	"basicVehicleStatus.batteryVoltage",
	"basicVehicleStatus.mileage",
	"basicVehicleStatus.fuelRangeElec",
	"basicVehicleStatus.lockStatus",
	"basicVehicleStatus.engineStatus",
	"basicVehicleStatus.remoteClimateStatus",
	"basicVehicleStatus.interiorTemperature",
	"basicVehicleStatus.exteriorTemperature",
}

var chargingStatusFields = []string{
	"chrgMgmtData.bmsPackSOCDsp",
	"chrgMgmtData.bmsChrgSts",
	"chrgMgmtData.chrgngRmnngTime",
	"rvsChargeStatus.chargingGunState",
	"rvsChargeStatus.mileageOfDay",
}

var chargingManagementFields = []string{
	"chrgMgmtData.bmsPackCrnt",
	"chrgMgmtData.bmsPackVol",
	"chrgMgmtData.bmsPackSOCDsp",
	"chrgMgmtData.bmsOnBdChrgTrgtSOCDspCmd",
	"rvsChargeStatus.realtimePower",
	"rvsChargeStatus.chargingGunState",
}

var commands = map[string]*Command{
	"start_ac": &Command{
		help: "Start air conditioning",
		optional: []Argument{
			Argument{name: ArgTemperature, help: fmt.Sprintf("Temperature index (%d-%d)", action.MinTemperatureIdx, action.MaxTemperatureIdx), fallback: strconv.Itoa(action.DefaultTemperatureIdx)},
		},
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			temperature, err := intArg(args, ArgTemperature)
			if err != nil {
				return err
			}
			ack, err := car.StartAC(ctx, temperature)
			return acknowledge(out, ack, err)
		},
	},
	"stop_ac": &Command{
		help: "Stop air conditioning",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			ack, err := car.StopAC(ctx)
			return acknowledge(out, ack, err)
		},
	},
	"start_defrost": &Command{
		help: "Start front windscreen defrost",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			ack, err := car.StartFrontDefrost(ctx)
			return acknowledge(out, ack, err)
		},
	},
	"start_heated_seats": &Command{
		help: "Set front seat heating levels",
		optional: []Argument{
			Argument{name: ArgLeft, help: "Left seat level (0-3)", fallback: "0"},
			Argument{name: ArgRight, help: "Right seat level (0-3)", fallback: "0"},
		},
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			left, err := levelArg(args, ArgLeft)
			if err != nil {
				return err
			}
			right, err := levelArg(args, ArgRight)
			if err != nil {
				return err
			}
			ack, err := car.ControlHeatedSeats(ctx, left, right)
			return acknowledge(out, ack, err)
		},
	},
	"rear_window_heat_on": &Command{
		help: "Turn on rear window heating",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			ack, err := car.ControlRearWindowHeat(ctx, true)
			return acknowledge(out, ack, err)
		},
	},
	"rear_window_heat_off": &Command{
		help: "Turn off rear window heating",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			ack, err := car.ControlRearWindowHeat(ctx, false)
			return acknowledge(out, ack, err)
		},
	},
	"lock": &Command{
		help: "Lock vehicle",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			ack, err := car.Lock(ctx)
			return acknowledge(out, ack, err)
		},
	},
	"unlock": &Command{
		help: "Unlock vehicle",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			ack, err := car.Unlock(ctx)
			return acknowledge(out, ack, err)
		},
	},
	"open_tailgate": &Command{
		help: "Open tailgate",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			ack, err := car.OpenTailgate(ctx)
			return acknowledge(out, ack, err)
		},
	},
	"get_alarms": &Command{
		help: "Show alarm notification settings",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			switches, err := car.GetAlarmSwitches(ctx)
			if err != nil {
				return err
			}
			for _, s := range switches {
				state := "off"
				if s.Enabled {
					state = "on"
				}
				fmt.Fprintf(out, "  %s: %s\n", s.Type, state)
			}
			return nil
		},
	},
	"set_alarms": &Command{
		help: "Enable the listed alarm notifications and disable the rest",
		args: []Argument{
			Argument{name: ArgAlarms, help: "Comma-separated alarm types (e.g., ANTI_THEFT,SPEEDING)"},
		},
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			types, err := ParseAlarmTypes(args[ArgAlarms])
			if err != nil {
				return err
			}
			ack, err := car.SetAlarmSwitches(ctx, types)
			return acknowledge(out, ack, err)
		},
	},
	"sunroof_open": &Command{
		help: "Open sunroof",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			ack, err := car.ControlSunroof(ctx, true)
			return acknowledge(out, ack, err)
		},
	},
	"sunroof_close": &Command{
		help: "Close sunroof",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			ack, err := car.ControlSunroof(ctx, false)
			return acknowledge(out, ack, err)
		},
	},
	"close_driver_window": &Command{
		help: "Close driver's window",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			ack, err := car.CloseDriverWindow(ctx)
			return acknowledge(out, ack, err)
		},
	},
	"charging_start": &Command{
		help: "Start charging",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			ack, err := car.ControlCharging(ctx, false)
			return acknowledge(out, ack, err)
		},
	},
	"charging_stop": &Command{
		help: "Stop charging",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			ack, err := car.ControlCharging(ctx, true)
			return acknowledge(out, ack, err)
		},
	},
	"port_lock": &Command{
		help: "Lock charging cable",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			ack, err := car.ControlChargingPortLock(ctx, false)
			return acknowledge(out, ack, err)
		},
	},
	"port_unlock": &Command{
		help: "Unlock charging cable",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			ack, err := car.ControlChargingPortLock(ctx, true)
			return acknowledge(out, ack, err)
		},
	},
	"target_soc": &Command{
		help: "Set charge limit",
		args: []Argument{
			Argument{name: ArgPercent, help: "Target state of charge (40, 50, ..., 100)"},
		},
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			code := TargetBatteryCode(args[ArgPercent])
			ack, err := car.SetTargetBatterySOC(ctx, code)
			if err == nil {
				fmt.Fprintf(out, "Target state of charge set to %d%%\n", code.Percent())
			}
			return acknowledge(out, ack, err)
		},
	},
	"schedule_charging": &Command{
		help: "Configure scheduled charging",
		args: []Argument{
			Argument{name: ArgStart, help: "Start time (HH:MM)"},
			Argument{name: ArgEnd, help: "End time (HH:MM)"},
		},
		optional: []Argument{
			Argument{name: ArgMode, help: "'on' to enable the schedule, 'off' to disable it", fallback: "on"},
		},
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			start, err := parseTime(args[ArgStart])
			if err != nil {
				return err
			}
			end, err := parseTime(args[ArgEnd])
			if err != nil {
				return err
			}
			enable, err := onOffArg(args, ArgMode)
			if err != nil {
				return err
			}
			mode := action.ScheduledChargingModeDisable
			if enable {
				mode = action.ScheduledChargingModeEnable
			}
			ack, err := car.SetScheduledCharging(ctx, start, end, mode)
			return acknowledge(out, ack, err)
		},
	},
	"battery_heat_on": &Command{
		help: "Turn on battery heating",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			ack, err := car.ControlBatteryHeating(ctx, true)
			return acknowledge(out, ack, err)
		},
	},
	"battery_heat_off": &Command{
		help: "Turn off battery heating",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			ack, err := car.ControlBatteryHeating(ctx, false)
			return acknowledge(out, ack, err)
		},
	},
	"vehicle_status": &Command{
		help: "Show basic vehicle status",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			state, err := car.VehicleStatus(ctx)
			return printState(out, "Vehicle status", vehicleStatusFields, state, err)
		},
	},
	"charging_status": &Command{
		help: "Show state of charge and charging progress",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			state, err := car.ChargingStatus(ctx)
			return printState(out, "Charging status", chargingStatusFields, state, err)
		},
	},
	"charging_management": &Command{
		help: "Show real-time charging measurements",
		handler: func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error {
			state, err := car.ChargingManagementData(ctx)
			return printState(out, "Charging management", chargingManagementFields, state, err)
		},
	},
}
