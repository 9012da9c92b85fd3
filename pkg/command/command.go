// Package command maps command names to handlers that operate on a vehicle.
//
// The same table drives the interactive menu, the shell and the one-shot manual tool, so they all
// accept the same command names.
package command

//go:generate mockgen -destination ../../mocks/vehicle.go -package mocks -mock_names Vehicle=Vehicle github.com/ismart-tools/vehicle-command/pkg/command Vehicle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ismart-tools/vehicle-command/pkg/action"
	"github.com/ismart-tools/vehicle-command/pkg/vehicle"
)

var (
	ErrCommandLineArgs = errors.New("invalid command line arguments")
	ErrUnknownCommand  = errors.New("unrecognized command")
)

// Vehicle is the subset of [vehicle.Vehicle] used by command handlers.
type Vehicle interface {
	VIN() string

	StartAC(ctx context.Context, temperatureIdx int) (*vehicle.Acknowledgement, error)
	StopAC(ctx context.Context) (*vehicle.Acknowledgement, error)
	StartFrontDefrost(ctx context.Context) (*vehicle.Acknowledgement, error)
	ControlHeatedSeats(ctx context.Context, left, right action.Level) (*vehicle.Acknowledgement, error)
	ControlRearWindowHeat(ctx context.Context, enable bool) (*vehicle.Acknowledgement, error)

	Lock(ctx context.Context) (*vehicle.Acknowledgement, error)
	Unlock(ctx context.Context) (*vehicle.Acknowledgement, error)
	OpenTailgate(ctx context.Context) (*vehicle.Acknowledgement, error)
	GetAlarmSwitches(ctx context.Context) ([]vehicle.AlarmSwitch, error)
	SetAlarmSwitches(ctx context.Context, enabled []action.AlarmType) (*vehicle.Acknowledgement, error)

	ControlSunroof(ctx context.Context, open bool) (*vehicle.Acknowledgement, error)
	CloseDriverWindow(ctx context.Context) (*vehicle.Acknowledgement, error)

	ControlCharging(ctx context.Context, stop bool) (*vehicle.Acknowledgement, error)
	ControlChargingPortLock(ctx context.Context, unlock bool) (*vehicle.Acknowledgement, error)
	SetTargetBatterySOC(ctx context.Context, code action.TargetBatteryCode) (*vehicle.Acknowledgement, error)
	SetScheduledCharging(ctx context.Context, startMinutes, endMinutes int, mode action.ScheduledChargingMode) (*vehicle.Acknowledgement, error)
	ControlBatteryHeating(ctx context.Context, enable bool) (*vehicle.Acknowledgement, error)

	VehicleStatus(ctx context.Context) (*structpb.Struct, error)
	ChargingStatus(ctx context.Context) (*structpb.Struct, error)
	ChargingManagementData(ctx context.Context) (*structpb.Struct, error)
}

type Argument struct {
	name string
	help string
	// fallback is used when an optional argument is omitted.
	fallback string
}

type Handler func(ctx context.Context, car Vehicle, out io.Writer, args map[string]string) error

type Command struct {
	help     string
	args     []Argument
	optional []Argument
	handler  Handler
}

func (c *Command) Help() string {
	return c.help
}

// Arguments returns the names of the command's positional arguments.
func (c *Command) Arguments() (required, optional []string) {
	for _, arg := range c.args {
		required = append(required, arg.name)
	}
	for _, arg := range c.optional {
		optional = append(optional, arg.name)
	}
	return required, optional
}

// Lookup returns the command called name.
func Lookup(name string) (*Command, bool) {
	info, ok := commands[name]
	return info, ok
}

// Names returns the names of all commands in alphabetical order.
func Names() []string {
	var names []string
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs the command named by args[0] with positional arguments args[1:].
func Execute(ctx context.Context, car Vehicle, out io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing COMMAND", ErrCommandLineArgs)
	}
	info, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	var err error
	if len(args)-1 < len(info.args) || len(args)-1 > len(info.args)+len(info.optional) {
		err = fmt.Errorf("%w: %d given (%d required, %d optional)", ErrCommandLineArgs, len(args)-1, len(info.args), len(info.optional))
	} else {
		keywords := make(map[string]string)
		for i, argInfo := range info.args {
			keywords[argInfo.name] = args[i+1]
		}
		index := len(info.args) + 1
		for _, argInfo := range info.optional {
			if index >= len(args) {
				break
			}
			keywords[argInfo.name] = args[index]
			index++
		}
		err = info.run(ctx, car, out, keywords)
	}

	// Print command-specific help
	if errors.Is(err, ErrCommandLineArgs) {
		info.Usage(out, args[0])
	}
	return err
}

// ExecuteNamed runs the command called name with arguments given by name. Arguments the command
// does not take are ignored.
func ExecuteNamed(ctx context.Context, car Vehicle, out io.Writer, name string, args map[string]string) error {
	info, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	keywords := make(map[string]string)
	for _, argInfo := range info.args {
		value, ok := args[argInfo.name]
		if !ok {
			return fmt.Errorf("%w: %s requires %s", ErrCommandLineArgs, name, argInfo.name)
		}
		keywords[argInfo.name] = value
	}
	for _, argInfo := range info.optional {
		if value, ok := args[argInfo.name]; ok {
			keywords[argInfo.name] = value
		}
	}
	return info.run(ctx, car, out, keywords)
}

func (c *Command) run(ctx context.Context, car Vehicle, out io.Writer, keywords map[string]string) error {
	for _, argInfo := range c.optional {
		if _, ok := keywords[argInfo.name]; !ok && argInfo.fallback != "" {
			keywords[argInfo.name] = argInfo.fallback
		}
	}
	return c.handler(ctx, car, out, keywords)
}

func (c *Command) Usage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage: %s", name)
	maxLength := 0
	for _, arg := range c.args {
		fmt.Fprintf(w, " %s", arg.name)
		if len(arg.name) > maxLength {
			maxLength = len(arg.name)
		}
	}
	if len(c.optional) > 0 {
		fmt.Fprintf(w, " [")
	}
	for _, arg := range c.optional {
		fmt.Fprintf(w, " %s", arg.name)
		if len(arg.name) > maxLength {
			maxLength = len(arg.name)
		}
	}
	if len(c.optional) > 0 {
		fmt.Fprintf(w, " ]")
	}
	fmt.Fprintf(w, "\n%s\n", c.help)
	maxLength++
	for _, arg := range c.args {
		fmt.Fprintf(w, "    %s:%s%s\n", arg.name, strings.Repeat(" ", maxLength-len(arg.name)), arg.help)
	}
	for _, arg := range c.optional {
		fmt.Fprintf(w, "    %s:%s%s\n", arg.name, strings.Repeat(" ", maxLength-len(arg.name)), arg.help)
	}
}

// PrintSummary writes one line per command.
func PrintSummary(w io.Writer) {
	maxLength := 0
	names := Names()
	for _, name := range names {
		if len(name) > maxLength {
			maxLength = len(name)
		}
	}
	for _, name := range names {
		fmt.Fprintf(w, "  %s%s %s\n", name, strings.Repeat(" ", maxLength-len(name)), commands[name].help)
	}
}
