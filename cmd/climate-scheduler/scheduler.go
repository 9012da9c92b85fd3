package main

import (
	"context"
	"errors"
	"time"

	"github.com/ismart-tools/vehicle-command/internal/log"
	"github.com/ismart-tools/vehicle-command/pkg/cli"
	"github.com/ismart-tools/vehicle-command/pkg/command"
	"github.com/ismart-tools/vehicle-command/pkg/protocol"
	"github.com/ismart-tools/vehicle-command/pkg/schedule"
)

// connectFunc returns the vehicle to command and a function that releases it.
type connectFunc func(ctx context.Context, config *cli.Config) (command.Vehicle, func(), error)

func connect(ctx context.Context, config *cli.Config) (command.Vehicle, func(), error) {
	acct, car, err := config.Connect(ctx)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Logged in as %s", acct.Username)
	return car, car.Disconnect, nil
}

func startClimate(ctx context.Context, config *cli.Config, connect connectFunc) error {
	log.Info("Connecting to the iSMART API...")
	car, disconnect, err := connect(ctx, config)
	if err != nil {
		return err
	}
	defer disconnect()

	log.Info("Starting air conditioning (temperature index %d)...", config.TemperatureIdx)
	ack, err := car.StartAC(ctx, config.TemperatureIdx)
	if err != nil {
		return err
	}
	log.Info("Air conditioning started. Event ID: %s", ack.EventID)
	return nil
}

// run makes one scheduling decision at now and returns the process exit status.
func run(ctx context.Context, config *cli.Config, now time.Time, connect connectFunc) int {
	if err := config.LoadCredentials(); err != nil {
		log.Error("%s", err)
		writeErr("Set them before running this program:")
		writeErr("  export %s='you@example.com'", cli.EnvUsername)
		writeErr("  export %s='your password'", cli.EnvPassword)
		return 1
	}

	gate, err := config.OpenGate()
	if err != nil {
		log.Error("Failed to open schedule state: %s", err)
		return 1
	}
	defer gate.Store.Close()

	lock, err := config.AcquireLock()
	if errors.Is(err, schedule.ErrLocked) {
		log.Info("Another scheduler run is in progress, nothing to do")
		return 0
	}
	if err != nil {
		log.Error("Failed to acquire schedule lock: %s", err)
		return 1
	}
	defer lock.Release()

	log.Info("Climate scheduler started at %s", now.In(gate.Location).Format(time.RFC3339))

	fired, err := gate.Run(ctx, now, func(ctx context.Context) error {
		log.Info("Conditions met, starting air conditioning")
		return startClimate(ctx, config, connect)
	})
	switch {
	case err != nil && fired:
		log.Error("Air conditioning started but the day could not be recorded: %s", err)
		return 1
	case errors.Is(err, protocol.ErrNoVehicleFound):
		log.Error("No vehicle found on the account")
	case protocol.MayHaveSucceeded(err):
		log.Error("Couldn't verify success: %s", err)
	case err != nil:
		log.Error("Failed to start air conditioning: %s", err)
	case fired:
		log.Info("Mission accomplished")
		return 0
	default:
		log.Info("No action needed now")
		return 0
	}
	log.Error("Mission failed")
	return 1
}
