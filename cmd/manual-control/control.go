package main

import (
	"context"
	"errors"
	"strconv"

	"github.com/ismart-tools/vehicle-command/internal/log"
	"github.com/ismart-tools/vehicle-command/pkg/cli"
	"github.com/ismart-tools/vehicle-command/pkg/command"
	"github.com/ismart-tools/vehicle-command/pkg/protocol"
)

// connectFunc returns the vehicle to command and a function that releases it.
type connectFunc func(ctx context.Context, config *cli.Config) (command.Vehicle, func(), error)

func connect(ctx context.Context, config *cli.Config) (command.Vehicle, func(), error) {
	_, car, err := config.Connect(ctx)
	if err != nil {
		return nil, nil, err
	}
	return car, car.Disconnect, nil
}

// run sends config.Action and returns the process exit status.
func run(ctx context.Context, config *cli.Config, connect connectFunc) int {
	if err := config.LoadCredentials(); err != nil {
		log.Error("%s", err)
		return 1
	}

	log.Info("Requested action: %s", config.Action)
	if _, ok := command.Lookup(config.Action); !ok {
		log.Error("Unknown action: %s", config.Action)
		return 1
	}

	log.Info("Connecting to the iSMART API...")
	car, disconnect, err := connect(ctx, config)
	if err != nil {
		if errors.Is(err, protocol.ErrNoVehicleFound) {
			log.Error("No vehicle found on the account")
		} else {
			log.Error("Failed to connect: %s", err)
		}
		return 1
	}
	defer disconnect()

	args := map[string]string{
		command.ArgTemperature: strconv.Itoa(config.Temperature),
		command.ArgLeft:        strconv.Itoa(config.HeatedSeatsLeft),
		command.ArgRight:       strconv.Itoa(config.HeatedSeatsRight),
	}
	if err := command.ExecuteNamed(ctx, car, log.Writer(log.LevelInfo), config.Action, args); err != nil {
		if protocol.MayHaveSucceeded(err) {
			log.Error("Couldn't verify success: %s", err)
		} else {
			log.Error("Failed to execute %s: %s", config.Action, err)
		}
		log.Error("Mission failed")
		return 1
	}
	log.Info("Mission accomplished")
	return 0
}
