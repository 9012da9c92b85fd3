// Sends one command to the vehicle, chosen by environment variables. Intended for manually
// triggered CI jobs:
//
//	ACTION=start_heated_seats HEATED_SEATS_LEFT=3 manual-control

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ismart-tools/vehicle-command/internal/log"
	"github.com/ismart-tools/vehicle-command/pkg/cli"
)

const (
	defaultLogFile = "manual_climate.log"
	commandTimeout = 2 * time.Minute
)

func writeErr(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintf(os.Stderr, "\n")
}

func main() {
	status := 1
	defer func() {
		os.Exit(status)
	}()

	config, err := cli.NewConfig(cli.FlagAccount | cli.FlagManual | cli.FlagKeyring)
	if err != nil {
		writeErr("Failed to load configuration: %s", err)
		return
	}
	if err := config.ReadFromEnvironment(); err != nil {
		writeErr("Configuration error: %s", err)
		return
	}

	log.SetLevel(log.LevelInfo)
	if config.Verbose {
		log.SetLevel(log.LevelDebug)
	}
	logFile := config.LogFile
	if logFile == "" {
		logFile = defaultLogFile
	}
	file, err := log.OpenFile(logFile)
	if err != nil {
		writeErr("Failed to open log file: %s", err)
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	log.Info("Manual control started at %s", time.Now().Format(time.RFC3339))
	status = run(ctx, config, connect)
}
