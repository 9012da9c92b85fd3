// Starts the vehicle's air conditioning once a day during a fixed campaign. Intended to be run
// from cron (or a CI schedule) more often than once an hour; each run decides whether today's
// firing window is open and whether the command already ran.

package main

import (
	"context"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/ismart-tools/vehicle-command/internal/log"
	"github.com/ismart-tools/vehicle-command/pkg/cli"
)

const (
	defaultLogFile = "climate_scheduler.log"
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

	config, err := cli.NewConfig(cli.FlagAccount | cli.FlagSchedule | cli.FlagKeyring)
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

	status = run(ctx, config, time.Now(), connect)
	if status == 0 {
		log.Info("Done")
	}
}
