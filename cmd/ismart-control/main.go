package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/google/shlex"

	"github.com/ismart-tools/vehicle-command/internal/log"
	"github.com/ismart-tools/vehicle-command/pkg/account"
	"github.com/ismart-tools/vehicle-command/pkg/cli"
	"github.com/ismart-tools/vehicle-command/pkg/command"
	"github.com/ismart-tools/vehicle-command/pkg/protocol"
)

func writeErr(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintf(os.Stderr, "\n")
}

const usage = `
 * Every command requires an account username and password ($MG_USERNAME, $MG_PASSWORD).
 * Commands apply to the vehicle selected with -vin, or to the first vehicle on the account.
 * Run without a COMMAND to open the interactive menu.`

const monitorCommand = "monitor"

func Usage() {
	fmt.Printf("Usage: %s [OPTION...] COMMAND [ARG...]\n", os.Args[0])
	fmt.Printf("\nRun %s help COMMAND for more information. Valid COMMANDs are listed below.", os.Args[0])
	fmt.Println("")
	fmt.Println(usage)
	fmt.Println("")

	fmt.Printf("Available OPTIONs:\n")
	flag.PrintDefaults()
	fmt.Println("")
	fmt.Printf("Available COMMANDs:\n")
	command.PrintSummary(os.Stdout)
	fmt.Printf("  %s Log battery and charging readings every %s until interrupted\n", monitorCommand, monitorInterval)
}

func runCommand(car command.Vehicle, out io.Writer, args []string, timeout time.Duration) int {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := command.Execute(ctx, car, out, args); err != nil {
		if protocol.MayHaveSucceeded(err) {
			writeErr("Couldn't verify success: %s", err)
		} else if errors.Is(err, protocol.ErrNotAuthenticated) {
			writeErr("The access token expired or was rejected: %s", err)
		} else {
			writeErr("Failed to execute command: %s", err)
		}
		return 1
	}
	return 0
}

func runInteractiveShell(car command.Vehicle, in *bufio.Scanner, out io.Writer, timeout time.Duration) int {
	for fmt.Fprintf(out, "> "); in.Scan(); fmt.Fprintf(out, "> ") {
		args, err := shlex.Split(in.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" {
			return 0
		}
		if err != nil {
			writeErr("Invalid command: %s", err)
			continue
		}
		if args[0] == "help" {
			if len(args) == 1 {
				command.PrintSummary(out)
			} else if info, ok := command.Lookup(args[1]); ok {
				info.Usage(out, args[1])
			} else {
				writeErr("Unrecognized command: %s", args[1])
			}
			continue
		}
		runCommand(car, out, args, timeout)
	}
	if err := in.Err(); err != nil {
		writeErr("Error reading command: %s", err)
		return 1
	}
	return 0
}

func runMonitor(acct *account.Account, timeout time.Duration) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("Automatic mode. Press Ctrl+C to stop.")
	if err := newMonitor(acct, timeout).run(ctx); err != nil {
		writeErr("Monitor failed: %s", err)
		return 1
	}
	return 0
}

func runMenu(acct *account.Account, car command.Vehicle, timeout time.Duration) int {
	in := bufio.NewScanner(os.Stdin)
	m := newMenu(in, os.Stdout)
	for {
		args, ok := m.next()
		if !ok {
			return 0
		}
		switch args[0] {
		case monitorCommand:
			runMonitor(acct, timeout)
		case shellChoice:
			fmt.Println("Type exit to return to the menu.")
			runInteractiveShell(car, in, os.Stdout, timeout)
		default:
			runCommand(car, os.Stdout, args, timeout)
		}
	}
}

func main() {
	status := 1
	defer func() {
		os.Exit(status)
	}()

	var (
		debug          bool
		commandTimeout time.Duration
		connTimeout    time.Duration
	)
	config, err := cli.NewConfig(cli.FlagAll)
	if err != nil {
		writeErr("Failed to load credential configuration: %s", err)
		return
	}
	flag.Usage = Usage
	flag.BoolVar(&debug, "debug", false, "Enable verbose debugging messages")
	flag.DurationVar(&commandTimeout, "command-timeout", 30*time.Second, "Set timeout for commands sent to the vehicle.")
	flag.DurationVar(&connTimeout, "connect-timeout", 20*time.Second, "Set timeout for logging in and selecting a vehicle.")

	config.RegisterCommandLineFlags()
	flag.Parse()
	if err := config.ReadFromEnvironment(); err != nil {
		writeErr("Configuration error: %s", err)
		return
	}
	if debug || config.Verbose {
		log.SetLevel(log.LevelDebug)
	} else {
		log.SetLevel(log.LevelInfo)
	}
	if config.LogFile != "" {
		file, err := log.OpenFile(config.LogFile)
		if err != nil {
			writeErr("Failed to open log file: %s", err)
			return
		}
		defer file.Close()
	}

	args := flag.Args()
	if len(args) > 0 && args[0] == "help" {
		if len(args) == 1 {
			Usage()
			status = 0
			return
		}
		info, ok := command.Lookup(args[1])
		if !ok {
			writeErr("Unrecognized command: %s", args[1])
			return
		}
		info.Usage(os.Stdout, args[1])
		status = 0
		return
	}
	if len(args) > 0 && args[0] != monitorCommand {
		if _, ok := command.Lookup(args[0]); !ok {
			writeErr("Unrecognized command: %s", args[0])
			return
		}
	}

	if err := config.LoadCredentials(); err != nil {
		writeErr("Error loading credentials: %s", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()

	acct, car, err := config.Connect(ctx)
	if err != nil {
		writeErr("Error: %s", err)
		if cli.IsConfigurationError(err) {
			writeErr("Check %s and %s", cli.EnvUsername, cli.EnvPassword)
		}
		return
	}
	defer car.Disconnect()

	switch {
	case len(args) == 0:
		status = runMenu(acct, car, commandTimeout)
	case args[0] == monitorCommand:
		status = runMonitor(acct, commandTimeout)
	default:
		status = runCommand(car, os.Stdout, args, commandTimeout)
	}
}
