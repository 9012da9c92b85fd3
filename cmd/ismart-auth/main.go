// Utility for storing the iSMART account password in the system keyring

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/ismart-tools/vehicle-command/pkg/account"
	"github.com/ismart-tools/vehicle-command/pkg/cli"
)

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "usage: %s [OPTION...] [file]\n", filepath.Base(os.Args[0]))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Reads the account password from the terminal, stdin or file and saves it in the system")
	fmt.Fprintf(w, "keyring under password_name. The password_name defaults to $%s, or to the username.\n", cli.EnvPasswordName)
	fmt.Fprintf(w, "Set $%s to the same name so the other tools load the password from the keyring.\n", cli.EnvPasswordName)
	fmt.Fprintln(w, "")
	flag.PrintDefaults()
}

func readPassword() (string, error) {
	switch flag.NArg() {
	case 0:
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return cli.PromptPassword("iSMART password")
		}
		password, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("error reading password from stdin: %w", err)
		}
		return strings.TrimRight(string(password), "\r\n"), nil
	case 1:
		password, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			return "", fmt.Errorf("error reading password from file: %w", err)
		}
		return strings.TrimRight(string(password), "\r\n"), nil
	default:
		return "", fmt.Errorf("too many command-line arguments")
	}
}

func main() {
	returnCode := 1
	defer func() {
		os.Exit(returnCode)
	}()

	var (
		remove bool
		verify bool
	)
	config, err := cli.NewConfig(cli.FlagAccount | cli.FlagKeyring)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load credential configuration: %s\n", err)
		return
	}

	config.RegisterCommandLineFlags()
	flag.BoolVar(&remove, "delete", false, "Remove the password from the keyring instead of saving it")
	flag.BoolVar(&verify, "verify", false, "Log in with the saved password and print token details")
	flag.Usage = usage
	flag.Parse()
	if err := config.ReadFromEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
		return
	}

	if config.Username == "" {
		fmt.Fprintf(os.Stderr, "Must provide the account username using -username or $%s\n", cli.EnvUsername)
		return
	}

	if remove {
		if err := config.DeletePassword(); err != nil {
			fmt.Fprintf(os.Stderr, "Error removing password from keyring: %s\n", err)
			return
		}
		returnCode = 0
		return
	}

	password, err := readPassword()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return
	}
	if password == "" {
		fmt.Fprintln(os.Stderr, "Password must not be empty")
		return
	}

	if err := config.SavePasswordToKeyring(password); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving password to keyring: %s\n", err)
		return
	}

	if verify {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		acct, err := account.Login(ctx, config.BaseURL, config.Username, password, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Password saved, but login failed: %s\n", err)
			return
		}
		fmt.Printf("Logged in as %s (account %s)\n", acct.Username, acct.Subject)
		if !acct.TokenExpiration.IsZero() {
			fmt.Printf("Access token expires at %s\n", acct.TokenExpiration.Format(time.RFC3339))
		}
	}

	returnCode = 0
}
