package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ismart-tools/vehicle-command/pkg/command"
)

const (
	shellChoice = "shell"
	shellKey    = "s"
	quitKey     = "q"
)

// menu prompts for a command by number and then for each of its arguments.
type menu struct {
	in    *bufio.Scanner
	out   io.Writer
	names []string
}

func newMenu(in *bufio.Scanner, out io.Writer) *menu {
	return &menu{in: in, out: out, names: command.Names()}
}

func (m *menu) show() {
	fmt.Fprintln(m.out, "")
	fmt.Fprintln(m.out, "Select an option:")
	fmt.Fprintf(m.out, "  %2d. Automatic mode (%s)\n", 0, monitorCommand)
	for i, name := range m.names {
		info, _ := command.Lookup(name)
		fmt.Fprintf(m.out, "  %2d. %s (%s)\n", i+1, info.Help(), name)
	}
	fmt.Fprintf(m.out, "  %2s. Command shell\n", shellKey)
	fmt.Fprintf(m.out, "  %2s. Quit\n", quitKey)
}

func (m *menu) prompt(label string) (string, bool) {
	fmt.Fprintf(m.out, "%s: ", label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// next returns the arguments of the selected command, or false once the user quits or input ends.
func (m *menu) next() ([]string, bool) {
	for {
		m.show()
		choice, ok := m.prompt("Choice")
		if !ok || strings.EqualFold(choice, quitKey) {
			return nil, false
		}
		switch strings.ToLower(choice) {
		case "":
			continue
		case "0":
			return []string{monitorCommand}, true
		case shellKey, shellChoice:
			return []string{shellChoice}, true
		}
		index, err := strconv.Atoi(choice)
		if err != nil || index < 1 || index > len(m.names) {
			fmt.Fprintf(m.out, "Invalid choice: %s\n", choice)
			continue
		}
		return m.readArguments(m.names[index-1])
	}
}

func (m *menu) readArguments(name string) ([]string, bool) {
	info, _ := command.Lookup(name)
	required, optional := info.Arguments()
	args := []string{name}
	for _, arg := range required {
		value, ok := m.prompt(arg)
		if !ok {
			return nil, false
		}
		args = append(args, value)
	}
	for _, arg := range optional {
		value, ok := m.prompt(arg + " (optional)")
		if !ok {
			return nil, false
		}
		// Optional arguments are positional, so the first blank ends the list.
		if value == "" {
			break
		}
		args = append(args, value)
	}
	return args, true
}
