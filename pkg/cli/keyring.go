package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/99designs/keyring"
	"golang.org/x/term"
)

const (
	keyringServiceName     = "com.ismart.auth"
	keyringPasswordService = "accountPassword"
	keyringDirectory       = "~/.ismart_keys"
)

type backendType struct {
	config *Config
}

func (b backendType) String() string {
	if b.config == nil || len(b.config.Backend.AllowedBackends) == 0 {
		return string(keyring.InvalidBackend)
	}
	return string(b.config.Backend.AllowedBackends[0])
}

func (b backendType) Set(v string) error {
	value := keyring.BackendType(v)
	if b.config == nil {
		return fmt.Errorf("invalid backendType")
	}
	if v == "" {
		return nil
	}
	for _, name := range keyring.AvailableBackends() {
		if name == value {
			b.config.Backend.AllowedBackends = []keyring.BackendType{name}
			return nil
		}
	}
	return fmt.Errorf("unsupported credential storage")
}

// PromptPassword reads a password from the terminal without echoing it.
func PromptPassword(prompt string) (string, error) {
	var w io.Writer
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fd = int(os.Stderr.Fd())
		if !term.IsTerminal(fd) {
			return "", fmt.Errorf("no terminal output available for password prompt")
		} else {
			w = os.Stderr
		}
	} else {
		w = os.Stdout
	}

	fmt.Fprintf(w, "%s: ", prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	fmt.Fprintln(w)
	return string(b), nil
}

func (c *Config) getPassword(prompt string) (string, error) {
	if c.keyringPassword != nil && *c.keyringPassword != "" {
		return *c.keyringPassword, nil
	}
	password, err := PromptPassword(prompt)
	if err != nil {
		return "", err
	}
	c.keyringPassword = &password
	return password, nil
}

func (c *Config) openKeyring() (keyring.Keyring, error) {
	return c.openKeyringFunc(c.Backend)
}

func (c *Config) passwordKey() string {
	name := c.PasswordName
	if name == "" {
		name = c.Username
	}
	return keyringPasswordService + "." + name
}

// LoadPasswordFromKeyring loads the account password from the system keyring.
//
// The entry is named by c.PasswordName, or by c.Username if no name is set.
func (c *Config) LoadPasswordFromKeyring() (string, error) {
	kr, err := c.openKeyring()
	if err != nil {
		return "", err
	}

	item, err := kr.Get(c.passwordKey())
	if err != nil {
		return "", fmt.Errorf("could not load password: %w", err)
	}
	return string(item.Data), nil
}

// SavePasswordToKeyring writes the account password to the system keyring.
func (c *Config) SavePasswordToKeyring(password string) error {
	kr, err := c.openKeyring()
	if err != nil {
		return err
	}

	if err := kr.Set(keyring.Item{
		Key:   c.passwordKey(),
		Data:  []byte(password),
		Label: "iSMART password for " + c.Username,
	}); err != nil {
		return fmt.Errorf("failed to enroll password in keyring: %s", err)
	}
	return nil
}

// DeletePassword removes the account password from the system keyring.
func (c *Config) DeletePassword() error {
	kr, err := c.openKeyring()
	if err != nil {
		return err
	}
	return kr.Remove(c.passwordKey())
}
