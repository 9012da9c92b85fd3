/*
Package cli facilitates building command-line applications that control vehicles through the
iSMART API. It defines a [Config] type that collects account credentials, scheduler settings and
manual-control parameters from command-line flags, environment variables and an optional .env
file.

The package uses [keyring]'s platform-agnostic interface for storing the account password in an
OS-dependent credential store.

# Examples

	config, err := NewConfig(FlagAccount | FlagKeyring)
	if err != nil {
		panic(err)
	}
	config.RegisterCommandLineFlags() // Adds command-line flags for the account, keyring, etc.
	flag.Parse()
	if err := config.ReadFromEnvironment(); err != nil { // Fills in missing fields
		panic(err)
	}

	// Logs in and resolves the configured vehicle (or the first vehicle on the account).
	acct, car, err := config.Connect(ctx)
	if err != nil {
		panic(err)
	}
	defer car.Disconnect()

The scheduler tools use [Config.OpenGate] instead of registering flags:

	config, _ := NewConfig(FlagAccount | FlagSchedule)
	config.ReadFromEnvironment()
	gate, err := config.OpenGate()
*/
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/99designs/keyring"
	"github.com/joho/godotenv"

	"github.com/ismart-tools/vehicle-command/internal/log"
	"github.com/ismart-tools/vehicle-command/pkg/account"
	"github.com/ismart-tools/vehicle-command/pkg/action"
	"github.com/ismart-tools/vehicle-command/pkg/schedule"
	"github.com/ismart-tools/vehicle-command/pkg/vehicle"
)

// Environment variable names used are used by [Config.ReadFromEnvironment] to set common parameters.
const (
	EnvUsername        = "MG_USERNAME"
	EnvPassword        = "MG_PASSWORD"
	EnvPasswordName    = "MG_PASSWORD_NAME"
	EnvBaseURL         = "MG_API_BASE_URL"
	EnvVIN             = "MG_VIN"
	EnvKeyringType     = "MG_KEYRING_TYPE"
	EnvKeyringPass     = "MG_KEYRING_PASSWORD"
	EnvKeyringPath     = "MG_KEYRING_PATH"
	EnvKeyringDebug    = "MG_KEYRING_DEBUG"
	EnvVerbose         = "MG_VERBOSE"
	EnvTimezone        = "SCHEDULE_TIMEZONE"
	EnvTargetTime      = "SCHEDULE_TARGET_TIME"
	EnvDurationDays    = "SCHEDULE_DURATION_DAYS"
	EnvStore           = "SCHEDULE_STORE"
	EnvStateDir        = "STATE_DIR"
	EnvTemperatureIdx  = "TEMPERATURE_IDX"
	EnvLogFile         = "LOG_FILE"
	EnvAction          = "ACTION"
	EnvTemperature     = "TEMPERATURE"
	EnvHeatedSeatLeft  = "HEATED_SEATS_LEFT"
	EnvHeatedSeatRight = "HEATED_SEATS_RIGHT"
)

// Defaults applied by [Config.ReadFromEnvironment] when neither a flag nor a variable is set.
const (
	DefaultTimezone   = "Asia/Jerusalem"
	DefaultTargetTime = "15:20"
	DefaultStateDir   = "."
	DefaultAction     = "start_ac"
	DefaultDotEnvFile = ".env"
)

// Flag controls what options should be scanned from the command line and/or environment variables.
type Flag int

func (f Flag) isSet(other Flag) bool {
	return (f & other) == other
}

const (
	FlagAccount  Flag = 1 // Enable account credentials and VIN options.
	FlagSchedule Flag = 2 // Enable scheduler options.
	FlagManual   Flag = 4 // Enable one-shot manual control options.
	FlagKeyring  Flag = 8 // Enable keyring options. Allows the password to be loaded from the keyring.
	FlagAll      Flag = FlagAccount | FlagSchedule | FlagManual | FlagKeyring
)

var (
	// ErrMissingCredentials indicates the account username or password could not be found.
	ErrMissingCredentials = errors.New("MG_USERNAME and MG_PASSWORD environment variables must be set")
	ErrKeyNotFound        = keyring.ErrKeyNotFound
)

// ConfigError is returned when a setting has an invalid value.
type ConfigError struct {
	Setting string
	Value   string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Setting, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigurationError returns true if err was caused by missing or invalid configuration.
func IsConfigurationError(err error) bool {
	var configErr *ConfigError
	return errors.Is(err, ErrMissingCredentials) || errors.As(err, &configErr)
}

// Config fields determine how a tool logs in to the iSMART API and what it does once connected.
type Config struct {
	Flags Flag // Controls which set of environment variables/CLI flags to use.

	Username     string
	Password     string
	PasswordName string // Name of the password in the system keyring
	BaseURL      string
	VIN          string // Empty selects the first vehicle on the account
	Verbose      bool
	LogFile      string
	DotEnvFile   string

	Timezone       string
	TargetTime     string // HH:MM, local time
	DurationDays   int
	StoreKind      string
	StateDir       string
	TemperatureIdx int // Temperature used by the scheduler

	Action           string
	Temperature      int // Temperature used by manual control
	HeatedSeatsLeft  int
	HeatedSeatsRight int

	Backend     keyring.Config
	BackendType backendType
	Debug       bool // Enable keyring debug messages

	keyringPassword *string
	openKeyringFunc func(keyring.Config) (keyring.Keyring, error)
	acct            *account.Account
}

func NewConfig(flags Flag) (*Config, error) {
	c := Config{
		Flags:      flags,
		DotEnvFile: DefaultDotEnvFile,
		Backend: keyring.Config{
			ServiceName:              keyringServiceName,
			KeychainTrustApplication: true,
			KeyCtlScope:              "user",
		},
		openKeyringFunc: keyring.Open,
	}
	c.BackendType = backendType{&c}
	c.Backend.KeychainPasswordFunc = c.getPassword
	c.Backend.FilePasswordFunc = c.getPassword

	return &c, nil
}

func (c *Config) RegisterCommandLineFlags() {
	if c.Flags.isSet(FlagAccount) {
		flag.StringVar(&c.Username, "username", "", "Account e-mail `address`. Defaults to $MG_USERNAME.")
		flag.StringVar(&c.VIN, "vin", "", "Vehicle Identification Number. Defaults to $MG_VIN, or the first vehicle on the account.")
		flag.StringVar(&c.BaseURL, "api", "", "iSMART API base `url`. Defaults to $MG_API_BASE_URL.")
	}
	if c.Flags.isSet(FlagSchedule) {
		flag.StringVar(&c.StateDir, "state-dir", "", "`Directory` holding schedule state. Defaults to $STATE_DIR.")
		flag.StringVar(&c.StoreKind, "store", "", "Schedule store `type` ("+strings.Join(schedule.StoreKinds, "|")+"). Defaults to $SCHEDULE_STORE.")
		flag.StringVar(&c.Timezone, "timezone", "", "Schedule time `zone`. Defaults to $SCHEDULE_TIMEZONE.")
		flag.StringVar(&c.TargetTime, "target-time", "", "Daily firing `time` (HH:MM). Defaults to $SCHEDULE_TARGET_TIME.")
	}
	if c.Flags.isSet(FlagKeyring) {
		var names []string
		for _, name := range keyring.AvailableBackends() {
			names = append(names, string(name))
		}
		sort.Strings(names)
		flag.StringVar(&c.PasswordName, "password-name", "", "System keyring `name` for the account password. Defaults to $MG_PASSWORD_NAME.")
		flag.Var(&c.BackendType, "keyring-type", "Keyring `type` ("+strings.Join(names, "|")+"). Defaults to $MG_KEYRING_TYPE.")
		flag.StringVar(&c.Backend.FileDir, "keyring-file-dir", keyringDirectory, "keyring `directory` for file-backed keyring types")
		flag.BoolVar(&c.Debug, "keyring-debug", false, "Enable keyring debug logging")
	}
}

func lookupInt(name string, target *int, fallback int) error {
	if *target != 0 {
		return nil
	}
	*target = fallback
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return &ConfigError{Setting: name, Value: value, Err: err}
	}
	*target = n
	return nil
}

func lookupString(name string, target *string, fallback string) {
	if *target != "" {
		return
	}
	if value := os.Getenv(name); value != "" {
		*target = value
		return
	}
	*target = fallback
}

// ReadFromEnvironment populates c using environment variables. Variables defined in
// c.DotEnvFile are loaded first if the file exists; they never override the process environment.
// Values that are already populated are not overwritten.
//
// Calling ReadFromEnvironment after flag.Parse() (or other initialization method) will prevent the
// environment from overriding explicit command-line parameters.
func (c *Config) ReadFromEnvironment() error {
	if c.DotEnvFile != "" {
		if err := godotenv.Load(c.DotEnvFile); err == nil {
			log.Debug("Loaded environment from %s", c.DotEnvFile)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return &ConfigError{Setting: "env file", Value: c.DotEnvFile, Err: err}
		}
	}
	if !c.Verbose {
		c.Verbose = isTrue(os.Getenv(EnvVerbose))
	}
	lookupString(EnvLogFile, &c.LogFile, "")

	var errs []error
	if c.Flags.isSet(FlagAccount) {
		lookupString(EnvUsername, &c.Username, "")
		lookupString(EnvPassword, &c.Password, "")
		lookupString(EnvBaseURL, &c.BaseURL, account.DefaultBaseURL)
		lookupString(EnvVIN, &c.VIN, "")
		log.Debug("Set username to '%s'", c.Username)
		log.Debug("Set API base URL to '%s'", c.BaseURL)
	}
	if c.Flags.isSet(FlagSchedule) {
		lookupString(EnvTimezone, &c.Timezone, DefaultTimezone)
		lookupString(EnvTargetTime, &c.TargetTime, DefaultTargetTime)
		lookupString(EnvStore, &c.StoreKind, schedule.StoreFiles)
		lookupString(EnvStateDir, &c.StateDir, DefaultStateDir)
		errs = append(errs,
			lookupInt(EnvDurationDays, &c.DurationDays, schedule.DefaultDurationDays),
			lookupInt(EnvTemperatureIdx, &c.TemperatureIdx, action.DefaultTemperatureIdx),
		)
		log.Debug("Set schedule to %s %s for %d days", c.TargetTime, c.Timezone, c.DurationDays)
	}
	if c.Flags.isSet(FlagManual) {
		lookupString(EnvAction, &c.Action, DefaultAction)
		errs = append(errs,
			lookupInt(EnvTemperature, &c.Temperature, action.DefaultTemperatureIdx),
			lookupInt(EnvHeatedSeatLeft, &c.HeatedSeatsLeft, int(action.LevelOff)),
			lookupInt(EnvHeatedSeatRight, &c.HeatedSeatsRight, int(action.LevelOff)),
		)
	}
	if c.Flags.isSet(FlagKeyring) {
		lookupString(EnvPasswordName, &c.PasswordName, "")
		if c.BackendType.String() == string(keyring.InvalidBackend) {
			if err := c.BackendType.Set(os.Getenv(EnvKeyringType)); err == nil {
				log.Debug("Set keyring type to '%s'", c.BackendType)
			}
		}
		if c.keyringPassword == nil {
			password := os.Getenv(EnvKeyringPass)
			c.keyringPassword = &password
			if len(password) > 0 {
				log.Debug("Set keyring File Password to %s", strings.Repeat("*", len("hunter2")))
			}
		}
		if c.Backend.FileDir == "" {
			c.Backend.FileDir = os.Getenv(EnvKeyringPath)
			log.Debug("Set keyring File Path to '%s'", c.Backend.FileDir)
		}
		if !c.Debug {
			_, c.Debug = os.LookupEnv(EnvKeyringDebug)
		}
	}
	return errors.Join(errs...)
}

func isTrue(value string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}

// LoadCredentials makes sure a username and password are available, loading the password from the
// system keyring if c.PasswordName is set. Call this method before [Config.Connect] to prevent
// interactive prompts from counting against timeouts.
func (c *Config) LoadCredentials() error {
	if c.Username == "" {
		return ErrMissingCredentials
	}
	if c.Password == "" && c.Flags.isSet(FlagKeyring) && c.PasswordName != "" {
		password, err := c.LoadPasswordFromKeyring()
		if err != nil {
			return fmt.Errorf("%w: %s", ErrMissingCredentials, err)
		}
		c.Password = password
	}
	if c.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}

// Location returns the schedule time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, &ConfigError{Setting: EnvTimezone, Value: c.Timezone, Err: err}
	}
	return loc, nil
}

// TargetMinutes returns the firing time in minutes after midnight.
func (c *Config) TargetMinutes() (int, error) {
	minutes, err := schedule.ParseTimeOfDay(c.TargetTime)
	if err != nil {
		return 0, &ConfigError{Setting: EnvTargetTime, Value: c.TargetTime, Err: err}
	}
	return minutes, nil
}

// OpenGate opens the configured schedule store and returns a gate that uses it. The caller should
// close gate.Store when done.
func (c *Config) OpenGate() (*schedule.Gate, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}
	minutes, err := c.TargetMinutes()
	if err != nil {
		return nil, err
	}
	if c.DurationDays <= 0 {
		return nil, &ConfigError{Setting: EnvDurationDays, Value: strconv.Itoa(c.DurationDays), Err: errors.New("must be positive")}
	}
	store, err := schedule.OpenStore(c.StoreKind, c.StateDir)
	if err != nil {
		if errors.Is(err, schedule.ErrUnknownStore) {
			return nil, &ConfigError{Setting: EnvStore, Value: c.StoreKind, Err: err}
		}
		return nil, err
	}
	gate := schedule.NewGate(store, loc, minutes)
	gate.DurationDays = c.DurationDays
	return gate, nil
}

// AcquireLock takes the scheduler run lock in c.StateDir.
func (c *Config) AcquireLock() (*schedule.Lock, error) {
	return schedule.AcquireLock(c.StateDir, schedule.DefaultLockTTL, time.Now())
}

// Account logs into and returns the configured iSMART account.
func (c *Config) Account(ctx context.Context) (*account.Account, error) {
	if c.acct != nil {
		return c.acct, nil
	}
	if err := c.LoadCredentials(); err != nil {
		return nil, err
	}
	acct, err := account.Login(ctx, c.BaseURL, c.Username, c.Password, "")
	if err != nil {
		return nil, err
	}
	c.acct = acct
	return acct, nil
}

// Connect logs in to the configured account and fetches the vehicle selected by c.VIN, or the
// first vehicle on the account if c.VIN is empty.
func (c *Config) Connect(ctx context.Context) (acct *account.Account, car *vehicle.Vehicle, err error) {
	acct, err = c.Account(ctx)
	if err != nil {
		return nil, nil, err
	}
	vin, err := acct.ResolveVehicle(ctx, c.VIN)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Using vehicle %s", vin)
	return acct, acct.GetVehicle(vin), nil
}
