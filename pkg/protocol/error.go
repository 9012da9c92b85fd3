// Package protocol defines the error taxonomy shared by the iSMART API client and the tools built
// on it.
package protocol

import (
	"errors"
	"fmt"
)

// Error exposes methods useful for categorizing errors.
type Error interface {
	error

	// MayHaveSucceeded returns true if the Error was triggered a command that might have been executed.
	// For example, if a client times out while waiting for an acknowledgement, then the client cannot
	// tell if the command reached the vehicle.
	MayHaveSucceeded() bool

	// Temporary returns true if the Error might be the result of a transient condition, such as the
	// vehicle's telematics unit waking from sleep.
	Temporary() bool
}

var (
	// ErrBusy indicates a resource is temporarily unavailable.
	ErrBusy = NewError("vehicle busy or finishing wake-up", false, true)
	// ErrNotConnected indicates the API could not be reached.
	ErrNotConnected = NewError("not connected to the iSMART API", false, false)
	// ErrNotAuthenticated indicates the client sent a request before logging in, or the access token
	// expired.
	ErrNotAuthenticated = NewError("not logged in to the iSMART API", false, false)
	// ErrNoVehicleFound indicates the account does not have any vehicles bound to it, or none with
	// the requested VIN.
	ErrNoVehicleFound = errors.New("no vehicle found")
	// ErrBadResponse indicates the API returned a body that could not be decoded.
	ErrBadResponse = errors.New("invalid response")
	// ErrNoAcknowledgement indicates the API accepted a command but did not return an event id.
	ErrNoAcknowledgement = NewError("command accepted without acknowledgement", true, false)
)

// API result codes carried in the response envelope.
const (
	CodeSuccess      = 0
	CodeFailed       = 2
	CodePending      = 4
	CodeBusy         = 6
	CodeUnauthorized = 401
)

type CommandError struct {
	Err               error
	PossibleSuccess   bool
	PossibleTemporary bool
}

func NewError(message string, mayHaveSucceeded bool, temporary bool) error {
	return &CommandError{Err: errors.New(message), PossibleSuccess: mayHaveSucceeded, PossibleTemporary: temporary}
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func (e *CommandError) MayHaveSucceeded() bool {
	return e.PossibleSuccess
}

func (e *CommandError) Temporary() bool {
	return e.PossibleTemporary
}

// APIError is returned when the API answers with a non-zero result code in its response envelope.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("iSMART API returned code %d", e.Code)
	}
	return fmt.Sprintf("iSMART API returned code %d: %s", e.Code, e.Message)
}

func (e *APIError) MayHaveSucceeded() bool {
	return false
}

func (e *APIError) Temporary() bool {
	return e.Code == CodeBusy
}

// Unwrap allows errors.Is(err, ErrNotAuthenticated) to match expired sessions.
func (e *APIError) Unwrap() error {
	if e.Code == CodeUnauthorized {
		return ErrNotAuthenticated
	}
	return nil
}

// MayHaveSucceeded returns true if err is a CommandError that indicates the command may have been
// executed but the client did not receive a confirmation from the vehicle.
func MayHaveSucceeded(err error) bool {
	var commErr Error
	if errors.As(err, &commErr) && commErr.MayHaveSucceeded() {
		return true
	}
	return false
}

// Temporary returns true if err is a CommandError that indicates the command failed due to possibly
// transient conditions that do not require user action to resolve.
func Temporary(err error) bool {
	var commErr Error
	if errors.As(err, &commErr) && commErr.Temporary() {
		return true
	}
	return false
}
