package connector

import (
	"context"
	"encoding/json"
	"time"
)

// MaxResponseLength caps the maximum byte-length of responses that connectors must support.
const MaxResponseLength = 100000

// Response holds the payload of a successful API call.
type Response struct {
	// Data is the "data" member of the API response envelope. It may be empty.
	Data json.RawMessage
	// EventID identifies the command acknowledgement. It is empty for queries.
	EventID string
}

// Connector sends requests to the iSMART API on behalf of a single vehicle.
type Connector interface {
	// VIN returns the vehicle identification number that requests are addressed to.
	VIN() string

	// Get fetches endpoint.
	//
	// Implementations must be thread safe.
	Get(ctx context.Context, endpoint string) (*Response, error)

	// Post sends command to endpoint. The command must support JSON serialization.
	//
	// Depending on the error, the vehicle may have received and even acted on the command. If the
	// returned error implements the protocol.Error interface, then the client may be able to
	// determine if this is the case.
	//
	// Implementations must be thread safe.
	Post(ctx context.Context, endpoint string, command interface{}) (*Response, error)

	// Close terminates the connection.
	//
	// Repeated calls to Close() must be idempotent, but the behavior of the interface is otherwise
	// undefined after calling this method.
	Close()

	// RetryInterval returns the wait time between polls of a pending acknowledgement.
	RetryInterval() time.Duration
}
