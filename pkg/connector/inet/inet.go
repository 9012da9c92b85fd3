package inet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/ismart-tools/vehicle-command/internal/log"
	"github.com/ismart-tools/vehicle-command/pkg/connector"
	"github.com/ismart-tools/vehicle-command/pkg/protocol"
)

const (
	// DefaultRetryInterval is the wait time between polls of a pending command acknowledgement.
	DefaultRetryInterval = 2 * time.Second
	// DefaultRequestRate limits the number of requests per second sent to the API.
	DefaultRequestRate = 2
	// DefaultRequestBurst is the number of requests that may be sent without pacing.
	DefaultRequestBurst = 4

	eventIDHeader = "event-id"
)

func ReadWithContext(ctx context.Context, r io.Reader, p []byte) ([]byte, error) {
	bytesRead := 0
	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		n, err := r.Read(p[bytesRead:])
		bytesRead += n
		if err == io.EOF {
			return p[:bytesRead], nil
		}
		if err != nil {
			return p[:bytesRead], err
		}
		if bytesRead == len(p) {
			return p[:bytesRead], nil
		}
	}
}

var ErrVehicleNotAwake = protocol.NewError("vehicle unavailable: vehicle is offline or asleep", false, true)

type HttpError struct {
	Code    int
	Message string
}

func (e *HttpError) Error() string {
	if e.Message == "" {
		return http.StatusText(e.Code)
	}
	return e.Message
}

func (e *HttpError) MayHaveSucceeded() bool {
	if e.Code >= 400 && e.Code < 500 {
		return false
	}
	return e.Code != http.StatusServiceUnavailable
}

func (e *HttpError) Temporary() bool {
	return e.Code == http.StatusServiceUnavailable ||
		e.Code == http.StatusGatewayTimeout ||
		e.Code == http.StatusRequestTimeout ||
		e.Code == http.StatusTooManyRequests
}

// envelope wraps every API response body.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func encodeBody(command interface{}) (io.Reader, string, error) {
	switch c := command.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return bytes.NewReader(c), "application/json", nil
	case url.Values:
		return strings.NewReader(c.Encode()), "application/x-www-form-urlencoded", nil
	default:
		body, err := json.Marshal(command)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(body), "application/json", nil
	}
}

// Client holds the HTTP session shared by an account and its vehicles.
type Client struct {
	UserAgent     string
	BaseURL       string
	RetryInterval time.Duration

	client http.Client

	lock       sync.Mutex
	authHeader string
	limiter    *rate.Limiter
}

// NewClient creates a Client that sends requests to baseURL (e.g.,
// "https://gateway-mg-eu.soimt.com/api.app/v1").
func NewClient(baseURL, userAgent string) *Client {
	return &Client{
		UserAgent:     userAgent,
		BaseURL:       strings.TrimSuffix(baseURL, "/"),
		RetryInterval: DefaultRetryInterval,
		limiter:       rate.NewLimiter(rate.Limit(DefaultRequestRate), DefaultRequestBurst),
	}
}

// SetToken sets the bearer token sent with subsequent requests.
func (c *Client) SetToken(token string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.authHeader = "Bearer " + strings.TrimSpace(token)
}

func (c *Client) token() string {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.authHeader
}

// SetRequestRate changes request pacing. A non-positive perSecond disables pacing.
// Requests already waiting keep the previous pacing.
func (c *Client) SetRequestRate(perSecond float64, burst int) {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if perSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.limiter = limiter
}

func (c *Client) requestLimiter() *rate.Limiter {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.limiter
}

func (c *Client) send(ctx context.Context, method, endpoint string, command interface{}, eventID string) (*envelope, string, error) {
	if err := c.requestLimiter().Wait(ctx); err != nil {
		return nil, "", err
	}
	body, contentType, err := encodeBody(command)
	if err != nil {
		return nil, "", err
	}
	target := fmt.Sprintf("%s/%s", c.BaseURL, strings.TrimPrefix(endpoint, "/"))
	log.Debug("Sending %s request to %s", method, target)
	request, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, "", &protocol.CommandError{Err: err, PossibleSuccess: false, PossibleTemporary: false}
	}
	request.Header.Set("User-Agent", c.UserAgent)
	request.Header.Set("Accept", "application/json")
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}
	if auth := c.token(); auth != "" {
		request.Header.Set("Authorization", auth)
	}
	if eventID != "" {
		request.Header.Set(eventIDHeader, eventID)
	}

	result, err := c.client.Do(request)
	if err != nil {
		return nil, "", &protocol.CommandError{Err: err, PossibleSuccess: false, PossibleTemporary: true}
	}
	defer result.Body.Close()

	payload := make([]byte, connector.MaxResponseLength+1)
	payload, err = ReadWithContext(ctx, result.Body, payload)
	if err != nil {
		return nil, "", &protocol.CommandError{Err: err, PossibleSuccess: true, PossibleTemporary: false}
	}
	if len(payload) == connector.MaxResponseLength+1 {
		return nil, "", protocol.NewError("response exceeds maximum length", true, true)
	}

	log.Debug("Server returned %d: %s: %s", result.StatusCode, http.StatusText(result.StatusCode), payload)
	switch result.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, "", protocol.ErrNotAuthenticated
	case http.StatusServiceUnavailable:
		return nil, "", ErrVehicleNotAwake
	default:
		return nil, "", &HttpError{Code: result.StatusCode, Message: string(payload)}
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, "", &protocol.CommandError{Err: fmt.Errorf("%w: %s", protocol.ErrBadResponse, err), PossibleSuccess: true, PossibleTemporary: false}
	}
	return &env, result.Header.Get(eventIDHeader), nil
}

// Do sends a request and returns the data member of the response envelope.
//
// The command may be nil, a []byte holding JSON, url.Values (sent form-encoded), or any value that
// supports JSON serialization. When the API reports that an acknowledgement is pending, Do repeats
// the request with the returned event id every RetryInterval until the API answers or ctx expires.
func (c *Client) Do(ctx context.Context, method, endpoint string, command interface{}) (*connector.Response, error) {
	var eventID string
	for {
		env, headerEventID, err := c.send(ctx, method, endpoint, command, eventID)
		if err != nil {
			if eventID != "" {
				// The API already accepted the command.
				return nil, &protocol.CommandError{Err: err, PossibleSuccess: true, PossibleTemporary: true}
			}
			return nil, err
		}
		if headerEventID != "" {
			eventID = headerEventID
		}
		switch env.Code {
		case protocol.CodeSuccess:
			return &connector.Response{Data: env.Data, EventID: eventID}, nil
		case protocol.CodePending:
			if eventID == "" {
				return nil, protocol.ErrNoAcknowledgement
			}
			log.Debug("Acknowledgement %s pending, polling again in %s", eventID, c.RetryInterval)
		default:
			return nil, &protocol.APIError{Code: env.Code, Message: env.Message}
		}
		select {
		case <-ctx.Done():
			return nil, &protocol.CommandError{Err: ctx.Err(), PossibleSuccess: true, PossibleTemporary: true}
		case <-time.After(c.RetryInterval):
		}
	}
}

// Connection implements the connector.Connector interface by sending requests for one vehicle
// through a shared Client.
type Connection struct {
	client *Client
	vin    string

	lock   sync.Mutex
	closed bool
}

// NewConnection creates a Connection.
func NewConnection(client *Client, vin string) *Connection {
	return &Connection{client: client, vin: vin}
}

func (c *Connection) VIN() string {
	return c.vin
}

func (c *Connection) RetryInterval() time.Duration {
	return c.client.RetryInterval
}

func (c *Connection) isClosed() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.closed
}

func (c *Connection) Get(ctx context.Context, endpoint string) (*connector.Response, error) {
	if c.isClosed() {
		return nil, protocol.ErrNotConnected
	}
	return c.client.Do(ctx, http.MethodGet, endpoint, nil)
}

func (c *Connection) Post(ctx context.Context, endpoint string, command interface{}) (*connector.Response, error) {
	if c.isClosed() {
		return nil, protocol.ErrNotConnected
	}
	return c.client.Do(ctx, http.MethodPost, endpoint, command)
}

func (c *Connection) Close() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.closed = true
}
