package inet

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ismart-tools/vehicle-command/pkg/protocol"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(server.URL+"/", "test-agent")
	client.RetryInterval = time.Millisecond
	client.SetRequestRate(0, 0)
	return client
}

func TestSendAfterClose(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"code": 0, "data": {}}`))
	})
	conn := NewConnection(client, "VIN123")
	if _, err := conn.Post(context.Background(), "vehicle/climate", map[string]string{"vin": "VIN123"}); err != nil {
		t.Errorf("Post failed: %s", err)
	}
	conn.Close()
	conn.Close()
	if _, err := conn.Post(context.Background(), "vehicle/climate", nil); err != protocol.ErrNotConnected {
		t.Errorf("Expected ErrNotConnected but got %s", err)
	}
}

func TestRequestHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/vehicle/list" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer abc" {
			t.Errorf("Unexpected Authorization header %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "test-agent" {
			t.Errorf("Unexpected User-Agent header %q", got)
		}
		w.Write([]byte(`{"code": 0, "data": {"vinList": []}}`))
	})
	client.SetToken(" abc\n")
	rsp, err := client.Do(context.Background(), http.MethodGet, "/vehicle/list", nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(rsp.Data) != `{"vinList": []}` {
		t.Errorf("Unexpected data %s", rsp.Data)
	}
}

func TestFormEncoding(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Unexpected Content-Type %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		values, err := url.ParseQuery(string(body))
		if err != nil || values.Get("username") != "driver@example.com" {
			t.Errorf("Unexpected form body %q", body)
		}
		w.Write([]byte(`{"code": 0}`))
	})
	form := url.Values{"username": {"driver@example.com"}}
	if _, err := client.Do(context.Background(), http.MethodPost, "oauth/token", form); err != nil {
		t.Fatal(err)
	}
}

func TestEnvelopeErrors(t *testing.T) {
	type params struct {
		status    int
		body      string
		temporary bool
		mayHave   bool
		target    error
	}
	testCases := []params{
		{status: http.StatusOK, body: `{"code": 2, "message": "remote control failed"}`},
		{status: http.StatusOK, body: `{"code": 6, "message": "busy"}`, temporary: true},
		{status: http.StatusOK, body: `{"code": 401, "message": "token expired"}`, target: protocol.ErrNotAuthenticated},
		{status: http.StatusOK, body: `not json`, mayHave: true, target: protocol.ErrBadResponse},
		{status: http.StatusUnauthorized, body: ``, target: protocol.ErrNotAuthenticated},
		{status: http.StatusServiceUnavailable, body: ``, temporary: true, target: ErrVehicleNotAwake},
		{status: http.StatusGatewayTimeout, body: ``, temporary: true, mayHave: true},
		{status: http.StatusBadRequest, body: `bad`},
	}
	for _, test := range testCases {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(test.status)
			w.Write([]byte(test.body))
		})
		_, err := client.Do(context.Background(), http.MethodPost, "vehicle/climate", nil)
		if err == nil {
			t.Errorf("%d %q: expected error", test.status, test.body)
			continue
		}
		if protocol.Temporary(err) != test.temporary {
			t.Errorf("%d %q: Temporary() = %v", test.status, test.body, !test.temporary)
		}
		if protocol.MayHaveSucceeded(err) != test.mayHave {
			t.Errorf("%d %q: MayHaveSucceeded() = %v", test.status, test.body, !test.mayHave)
		}
		if test.target != nil && !errors.Is(err, test.target) {
			t.Errorf("%d %q: expected %s, got %s", test.status, test.body, test.target, err)
		}
	}
}

func TestPendingAcknowledgementIsPolled(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		if n == 1 {
			if r.Header.Get("event-id") != "" {
				t.Errorf("First request should not carry an event id")
			}
			w.Header().Set("event-id", "evt-42")
			w.Write([]byte(`{"code": 4, "message": "waiting"}`))
			return
		}
		if got := r.Header.Get("event-id"); got != "evt-42" {
			t.Errorf("Poll %d sent event id %q", n, got)
		}
		if n < 3 {
			w.Write([]byte(`{"code": 4}`))
			return
		}
		w.Write([]byte(`{"code": 0, "data": {"result": true}}`))
	})
	rsp, err := client.Do(context.Background(), http.MethodPost, "vehicle/climate", map[string]int{"x": 1})
	if err != nil {
		t.Fatal(err)
	}
	if rsp.EventID != "evt-42" {
		t.Errorf("Unexpected event id %q", rsp.EventID)
	}
	if calls.Load() != 3 {
		t.Errorf("Expected 3 requests, got %d", calls.Load())
	}
}

func TestPendingWithoutEventID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 4}`))
	})
	_, err := client.Do(context.Background(), http.MethodPost, "vehicle/climate", nil)
	if err != protocol.ErrNoAcknowledgement {
		t.Errorf("Expected ErrNoAcknowledgement, got %v", err)
	}
}

func TestPendingUntilContextExpires(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("event-id", "evt-1")
		w.Write([]byte(`{"code": 4}`))
	})
	client.RetryInterval = 5 * time.Millisecond
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err := client.Do(ctx, http.MethodPost, "vehicle/climate", nil)
	if err == nil {
		t.Fatal("Expected error after context expiry")
	}
	if !protocol.MayHaveSucceeded(err) {
		t.Errorf("A command cut off while pending may have succeeded: %s", err)
	}
}

func TestSetRequestRateDuringRequests(t *testing.T) {
	var requests atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{"code": 0, "data": {}}`))
	})

	const workers = 4
	const perWorker = 5
	errs := make(chan error, workers*perWorker)
	done := make(chan struct{})
	for i := 0; i < workers; i++ {
		go func() {
			for j := 0; j < perWorker; j++ {
				_, err := client.Do(context.Background(), http.MethodGet, "vehicle/status", nil)
				errs <- err
			}
		}()
	}
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			client.SetRequestRate(1000, 10)
			client.SetRequestRate(0, 0)
		}
	}()

	for i := 0; i < workers*perWorker; i++ {
		if err := <-errs; err != nil {
			t.Errorf("request failed: %s", err)
		}
	}
	<-done
	if got := requests.Load(); got != workers*perWorker {
		t.Errorf("expected %d requests, got %d", workers*perWorker, got)
	}
}

func TestSetRequestRatePaces(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"code": 0, "data": {}}`))
	})
	client.SetRequestRate(20, 1)
	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := client.Do(context.Background(), http.MethodGet, "vehicle/status", nil); err != nil {
			t.Fatal(err)
		}
	}
	if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
		t.Errorf("expected paced requests to take at least 80ms, took %s", elapsed)
	}
}
