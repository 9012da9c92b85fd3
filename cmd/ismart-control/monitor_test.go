package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ismart-tools/vehicle-command/internal/log"
	"github.com/ismart-tools/vehicle-command/mocks"
	"github.com/ismart-tools/vehicle-command/pkg/command"
)

const defaultTestTimeout = 5 * time.Second

func captureLog(t *testing.T) *bytes.Buffer {
	var buffer bytes.Buffer
	log.SetOutput(&buffer)
	log.SetLevel(log.LevelInfo)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.LevelNone)
	})
	return &buffer
}

func mustStruct(t *testing.T, fields map[string]interface{}) *structpb.Struct {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func testMonitor(vins []string, cars map[string]command.Vehicle) *monitor {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &monitor{
		expiration: now.Add(90 * time.Minute),
		timeout:    defaultTestTimeout,
		vins: func(ctx context.Context) ([]string, error) {
			if vins == nil {
				return nil, errors.New("list failed")
			}
			return vins, nil
		},
		vehicle: func(vin string) command.Vehicle { return cars[vin] },
		now:     func() time.Time { return now },
	}
}

func TestMonitorPollLogsReadings(t *testing.T) {
	buffer := captureLog(t)
	ctrl := gomock.NewController(t)
	first := mocks.NewVehicle(ctrl)
	second := mocks.NewVehicle(ctrl)

	first.EXPECT().VehicleStatus(gomock.Any()).Return(mustStruct(t, map[string]interface{}{
		"basicVehicleStatus": map[string]interface{}{"batteryVoltage": 12.6},
	}), nil)
	first.EXPECT().ChargingManagementData(gomock.Any()).Return(mustStruct(t, map[string]interface{}{
		"rvsChargeStatus": map[string]interface{}{"realtimePower": 3.5},
	}), nil)
	second.EXPECT().VehicleStatus(gomock.Any()).Return(nil, errors.New("timeout"))

	m := testMonitor([]string{"VIN1", "VIN2"}, map[string]command.Vehicle{"VIN1": first, "VIN2": second})
	m.poll(context.Background())

	out := buffer.String()
	for _, expected := range []string{
		"expires at 2024-01-01T13:30:00Z (in 1h30m0s)",
		"[VIN1] Battery voltage: 12.6",
		"[VIN1] Realtime power: 3.5",
		"[VIN2] Failed to fetch vehicle status: timeout",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected %q in log output:\n%s", expected, out)
		}
	}
}

func TestMonitorPollMissingFields(t *testing.T) {
	buffer := captureLog(t)
	ctrl := gomock.NewController(t)
	car := mocks.NewVehicle(ctrl)
	car.EXPECT().VehicleStatus(gomock.Any()).Return(&structpb.Struct{}, nil)
	car.EXPECT().ChargingManagementData(gomock.Any()).Return(&structpb.Struct{}, nil)

	m := testMonitor([]string{"VIN1"}, map[string]command.Vehicle{"VIN1": car})
	m.expiration = time.Time{}
	m.poll(context.Background())

	out := buffer.String()
	if !strings.Contains(out, "expiration unknown") || !strings.Contains(out, "Battery voltage: ?") {
		t.Errorf("unexpected log output:\n%s", out)
	}
}

func TestMonitorPollListFailure(t *testing.T) {
	buffer := captureLog(t)
	testMonitor(nil, nil).poll(context.Background())
	if !strings.Contains(buffer.String(), "Failed to list vehicles: list failed") {
		t.Errorf("unexpected log output:\n%s", buffer.String())
	}
}

func TestMonitorRunStopsWhenCancelled(t *testing.T) {
	captureLog(t)
	ctx, cancel := context.WithCancel(context.Background())
	m := testMonitor([]string{}, nil)
	polled := make(chan struct{}, 1)
	list := m.vins
	m.vins = func(ctx context.Context) ([]string, error) {
		select {
		case polled <- struct{}{}:
		default:
		}
		return list(ctx)
	}

	done := make(chan error)
	go func() { done <- m.run(ctx) }()
	<-polled
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %s", err)
		}
	case <-time.After(defaultTestTimeout):
		t.Fatal("monitor did not stop")
	}
}
