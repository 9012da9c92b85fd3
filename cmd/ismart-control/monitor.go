package main

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ismart-tools/vehicle-command/internal/log"
	"github.com/ismart-tools/vehicle-command/pkg/account"
	"github.com/ismart-tools/vehicle-command/pkg/command"
	"github.com/ismart-tools/vehicle-command/pkg/vehicle"
)

const monitorInterval = 10 * time.Second

const (
	batteryVoltageField = "basicVehicleStatus.batteryVoltage"
	realtimePowerField  = "rvsChargeStatus.realtimePower"
)

// monitor periodically logs token expiry and battery readings for every vehicle on the account.
type monitor struct {
	expiration time.Time
	timeout    time.Duration
	vins       func(ctx context.Context) ([]string, error)
	vehicle    func(vin string) command.Vehicle
	now        func() time.Time
}

func newMonitor(acct *account.Account, timeout time.Duration) *monitor {
	return &monitor{
		expiration: acct.TokenExpiration,
		timeout:    timeout,
		vins: func(ctx context.Context) ([]string, error) {
			vehicles, err := acct.VehicleList(ctx)
			if err != nil {
				return nil, err
			}
			vins := make([]string, 0, len(vehicles))
			for _, v := range vehicles {
				vins = append(vins, v.VIN)
			}
			return vins, nil
		},
		vehicle: func(vin string) command.Vehicle {
			return acct.GetVehicle(vin)
		},
		now: time.Now,
	}
}

func (m *monitor) poll(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	if m.expiration.IsZero() {
		log.Info("Access token expiration unknown")
	} else {
		log.Info("Access token expires at %s (in %s)", m.expiration.Format(time.RFC3339), m.expiration.Sub(m.now()).Round(time.Second))
	}

	vins, err := m.vins(ctx)
	if err != nil {
		log.Error("Failed to list vehicles: %s", err)
		return
	}
	for _, vin := range vins {
		car := m.vehicle(vin)
		status, err := car.VehicleStatus(ctx)
		if err != nil {
			log.Error("[%s] Failed to fetch vehicle status: %s", vin, err)
			continue
		}
		log.Info("[%s] Battery voltage: %s", vin, vehicle.FieldString(status, batteryVoltageField))

		charging, err := car.ChargingManagementData(ctx)
		if err != nil {
			log.Error("[%s] Failed to fetch charging data: %s", vin, err)
			continue
		}
		log.Info("[%s] Realtime power: %s", vin, vehicle.FieldString(charging, realtimePowerField))
	}
}

// run polls once immediately and then every monitorInterval until ctx is cancelled.
func (m *monitor) run(ctx context.Context) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc("@every "+monitorInterval.String(), func() { m.poll(ctx) }); err != nil {
		return err
	}
	m.poll(ctx)
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
