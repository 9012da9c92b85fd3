package action_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ismart-tools/vehicle-command/pkg/action"
)

var _ = Describe("Charge", func() {
	Describe("TargetBatteryCodeFromPercent", func() {
		It("maps every supported percentage", func() {
			for percent := 40; percent <= 100; percent += 10 {
				code, err := action.TargetBatteryCodeFromPercent(percent)
				Expect(err).ToNot(HaveOccurred())
				Expect(code.Percent()).To(Equal(percent))
			}
			code, _ := action.TargetBatteryCodeFromPercent(80)
			Expect(code).To(Equal(action.TargetBatteryCode80))
		})

		It("rejects unsupported percentages", func() {
			for _, percent := range []int{0, 30, 85, 110} {
				_, err := action.TargetBatteryCodeFromPercent(percent)
				Expect(err).To(MatchError(action.ErrInvalidParameter))
			}
		})
	})

	Describe("SetTargetBatterySOC", func() {
		It("returns correct code", func() {
			cmd, err := action.SetTargetBatterySOC(action.TargetBatteryCode90)
			Expect(err).ToNot(HaveOccurred())
			Expect(cmd.Body).To(HaveKeyWithValue("targetSocCode", 6))
		})

		It("rejects unknown codes", func() {
			_, err := action.SetTargetBatterySOC(action.TargetBatteryCode(8))
			Expect(err).To(MatchError(action.ErrInvalidParameter))
		})
	})

	Describe("SetScheduledCharging", func() {
		It("formats the window", func() {
			cmd, err := action.SetScheduledCharging(22*60, 6*60+5, action.ScheduledChargingModeEnable)
			Expect(err).ToNot(HaveOccurred())
			Expect(cmd.Endpoint).To(Equal("vehicle/charging/schedule"))
			Expect(cmd.Body).To(HaveKeyWithValue("startTime", "22:00"))
			Expect(cmd.Body).To(HaveKeyWithValue("endTime", "06:05"))
			Expect(cmd.Body).To(HaveKeyWithValue("mode", int(action.ScheduledChargingModeEnable)))
		})

		It("rejects times outside a day", func() {
			_, err := action.SetScheduledCharging(24*60, 0, action.ScheduledChargingModeEnable)
			Expect(err).To(MatchError(action.ErrInvalidParameter))
			_, err = action.SetScheduledCharging(0, -1, action.ScheduledChargingModeEnable)
			Expect(err).To(MatchError(action.ErrInvalidParameter))
			_, err = action.SetScheduledCharging(0, 0, action.ScheduledChargingMode(7))
			Expect(err).To(MatchError(action.ErrInvalidParameter))
		})
	})

	Describe("ControlCharging", func() {
		It("returns stop flag", func() {
			Expect(action.ControlCharging(true).Body).To(HaveKeyWithValue("stopCharging", true))
		})
	})

	Describe("ControlChargingPortLock", func() {
		It("returns unlock flag", func() {
			Expect(action.ControlChargingPortLock(false).Body).To(HaveKeyWithValue("unlock", false))
		})
	})

	Describe("ControlBatteryHeating", func() {
		It("returns heater state", func() {
			cmd := action.ControlBatteryHeating(true)
			Expect(cmd.Endpoint).To(Equal("vehicle/charging/battery-heating"))
			Expect(cmd.Body).To(HaveKeyWithValue("enable", true))
		})
	})
})
