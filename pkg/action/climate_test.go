package action_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ismart-tools/vehicle-command/pkg/action"
)

var _ = Describe("Climate", func() {
	Describe("StartAC", func() {
		It("returns start command with temperature", func() {
			cmd, err := action.StartAC(action.DefaultTemperatureIdx)
			Expect(err).ToNot(HaveOccurred())
			Expect(cmd.Endpoint).To(Equal("vehicle/climate/ac"))
			Expect(cmd.Body).To(HaveKeyWithValue("action", "start"))
			Expect(cmd.Body).To(HaveKeyWithValue("temperatureIdx", 8))
		})

		It("accepts the ends of the temperature scale", func() {
			_, err := action.StartAC(action.MinTemperatureIdx)
			Expect(err).ToNot(HaveOccurred())
			_, err = action.StartAC(action.MaxTemperatureIdx)
			Expect(err).ToNot(HaveOccurred())
		})

		It("rejects temperatures outside the scale", func() {
			_, err := action.StartAC(0)
			Expect(err).To(MatchError(action.ErrInvalidParameter))
			_, err = action.StartAC(16)
			Expect(err).To(MatchError(action.ErrInvalidParameter))
		})
	})

	Describe("StopAC", func() {
		It("returns stop command", func() {
			cmd := action.StopAC()
			Expect(cmd.Endpoint).To(Equal("vehicle/climate/ac"))
			Expect(cmd.Body).To(HaveKeyWithValue("action", "stop"))
		})
	})

	Describe("StartFrontDefrost", func() {
		It("returns defrost command", func() {
			cmd := action.StartFrontDefrost()
			Expect(cmd.Endpoint).To(Equal("vehicle/climate/defrost"))
		})
	})

	Describe("ControlHeatedSeats", func() {
		It("returns both seat levels", func() {
			cmd, err := action.ControlHeatedSeats(action.LevelHigh, action.LevelOff)
			Expect(err).ToNot(HaveOccurred())
			Expect(cmd.Body).To(HaveKeyWithValue("leftSideLevel", 3))
			Expect(cmd.Body).To(HaveKeyWithValue("rightSideLevel", 0))
		})

		It("rejects unknown levels", func() {
			_, err := action.ControlHeatedSeats(action.Level(4), action.LevelOff)
			Expect(err).To(MatchError(action.ErrInvalidParameter))
			_, err = action.ControlHeatedSeats(action.LevelOff, action.Level(-1))
			Expect(err).To(MatchError(action.ErrInvalidParameter))
		})
	})

	Describe("ControlRearWindowHeat", func() {
		It("returns heater state", func() {
			Expect(action.ControlRearWindowHeat(true).Body).To(HaveKeyWithValue("enable", true))
			Expect(action.ControlRearWindowHeat(false).Body).To(HaveKeyWithValue("enable", false))
		})
	})

	Describe("Payload", func() {
		It("adds the VIN without modifying the command", func() {
			cmd := action.StopAC()
			payload := cmd.Payload("LSJA0000000000001")
			Expect(payload).To(HaveKeyWithValue("vin", "LSJA0000000000001"))
			Expect(payload).To(HaveKeyWithValue("action", "stop"))
			Expect(cmd.Body).ToNot(HaveKey("vin"))
		})
	})
})
