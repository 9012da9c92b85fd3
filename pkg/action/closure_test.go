package action_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ismart-tools/vehicle-command/pkg/action"
)

var _ = Describe("Closure", func() {
	Describe("ControlSunroof", func() {
		It("targets the sunroof", func() {
			cmd := action.ControlSunroof(true)
			Expect(cmd.Endpoint).To(Equal("vehicle/windows"))
			Expect(cmd.Body).To(HaveKeyWithValue("windowId", int(action.WindowIDSunroof)))
			Expect(cmd.Body).To(HaveKeyWithValue("open", true))
		})
	})

	Describe("CloseDriverWindow", func() {
		It("closes the driver window", func() {
			cmd := action.CloseDriverWindow()
			Expect(cmd.Body).To(HaveKeyWithValue("windowId", int(action.WindowIDDriver)))
			Expect(cmd.Body).To(HaveKeyWithValue("open", false))
		})
	})
})
