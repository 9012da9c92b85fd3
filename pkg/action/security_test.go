package action_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ismart-tools/vehicle-command/pkg/action"
)

var _ = Describe("Security", func() {
	Describe("Lock", func() {
		It("locks the doors", func() {
			cmd := action.Lock()
			Expect(cmd.Endpoint).To(Equal("vehicle/locks"))
			Expect(cmd.Body).To(HaveKeyWithValue("action", "lock"))
			Expect(cmd.Body).To(HaveKeyWithValue("lockId", int(action.LockIDDoors)))
		})
	})

	Describe("Unlock", func() {
		It("unlocks the doors", func() {
			cmd := action.Unlock()
			Expect(cmd.Body).To(HaveKeyWithValue("action", "unlock"))
			Expect(cmd.Body).To(HaveKeyWithValue("lockId", int(action.LockIDDoors)))
		})
	})

	Describe("OpenTailgate", func() {
		It("unlocks the tailgate", func() {
			cmd := action.OpenTailgate()
			Expect(cmd.Body).To(HaveKeyWithValue("action", "unlock"))
			Expect(cmd.Body).To(HaveKeyWithValue("lockId", int(action.LockIDTailgate)))
		})
	})

	Describe("SetAlarmSwitches", func() {
		It("lists every alarm type with the requested ones enabled", func() {
			cmd, err := action.SetAlarmSwitches([]action.AlarmType{action.AlarmTypeAntiTheft})
			Expect(err).ToNot(HaveOccurred())
			Expect(cmd.Endpoint).To(Equal(action.AlarmEndpoint))
			switches, ok := cmd.Body["alarmSwitchList"].([]map[string]interface{})
			Expect(ok).To(BeTrue())
			Expect(switches).To(HaveLen(len(action.AlarmTypes())))
			for _, s := range switches {
				enabled := s["alarmType"] == int(action.AlarmTypeAntiTheft)
				Expect(s["alarmSwitch"]).To(Equal(enabled))
				Expect(s["functionSwitch"]).To(Equal(enabled))
			}
		})

		It("rejects empty and unknown alarm types", func() {
			_, err := action.SetAlarmSwitches(nil)
			Expect(err).To(MatchError(action.ErrInvalidParameter))
			_, err = action.SetAlarmSwitches([]action.AlarmType{action.AlarmType(99)})
			Expect(err).To(MatchError(action.ErrInvalidParameter))
		})
	})

	Describe("AlarmType", func() {
		It("has readable names", func() {
			Expect(action.AlarmTypeGeofence.String()).To(Equal("GEOFENCE"))
			Expect(action.AlarmType(42).String()).To(Equal("ALARM_TYPE_42"))
			Expect(action.AlarmType(42).Valid()).To(BeFalse())
		})
	})
})
