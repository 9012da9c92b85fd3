package command_test

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ismart-tools/vehicle-command/mocks"
	"github.com/ismart-tools/vehicle-command/pkg/action"
	"github.com/ismart-tools/vehicle-command/pkg/command"
	"github.com/ismart-tools/vehicle-command/pkg/protocol"
	"github.com/ismart-tools/vehicle-command/pkg/vehicle"
)

var _ = Describe("Command", func() {
	var (
		ctrl *gomock.Controller
		car  *mocks.Vehicle
		out  *bytes.Buffer
		ctx  context.Context
		ack  *vehicle.Acknowledgement
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		car = mocks.NewVehicle(ctrl)
		out = &bytes.Buffer{}
		ctx = context.Background()
		ack = &vehicle.Acknowledgement{EventID: "evt-1"}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("registers every command", func() {
		Expect(command.Names()).To(ConsistOf(
			"start_ac", "stop_ac", "start_defrost", "start_heated_seats",
			"rear_window_heat_on", "rear_window_heat_off",
			"lock", "unlock", "open_tailgate", "get_alarms", "set_alarms",
			"sunroof_open", "sunroof_close", "close_driver_window",
			"charging_start", "charging_stop", "port_lock", "port_unlock",
			"target_soc", "schedule_charging", "battery_heat_on", "battery_heat_off",
			"vehicle_status", "charging_status", "charging_management",
		))
		for _, name := range command.Names() {
			info, ok := command.Lookup(name)
			Expect(ok).To(BeTrue())
			Expect(info.Help()).NotTo(BeEmpty())
		}
	})

	It("reports argument names", func() {
		info, _ := command.Lookup("start_heated_seats")
		required, optional := info.Arguments()
		Expect(required).To(BeEmpty())
		Expect(optional).To(Equal([]string{command.ArgLeft, command.ArgRight}))
	})

	It("rejects unknown commands", func() {
		Expect(command.Execute(ctx, car, out, []string{"honk"})).To(MatchError(command.ErrUnknownCommand))
		Expect(command.ExecuteNamed(ctx, car, out, "honk", nil)).To(MatchError(command.ErrUnknownCommand))
		Expect(command.Execute(ctx, car, out, nil)).To(MatchError(command.ErrCommandLineArgs))
	})

	Describe("start_ac", func() {
		It("uses the default temperature", func() {
			car.EXPECT().StartAC(gomock.Any(), action.DefaultTemperatureIdx).Return(ack, nil)
			Expect(command.Execute(ctx, car, out, []string{"start_ac"})).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Event ID: evt-1"))
		})

		It("accepts a temperature", func() {
			car.EXPECT().StartAC(gomock.Any(), 3).Return(ack, nil)
			Expect(command.Execute(ctx, car, out, []string{"start_ac", "3"})).To(Succeed())
		})

		It("prints usage on bad arguments", func() {
			Expect(command.Execute(ctx, car, out, []string{"start_ac", "warm"})).To(MatchError(command.ErrCommandLineArgs))
			Expect(out.String()).To(ContainSubstring("Usage: start_ac [ TEMPERATURE ]"))
		})

		It("rejects extra arguments", func() {
			Expect(command.Execute(ctx, car, out, []string{"start_ac", "3", "4"})).To(MatchError(command.ErrCommandLineArgs))
		})

		It("takes named arguments", func() {
			car.EXPECT().StartAC(gomock.Any(), 5).Return(ack, nil)
			args := map[string]string{command.ArgTemperature: "5", command.ArgLeft: "3"}
			Expect(command.ExecuteNamed(ctx, car, out, "start_ac", args)).To(Succeed())
		})

		It("returns remote errors", func() {
			car.EXPECT().StartAC(gomock.Any(), gomock.Any()).Return(nil, protocol.ErrBusy)
			Expect(command.Execute(ctx, car, out, []string{"start_ac"})).To(MatchError(protocol.ErrBusy))
			Expect(out.String()).To(BeEmpty())
		})
	})

	DescribeTable("commands without arguments",
		func(name string, expect func(*mocks.VehicleMockRecorder) *gomock.Call) {
			expect(car.EXPECT()).Return(ack, nil)
			Expect(command.Execute(ctx, car, out, []string{name})).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Command sent successfully"))
		},
		Entry("stop_ac", "stop_ac", func(m *mocks.VehicleMockRecorder) *gomock.Call { return m.StopAC(gomock.Any()) }),
		Entry("start_defrost", "start_defrost", func(m *mocks.VehicleMockRecorder) *gomock.Call { return m.StartFrontDefrost(gomock.Any()) }),
		Entry("rear_window_heat_on", "rear_window_heat_on", func(m *mocks.VehicleMockRecorder) *gomock.Call { return m.ControlRearWindowHeat(gomock.Any(), true) }),
		Entry("rear_window_heat_off", "rear_window_heat_off", func(m *mocks.VehicleMockRecorder) *gomock.Call { return m.ControlRearWindowHeat(gomock.Any(), false) }),
		Entry("lock", "lock", func(m *mocks.VehicleMockRecorder) *gomock.Call { return m.Lock(gomock.Any()) }),
		Entry("unlock", "unlock", func(m *mocks.VehicleMockRecorder) *gomock.Call { return m.Unlock(gomock.Any()) }),
		Entry("open_tailgate", "open_tailgate", func(m *mocks.VehicleMockRecorder) *gomock.Call { return m.OpenTailgate(gomock.Any()) }),
		Entry("sunroof_open", "sunroof_open", func(m *mocks.VehicleMockRecorder) *gomock.Call { return m.ControlSunroof(gomock.Any(), true) }),
		Entry("sunroof_close", "sunroof_close", func(m *mocks.VehicleMockRecorder) *gomock.Call { return m.ControlSunroof(gomock.Any(), false) }),
		Entry("close_driver_window", "close_driver_window", func(m *mocks.VehicleMockRecorder) *gomock.Call { return m.CloseDriverWindow(gomock.Any()) }),
		Entry("charging_start", "charging_start", func(m *mocks.VehicleMockRecorder) *gomock.Call { return m.ControlCharging(gomock.Any(), false) }),
		Entry("charging_stop", "charging_stop", func(m *mocks.VehicleMockRecorder) *gomock.Call { return m.ControlCharging(gomock.Any(), true) }),
		Entry("port_lock", "port_lock", func(m *mocks.VehicleMockRecorder) *gomock.Call { return m.ControlChargingPortLock(gomock.Any(), false) }),
		Entry("port_unlock", "port_unlock", func(m *mocks.VehicleMockRecorder) *gomock.Call { return m.ControlChargingPortLock(gomock.Any(), true) }),
		Entry("battery_heat_on", "battery_heat_on", func(m *mocks.VehicleMockRecorder) *gomock.Call { return m.ControlBatteryHeating(gomock.Any(), true) }),
		Entry("battery_heat_off", "battery_heat_off", func(m *mocks.VehicleMockRecorder) *gomock.Call { return m.ControlBatteryHeating(gomock.Any(), false) }),
	)

	It("sets seat heating levels", func() {
		car.EXPECT().ControlHeatedSeats(gomock.Any(), action.LevelMed, action.LevelLow).Return(ack, nil)
		Expect(command.Execute(ctx, car, out, []string{"start_heated_seats", "2", "1"})).To(Succeed())
	})

	It("defaults seat heating to off", func() {
		car.EXPECT().ControlHeatedSeats(gomock.Any(), action.LevelOff, action.LevelOff).Return(ack, nil)
		Expect(command.ExecuteNamed(ctx, car, out, "start_heated_seats", map[string]string{})).To(Succeed())
	})

	Describe("alarms", func() {
		It("parses names and numbers", func() {
			expected := []action.AlarmType{action.AlarmTypeAntiTheft, action.AlarmTypeSpeeding}
			car.EXPECT().SetAlarmSwitches(gomock.Any(), expected).Return(ack, nil)
			Expect(command.Execute(ctx, car, out, []string{"set_alarms", "anti_theft, 4"})).To(Succeed())
		})

		It("rejects unknown alarm types", func() {
			Expect(command.Execute(ctx, car, out, []string{"set_alarms", "FIRE"})).To(MatchError(command.ErrCommandLineArgs))
		})

		It("lists switches", func() {
			car.EXPECT().GetAlarmSwitches(gomock.Any()).Return([]vehicle.AlarmSwitch{
				{Type: action.AlarmTypeGeofence, Enabled: true},
				{Type: action.AlarmTypeLowBattery, Enabled: false},
			}, nil)
			Expect(command.Execute(ctx, car, out, []string{"get_alarms"})).To(Succeed())
			Expect(out.String()).To(ContainSubstring("GEOFENCE: on"))
			Expect(out.String()).To(ContainSubstring("LOW_BATTERY: off"))
		})
	})

	Describe("target_soc", func() {
		It("converts percentages", func() {
			car.EXPECT().SetTargetBatterySOC(gomock.Any(), action.TargetBatteryCode90).Return(ack, nil)
			Expect(command.Execute(ctx, car, out, []string{"target_soc", "90"})).To(Succeed())
			Expect(out.String()).To(ContainSubstring("90%"))
		})

		It("falls back to 80%", func() {
			car.EXPECT().SetTargetBatterySOC(gomock.Any(), action.TargetBatteryCode80).Return(ack, nil)
			Expect(command.Execute(ctx, car, out, []string{"target_soc", "85"})).To(Succeed())
		})

		It("requires a percentage", func() {
			Expect(command.ExecuteNamed(ctx, car, out, "target_soc", nil)).To(MatchError(command.ErrCommandLineArgs))
		})
	})

	Describe("schedule_charging", func() {
		It("parses times", func() {
			car.EXPECT().SetScheduledCharging(gomock.Any(), 23*60, 6*60, action.ScheduledChargingModeEnable).Return(ack, nil)
			Expect(command.Execute(ctx, car, out, []string{"schedule_charging", "23:00", "06:00"})).To(Succeed())
		})

		It("disables the schedule", func() {
			car.EXPECT().SetScheduledCharging(gomock.Any(), 0, 60, action.ScheduledChargingModeDisable).Return(ack, nil)
			Expect(command.Execute(ctx, car, out, []string{"schedule_charging", "00:00", "01:00", "off"})).To(Succeed())
		})

		It("rejects bad times", func() {
			Expect(command.Execute(ctx, car, out, []string{"schedule_charging", "25:00", "06:00"})).To(MatchError(command.ErrCommandLineArgs))
		})
	})

	It("prints vehicle status", func() {
		state, err := structpb.NewStruct(map[string]interface{}{
			"basicVehicleStatus": map[string]interface{}{"mileage": 12345, "lockStatus": true},
		})
		Expect(err).NotTo(HaveOccurred())
		car.EXPECT().VehicleStatus(gomock.Any()).Return(state, nil)
		Expect(command.Execute(ctx, car, out, []string{"vehicle_status"})).To(Succeed())
		Expect(out.String()).To(ContainSubstring("basicVehicleStatus.mileage: 12345"))
		Expect(out.String()).To(ContainSubstring("basicVehicleStatus.lockStatus: true"))
		Expect(out.String()).To(ContainSubstring("basicVehicleStatus.batteryVoltage: ?"))
	})

	It("returns status errors", func() {
		car.EXPECT().ChargingStatus(gomock.Any()).Return(nil, protocol.ErrNotAuthenticated)
		Expect(command.Execute(ctx, car, out, []string{"charging_status"})).To(MatchError(protocol.ErrNotAuthenticated))
	})
})
