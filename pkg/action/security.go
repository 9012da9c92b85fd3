package action

import "fmt"

// LockID selects which lock a lock command applies to.
type LockID int

const (
	LockIDDoors LockID = iota + 1
	LockIDTailgate
)

const locksEndpoint = "vehicle/locks"

// AlarmEndpoint is used both to query and to update alarm switches.
const AlarmEndpoint = "vehicle/alarm-switch"

// Lock locks all doors.
func Lock() *Command {
	return &Command{
		Endpoint: locksEndpoint,
		Body:     map[string]interface{}{"action": "lock", "lockId": int(LockIDDoors)},
	}
}

// Unlock unlocks all doors.
func Unlock() *Command {
	return &Command{
		Endpoint: locksEndpoint,
		Body:     map[string]interface{}{"action": "unlock", "lockId": int(LockIDDoors)},
	}
}

// OpenTailgate releases the tailgate latch.
func OpenTailgate() *Command {
	return &Command{
		Endpoint: locksEndpoint,
		Body:     map[string]interface{}{"action": "unlock", "lockId": int(LockIDTailgate)},
	}
}

// AlarmType enumerates the notifications the vehicle can push to the account owner.
type AlarmType int

const (
	AlarmTypeGeofence AlarmType = iota + 1
	AlarmTypeVehicleStart
	AlarmTypeAntiTheft
	AlarmTypeSpeeding
	AlarmTypeLowBattery
	AlarmTypeChargingComplete
	AlarmTypeWindowOpen
)

var alarmNames = map[AlarmType]string{
	AlarmTypeGeofence:         "GEOFENCE",
	AlarmTypeVehicleStart:     "VEHICLE_START",
	AlarmTypeAntiTheft:        "ANTI_THEFT",
	AlarmTypeSpeeding:         "SPEEDING",
	AlarmTypeLowBattery:       "LOW_BATTERY",
	AlarmTypeChargingComplete: "CHARGING_COMPLETE",
	AlarmTypeWindowOpen:       "WINDOW_OPEN",
}

// AlarmTypes lists every known AlarmType in ascending order.
func AlarmTypes() []AlarmType {
	types := make([]AlarmType, 0, len(alarmNames))
	for t := AlarmTypeGeofence; t <= AlarmTypeWindowOpen; t++ {
		types = append(types, t)
	}
	return types
}

func (a AlarmType) String() string {
	if name, ok := alarmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("ALARM_TYPE_%d", int(a))
}

// Valid returns true if a is a known AlarmType.
func (a AlarmType) Valid() bool {
	_, ok := alarmNames[a]
	return ok
}

// SetAlarmSwitches enables the listed alarms and disables all others.
func SetAlarmSwitches(enabled []AlarmType) (*Command, error) {
	if len(enabled) == 0 {
		return nil, invalid("at least one alarm type is required")
	}
	on := make(map[AlarmType]bool)
	for _, t := range enabled {
		if !t.Valid() {
			return nil, invalid("unknown alarm type %d", int(t))
		}
		on[t] = true
	}
	var switches []map[string]interface{}
	for _, t := range AlarmTypes() {
		switches = append(switches, map[string]interface{}{
			"alarmType":      int(t),
			"alarmSwitch":    on[t],
			"functionSwitch": on[t],
		})
	}
	return &Command{
		Endpoint: AlarmEndpoint,
		Body:     map[string]interface{}{"alarmSwitchList": switches},
	}, nil
}
