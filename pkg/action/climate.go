package action

const climateEndpoint = "vehicle/climate/ac"

const (
	MinTemperatureIdx     = 1
	MaxTemperatureIdx     = 15
	DefaultTemperatureIdx = 8
)

type Level int

const (
	LevelOff Level = iota
	LevelLow
	LevelMed
	LevelHigh
)

// StartAC turns on the air conditioning. The temperature is an index into the vehicle's
// temperature scale, from MinTemperatureIdx (coldest) to MaxTemperatureIdx.
func StartAC(temperatureIdx int) (*Command, error) {
	if err := checkRange("temperature index", temperatureIdx, MinTemperatureIdx, MaxTemperatureIdx); err != nil {
		return nil, err
	}
	return &Command{
		Endpoint: climateEndpoint,
		Body: map[string]interface{}{
			"action":         "start",
			"temperatureIdx": temperatureIdx,
		},
	}, nil
}

// StopAC turns off the air conditioning.
func StopAC() *Command {
	return &Command{
		Endpoint: climateEndpoint,
		Body:     map[string]interface{}{"action": "stop"},
	}
}

// StartFrontDefrost runs the climate system in front windscreen defrost mode.
func StartFrontDefrost() *Command {
	return &Command{
		Endpoint: "vehicle/climate/defrost",
		Body:     map[string]interface{}{"action": "start"},
	}
}

// ControlHeatedSeats sets the heating level of the front seats.
func ControlHeatedSeats(left, right Level) (*Command, error) {
	if err := checkRange("left seat level", int(left), int(LevelOff), int(LevelHigh)); err != nil {
		return nil, err
	}
	if err := checkRange("right seat level", int(right), int(LevelOff), int(LevelHigh)); err != nil {
		return nil, err
	}
	return &Command{
		Endpoint: "vehicle/climate/seats",
		Body: map[string]interface{}{
			"leftSideLevel":  int(left),
			"rightSideLevel": int(right),
		},
	}, nil
}

// ControlRearWindowHeat turns the rear window heater on or off.
func ControlRearWindowHeat(enable bool) *Command {
	return &Command{
		Endpoint: "vehicle/climate/rear-window-heat",
		Body:     map[string]interface{}{"enable": enable},
	}
}
