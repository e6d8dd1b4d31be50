// Package channel holds the RC channel value model: the linear range mapping
// from raw input coordinates to channel values and the last-sent cache used
// to suppress redundant commands.
package channel

import (
	"fmt"
	"math"
)

// Channel is a numbered actuator axis.
type Channel int

// Channels of the surface front-end.
const (
	Roll     Channel = 1
	Pitch    Channel = 2
	Yaw      Channel = 3
	Throttle Channel = 4
)

func (c Channel) String() string {
	switch c {
	case Roll:
		return "roll"
	case Pitch:
		return "pitch"
	case Yaw:
		return "yaw"
	case Throttle:
		return "throttle"
	}
	return fmt.Sprintf("channel%d", int(c))
}

// Value is a channel value in [Min, Max].
type Value int

const (
	Min     Value = 1000
	Max     Value = 2000
	Neutral Value = 1500
)

// Map linearly remaps value from [inMin, inMax] to [outMin, outMax],
// truncating toward zero. outMin may be greater than outMax to invert an
// axis. inMin must differ from inMax.
func Map(value, inMin, inMax, outMin, outMax float64) int {
	if inMin == inMax {
		panic(fmt.Sprintf("channel.Map: empty input range [%v, %v]", inMin, inMax))
	}
	return int(math.Trunc((value-inMin)*(outMax-outMin)/(inMax-inMin) + outMin))
}

// Clamp bounds v to [Min, Max].
func Clamp(v int) Value {
	if v < int(Min) {
		return Min
	}
	if v > int(Max) {
		return Max
	}
	return Value(v)
}
