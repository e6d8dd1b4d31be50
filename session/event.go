package session

import (
	"github.com/w1xm/rc_bridge/channel"
	"github.com/w1xm/rc_bridge/surface"
)

type EventKind int

const (
	PointerDown EventKind = iota + 1
	PointerMove
	PointerUp
	ResetPressed
	SliderMoved
	Quit
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "press"
	case PointerMove:
		return "move"
	case PointerUp:
		return "release"
	case ResetPressed:
		return "reset"
	case SliderMoved:
		return "slider"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Event is one operator action. At is set for pointer events, Channel and
// Value for slider events.
type Event struct {
	Kind    EventKind
	At      surface.Point
	Channel channel.Channel
	Value   int
}

// Input is everything a controller sees on one tick: the latest pointer
// position and the events received since the previous tick, oldest first.
type Input struct {
	Pointer surface.Point
	Events  []Event
}

// Status is a snapshot of a controller after a tick. Online is false after
// a failed send until the next successful one.
type Status struct {
	Variant  string                            `json:"variant"`
	Channels map[channel.Channel]channel.Value `json:"channels"`
	Online   bool                              `json:"online"`
	Surface  *SurfaceStatus                    `json:"surface,omitempty"`
}

type SurfaceStatus struct {
	Dragging string        `json:"dragging"`
	Knob     surface.Point `json:"knob"`
	Throttle channel.Value `json:"throttle"`
	YawAngle float64       `json:"yaw_angle"`
}

// Controller is a front-end driven by the Loop.
type Controller interface {
	Tick(in Input)
	Status() Status
}
