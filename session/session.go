// Package session turns operator input into channel commands. Session drives
// the drawing surface (roll/pitch knob, throttle slider, yaw dial) and
// Sliders drives six independent channel sliders. Both are single-owner: only
// the goroutine running their Loop may touch them.
package session

import (
	"github.com/w1xm/rc_bridge/channel"
	"github.com/w1xm/rc_bridge/surface"
	"github.com/w1xm/rc_bridge/transport"
	"github.com/w1xm/rc_bridge/wire"
)

// neutralYaw is the dial angle that maps to channel.Neutral.
const neutralYaw = 180

type control int

const (
	idle control = iota
	knob
	throttle
	yaw
)

func (c control) String() string {
	switch c {
	case knob:
		return "knob"
	case throttle:
		return "throttle"
	case yaw:
		return "yaw"
	}
	return ""
}

// resetOrder is the order in which Reset sends neutral.
var resetOrder = []channel.Channel{channel.Roll, channel.Pitch, channel.Yaw, channel.Throttle}

// Session is the drawing surface front-end. Every tick it maps the control
// positions to channel values and sends the ones that changed since they
// were last sent.
type Session struct {
	sender
	layout surface.Layout
	state  *channel.State

	// active is the control being dragged. Only it follows the pointer.
	active   control
	knob     surface.Point
	throttle channel.Value
	yawAngle float64
}

func New(tx transport.Transport, layout surface.Layout) *Session {
	s := &Session{
		sender: sender{tx: tx, online: true},
		layout: layout,
		state:  channel.NewState(),
	}
	s.center()
	return s
}

func (s *Session) center() {
	s.active = idle
	s.knob = s.layout.Knob.Center()
	s.throttle = channel.Neutral
	s.yawAngle = neutralYaw
}

func (s *Session) Tick(in Input) {
	for _, ev := range in.Events {
		switch ev.Kind {
		case PointerDown:
			s.press(ev.At)
		case PointerMove:
			s.follow(ev.At)
		case PointerUp:
			// The release position still counts, so a drag that starts
			// and ends within one tick is not lost.
			s.follow(ev.At)
			s.active = idle
		case ResetPressed:
			s.Reset()
		}
	}
	s.follow(in.Pointer)

	s.emit(channel.Roll, s.rollValue())
	s.emit(channel.Pitch, s.pitchValue())
	s.emit(channel.Throttle, s.throttle)
	s.emit(channel.Yaw, s.yawValue())
}

// follow moves the active control to p.
func (s *Session) follow(p surface.Point) {
	switch s.active {
	case knob:
		s.knob = s.layout.Knob.Clamp(p)
	case throttle:
		r := s.layout.Throttle
		s.throttle = channel.Clamp(channel.Map(float64(p.Y), float64(r.Top), float64(r.Bottom()), float64(channel.Max), float64(channel.Min)))
	case yaw:
		s.yawAngle = s.layout.Yaw.Angle(p)
	}
}

// press starts dragging the control under p. A press on the reset button
// resets instead.
func (s *Session) press(p surface.Point) {
	switch {
	case s.layout.Knob.Contains(p):
		s.active = knob
	case s.layout.Throttle.Contains(p):
		s.active = throttle
	case s.layout.Yaw.Contains(p):
		s.active = yaw
	case s.layout.Reset.Contains(p):
		s.Reset()
	}
}

func (s *Session) rollValue() channel.Value {
	r := s.layout.Knob
	return channel.Clamp(channel.Map(float64(s.knob.X), float64(r.Left), float64(r.Right()), float64(channel.Min), float64(channel.Max)))
}

func (s *Session) pitchValue() channel.Value {
	r := s.layout.Knob
	return channel.Clamp(channel.Map(float64(s.knob.Y), float64(r.Top), float64(r.Bottom()), float64(channel.Max), float64(channel.Min)))
}

func (s *Session) yawValue() channel.Value {
	return channel.Clamp(channel.Map(s.yawAngle, 0, 360, float64(channel.Min), float64(channel.Max)))
}

func (s *Session) emit(ch channel.Channel, v channel.Value) {
	if s.state.ShouldSend(ch, v) {
		s.send(wire.Encode(ch, v))
	}
}

// Reset returns every control to neutral and sends neutral on every channel,
// whatever was sent before.
func (s *Session) Reset() {
	s.center()
	for _, ch := range resetOrder {
		s.state.Force(ch, channel.Neutral)
		s.send(wire.Encode(ch, channel.Neutral))
	}
}

func (s *Session) Status() Status {
	return Status{
		Variant:  "surface",
		Channels: s.state.Snapshot(),
		Online:   s.online,
		Surface: &SurfaceStatus{
			Dragging: s.active.String(),
			Knob:     s.knob,
			Throttle: s.throttle,
			YawAngle: s.yawAngle,
		},
	}
}
