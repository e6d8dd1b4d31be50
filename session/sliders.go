package session

import (
	"fmt"
	"log"

	"github.com/w1xm/rc_bridge/channel"
	"github.com/w1xm/rc_bridge/transport"
	"github.com/w1xm/rc_bridge/wire"
)

const NumSliders = 6

// Handler receives the value of a control every time it is adjusted.
type Handler interface {
	HandleValue(ch channel.Channel, v channel.Value)
}

type HandlerFunc func(ch channel.Channel, v channel.Value)

func (f HandlerFunc) HandleValue(ch channel.Channel, v channel.Value) {
	f(ch, v)
}

// Slider is a bounded range control bound to one channel.
type Slider struct {
	Channel channel.Channel
	Label   string

	value   channel.Value
	handler Handler
}

func (s *Slider) Value() channel.Value { return s.value }

// Adjust moves the slider to v, clamped to the channel range, and notifies
// its handler even if the value did not change.
func (s *Slider) Adjust(v int) {
	s.value = channel.Clamp(v)
	s.handler.HandleValue(s.Channel, s.value)
}

// Sliders is the discrete front-end. Unlike Session it does not suppress
// repeated values: every adjustment is sent.
type Sliders struct {
	sender
	state   *channel.State
	sliders []*Slider
}

// NewSliders creates NumSliders sliders on channels 1..NumSliders, each
// registered with the returned Sliders as its handler.
func NewSliders(tx transport.Transport) *Sliders {
	s := &Sliders{
		sender: sender{tx: tx, online: true},
		state:  channel.NewState(),
	}
	for i := 1; i <= NumSliders; i++ {
		s.sliders = append(s.sliders, &Slider{
			Channel: channel.Channel(i),
			Label:   fmt.Sprintf("Channel %d", i),
			value:   channel.Neutral,
			handler: s,
		})
	}
	return s
}

// Slider returns the slider for ch, or nil if there is none.
func (s *Sliders) Slider(ch channel.Channel) *Slider {
	if ch < 1 || int(ch) > len(s.sliders) {
		return nil
	}
	return s.sliders[ch-1]
}

// HandleValue sends v on ch unconditionally.
func (s *Sliders) HandleValue(ch channel.Channel, v channel.Value) {
	s.state.Force(ch, v)
	s.send(wire.Encode(ch, v))
}

func (s *Sliders) Tick(in Input) {
	for _, ev := range in.Events {
		switch ev.Kind {
		case SliderMoved:
			sl := s.Slider(ev.Channel)
			if sl == nil {
				log.Printf("no slider for channel %d", ev.Channel)
				continue
			}
			sl.Adjust(ev.Value)
		case ResetPressed:
			s.Reset()
		}
	}
}

// Reset sends the reset token, then returns every slider to neutral.
func (s *Sliders) Reset() {
	s.send(wire.Reset)
	for _, sl := range s.sliders {
		sl.Adjust(int(channel.Neutral))
	}
}

func (s *Sliders) Status() Status {
	values := make(map[channel.Channel]channel.Value, len(s.sliders))
	for _, sl := range s.sliders {
		values[sl.Channel] = sl.value
	}
	return Status{
		Variant:  "sliders",
		Channels: values,
		Online:   s.online,
	}
}
