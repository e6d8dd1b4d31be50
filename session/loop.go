package session

import (
	"context"
	"errors"
	"time"

	"github.com/w1xm/rc_bridge/surface"
)

// ErrQuit is returned by Run after a Quit event.
var ErrQuit = errors.New("quit requested")

const (
	DefaultInterval = time.Second / 60
	queueSize       = 256
)

// Loop runs a Controller on a single goroutine. Other goroutines hand it
// events with Post; the controller itself is only touched inside Step.
type Loop struct {
	c        Controller
	interval time.Duration
	status   func(Status)

	events  chan Event
	done    chan struct{}
	pointer surface.Point
}

// NewLoop returns a loop ticking c every interval. status, if not nil, is
// called with the controller status after every tick.
func NewLoop(c Controller, interval time.Duration, status func(Status)) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{
		c:        c,
		interval: interval,
		status:   status,
		events:   make(chan Event, queueSize),
		done:     make(chan struct{}),
	}
}

// Post queues ev for the next tick. It blocks while the queue is full and
// drops ev once Run has returned.
func (l *Loop) Post(ev Event) {
	select {
	case l.events <- ev:
	case <-l.done:
	}
}

// Step drains the pending events and runs one tick. It reports false if a
// Quit event was received.
func (l *Loop) Step() bool {
	var in Input
	running := true
drain:
	// At most one queue's worth, so a busy sender cannot stall the tick.
	for n := 0; n < queueSize; n++ {
		select {
		case ev := <-l.events:
			switch ev.Kind {
			case PointerDown, PointerMove, PointerUp:
				l.pointer = ev.At
			case Quit:
				running = false
				continue
			}
			in.Events = append(in.Events, ev)
		default:
			break drain
		}
	}
	in.Pointer = l.pointer
	l.c.Tick(in)
	if l.status != nil {
		l.status(l.c.Status())
	}
	return running
}

// Run ticks until ctx is done or a Quit event arrives.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	t := time.NewTicker(l.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
		if !l.Step() {
			return ErrQuit
		}
	}
}
