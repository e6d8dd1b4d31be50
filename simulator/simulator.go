// Package simulator is a stand-in flight controller. It reads the line
// protocol from one end of a pipe and keeps the resulting channel table, so
// the bridge can be run and tested without hardware.
package simulator

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"sync"

	"github.com/w1xm/rc_bridge/channel"
	"github.com/w1xm/rc_bridge/wire"
	"golang.org/x/sync/errgroup"
)

// NumChannels is the size of the simulated channel table.
const NumChannels = 6

type Callback func(cmd wire.Command)

type Simulator struct {
	conn     io.ReadWriteCloser
	callback Callback

	mu       sync.Mutex
	channels [NumChannels]channel.Value
}

// New returns a simulator and the connection the bridge should write to.
// callback, if not nil, is called with every accepted command.
func New(callback Callback) (*Simulator, net.Conn) {
	a, b := net.Pipe()
	s := &Simulator{conn: a, callback: callback}
	s.reset()
	return s, b
}

func (s *Simulator) reset() {
	for i := range s.channels {
		s.channels[i] = channel.Neutral
	}
}

// Channels returns the current channel table; index 0 is channel 1.
func (s *Simulator) Channels() [NumChannels]channel.Value {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.channels
}

// Run reads commands until ctx is canceled or the peer closes.
func (s *Simulator) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	g.Go(func() error {
		// Close the pipe when ctx is canceled to unblock the reader.
		select {
		case <-ctx.Done():
		case <-done:
		}
		return s.conn.Close()
	})
	g.Go(func() error {
		defer close(done)
		return s.reader()
	})
	return g.Wait()
}

func (s *Simulator) reader() error {
	scanner := bufio.NewScanner(s.conn)
	for scanner.Scan() {
		input := scanner.Text()
		if input == "" {
			continue
		}
		log.Printf("srv->fc: %s", input)
		if err := s.apply(input); err != nil {
			log.Printf("parsing %q: %v", input, err)
			continue
		}
	}
	if err := scanner.Err(); err != nil && err != io.ErrClosedPipe {
		return fmt.Errorf("reading pipe: %w", err)
	}
	return nil
}

func (s *Simulator) apply(input string) error {
	cmd, err := wire.Parse(input)
	if err != nil {
		return err
	}
	s.mu.Lock()
	switch {
	case cmd.Reset:
		s.reset()
	case int(cmd.Channel) > NumChannels:
		s.mu.Unlock()
		return fmt.Errorf("no channel %d", cmd.Channel)
	default:
		s.channels[cmd.Channel-1] = channel.Clamp(int(cmd.Value))
	}
	s.mu.Unlock()
	if s.callback != nil {
		s.callback(cmd)
	}
	return nil
}
