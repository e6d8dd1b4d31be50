// Package transport carries encoded command lines to the flight controller.
package transport

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/tarm/serial"
)

// Transport sends one encoded line. Implementations never retry.
type Transport interface {
	Send(line string) error
}

// ErrUnavailable is returned by Open when the port cannot be opened.
var ErrUnavailable = errors.New("transport unavailable")

// WriteError reports a failed send of Line.
type WriteError struct {
	Line string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %q: %v", strings.TrimSuffix(e.Line, "\n"), e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

const (
	DefaultBaud        = 115200
	DefaultReadTimeout = 1 * time.Second
)

// Config selects the serial port.
type Config struct {
	Name        string
	Baud        int
	ReadTimeout time.Duration
}

// Port is a Transport over an open byte stream, normally a serial port.
type Port struct {
	name string

	mu sync.Mutex
	w  io.WriteCloser
}

// Open opens the serial port described by c. A zero Baud or ReadTimeout
// takes the default.
func Open(c Config) (*Port, error) {
	if c.Baud == 0 {
		c.Baud = DefaultBaud
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	s, err := serial.OpenPort(&serial.Config{Name: c.Name, Baud: c.Baud, ReadTimeout: c.ReadTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening %q: %v: %w", c.Name, err, ErrUnavailable)
	}
	log.Printf("opened %q at %d baud", c.Name, c.Baud)
	return New(c.Name, s), nil
}

// New wraps an already open stream, such as one end of a simulator pipe.
func New(name string, w io.WriteCloser) *Port {
	return &Port{name: name, w: w}
}

func (p *Port) Send(line string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.w == nil {
		return &WriteError{Line: line, Err: fmt.Errorf("%s: port closed", p.name)}
	}
	if _, err := io.WriteString(p.w, line); err != nil {
		return &WriteError{Line: line, Err: err}
	}
	log.Printf("Sent: %s", strings.TrimSuffix(line, "\n"))
	return nil
}

// Close closes the port. Later sends fail.
func (p *Port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.w == nil {
		return nil
	}
	err := p.w.Close()
	p.w = nil
	log.Printf("closed %q", p.name)
	return err
}

// DryRun logs every would-be command instead of sending it.
type DryRun struct {
	Logger *log.Logger
}

func (d DryRun) Send(line string) error {
	msg := "dry run: " + strings.TrimSuffix(line, "\n")
	if d.Logger != nil {
		d.Logger.Print(msg)
	} else {
		log.Print(msg)
	}
	return nil
}
