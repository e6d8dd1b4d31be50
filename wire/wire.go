// Package wire encodes and parses the line protocol spoken to the flight
// controller.
//
// Each command is one ASCII line:
//
//	C<channel> <value>\n
//
// The sliders front-end also sends a bare reset token, R\n. Nothing is ever
// read back from the device.
package wire

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/w1xm/rc_bridge/channel"
)

// Reset is the reset token sent before the sliders return to neutral.
const Reset = "R\n"

var ErrMalformed = errors.New("malformed command")

// Encode formats a channel command line.
func Encode(ch channel.Channel, v channel.Value) string {
	return "C" + strconv.Itoa(int(ch)) + " " + strconv.Itoa(int(v)) + "\n"
}

// Command is a parsed line. Reset commands carry no channel or value.
type Command struct {
	Reset   bool
	Channel channel.Channel
	Value   channel.Value
}

func (c Command) String() string {
	if c.Reset {
		return "R"
	}
	return strings.TrimSuffix(Encode(c.Channel, c.Value), "\n")
}

// Parse decodes one line, with or without its trailing newline.
func Parse(line string) (Command, error) {
	line = strings.TrimSuffix(line, "\n")
	if line == "R" {
		return Command{Reset: true}, nil
	}
	if len(line) < 2 || line[0] != 'C' {
		return Command{}, fmt.Errorf("%q: %w", line, ErrMalformed)
	}
	parts := strings.Split(line[1:], " ")
	if len(parts) != 2 {
		return Command{}, fmt.Errorf("%q: %w", line, ErrMalformed)
	}
	ch, err := strconv.Atoi(parts[0])
	if err != nil || ch <= 0 {
		return Command{}, fmt.Errorf("%q: bad channel: %w", line, ErrMalformed)
	}
	v, err := strconv.Atoi(parts[1])
	if err != nil {
		return Command{}, fmt.Errorf("%q: bad value: %w", line, ErrMalformed)
	}
	return Command{Channel: channel.Channel(ch), Value: channel.Value(v)}, nil
}
