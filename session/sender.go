package session

import (
	"log"

	"github.com/w1xm/rc_bridge/transport"
)

// sender sends lines best effort. A failure is logged and only changes the
// online flag; the next send is attempted as usual.
type sender struct {
	tx     transport.Transport
	online bool
}

func (s *sender) send(line string) bool {
	if err := s.tx.Send(line); err != nil {
		log.Printf("sending command: %v", err)
		s.online = false
		return false
	}
	s.online = true
	return true
}
