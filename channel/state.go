package channel

// State remembers the last value sent on each channel.
// The zero value is not usable; call NewState.
type State struct {
	last map[Channel]Value
}

func NewState() *State {
	return &State{last: make(map[Channel]Value)}
}

// ShouldSend reports whether v needs to be transmitted on ch, which is the
// case when nothing was sent on ch yet or v differs from the last value. A
// true result records v as sent, whether or not the write later succeeds.
func (s *State) ShouldSend(ch Channel, v Value) bool {
	if last, ok := s.last[ch]; ok && last == v {
		return false
	}
	s.last[ch] = v
	return true
}

// Force records v as sent on ch unconditionally.
func (s *State) Force(ch Channel, v Value) {
	s.last[ch] = v
}

// Last returns the last value recorded for ch.
func (s *State) Last(ch Channel) (Value, bool) {
	v, ok := s.last[ch]
	return v, ok
}

// Snapshot returns a copy of every recorded channel.
func (s *State) Snapshot() map[Channel]Value {
	out := make(map[Channel]Value, len(s.last))
	for k, v := range s.last {
		out[k] = v
	}
	return out
}
