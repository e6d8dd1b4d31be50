package channel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMap(t *testing.T) {
	for _, test := range []struct {
		name                                string
		value, inMin, inMax, outMin, outMax float64
		want                                int
	}{
		{"roll left", 50, 50, 300, 1000, 2000, 1000},
		{"roll right", 300, 50, 300, 1000, 2000, 2000},
		{"roll center", 175, 50, 300, 1000, 2000, 1500},
		{"pitch top", 100, 100, 350, 2000, 1000, 2000},
		{"pitch bottom", 350, 100, 350, 2000, 1000, 1000},
		{"pitch center", 225, 100, 350, 2000, 1000, 1500},
		{"truncates", 2, 0, 3, 0, 10, 6},
		{"truncates toward zero", 1, 0, 3, 0, -10, -3},
		{"yaw zero", 0, 0, 360, 1000, 2000, 1000},
		{"yaw half", 180, 0, 360, 1000, 2000, 1500},
		{"yaw almost full", 359.9, 0, 360, 1000, 2000, 1999},
		{"out of range input", 400, 50, 300, 1000, 2000, 2400},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := Map(test.value, test.inMin, test.inMax, test.outMin, test.outMax)
			if got != test.want {
				t.Errorf("Map(%v, %v, %v, %v, %v) = %d, want %d", test.value, test.inMin, test.inMax, test.outMin, test.outMax, got, test.want)
			}
		})
	}
}

func TestMapMonotonic(t *testing.T) {
	for _, r := range []struct{ outMin, outMax float64 }{
		{1000, 2000},
		{2000, 1000},
	} {
		lo, hi := r.outMin, r.outMax
		if lo > hi {
			lo, hi = hi, lo
		}
		prev := Map(50, 50, 300, r.outMin, r.outMax)
		for x := 50; x <= 300; x++ {
			got := Map(float64(x), 50, 300, r.outMin, r.outMax)
			if float64(got) < lo || float64(got) > hi {
				t.Fatalf("Map(%d) = %d, outside [%v, %v]", x, got, lo, hi)
			}
			if r.outMax > r.outMin && got < prev {
				t.Fatalf("Map(%d) = %d, decreased from %d", x, got, prev)
			}
			if r.outMax < r.outMin && got > prev {
				t.Fatalf("Map(%d) = %d, increased from %d", x, got, prev)
			}
			prev = got
		}
	}
}

func TestMapEmptyRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Map with inMin == inMax did not panic")
		}
	}()
	Map(5, 10, 10, 1000, 2000)
}

func TestClamp(t *testing.T) {
	for _, test := range []struct {
		in   int
		want Value
	}{
		{-5, Min},
		{999, Min},
		{1000, 1000},
		{1500, 1500},
		{2000, 2000},
		{2400, Max},
	} {
		if got := Clamp(test.in); got != test.want {
			t.Errorf("Clamp(%d) = %d, want %d", test.in, got, test.want)
		}
	}
}

func TestStateShouldSend(t *testing.T) {
	s := NewState()
	var sent []Value
	for _, v := range []Value{1500, 1500, 1600, 1600, 1500} {
		if s.ShouldSend(Roll, v) {
			sent = append(sent, v)
		}
	}
	if diff := cmp.Diff([]Value{1500, 1600, 1500}, sent); diff != "" {
		t.Errorf("unexpected sends: got(-)/want(+):\n%s", diff)
	}
	if !s.ShouldSend(Pitch, 1600) {
		t.Error("first value on a fresh channel was suppressed")
	}
}

func TestStateForce(t *testing.T) {
	s := NewState()
	s.ShouldSend(Roll, 1800)
	s.ShouldSend(Yaw, 1200)
	for _, ch := range []Channel{Roll, Pitch, Yaw, Throttle} {
		s.Force(ch, Neutral)
	}
	want := map[Channel]Value{Roll: 1500, Pitch: 1500, Yaw: 1500, Throttle: 1500}
	if diff := cmp.Diff(want, s.Snapshot()); diff != "" {
		t.Errorf("unexpected state: got(-)/want(+):\n%s", diff)
	}
	if s.ShouldSend(Roll, Neutral) {
		t.Error("forced value did not suppress an equal send")
	}
	if _, ok := NewState().Last(Roll); ok {
		t.Error("fresh state reports a value for roll")
	}
}
