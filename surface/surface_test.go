package surface

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRect(t *testing.T) {
	r := DefaultLayout().Knob
	if got, want := r.Center(), (Point{175, 225}); got != want {
		t.Errorf("Center() = %+v, want %+v", got, want)
	}
	for _, test := range []struct {
		p    Point
		want bool
	}{
		{Point{50, 100}, true},
		{Point{299, 349}, true},
		{Point{300, 200}, false},
		{Point{200, 350}, false},
		{Point{49, 200}, false},
	} {
		if got := r.Contains(test.p); got != test.want {
			t.Errorf("Contains(%+v) = %v, want %v", test.p, got, test.want)
		}
	}
	for _, test := range []struct {
		p, want Point
	}{
		{Point{0, 0}, Point{50, 100}},
		{Point{400, 400}, Point{300, 350}},
		{Point{120, 130}, Point{120, 130}},
		{Point{300, 350}, Point{300, 350}},
	} {
		if diff := cmp.Diff(test.want, r.Clamp(test.p)); diff != "" {
			t.Errorf("Clamp(%+v): got(-)/want(+):\n%s", test.p, diff)
		}
	}
}

func TestResetBoxInclusive(t *testing.T) {
	b := DefaultLayout().Reset
	for _, p := range []Point{{550, 400}, {650, 450}, {600, 425}} {
		if !b.Contains(p) {
			t.Errorf("reset box does not contain %+v", p)
		}
	}
	for _, p := range []Point{{549, 400}, {651, 450}, {600, 451}} {
		if b.Contains(p) {
			t.Errorf("reset box contains %+v", p)
		}
	}
}

func TestCircle(t *testing.T) {
	c := DefaultLayout().Yaw
	for _, test := range []struct {
		p     Point
		in    bool
		angle float64
	}{
		{Point{625, 225}, true, 0},
		{Point{550, 150}, true, 90},
		{Point{475, 225}, true, 180},
		{Point{550, 300}, true, 270},
		{Point{600, 175}, true, 45},
		{Point{626, 225}, false, 0},
	} {
		if got := c.Contains(test.p); got != test.in {
			t.Errorf("Contains(%+v) = %v, want %v", test.p, got, test.in)
		}
		if got := c.Angle(test.p); math.Abs(got-test.angle) > 1e-9 {
			t.Errorf("Angle(%+v) = %v, want %v", test.p, got, test.angle)
		}
	}
}

func TestNormalize(t *testing.T) {
	for _, test := range []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{720, 0},
		{-90, 270},
		{-180, 180},
		{-1e-15, 0},
		{359.5, 359.5},
	} {
		got := Normalize(test.in)
		if got < 0 || got >= 360 {
			t.Errorf("Normalize(%v) = %v, outside [0, 360)", test.in, got)
		}
		if math.Abs(got-test.want) > 1e-9 {
			t.Errorf("Normalize(%v) = %v, want %v", test.in, got, test.want)
		}
	}
}
