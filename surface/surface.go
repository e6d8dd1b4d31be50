// Package surface describes the geometry of the drawing surface front-end:
// the roll/pitch knob area, the throttle slider, the yaw dial and the reset
// button, all in screen pixels with y growing downward.
package surface

import "math"

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Rect is an axis-aligned rectangle. Containment is half-open, so Right and
// Bottom lie just outside it.
type Rect struct {
	Left, Top, Width, Height int
}

func (r Rect) Right() int  { return r.Left + r.Width }
func (r Rect) Bottom() int { return r.Top + r.Height }

func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right() && p.Y >= r.Top && p.Y < r.Bottom()
}

// Clamp bounds p to the rectangle, edges included.
func (r Rect) Clamp(p Point) Point {
	return Point{X: clamp(p.X, r.Left, r.Right()), Y: clamp(p.Y, r.Top, r.Bottom())}
}

// Box is an axis-aligned region with inclusive bounds on every side.
type Box struct {
	MinX, MinY, MaxX, MaxY int
}

func (b Box) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

type Circle struct {
	Center Point
	Radius int
}

func (c Circle) Contains(p Point) bool {
	dx, dy := p.X-c.Center.X, p.Y-c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Angle returns the direction of p as seen from the circle's center, in
// degrees counter-clockwise from the positive x axis (screen y is flipped),
// normalized into [0, 360).
func (c Circle) Angle(p Point) float64 {
	dx, dy := p.X-c.Center.X, p.Y-c.Center.Y
	return Normalize(math.Atan2(float64(-dy), float64(dx)) * 180 / math.Pi)
}

// Normalize wraps an angle in degrees into [0, 360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		// -tiny + 360 rounds up to 360.
		deg = 0
	}
	return deg
}

// Layout is the placement of every control on the surface.
type Layout struct {
	Width, Height int
	Knob          Rect
	Throttle      Rect
	Yaw           Circle
	Reset         Box
}

// DefaultLayout is the 700x500 surface the operator page draws.
func DefaultLayout() Layout {
	return Layout{
		Width:    700,
		Height:   500,
		Knob:     Rect{Left: 50, Top: 100, Width: 250, Height: 250},
		Throttle: Rect{Left: 350, Top: 100, Width: 40, Height: 250},
		Yaw:      Circle{Center: Point{X: 550, Y: 225}, Radius: 75},
		Reset:    Box{MinX: 550, MinY: 400, MaxX: 650, MaxY: 450},
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
