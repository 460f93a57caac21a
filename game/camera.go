package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"snake3d/config"
)

// polarMargin keeps the polar angle strictly away from the poles, where the
// view matrix degenerates.
const polarMargin = 0.01

// Quadrant is one of the four 90-degree azimuth buckets used to remap
// screen-relative controls to world axes. Boundaries sit at 45, 135, 225
// and 315 degrees.
type Quadrant int

const (
	// QuadrantZPos: camera orbits over the +Z side, on-screen forward is -Z.
	QuadrantZPos Quadrant = iota
	// QuadrantXNeg: camera over the -X side, forward is +X.
	QuadrantXNeg
	// QuadrantZNeg: camera over the -Z side, forward is +Z.
	QuadrantZNeg
	// QuadrantXPos: camera over the +X side, forward is -X.
	QuadrantXPos
)

// Camera is a spherical-coordinate orbit camera around the field center.
type Camera struct {
	polar   float32 // in (0, pi), clamped
	azimuth float32 // wrapped into [0, 2*pi)
	radius  float32 // in [MinRadius, MaxRadius]

	cfg config.Camera
}

func NewCamera(cfg config.Camera) *Camera {
	return &Camera{
		polar:   cfg.InitialPolar,
		azimuth: cfg.InitialAzimuth,
		radius:  cfg.InitialRadius,
		cfg:     cfg,
	}
}

// Drag applies a pointer drag. dx and dy are the previous cursor position
// minus the current one, in screen units.
func (c *Camera) Drag(dx, dy float32) {
	// A single event can carry a whole frame of motion, so the delta may
	// span several full turns.
	az := math.Mod(float64(c.azimuth)-float64(dx*c.cfg.DragSensitivity), 2*math.Pi)
	if az < 0 {
		az += 2 * math.Pi
	}
	c.azimuth = float32(az)
	if c.azimuth >= 2*math.Pi {
		c.azimuth -= 2 * math.Pi
	}

	c.polar += dy * c.cfg.DragSensitivity
	if c.polar < polarMargin {
		c.polar = polarMargin
	}
	if c.polar > math.Pi-polarMargin {
		c.polar = math.Pi - polarMargin
	}
}

// Zoom applies a scroll wheel offset, scaling the radius multiplicatively.
func (c *Camera) Zoom(offset float32) {
	c.radius -= c.radius * offset * c.cfg.ScrollSensitivity
	if c.radius > c.cfg.MaxRadius {
		c.radius = c.cfg.MaxRadius
	}
	if c.radius < c.cfg.MinRadius {
		c.radius = c.cfg.MinRadius
	}
}

// Position converts the spherical coordinates to a world-Cartesian eye
// point relative to the orbit center.
func (c *Camera) Position() mgl32.Vec3 {
	sinP := float32(math.Sin(float64(c.polar)))
	cosP := float32(math.Cos(float64(c.polar)))
	sinA := float32(math.Sin(float64(c.azimuth)))
	cosA := float32(math.Cos(float64(c.azimuth)))

	return mgl32.Vec3{
		c.radius * sinP * cosA,
		c.radius * cosP,
		c.radius * sinP * sinA,
	}
}

// Quadrant classifies the current azimuth.
func (c *Camera) Quadrant() Quadrant {
	a := c.azimuth
	switch {
	case a > 0.25*math.Pi && a <= 0.75*math.Pi:
		return QuadrantZPos
	case a > 0.75*math.Pi && a <= 1.25*math.Pi:
		return QuadrantXNeg
	case a > 1.25*math.Pi && a <= 1.75*math.Pi:
		return QuadrantZNeg
	}
	return QuadrantXPos
}

// Spherical returns the raw (polar, azimuth, radius) triple.
func (c *Camera) Spherical() (polar, azimuth, radius float32) {
	return c.polar, c.azimuth, c.radius
}
