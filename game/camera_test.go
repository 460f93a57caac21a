package game

import (
	"math"
	"testing"

	"snake3d/config"
)

func testCamera() *Camera {
	return NewCamera(config.Default().Camera)
}

func TestDragWrapsAzimuth(t *testing.T) {
	c := testCamera()

	// Drag far enough left to wrap past 2*pi.
	c.Drag(-1000, 0)
	_, az, _ := c.Spherical()
	if az < 0 || az >= 2*math.Pi {
		t.Fatalf("azimuth out of [0, 2pi): %v", az)
	}

	c.Drag(2000, 0)
	_, az, _ = c.Spherical()
	if az < 0 || az >= 2*math.Pi {
		t.Fatalf("azimuth out of [0, 2pi) after opposite drag: %v", az)
	}
}

func TestDragMultipleTurnsInOneEvent(t *testing.T) {
	// Pointer motion is coalesced per frame, so one drag delta can span
	// several full turns.
	cfg := config.Default().Camera
	cfg.InitialAzimuth = 0
	c := NewCamera(cfg)

	// Two full turns plus a quarter turn lands the camera over +Z.
	c.Drag(float32(-(4*math.Pi+math.Pi/2)/cfg.DragSensitivity), 0)

	_, az, _ := c.Spherical()
	if az < 0 || az >= 2*math.Pi {
		t.Fatalf("azimuth out of [0, 2pi): %v", az)
	}
	if math.Abs(float64(az)-math.Pi/2) > 1e-3 {
		t.Fatalf("azimuth: got %v, want pi/2", az)
	}
	if got := c.Quadrant(); got != QuadrantZPos {
		t.Fatalf("quadrant: got %v, want QuadrantZPos", got)
	}
}

func TestDragClampsPolar(t *testing.T) {
	c := testCamera()

	c.Drag(0, 1e6)
	p, _, _ := c.Spherical()
	if p <= 0 || p >= math.Pi {
		t.Fatalf("polar escaped (0, pi): %v", p)
	}

	c.Drag(0, -2e6)
	p, _, _ = c.Spherical()
	if p <= 0 || p >= math.Pi {
		t.Fatalf("polar escaped (0, pi) at the other pole: %v", p)
	}
}

func TestZoomClampsRadius(t *testing.T) {
	cfg := config.Default().Camera
	c := NewCamera(cfg)

	for i := 0; i < 200; i++ {
		c.Zoom(10)
	}
	_, _, r := c.Spherical()
	if r < cfg.MinRadius {
		t.Fatalf("radius below minimum: %v < %v", r, cfg.MinRadius)
	}

	for i := 0; i < 200; i++ {
		c.Zoom(-10)
	}
	_, _, r = c.Spherical()
	if r > cfg.MaxRadius {
		t.Fatalf("radius above maximum: %v > %v", r, cfg.MaxRadius)
	}
}

func TestZoomIsMultiplicative(t *testing.T) {
	cfg := config.Default().Camera
	c := NewCamera(cfg)

	c.Zoom(1)
	_, _, r := c.Spherical()
	want := cfg.InitialRadius - cfg.InitialRadius*1*cfg.ScrollSensitivity
	if math.Abs(float64(r-want)) > 1e-5 {
		t.Fatalf("radius: got %v, want %v", r, want)
	}
}

func TestPositionSphericalToCartesian(t *testing.T) {
	cfg := config.Default().Camera
	cfg.InitialPolar = math.Pi / 2
	cfg.InitialAzimuth = 0
	cfg.InitialRadius = 10
	c := NewCamera(cfg)

	pos := c.Position()
	// polar pi/2, azimuth 0: the eye sits on the +X axis.
	if math.Abs(float64(pos.X()-10)) > 1e-4 ||
		math.Abs(float64(pos.Y())) > 1e-4 ||
		math.Abs(float64(pos.Z())) > 1e-4 {
		t.Fatalf("position: got %v, want (10, 0, 0)", pos)
	}
}

func TestQuadrantClassification(t *testing.T) {
	tests := []struct {
		azimuth float32
		want    Quadrant
	}{
		{0, QuadrantXPos},
		{math.Pi / 4, QuadrantXPos}, // boundary belongs to the lower bucket
		{math.Pi / 2, QuadrantZPos},
		{3 * math.Pi / 4, QuadrantZPos},
		{math.Pi, QuadrantXNeg},
		{5 * math.Pi / 4, QuadrantXNeg},
		{3 * math.Pi / 2, QuadrantZNeg},
		{7 * math.Pi / 4, QuadrantZNeg},
		{7.1 * math.Pi / 4, QuadrantXPos},
	}
	for _, tt := range tests {
		cfg := config.Default().Camera
		cfg.InitialAzimuth = tt.azimuth
		c := NewCamera(cfg)
		if got := c.Quadrant(); got != tt.want {
			t.Errorf("azimuth %v: got quadrant %v, want %v", tt.azimuth, got, tt.want)
		}
	}
}
