package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"snake3d/game/types"
)

// Control is a player intent, before it is resolved to a world axis.
type Control int

const (
	ControlForward Control = iota
	ControlBack
	ControlLeft
	ControlRight
	ControlUp
	ControlDown
)

// Key codes as delivered by the windowing layer (GLFW numbering, which
// raylib shares).
const (
	keyA            = 65
	keyD            = 68
	keyS            = 83
	keyW            = 87
	keyRight        = 262
	keyLeft         = 263
	keyDown         = 264
	keyUp           = 265
	keySpace        = 32
	keyLeftShift    = 340
	keyF3           = 292
	keyF11          = 300
	mouseButtonLeft = 0
)

// controlFor maps a directional key code to a control. The second return is
// false for keys that do not steer the snake.
func controlFor(code int) (Control, bool) {
	switch code {
	case keyW, keyUp:
		return ControlForward, true
	case keyS, keyDown:
		return ControlBack, true
	case keyA, keyLeft:
		return ControlLeft, true
	case keyD, keyRight:
		return ControlRight, true
	case keySpace:
		return ControlUp, true
	case keyLeftShift:
		return ControlDown, true
	}
	return 0, false
}

// HeadingFor resolves a control to one of the six world-axis headings. The
// four horizontal controls are camera-relative: the same key maps to a
// different axis depending on which azimuth quadrant the camera occupies,
// so on-screen forward is always the axis facing away from the camera.
// Vertical controls are unconditional.
func HeadingFor(ctrl Control, q Quadrant) mgl32.Vec3 {
	switch ctrl {
	case ControlForward:
		switch q {
		case QuadrantZPos:
			return types.DirZNeg
		case QuadrantXNeg:
			return types.DirXPos
		case QuadrantZNeg:
			return types.DirZPos
		}
		return types.DirXNeg
	case ControlBack:
		switch q {
		case QuadrantZPos:
			return types.DirZPos
		case QuadrantXNeg:
			return types.DirXNeg
		case QuadrantZNeg:
			return types.DirZNeg
		}
		return types.DirXPos
	case ControlLeft:
		switch q {
		case QuadrantZPos:
			return types.DirXNeg
		case QuadrantXNeg:
			return types.DirZNeg
		case QuadrantZNeg:
			return types.DirXPos
		}
		return types.DirZPos
	case ControlRight:
		switch q {
		case QuadrantZPos:
			return types.DirXPos
		case QuadrantXNeg:
			return types.DirZPos
		case QuadrantZNeg:
			return types.DirXNeg
		}
		return types.DirZNeg
	case ControlUp:
		return types.DirYPos
	}
	return types.DirYNeg
}
