package types

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Grid represents the playing field dimensions in cells.
type Grid struct {
	Width  int
	Height int
	Depth  int
}

// Contains reports whether p lies inside the grid bounds.
func (g Grid) Contains(p mgl32.Vec3) bool {
	return p.X() >= 0 && p.X() < float32(g.Width) &&
		p.Y() >= 0 && p.Y() < float32(g.Height) &&
		p.Z() >= 0 && p.Z() < float32(g.Depth)
}

// Volume returns the total number of cells.
func (g Grid) Volume() int {
	return g.Width * g.Height * g.Depth
}

// Color is a base color handed to the renderer.
type Color struct {
	R, G, B, A uint8
}

// The six axis-aligned headings a snake can move along.
var (
	DirXPos = mgl32.Vec3{+1, 0, 0}
	DirXNeg = mgl32.Vec3{-1, 0, 0}
	DirYPos = mgl32.Vec3{0, +1, 0}
	DirYNeg = mgl32.Vec3{0, -1, 0}
	DirZPos = mgl32.Vec3{0, 0, +1}
	DirZNeg = mgl32.Vec3{0, 0, -1}
)
