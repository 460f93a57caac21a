package game

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"snake3d/game/types"
)

// CubeSize is the edge length of an entity cube inside its unit grid cell.
const CubeSize = 0.8

// Entity and overlay colors.
var (
	ColorBackground = types.Color{R: 13, G: 26, B: 38, A: 255}
	ColorFood       = types.Color{R: 204, G: 25, B: 25, A: 255}
	ColorSnake      = types.Color{R: 230, G: 255, B: 0, A: 255}
	ColorBorder     = types.Color{R: 204, G: 51, B: 51, A: 102}
	ColorHeading    = types.Color{R: 230, G: 255, B: 0, A: 26}
	ColorAxisX      = types.Color{R: 255, G: 0, B: 0, A: 255}
	ColorAxisY      = types.Color{R: 0, G: 0, B: 255, A: 255}
	ColorAxisZ      = types.Color{R: 0, G: 255, B: 0, A: 255}
)

// Cube is one opaque cube entity: a world-space center and a base color.
type Cube struct {
	Pos   mgl32.Vec3
	Color types.Color
}

// Line is a wireframe segment in world space.
type Line struct {
	From, To mgl32.Vec3
	Color    types.Color
}

// Scene is everything the renderer needs for one frame.
type Scene struct {
	CameraPos    mgl32.Vec3
	CameraTarget mgl32.Vec3
	CameraUp     mgl32.Vec3
	FovDegrees   float32

	Cubes []Cube
	Lines []Line

	Score     int
	BestScore int

	ViewportWidth  int
	ViewportHeight int
	ShowDebug      bool
}

// SceneBuffer hands the latest published scene from the simulation
// goroutine to the render thread.
type SceneBuffer struct {
	mu    sync.Mutex
	scene Scene
}

func NewSceneBuffer() *SceneBuffer {
	return &SceneBuffer{}
}

// Publish replaces the buffered scene.
func (b *SceneBuffer) Publish(s Scene) {
	b.mu.Lock()
	b.scene = s
	b.mu.Unlock()
}

// Latest returns the most recently published scene.
func (b *SceneBuffer) Latest() Scene {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.scene
}

// buildScene assembles the render-ready entity list: the food cube, the
// snake segments head to tail, the field border wireframe, the heading
// indicator lines through the head along all three axes, and the axis
// overlay when the debug toggle is on. World space is the grid translated
// so the field is centered on the origin.
func (g *Game) buildScene() Scene {
	w := float32(g.grid.Width)
	h := float32(g.grid.Height)
	d := float32(g.grid.Depth)
	// Cell coordinates to world: cube centers sit half a cell in, and the
	// whole field is shifted to straddle the origin.
	off := mgl32.Vec3{CubeSize/2 - w/2, CubeSize/2 - h/2, CubeSize/2 - d/2}
	corner := mgl32.Vec3{-w / 2, -h / 2, -d / 2}

	s := Scene{
		CameraPos:      g.camera.Position(),
		CameraTarget:   mgl32.Vec3{},
		CameraUp:       types.DirYPos,
		FovDegrees:     g.cfg.Camera.FovDegrees,
		Score:          g.snake.Length(),
		BestScore:      g.snake.BestLength(),
		ViewportWidth:  g.viewportW,
		ViewportHeight: g.viewportH,
		ShowDebug:      g.showDebug,
	}

	s.Cubes = append(s.Cubes, Cube{Pos: g.food.Food().Add(off), Color: ColorFood})
	g.segments = g.snake.Segments(g.segments[:0])
	for _, p := range g.segments {
		s.Cubes = append(s.Cubes, Cube{Pos: p.Add(off), Color: ColorSnake})
	}

	s.Lines = appendBorderLines(s.Lines, corner, w, h, d)
	s.Lines = appendHeadingLines(s.Lines, g.snake.HeadPosition().Add(off), corner, w, h, d)
	if g.showDebug {
		s.Lines = appendAxisLines(s.Lines)
	}
	return s
}

// appendBorderLines adds the bottom and top rectangles of the field bounds.
func appendBorderLines(lines []Line, corner mgl32.Vec3, w, h, d float32) []Line {
	for _, y := range []float32{0, h} {
		c0 := corner.Add(mgl32.Vec3{0, y, 0})
		c1 := corner.Add(mgl32.Vec3{w, y, 0})
		c2 := corner.Add(mgl32.Vec3{w, y, d})
		c3 := corner.Add(mgl32.Vec3{0, y, d})
		lines = append(lines,
			Line{From: c0, To: c1, Color: ColorBorder},
			Line{From: c1, To: c2, Color: ColorBorder},
			Line{From: c2, To: c3, Color: ColorBorder},
			Line{From: c3, To: c0, Color: ColorBorder},
		)
	}
	return lines
}

// appendHeadingLines adds, for each axis, the four edges of the square tube
// that the head cube would sweep when traveling along that axis. Together
// they show which rows of the field the head is lined up with.
func appendHeadingLines(lines []Line, head, corner mgl32.Vec3, w, h, d float32) []Line {
	const hs = CubeSize / 2

	// Along X.
	for _, dy := range []float32{-hs, +hs} {
		for _, dz := range []float32{-hs, +hs} {
			lines = append(lines, Line{
				From:  mgl32.Vec3{corner.X(), head.Y() + dy, head.Z() + dz},
				To:    mgl32.Vec3{corner.X() + w, head.Y() + dy, head.Z() + dz},
				Color: ColorHeading,
			})
		}
	}
	// Along Y.
	for _, dx := range []float32{-hs, +hs} {
		for _, dz := range []float32{-hs, +hs} {
			lines = append(lines, Line{
				From:  mgl32.Vec3{head.X() + dx, corner.Y(), head.Z() + dz},
				To:    mgl32.Vec3{head.X() + dx, corner.Y() + h, head.Z() + dz},
				Color: ColorHeading,
			})
		}
	}
	// Along Z.
	for _, dx := range []float32{-hs, +hs} {
		for _, dy := range []float32{-hs, +hs} {
			lines = append(lines, Line{
				From:  mgl32.Vec3{head.X() + dx, head.Y() + dy, corner.Z()},
				To:    mgl32.Vec3{head.X() + dx, head.Y() + dy, corner.Z() + d},
				Color: ColorHeading,
			})
		}
	}
	return lines
}

// appendAxisLines adds unit axis markers at the world origin.
func appendAxisLines(lines []Line) []Line {
	o := mgl32.Vec3{}
	return append(lines,
		Line{From: o, To: types.DirXPos, Color: ColorAxisX},
		Line{From: o, To: types.DirYPos, Color: ColorAxisY},
		Line{From: o, To: types.DirZPos, Color: ColorAxisZ},
	)
}
