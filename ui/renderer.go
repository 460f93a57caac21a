// Package ui paints scene snapshots with raylib.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"snake3d/game"
	"snake3d/game/types"
)

const (
	hudFontSize = 20
	hudPadding  = 10
)

type Renderer struct {
	background rl.Color
}

func NewRenderer() *Renderer {
	return &Renderer{
		background: toColor(game.ColorBackground),
	}
}

// Draw paints one frame from a scene snapshot.
func (r *Renderer) Draw(s game.Scene) {
	rl.BeginDrawing()
	rl.ClearBackground(r.background)

	camera := rl.Camera3D{
		Position:   toVector3(s.CameraPos),
		Target:     toVector3(s.CameraTarget),
		Up:         toVector3(s.CameraUp),
		Fovy:       s.FovDegrees,
		Projection: rl.CameraPerspective,
	}

	rl.BeginMode3D(camera)
	for _, c := range s.Cubes {
		rl.DrawCube(toVector3(c.Pos), game.CubeSize, game.CubeSize, game.CubeSize, toColor(c.Color))
	}
	for _, l := range s.Lines {
		rl.DrawLine3D(toVector3(l.From), toVector3(l.To), toColor(l.Color))
	}
	rl.EndMode3D()

	r.drawHUD(s)
	rl.EndDrawing()
}

func (r *Renderer) drawHUD(s game.Scene) {
	title := "SNAKE 3D"
	titleWidth := rl.MeasureText(title, hudFontSize)
	rl.DrawText(title, (int32(s.ViewportWidth)-titleWidth)/2, hudPadding, hudFontSize, toColor(game.ColorSnake))

	bottom := int32(s.ViewportHeight) - hudFontSize - hudPadding
	rl.DrawText(fmt.Sprintf("%d", s.Score), hudPadding, bottom, hudFontSize, toColor(game.ColorSnake))

	best := fmt.Sprintf("%d", s.BestScore)
	bestWidth := rl.MeasureText(best, hudFontSize)
	rl.DrawText(best, int32(s.ViewportWidth)-bestWidth-hudPadding, bottom, hudFontSize, toColor(game.ColorSnake))

	if s.ShowDebug {
		rl.DrawFPS(hudPadding, hudPadding)
	}
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func toColor(c types.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
