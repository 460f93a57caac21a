// Package game contains the simulation core: the field, the snake automaton,
// the orbit camera, the fixed-timestep driver and the loop that ties them to
// the event queue.
package game

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"snake3d/config"
	"snake3d/event"
	"snake3d/game/entity"
	"snake3d/game/manager"
	"snake3d/game/types"
)

// Game owns all simulation state. It is confined to the simulation
// goroutine; the render thread only ever sees published Scene snapshots.
type Game struct {
	UUID string

	cfg    config.Config
	grid   types.Grid
	food   *manager.FoodManager
	snake  *entity.Snake
	stats  *manager.StateManager
	camera *Camera
	ticker *Ticker

	viewportW int
	viewportH int

	dragging bool
	cursorX  float64
	cursorY  float64

	showDebug bool
	done      bool

	segments []mgl32.Vec3 // scratch for scene building
}

func NewGame(cfg config.Config, rng *rand.Rand) *Game {
	grid := types.Grid{
		Width:  cfg.Field.Width,
		Height: cfg.Field.Height,
		Depth:  cfg.Field.Depth,
	}
	food := manager.NewFoodManager(grid, rng)

	return &Game{
		UUID:      uuid.New().String(),
		cfg:       cfg,
		grid:      grid,
		food:      food,
		snake:     entity.NewSnake(grid, food),
		stats:     manager.NewStateManager(),
		camera:    NewCamera(cfg.Camera),
		ticker:    NewTicker(cfg.Game.TickSeconds),
		viewportW: cfg.Window.Width,
		viewportH: cfg.Window.Height,
	}
}

// HandleEvent applies one input event to the simulation state.
func (g *Game) HandleEvent(e event.Event) {
	switch ev := e.(type) {
	case event.WindowResized:
		g.viewportW = ev.Width
		g.viewportH = ev.Height
	case event.WindowClosed:
		g.done = true
	case event.MouseButton:
		if ev.Button == mouseButtonLeft {
			g.dragging = ev.Pressed
		}
	case event.CursorMoved:
		if g.dragging {
			g.camera.Drag(
				float32(g.cursorX-ev.X),
				float32(g.cursorY-ev.Y),
			)
		}
		g.cursorX = ev.X
		g.cursorY = ev.Y
	case event.Scroll:
		g.camera.Zoom(float32(ev.YOffset))
	case event.Key:
		if !ev.Pressed {
			return
		}
		if ctrl, ok := controlFor(ev.Code); ok {
			g.snake.SetDirection(HeadingFor(ctrl, g.camera.Quadrant()))
		}
		if ev.Code == keyF3 {
			g.showDebug = !g.showDebug
		}
	}
}

// Advance feeds dt seconds of wall-clock time to the fixed-timestep driver
// and runs the due simulation steps.
func (g *Game) Advance(dt float64) {
	for steps := g.ticker.Advance(dt); steps > 0; steps-- {
		lengthBefore := g.snake.Length()
		switch g.snake.Step() {
		case entity.StepAte:
			g.stats.RecordApple()
		case entity.StepReset:
			g.stats.RecordReset(lengthBefore)
		}
		g.stats.UpdateScore(g.snake.Length())
	}
}

// Done reports whether a window-close event has been consumed.
func (g *Game) Done() bool {
	return g.done
}

// Scene builds a render snapshot of the current state.
func (g *Game) Scene() Scene {
	return g.buildScene()
}

// Summary describes the finished session for the shutdown log.
func (g *Game) Summary() string {
	return fmt.Sprintf("session %s: apples=%d resets=%d best length=%d",
		g.UUID, g.stats.ApplesEaten(), g.stats.Resets(), g.snake.BestLength())
}

// Run is the simulation loop. It drains the queue once per iteration in
// arrival order, advances the fixed timestep, and publishes a scene for the
// render thread. ready is closed after the first scene is available, so the
// caller can hold back events until the loop is consuming them. Run returns
// once a window-close event has been observed.
func (g *Game) Run(queue *event.Queue, buf *SceneBuffer, ready chan<- struct{}) {
	for _, e := range queue.Drain() {
		g.HandleEvent(e)
	}
	buf.Publish(g.Scene())
	close(ready)

	last := time.Now()
	for !g.done {
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		for _, e := range queue.Drain() {
			g.HandleEvent(e)
		}
		g.Advance(dt)
		buf.Publish(g.Scene())

		time.Sleep(time.Millisecond)
	}
}
