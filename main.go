package main

import (
	"flag"
	"log"
	"runtime"
	"sync"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"snake3d/config"
	"snake3d/event"
	"snake3d/game"
	"snake3d/ui"
)

func init() {
	// The window, the GL context and input polling all live on the main
	// OS thread; the simulation runs on its own goroutine.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Printf("config: %v, continuing with defaults", err)
		}
		cfg = loaded
	}

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		// Reported but not fatal; raylib keeps a headless-ish state that
		// still lets the loop run and exit cleanly.
		log.Printf("window initialization failed, continuing degraded")
	}
	rl.SetTargetFPS(int32(cfg.Window.TargetFPS))

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	queue := event.NewQueue(cfg.Game.QueueCapacity)
	g := game.NewGame(cfg, rng)
	buf := game.NewSceneBuffer()

	// Hand the simulation its initial viewport before it starts consuming.
	queue.Push(event.WindowResized{Width: rl.GetScreenWidth(), Height: rl.GetScreenHeight()})

	ready := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		g.Run(queue, buf, ready)
	}()
	<-ready

	renderer := ui.NewRenderer()
	producer := newEventProducer()

	for !rl.WindowShouldClose() {
		producer.poll(queue)
		renderer.Draw(buf.Latest())
	}

	queue.Push(event.WindowClosed{})
	wg.Wait()

	log.Print(g.Summary())
}

// eventProducer translates raylib's polled input state into the event
// stream the simulation consumes.
type eventProducer struct {
	cursorX, cursorY float32
}

func newEventProducer() *eventProducer {
	pos := rl.GetMousePosition()
	return &eventProducer{cursorX: pos.X, cursorY: pos.Y}
}

var steeringKeys = []int32{
	rl.KeyW, rl.KeyA, rl.KeyS, rl.KeyD,
	rl.KeyUp, rl.KeyDown, rl.KeyLeft, rl.KeyRight,
	rl.KeySpace, rl.KeyLeftShift,
}

func (p *eventProducer) poll(queue *event.Queue) {
	if rl.IsWindowResized() {
		queue.Push(event.WindowResized{
			Width:  rl.GetScreenWidth(),
			Height: rl.GetScreenHeight(),
		})
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		queue.Push(event.MouseButton{Button: int(rl.MouseLeftButton), Pressed: true})
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		queue.Push(event.MouseButton{Button: int(rl.MouseLeftButton), Pressed: false})
	}

	pos := rl.GetMousePosition()
	if pos.X != p.cursorX || pos.Y != p.cursorY {
		queue.Push(event.CursorMoved{X: float64(pos.X), Y: float64(pos.Y)})
		p.cursorX = pos.X
		p.cursorY = pos.Y
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		queue.Push(event.Scroll{YOffset: float64(wheel)})
	}

	for _, key := range steeringKeys {
		if rl.IsKeyPressed(key) {
			queue.Push(event.Key{Code: int(key), Pressed: true})
		}
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		queue.Push(event.Key{Code: int(rl.KeyF3), Pressed: true})
	}
	if rl.IsKeyPressed(rl.KeyF11) {
		// Fullscreen is a window concern, handled here; the event still
		// flows through so the simulation sees the keystroke.
		rl.ToggleFullscreen()
		queue.Push(event.Key{Code: int(rl.KeyF11), Pressed: true})
	}
}
