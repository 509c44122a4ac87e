package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dungeon-survival/audio"
	"github.com/lixenwraith/dungeon-survival/engine"
	"github.com/lixenwraith/dungeon-survival/input"
	"github.com/lixenwraith/dungeon-survival/parameter"
	"github.com/lixenwraith/dungeon-survival/render"
	"github.com/lixenwraith/dungeon-survival/system"
)

// Game wires the world, scheduler, renderer and collaborators
// together and runs the presentation loop.
type Game struct {
	screen    tcell.Screen
	sounds    *audio.SoundManager
	world     *engine.World
	scheduler *engine.ClockScheduler
	renderer  *render.Renderer
	intents   *input.IntentQueue
	keys      *input.KeyTable
}

func NewGame(seed int64, muted bool) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	sounds := audio.NewSoundManager()
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, the game runs without sound
		log.Printf("audio initialization failed: %v", err)
	}
	if muted {
		sounds.ToggleMute()
	}

	world := engine.NewWorld(seed, sounds)
	intents := input.NewIntentQueue()

	scheduler := engine.NewClockScheduler(world, intents, engine.NewMonotonicTimeProvider(), parameter.TickInterval)
	scheduler.Register(system.NewHungerSystem())
	scheduler.Register(system.NewDeathSystem())
	scheduler.Register(system.NewChaseSystem())
	scheduler.Register(system.NewCombatSystem())
	scheduler.Register(system.NewCameraSystem())

	renderer := render.NewRenderer(screen)
	world.SetViewport(renderer.ViewportSize())

	return &Game{
		screen:    screen,
		sounds:    sounds,
		world:     world,
		scheduler: scheduler,
		renderer:  renderer,
		intents:   intents,
		keys:      input.DefaultKeyTable(),
	}, nil
}

// run drives the presentation loop at the target frame rate while the
// scheduler ticks the simulation on its own goroutine. Input events
// are translated to intents and queued; the tick drains them.
func (g *Game) run() {
	g.scheduler.Start()
	defer g.scheduler.Stop()

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			g.renderer.Draw(g.world.Snapshot(), g.scheduler.TickCount())
		}
	}
}

// handleEvent translates one terminal event; returns false on quit.
func (g *Game) handleEvent(ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		g.screen.Sync()
		g.world.SetViewport(g.renderer.ViewportSize())
		return true
	}

	it := g.keys.Translate(ev)
	switch it.Type {
	case input.IntentQuit:
		return false
	case input.IntentToggleMute:
		g.sounds.ToggleMute()
	case input.IntentMove, input.IntentRestart:
		g.intents.Push(it)
	}
	return true
}

func (g *Game) cleanup() {
	g.screen.Fini()
	g.sounds.Cleanup()
}

func main() {
	seed := flag.Int64("seed", 0, "world generation seed (0 = time-based)")
	mute := flag.Bool("mute", false, "start with audio muted")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	game, err := NewGame(*seed, *mute)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer game.cleanup()

	game.run()
}
