package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/dungeon-survival/dungeon"
	"github.com/lixenwraith/dungeon-survival/input"
)

// markerSystem records how often it ran and can flip game over.
type markerSystem struct {
	name     string
	runs     int
	killsRun bool
}

func (m *markerSystem) Name() string { return m.name }

func (m *markerSystem) Update(w *World) {
	m.runs++
	if m.killsRun {
		w.GameOver = true
	}
}

func newTestScheduler(w *World) (*ClockScheduler, *input.IntentQueue) {
	intents := input.NewIntentQueue()
	tp := NewMockTimeProvider(time.Unix(0, 0))
	return NewClockScheduler(w, intents, tp, 100*time.Millisecond), intents
}

func TestProcessTickDrainsIntents(t *testing.T) {
	w := NewWorld(1, nil)
	w.Grid = dungeon.ParseGrid([]string{
		"######",
		"#....#",
		"######",
	})
	w.Player.X, w.Player.Y = 1, 1
	w.Items = nil
	w.Enemies = nil

	cs, intents := newTestScheduler(w)

	intents.Push(input.Intent{Type: input.IntentMove, DX: 1, DY: 0})
	intents.Push(input.Intent{Type: input.IntentMove, DX: 1, DY: 0})
	cs.ProcessTick()

	if w.Player.X != 3 {
		t.Fatalf("player at x=%d, want 3: both queued moves apply in one tick", w.Player.X)
	}
	if cs.TickCount() != 1 {
		t.Fatalf("tick count %d, want 1", cs.TickCount())
	}

	// Queue is empty now; another tick moves nothing
	cs.ProcessTick()
	if w.Player.X != 3 {
		t.Fatal("drained intent applied twice")
	}
}

func TestProcessTickRunsSystemsInOrder(t *testing.T) {
	w := NewWorld(1, nil)
	cs, _ := newTestScheduler(w)

	var order []string
	a := &orderedSystem{name: "first", order: &order}
	b := &orderedSystem{name: "second", order: &order}
	cs.Register(a)
	cs.Register(b)

	cs.ProcessTick()

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("system order %v", order)
	}
}

type orderedSystem struct {
	name  string
	order *[]string
}

func (o *orderedSystem) Name() string    { return o.name }
func (o *orderedSystem) Update(w *World) { *o.order = append(*o.order, o.name) }

func TestTerminalStateStopsSystems(t *testing.T) {
	w := NewWorld(1, nil)
	cs, _ := newTestScheduler(w)

	killer := &markerSystem{name: "killer", killsRun: true}
	after := &markerSystem{name: "after"}
	cs.Register(killer)
	cs.Register(after)

	cs.ProcessTick()
	if after.runs != 0 {
		t.Fatal("system ran after a terminal state flip in the same tick")
	}

	// Once terminal, ticks still count but no system runs
	cs.ProcessTick()
	if killer.runs != 1 {
		t.Fatalf("killer ran %d times, want 1", killer.runs)
	}
	if cs.TickCount() != 2 {
		t.Fatalf("tick count %d, want 2", cs.TickCount())
	}
}

func TestTerminalStateStillDrainsIntents(t *testing.T) {
	w := NewWorld(1, nil)
	w.GameOver = true
	cs, intents := newTestScheduler(w)

	intents.Push(input.Intent{Type: input.IntentRestart})
	cs.ProcessTick()

	if w.GameOver {
		t.Fatal("restart intent not applied while game over")
	}
}

func TestRunDueTickBeforeDeadline(t *testing.T) {
	w := NewWorld(1, nil)
	cs, _ := newTestScheduler(w)

	base := time.Unix(100, 0)
	cs.nextTickDeadline = base

	cs.runDueTick(base.Add(-time.Millisecond))
	if cs.TickCount() != 0 {
		t.Fatal("tick ran before its deadline")
	}
	if !cs.nextTickDeadline.Equal(base) {
		t.Fatal("deadline moved without a tick")
	}
}

func TestRunDueTickOnSchedule(t *testing.T) {
	w := NewWorld(1, nil)
	cs, _ := newTestScheduler(w)

	base := time.Unix(100, 0)
	cs.nextTickDeadline = base

	// Slightly late but within one interval: the deadline advances by
	// exactly one interval, keeping the cadence anchored
	cs.runDueTick(base.Add(3 * time.Millisecond))
	if cs.TickCount() != 1 {
		t.Fatalf("tick count %d, want 1", cs.TickCount())
	}
	if want := base.Add(cs.tickInterval); !cs.nextTickDeadline.Equal(want) {
		t.Fatalf("deadline %v, want %v", cs.nextTickDeadline, want)
	}
}

func TestRunDueTickReAnchorsWhenFarBehind(t *testing.T) {
	w := NewWorld(1, nil)
	cs, _ := newTestScheduler(w)

	base := time.Unix(100, 0)
	cs.nextTickDeadline = base

	// A wakeup ten intervals late runs exactly one tick and re-anchors
	// the deadline to now plus one interval; no backlog is drained
	late := base.Add(10 * cs.tickInterval)
	cs.runDueTick(late)

	if cs.TickCount() != 1 {
		t.Fatalf("tick count %d after one late wakeup, want 1", cs.TickCount())
	}
	if want := late.Add(cs.tickInterval); !cs.nextTickDeadline.Equal(want) {
		t.Fatalf("deadline %v, want re-anchor to %v", cs.nextTickDeadline, want)
	}

	// The next wakeup inside the re-anchored interval does not tick
	cs.runDueTick(late.Add(cs.tickInterval / 2))
	if cs.TickCount() != 1 {
		t.Fatal("catch-up tick ran inside the re-anchored interval")
	}
}

func TestSchedulerStartStop(t *testing.T) {
	w := NewWorld(1, nil)
	intents := input.NewIntentQueue()
	cs := NewClockScheduler(w, intents, &MonotonicTimeProvider{}, time.Millisecond)

	cs.Start()
	cs.Start() // Second start is a no-op

	deadline := time.After(2 * time.Second)
	for cs.TickCount() < 3 {
		select {
		case <-deadline:
			t.Fatal("scheduler produced no ticks")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	cs.Stop()
	cs.Stop() // Second stop is a no-op

	ticks := cs.TickCount()
	time.Sleep(20 * time.Millisecond)
	if cs.TickCount() != ticks {
		t.Fatal("scheduler ticked after Stop returned")
	}
}
