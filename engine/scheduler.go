package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/dungeon-survival/input"
)

// ClockScheduler drives the simulation on a fixed tick, on a loop
// independent of the presentation sampler. Each wakeup runs at most
// one entity update step; when a step lands more than a full interval
// late the deadline is re-anchored instead of running catch-up ticks,
// so the simulation falls behind real time under load by design.
type ClockScheduler struct {
	world        *World
	intents      *input.IntentQueue
	systems      []System
	timeProvider TimeProvider

	tickInterval     time.Duration
	nextTickDeadline time.Time

	// Tick counter for the TPS display and tests
	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler over the world and its intent
// queue. Systems must be registered before Start.
func NewClockScheduler(world *World, intents *input.IntentQueue, tp TimeProvider, tickInterval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		world:        world,
		intents:      intents,
		timeProvider: tp,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
	}
}

// Register appends a system; registration order is execution order.
func (cs *ClockScheduler) Register(sys System) {
	cs.systems = append(cs.systems, sys)
}

// TickCount returns the number of completed ticks.
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		go cs.schedulerLoop()
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.nextTickDeadline = cs.timeProvider.Now().Add(cs.tickInterval)

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		cs.runDueTick(cs.timeProvider.Now())

		sleep := cs.nextTickDeadline.Sub(cs.timeProvider.Now())
		if sleep < time.Millisecond {
			sleep = time.Millisecond
		}
		timer.Reset(sleep)
	}
}

// runDueTick runs one tick if the deadline has passed and advances the
// deadline. A wakeup landing more than a full interval late re-anchors
// to now plus one interval instead of draining the backlog, so at most
// one tick runs per wakeup no matter how late it is.
func (cs *ClockScheduler) runDueTick(now time.Time) {
	if now.Before(cs.nextTickDeadline) {
		return
	}

	cs.ProcessTick()

	cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
	if now.After(cs.nextTickDeadline) {
		cs.nextTickDeadline = now.Add(cs.tickInterval)
	}
}

// ProcessTick advances the simulation by exactly one step: drain all
// queued intents, then run the update systems in order unless the
// world is in a terminal state. Systems that flip a terminal state
// (the death check) end the step early, so no enemy moves or combat
// resolves on the tick the player dies.
func (cs *ClockScheduler) ProcessTick() {
	w := cs.world
	w.Lock()
	defer w.Unlock()

	cs.tickCount.Add(1)

	for _, it := range cs.intents.Consume() {
		w.ApplyIntent(it)
	}

	if w.GameOver || w.Victory {
		return
	}

	for _, sys := range cs.systems {
		sys.Update(w)
		if w.GameOver || w.Victory {
			return
		}
	}
}
