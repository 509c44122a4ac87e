package engine

import (
	"math/rand"
	"sync"

	"github.com/lixenwraith/dungeon-survival/component"
	"github.com/lixenwraith/dungeon-survival/core"
	"github.com/lixenwraith/dungeon-survival/dungeon"
	"github.com/lixenwraith/dungeon-survival/input"
	"github.com/lixenwraith/dungeon-survival/parameter"
)

// World owns all mutable state for the active level: the generated
// grid plus the player, enemy and item collections. All mutation goes
// through the simulation tick (external effects arrive as intents
// drained at tick start) and the presentation layer only ever reads
// snapshots, so there is exactly one writer.
//
// Exported fields are accessed by systems running under the world
// lock held by the scheduler.
type World struct {
	mu sync.RWMutex

	rng    *rand.Rand
	sounds core.SoundPlayer

	Level    int
	LevelSeq uint64 // Increments on every level (re)initialization
	Grid     *dungeon.Grid
	Player   component.Player
	Enemies  []component.Enemy
	Items    []component.Item

	// Terminal states; victory is reserved by the rules and never set
	GameOver bool
	Victory  bool

	// Camera focus recomputed per tick, consumed by the renderer's
	// per-frame smoothing
	CameraTargetX float64
	CameraTargetY float64

	ViewportWidth  int
	ViewportHeight int
}

// NewWorld creates a world seeded for reproducible generation and
// initializes the first level. sounds may be nil.
func NewWorld(seed int64, sounds core.SoundPlayer) *World {
	w := &World{
		rng:    rand.New(rand.NewSource(seed)),
		sounds: sounds,
		Level:  1,
	}
	w.Player = component.NewPlayer(0, 0)
	w.InitLevel()
	return w
}

// Lock acquires exclusive access for a full tick.
func (w *World) Lock() { w.mu.Lock() }

// Unlock releases exclusive access.
func (w *World) Unlock() { w.mu.Unlock() }

// InitLevel regenerates the grid and repopulates the level. The
// player keeps health, hunger, attack and defense across levels; only
// the position is resampled. Spawns 5+2L enemies, 8+L items and
// exactly one stairs item. Caller must hold the lock (or own the
// world exclusively, as during construction).
func (w *World) InitLevel() {
	w.Grid = dungeon.Generate(parameter.DungeonWidth, parameter.DungeonHeight, w.rng)
	w.LevelSeq++

	start := w.Grid.RandomFloorTile(w.rng)
	w.Player.X, w.Player.Y = start.X, start.Y

	enemyCount := parameter.EnemyBaseCount + parameter.EnemyCountPerLevel*w.Level
	w.Enemies = make([]component.Enemy, 0, enemyCount)
	for i := 0; i < enemyCount; i++ {
		pos := w.Grid.RandomFloorTile(w.rng)
		w.Enemies = append(w.Enemies, component.NewEnemy(pos.X, pos.Y, w.Level))
	}

	itemCount := parameter.ItemBaseCount + parameter.ItemCountPerLevel*w.Level
	w.Items = make([]component.Item, 0, itemCount+1)
	for i := 0; i < itemCount; i++ {
		pos := w.Grid.RandomFloorTile(w.rng)
		w.Items = append(w.Items, component.NewItem(pos.X, pos.Y, component.RandomItemType(w.rng)))
	}
	stairs := w.Grid.RandomFloorTile(w.rng)
	w.Items = append(w.Items, component.NewItem(stairs.X, stairs.Y, component.ItemStairs))

	w.UpdateCameraTarget()
}

// Reset handles the restart intent: level 1, fresh player, new level.
func (w *World) Reset() {
	w.Level = 1
	w.Player = component.NewPlayer(0, 0)
	w.GameOver = false
	w.Victory = false
	w.InitLevel()
}

// SetViewport records the presentation viewport in tiles and
// recomputes the camera target for the new dimensions.
func (w *World) SetViewport(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ViewportWidth = width
	w.ViewportHeight = height
	w.UpdateCameraTarget()
}

// ApplyIntent applies one queued intent, gated by terminal state:
// moves are ignored after game over, restart only works after it.
func (w *World) ApplyIntent(it input.Intent) {
	switch it.Type {
	case input.IntentMove:
		if w.GameOver || w.Victory {
			return
		}
		w.movePlayer(it.DX, it.DY)
	case input.IntentRestart:
		if !w.GameOver {
			return
		}
		w.Reset()
	}
}

// movePlayer accepts the move only if the destination is not a wall,
// then resolves any pickups on the destination atomically with it.
func (w *World) movePlayer(dx, dy int) {
	nx, ny := w.Player.X+dx, w.Player.Y+dy
	if w.Grid.IsWall(nx, ny) {
		return
	}
	w.Player.X, w.Player.Y = nx, ny
	w.resolvePickups()
}

// resolvePickups applies and removes every item under the player.
// Stairs instead advance the level; the collections are replaced by
// InitLevel, so resolution stops there.
func (w *World) resolvePickups() {
	kept := w.Items[:0]
	for i := range w.Items {
		item := w.Items[i]
		if item.X != w.Player.X || item.Y != w.Player.Y {
			kept = append(kept, item)
			continue
		}

		if item.Type == component.ItemStairs {
			w.PlaySound(core.SoundLevel)
			w.Level++
			w.InitLevel()
			return
		}

		w.PlaySound(pickupSound(item.Type))
		component.ApplyEffect(item.Type, &w.Player)
	}
	w.Items = kept
}

// SetGameOver flips the terminal state once, with the death cue.
func (w *World) SetGameOver() {
	if w.GameOver {
		return
	}
	w.GameOver = true
	w.PlaySound(core.SoundDeath)
}

// UpdateCameraTarget recomputes the desired camera focus from the
// player position, clamped so the view never scrolls past the
// dungeon bounds. Caller must hold the lock.
func (w *World) UpdateCameraTarget() {
	w.CameraTargetX = clampTarget(float64(w.Player.X)-float64(w.ViewportWidth)/2,
		float64(w.Grid.Width()-w.ViewportWidth))
	w.CameraTargetY = clampTarget(float64(w.Player.Y)-float64(w.ViewportHeight)/2,
		float64(w.Grid.Height()-w.ViewportHeight))
}

func clampTarget(v, max float64) float64 {
	if v > max {
		v = max
	}
	if v < 0 {
		v = 0
	}
	return v
}

// PlaySound forwards a cue to the audio collaborator if one exists.
// Playback success never feeds back into game logic.
func (w *World) PlaySound(st core.SoundType) {
	if w.sounds != nil {
		w.sounds.Play(st)
	}
}

func pickupSound(t component.ItemType) core.SoundType {
	switch t {
	case component.ItemHealthPotion:
		return core.SoundPotion
	case component.ItemFood:
		return core.SoundFood
	case component.ItemWeapon:
		return core.SoundWeapon
	default:
		return core.SoundLevel
	}
}
