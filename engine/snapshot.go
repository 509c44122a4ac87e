package engine

import (
	"github.com/lixenwraith/dungeon-survival/component"
	"github.com/lixenwraith/dungeon-survival/dungeon"
)

// Snapshot is a read-only view of world state taken once per
// presentation frame. Entity collections are copied; the grid pointer
// is shared because grids are immutable once generated.
type Snapshot struct {
	Level    int
	LevelSeq uint64
	Grid     *dungeon.Grid
	Player   component.Player
	Enemies  []component.Enemy
	Items    []component.Item

	CameraTargetX float64
	CameraTargetY float64

	GameOver bool
	Victory  bool
}

// Snapshot copies the mutable state under a read lock. Safe to call
// concurrently with the simulation tick.
func (w *World) Snapshot() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return Snapshot{
		Level:         w.Level,
		LevelSeq:      w.LevelSeq,
		Grid:          w.Grid,
		Player:        w.Player,
		Enemies:       append([]component.Enemy(nil), w.Enemies...),
		Items:         append([]component.Item(nil), w.Items...),
		CameraTargetX: w.CameraTargetX,
		CameraTargetY: w.CameraTargetY,
		GameOver:      w.GameOver,
		Victory:       w.Victory,
	}
}
