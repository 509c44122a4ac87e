package system

import (
	"github.com/lixenwraith/dungeon-survival/engine"
)

// ChaseSystem moves enemies toward the player with a greedy
// single-axis step. The horizontal axis is always preferred when its
// step is nonzero and unblocked; enemies never move diagonally and
// never path around obstacles, so a concave wall between enemy and
// player stalls the chase. That asymmetry is part of the game's
// difficulty and must not be "fixed".
type ChaseSystem struct{}

func NewChaseSystem() *ChaseSystem {
	return &ChaseSystem{}
}

func (s *ChaseSystem) Name() string {
	return "chase"
}

func (s *ChaseSystem) Update(w *engine.World) {
	px, py := w.Player.X, w.Player.Y

	for i := range w.Enemies {
		e := &w.Enemies[i]

		// Speed divisor gate: act once every e.Speed ticks
		e.SpeedCounter++
		if e.SpeedCounter < e.Speed {
			continue
		}
		e.SpeedCounter = 0

		dx := sign(px - e.X)
		dy := sign(py - e.Y)

		if dx != 0 && !w.Grid.IsWall(e.X+dx, e.Y) {
			e.X += dx
		} else if dy != 0 && !w.Grid.IsWall(e.X, e.Y+dy) {
			e.Y += dy
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
