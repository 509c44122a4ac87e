package system

import (
	"github.com/lixenwraith/dungeon-survival/engine"
)

// CombatSystem resolves combat for every enemy occupying the player's
// tile. Each co-located enemy resolves independently in the same tick
// with no shared cooldown, so stacked enemies all land their hit.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

func (s *CombatSystem) Name() string {
	return "combat"
}

func (s *CombatSystem) Update(w *engine.World) {
	p := &w.Player

	alive := w.Enemies[:0]
	for i := range w.Enemies {
		e := w.Enemies[i]

		if e.X == p.X && e.Y == p.Y {
			damage := e.Damage - p.Defense
			if damage < 1 {
				damage = 1
			}
			p.Health -= damage

			e.Health -= p.Attack
			if e.Health <= 0 {
				continue
			}
		}

		alive = append(alive, e)
	}
	w.Enemies = alive
}
