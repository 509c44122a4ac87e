package system

import (
	"github.com/lixenwraith/dungeon-survival/engine"
	"github.com/lixenwraith/dungeon-survival/parameter"
)

// HungerSystem advances the player's hunger decay. Every 10th tick
// hunger drops by one, floored at zero; each decay tick spent at zero
// hunger costs health.
type HungerSystem struct{}

func NewHungerSystem() *HungerSystem {
	return &HungerSystem{}
}

func (s *HungerSystem) Name() string {
	return "hunger"
}

func (s *HungerSystem) Update(w *engine.World) {
	p := &w.Player

	p.HungerTicks++
	if p.HungerTicks < parameter.HungerDecayTicks {
		return
	}
	p.HungerTicks = 0

	if p.Hunger > 0 {
		p.Hunger--
	}
	if p.Hunger == 0 {
		p.Health -= parameter.StarvationDamage
	}
}
