package system

import (
	"github.com/lixenwraith/dungeon-survival/engine"
)

// DeathSystem checks for player death after hunger decay and before
// any enemy acts. Combat damage from the previous tick surfaces here,
// so a killing blow ends the simulation one tick after it lands.
type DeathSystem struct{}

func NewDeathSystem() *DeathSystem {
	return &DeathSystem{}
}

func (s *DeathSystem) Name() string {
	return "death"
}

func (s *DeathSystem) Update(w *engine.World) {
	if w.Player.Health <= 0 {
		w.SetGameOver()
	}
}
