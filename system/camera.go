package system

import (
	"github.com/lixenwraith/dungeon-survival/engine"
)

// CameraSystem recomputes the tick-driven camera target from the
// player position. The renderer interpolates its displayed camera
// toward this target once per presentation frame.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Update(w *engine.World) {
	w.UpdateCameraTarget()
}
