package engine

// System is one per-tick update pass over the world. The scheduler
// runs systems in registration order while holding the world lock;
// systems mutate world state directly and never lock themselves.
type System interface {
	Name() string
	Update(w *World)
}
