package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundPotion SoundType = iota // Health potion pickup
	SoundFood                    // Food pickup
	SoundWeapon                  // Weapon pickup
	SoundLevel                   // Stairs reached, level advance
	SoundDeath                   // Player death
	SoundTypeCount
)

// SoundPlayer is the minimal audio interface used by game logic.
// Implementations degrade silently when no backend is available;
// no game behavior depends on playback succeeding.
type SoundPlayer interface {
	Play(SoundType) bool
}
