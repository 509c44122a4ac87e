package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Ctrl+C, Ctrl+Q, ESC
	IntentToggleMute // Ctrl+S

	// World mutation intents, queued and drained at tick start
	IntentMove    // WASD / arrows, one axis step
	IntentRestart // r, valid only in game-over state
)

// Intent represents a parsed semantic action.
// Pure data struct with no function pointers or engine dependencies.
// Move deltas are -1/0/+1 with exactly one nonzero axis.
type Intent struct {
	Type IntentType
	DX   int
	DY   int
}
