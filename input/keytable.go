package input

import (
	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal key events to intents. Gating by game state
// (moves ignored when dead, restart ignored when alive) happens where
// intents are drained, not here.
type KeyTable struct {
	SpecialKeys map[tcell.Key]Intent
	Runes       map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyCtrlQ:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlS:  {Type: IntentToggleMute},
			tcell.KeyUp:     {Type: IntentMove, DY: -1},
			tcell.KeyDown:   {Type: IntentMove, DY: 1},
			tcell.KeyLeft:   {Type: IntentMove, DX: -1},
			tcell.KeyRight:  {Type: IntentMove, DX: 1},
		},
		Runes: map[rune]Intent{
			'w': {Type: IntentMove, DY: -1},
			's': {Type: IntentMove, DY: 1},
			'a': {Type: IntentMove, DX: -1},
			'd': {Type: IntentMove, DX: 1},
			'W': {Type: IntentMove, DY: -1},
			'S': {Type: IntentMove, DY: 1},
			'A': {Type: IntentMove, DX: -1},
			'D': {Type: IntentMove, DX: 1},
			'r': {Type: IntentRestart},
			'R': {Type: IntentRestart},
		},
	}
}

// Translate converts a tcell event into an intent, or IntentNone for
// unbound keys and non-key events.
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return Intent{Type: IntentNone}
	}

	if key.Key() == tcell.KeyRune {
		if it, ok := kt.Runes[key.Rune()]; ok {
			return it
		}
		return Intent{Type: IntentNone}
	}

	if it, ok := kt.SpecialKeys[key.Key()]; ok {
		return it
	}
	return Intent{Type: IntentNone}
}
