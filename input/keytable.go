package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to game keys
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Key

	// Rune bindings, vi motions included
	Runes map[rune]Key
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Key{
			tcell.KeyUp:     KeyUp,
			tcell.KeyDown:   KeyDown,
			tcell.KeyLeft:   KeyLeft,
			tcell.KeyRight:  KeyRight,
			tcell.KeyEnter:  KeyEnter,
			tcell.KeyEscape: KeyQuit,
			tcell.KeyCtrlC:  KeyQuit,
			tcell.KeyCtrlQ:  KeyQuit,
		},
		Runes: map[rune]Key{
			'k': KeyUp,
			'j': KeyDown,
			'h': KeyLeft,
			'l': KeyRight,
			' ': KeySpace,
			'm': KeyMenu,
			'q': KeyQuit,
		},
	}
}

// FromTcell resolves a terminal key event, KeyNone if unbound
func (t *KeyTable) FromTcell(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return t.Runes[ev.Rune()]
	}
	return t.SpecialKeys[ev.Key()]
}
