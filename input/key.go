package input

import "github.com/gdamore/tcell/v2"

// Key is a logical game key, independent of the physical binding
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "unknown"
	}
}

// Source is polled once per tick by the movement system
type Source interface {
	IsPressed(k Key) bool
}

// Pressed is a fixed key set, used for scripted input and tests
type Pressed map[Key]bool

// IsPressed reports whether k is in the set
func (p Pressed) IsPressed(k Key) bool {
	return p[k]
}

// Command is a process-level action decoded from a key, outside the game key set
type Command uint8

const (
	CommandNone Command = iota
	CommandExit
)

// KeyTable maps terminal keys to logical keys
type KeyTable struct {
	SpecialKeys map[tcell.Key]Key
	Runes       map[rune]Key
	ExitKeys    map[tcell.Key]bool
	ExitRunes   map[rune]bool
}

// DefaultKeyTable returns WASD and arrow bindings; Esc, Ctrl-C and q exit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Key{
			tcell.KeyUp:    KeyUp,
			tcell.KeyDown:  KeyDown,
			tcell.KeyLeft:  KeyLeft,
			tcell.KeyRight: KeyRight,
		},
		Runes: map[rune]Key{
			'w': KeyUp, 'W': KeyUp,
			's': KeyDown, 'S': KeyDown,
			'a': KeyLeft, 'A': KeyLeft,
			'd': KeyRight, 'D': KeyRight,
		},
		ExitKeys: map[tcell.Key]bool{
			tcell.KeyEscape: true,
			tcell.KeyCtrlC:  true,
		},
		ExitRunes: map[rune]bool{
			'q': true,
		},
	}
}

// lookup resolves a terminal key event to a logical key or command
func (t *KeyTable) lookup(ev *tcell.EventKey) (Key, bool, Command) {
	if ev.Key() == tcell.KeyRune {
		if t.ExitRunes[ev.Rune()] {
			return 0, false, CommandExit
		}
		k, ok := t.Runes[ev.Rune()]
		return k, ok, CommandNone
	}
	if t.ExitKeys[ev.Key()] {
		return 0, false, CommandExit
	}
	k, ok := t.SpecialKeys[ev.Key()]
	return k, ok, CommandNone
}
