package term

import "unicode/utf8"

// Key represents a decoded keyboard event.
type Key struct {
	Type KeyType
	Rune rune // set when Type is KeyRune
}

// KeyType enumerates the kinds of key events the toolkit understands.
type KeyType int

const (
	KeyRune      KeyType = iota // printable character
	KeyEnter                    // Enter / Return
	KeyTab                      // Tab
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyDelete                   // Delete key
	KeyUp                       // arrow up
	KeyDown                     // arrow down
	KeyLeft                     // arrow left
	KeyRight                    // arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyPageUp                   // Page Up
	KeyPageDown                 // Page Down
	KeyEscape                   // Escape
	KeyCtrlC                    // Ctrl+C
	KeyUnknown                  // unrecognized input
)

// escSequences maps standard CSI and SS3 escape sequences to Key values.
// These cover the common terminal emulator key encodings.
var escSequences = map[string]Key{
	// CSI sequences
	"\x1b[A":  {Type: KeyUp},
	"\x1b[B":  {Type: KeyDown},
	"\x1b[C":  {Type: KeyRight},
	"\x1b[D":  {Type: KeyLeft},
	"\x1b[H":  {Type: KeyHome},
	"\x1b[F":  {Type: KeyEnd},
	"\x1b[5~": {Type: KeyPageUp},
	"\x1b[6~": {Type: KeyPageDown},
	"\x1b[3~": {Type: KeyDelete},

	// SS3 variants (sent by some terminals in application mode)
	"\x1bOA": {Type: KeyUp},
	"\x1bOB": {Type: KeyDown},
	"\x1bOC": {Type: KeyRight},
	"\x1bOD": {Type: KeyLeft},
	"\x1bOH": {Type: KeyHome},
	"\x1bOF": {Type: KeyEnd},
}

// ParseKey decodes raw terminal input bytes into a Key. It handles single
// control bytes, escape sequences, and multi-byte UTF-8 runes.
func ParseKey(data []byte) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}

	if len(data) == 1 {
		return parseSingleByte(data[0])
	}

	if data[0] == 0x1b {
		if k, ok := escSequences[string(data)]; ok {
			return k
		}
		return Key{Type: KeyUnknown}
	}

	r, _ := utf8.DecodeRune(data)
	if r == utf8.RuneError {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

// parseSingleByte decodes a lone input byte.
func parseSingleByte(b byte) Key {
	switch b {
	case '\r', '\n':
		return Key{Type: KeyEnter}
	case '\t':
		return Key{Type: KeyTab}
	case 0x7f, 0x08:
		return Key{Type: KeyBackspace}
	case 0x1b:
		return Key{Type: KeyEscape}
	case 0x03:
		return Key{Type: KeyCtrlC}
	}
	if b >= 0x20 && b < 0x7f {
		return Key{Type: KeyRune, Rune: rune(b)}
	}
	return Key{Type: KeyUnknown}
}
