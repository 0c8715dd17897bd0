package terminal

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1B
)

// keymap maps physical keys to keypad indices.
var keymap = map[byte]byte{
	'1': 0x0, '2': 0x1, '3': 0x2, '4': 0x3,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0x7,
	'a': 0x8, 's': 0x9, 'd': 0xA, 'f': 0xB,
	'z': 0xC, 'x': 0xD, 'c': 0xE, 'v': 0xF,
}

// MapKey returns the keypad index for a physical key. Letters are matched
// case insensitive.
func MapKey(b byte) (byte, bool) {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	key, ok := keymap[b]
	return key, ok
}

// Translate maps raw terminal input to keypad indices in input order and
// reports whether a quit key was part of the input.
func Translate(input []byte) ([]byte, bool) {
	var keys []byte
	for _, b := range input {
		if b == keyEscape || b == keyCtrlC {
			return keys, true
		}
		if key, ok := MapKey(b); ok {
			keys = append(keys, key)
		}
	}
	return keys, false
}
