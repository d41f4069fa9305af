// Package vkey maps human-readable key names to Windows virtual-key codes.
package vkey

import "strings"

// Key is a Windows virtual-key code.
type Key uint16

// Codes referenced by name elsewhere in the program.
const (
	KeyEscape Key = 0x1B
	KeyE      Key = 'E'
)

// Unknown is returned by Name for codes outside the table.
const Unknown = "UNKNOWN"

// names maps canonical and alias spellings to virtual-key codes. Letters
// and digits resolve through the single-character fallback in Resolve.
var names = map[string]Key{
	// Function keys.
	"F1": 0x70, "F2": 0x71, "F3": 0x72, "F4": 0x73,
	"F5": 0x74, "F6": 0x75, "F7": 0x76, "F8": 0x77,
	"F9": 0x78, "F10": 0x79, "F11": 0x7A, "F12": 0x7B,
	"VK_F1": 0x70, "VK_F2": 0x71, "VK_F3": 0x72, "VK_F4": 0x73,
	"VK_F5": 0x74, "VK_F6": 0x75, "VK_F7": 0x76, "VK_F8": 0x77,
	"VK_F9": 0x78, "VK_F10": 0x79, "VK_F11": 0x7A, "VK_F12": 0x7B,

	// Whitespace and editing keys.
	"SPACE": 0x20, "VK_SPACE": 0x20, "SPACEBAR": 0x20,
	"ENTER": 0x0D, "RETURN": 0x0D, "VK_RETURN": 0x0D, "VK_ENTER": 0x0D,
	"TAB": 0x09, "VK_TAB": 0x09,
	"ESC": 0x1B, "ESCAPE": 0x1B, "VK_ESCAPE": 0x1B,
	"BACKSPACE": 0x08, "BACK": 0x08, "VK_BACK": 0x08,
	"DELETE": 0x2E, "DEL": 0x2E, "VK_DELETE": 0x2E,
	"INSERT": 0x2D, "INS": 0x2D, "VK_INSERT": 0x2D,

	// Navigation keys.
	"HOME": 0x24, "VK_HOME": 0x24,
	"END": 0x23, "VK_END": 0x23,
	"PAGEUP": 0x21, "PGUP": 0x21, "VK_PRIOR": 0x21,
	"PAGEDOWN": 0x22, "PGDN": 0x22, "VK_NEXT": 0x22,
	"LEFT": 0x25, "VK_LEFT": 0x25,
	"UP": 0x26, "VK_UP": 0x26,
	"RIGHT": 0x27, "VK_RIGHT": 0x27,
	"DOWN": 0x28, "VK_DOWN": 0x28,

	// Modifier keys.
	"SHIFT": 0x10, "VK_SHIFT": 0x10,
	"LSHIFT": 0xA0, "VK_LSHIFT": 0xA0,
	"RSHIFT": 0xA1, "VK_RSHIFT": 0xA1,
	"CTRL": 0x11, "CONTROL": 0x11, "VK_CONTROL": 0x11,
	"LCTRL": 0xA2, "LCONTROL": 0xA2, "VK_LCONTROL": 0xA2,
	"RCTRL": 0xA3, "RCONTROL": 0xA3, "VK_RCONTROL": 0xA3,
	"ALT": 0x12, "VK_MENU": 0x12,
	"LALT": 0xA4, "VK_LMENU": 0xA4,
	"RALT": 0xA5, "VK_RMENU": 0xA5,

	// Numpad keys.
	"NUMPAD0": 0x60, "VK_NUMPAD0": 0x60,
	"NUMPAD1": 0x61, "VK_NUMPAD1": 0x61,
	"NUMPAD2": 0x62, "VK_NUMPAD2": 0x62,
	"NUMPAD3": 0x63, "VK_NUMPAD3": 0x63,
	"NUMPAD4": 0x64, "VK_NUMPAD4": 0x64,
	"NUMPAD5": 0x65, "VK_NUMPAD5": 0x65,
	"NUMPAD6": 0x66, "VK_NUMPAD6": 0x66,
	"NUMPAD7": 0x67, "VK_NUMPAD7": 0x67,
	"NUMPAD8": 0x68, "VK_NUMPAD8": 0x68,
	"NUMPAD9": 0x69, "VK_NUMPAD9": 0x69,

	// OEM punctuation keys (US layout positions).
	"SEMICOLON": 0xBA, "VK_OEM_1": 0xBA,
	"PLUS": 0xBB, "VK_OEM_PLUS": 0xBB,
	"COMMA": 0xBC, "VK_OEM_COMMA": 0xBC,
	"MINUS": 0xBD, "VK_OEM_MINUS": 0xBD,
	"PERIOD": 0xBE, "VK_OEM_PERIOD": 0xBE,
	"SLASH": 0xBF, "VK_OEM_2": 0xBF,
	"TILDE": 0xC0, "VK_OEM_3": 0xC0,
	"LEFTBRACKET": 0xDB, "VK_OEM_4": 0xDB,
	"BACKSLASH": 0xDC, "VK_OEM_5": 0xDC,
	"RIGHTBRACKET": 0xDD, "VK_OEM_6": 0xDD,
	"QUOTE": 0xDE, "VK_OEM_7": 0xDE,
}

// canonical maps each code in the table back to its preferred spelling.
var canonical = map[Key]string{
	0x20: "SPACE", 0x0D: "ENTER", 0x09: "TAB", 0x1B: "ESC",
	0x08: "BACKSPACE", 0x2E: "DELETE", 0x2D: "INSERT",
	0x24: "HOME", 0x23: "END", 0x21: "PAGEUP", 0x22: "PAGEDOWN",
	0x25: "LEFT", 0x26: "UP", 0x27: "RIGHT", 0x28: "DOWN",
	0x10: "SHIFT", 0xA0: "LSHIFT", 0xA1: "RSHIFT",
	0x11: "CTRL", 0xA2: "LCTRL", 0xA3: "RCTRL",
	0x12: "ALT", 0xA4: "LALT", 0xA5: "RALT",
	0x60: "NUMPAD0", 0x61: "NUMPAD1", 0x62: "NUMPAD2", 0x63: "NUMPAD3",
	0x64: "NUMPAD4", 0x65: "NUMPAD5", 0x66: "NUMPAD6", 0x67: "NUMPAD7",
	0x68: "NUMPAD8", 0x69: "NUMPAD9",
	0x70: "F1", 0x71: "F2", 0x72: "F3", 0x73: "F4",
	0x74: "F5", 0x75: "F6", 0x76: "F7", 0x77: "F8",
	0x78: "F9", 0x79: "F10", 0x7A: "F11", 0x7B: "F12",
	0xBA: "SEMICOLON", 0xBB: "PLUS", 0xBC: "COMMA", 0xBD: "MINUS",
	0xBE: "PERIOD", 0xBF: "SLASH", 0xC0: "TILDE",
	0xDB: "LEFTBRACKET", 0xDC: "BACKSLASH", 0xDD: "RIGHTBRACKET",
	0xDE: "QUOTE",
}

// Resolve converts a key name to its virtual-key code. Lookup is
// case-insensitive and ignores surrounding whitespace. A single letter or
// digit not in the table resolves to its own character code.
func Resolve(name string) (Key, bool) {
	trimmed := strings.ToUpper(strings.TrimSpace(name))
	if trimmed == "" {
		return 0, false
	}
	if code, ok := names[trimmed]; ok {
		return code, true
	}
	if len(trimmed) == 1 {
		c := trimmed[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return Key(c), true
		}
	}
	return 0, false
}

// Name converts a virtual-key code back to its canonical spelling.
// Codes outside the table map to the Unknown sentinel.
func Name(code Key) string {
	if (code >= 'A' && code <= 'Z') || (code >= '0' && code <= '9') {
		return string(rune(code))
	}
	if name, ok := canonical[code]; ok {
		return name
	}
	return Unknown
}
