// Package keycode defines the platform-independent key and modifier model:
// an enumerated physical key, a modifier bit-set, name parsing, and the
// translation tables to each platform's native key numbering.
package keycode

import "strings"

// Key identifies a physical key independent of OS scan-code or virtual-key
// numbering. The naming follows W3C UI Events code values (KeyA, Digit1, ...).
type Key uint16

const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9

	Backquote
	Backslash
	BracketLeft
	BracketRight
	Comma
	Equal
	Minus
	Period
	Quote
	Semicolon
	Slash

	Backspace
	CapsLock
	Enter
	Space
	Tab

	Delete
	End
	Home
	Insert
	PageDown
	PageUp

	ArrowDown
	ArrowLeft
	ArrowRight
	ArrowUp

	Escape
	PrintScreen
	ScrollLock
	Pause
	NumLock

	Numpad0
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9
	NumpadAdd
	NumpadDecimal
	NumpadDivide
	NumpadEnter
	NumpadEqual
	NumpadMultiply
	NumpadSubtract

	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24

	AudioVolumeDown
	AudioVolumeMute
	AudioVolumeUp
	MediaPlay
	MediaPause
	MediaStop
	MediaTrackNext
	MediaTrackPrevious

	maxKey // sentinel, keep last
)

var keyNames = map[Key]string{
	KeyA: "KeyA", KeyB: "KeyB", KeyC: "KeyC", KeyD: "KeyD", KeyE: "KeyE",
	KeyF: "KeyF", KeyG: "KeyG", KeyH: "KeyH", KeyI: "KeyI", KeyJ: "KeyJ",
	KeyK: "KeyK", KeyL: "KeyL", KeyM: "KeyM", KeyN: "KeyN", KeyO: "KeyO",
	KeyP: "KeyP", KeyQ: "KeyQ", KeyR: "KeyR", KeyS: "KeyS", KeyT: "KeyT",
	KeyU: "KeyU", KeyV: "KeyV", KeyW: "KeyW", KeyX: "KeyX", KeyY: "KeyY",
	KeyZ: "KeyZ",

	Digit0: "Digit0", Digit1: "Digit1", Digit2: "Digit2", Digit3: "Digit3",
	Digit4: "Digit4", Digit5: "Digit5", Digit6: "Digit6", Digit7: "Digit7",
	Digit8: "Digit8", Digit9: "Digit9",

	Backquote: "Backquote", Backslash: "Backslash", BracketLeft: "BracketLeft",
	BracketRight: "BracketRight", Comma: "Comma", Equal: "Equal",
	Minus: "Minus", Period: "Period", Quote: "Quote", Semicolon: "Semicolon",
	Slash: "Slash",

	Backspace: "Backspace", CapsLock: "CapsLock", Enter: "Enter",
	Space: "Space", Tab: "Tab",

	Delete: "Delete", End: "End", Home: "Home", Insert: "Insert",
	PageDown: "PageDown", PageUp: "PageUp",

	ArrowDown: "ArrowDown", ArrowLeft: "ArrowLeft", ArrowRight: "ArrowRight",
	ArrowUp: "ArrowUp",

	Escape: "Escape", PrintScreen: "PrintScreen", ScrollLock: "ScrollLock",
	Pause: "Pause", NumLock: "NumLock",

	Numpad0: "Numpad0", Numpad1: "Numpad1", Numpad2: "Numpad2",
	Numpad3: "Numpad3", Numpad4: "Numpad4", Numpad5: "Numpad5",
	Numpad6: "Numpad6", Numpad7: "Numpad7", Numpad8: "Numpad8",
	Numpad9: "Numpad9", NumpadAdd: "NumpadAdd", NumpadDecimal: "NumpadDecimal",
	NumpadDivide: "NumpadDivide", NumpadEnter: "NumpadEnter",
	NumpadEqual: "NumpadEqual", NumpadMultiply: "NumpadMultiply",
	NumpadSubtract: "NumpadSubtract",

	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6", F7: "F7",
	F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12", F13: "F13",
	F14: "F14", F15: "F15", F16: "F16", F17: "F17", F18: "F18", F19: "F19",
	F20: "F20", F21: "F21", F22: "F22", F23: "F23", F24: "F24",

	AudioVolumeDown: "AudioVolumeDown", AudioVolumeMute: "AudioVolumeMute",
	AudioVolumeUp: "AudioVolumeUp", MediaPlay: "MediaPlay",
	MediaPause: "MediaPause", MediaStop: "MediaStop",
	MediaTrackNext: "MediaTrackNext", MediaTrackPrevious: "MediaTrackPrevious",
}

// keyAliases maps additional accepted spellings (uppercased) to keys.
// Canonical names are handled separately so this only lists shorthands.
var keyAliases = map[string]Key{
	"`": Backquote, "BACKQUOTE": Backquote,
	"\\": Backslash,
	"[":  BracketLeft,
	"]":  BracketRight,
	",":  Comma,
	"=":  Equal,
	"-":  Minus,
	".":  Period,
	"'":  Quote,
	";":  Semicolon,
	"/":  Slash,

	"0": Digit0, "1": Digit1, "2": Digit2, "3": Digit3, "4": Digit4,
	"5": Digit5, "6": Digit6, "7": Digit7, "8": Digit8, "9": Digit9,

	"A": KeyA, "B": KeyB, "C": KeyC, "D": KeyD, "E": KeyE, "F": KeyF,
	"G": KeyG, "H": KeyH, "I": KeyI, "J": KeyJ, "K": KeyK, "L": KeyL,
	"M": KeyM, "N": KeyN, "O": KeyO, "P": KeyP, "Q": KeyQ, "R": KeyR,
	"S": KeyS, "T": KeyT, "U": KeyU, "V": KeyV, "W": KeyW, "X": KeyX,
	"Y": KeyY, "Z": KeyZ,

	"ESC":    Escape,
	"RETURN": Enter,
	"DOWN":   ArrowDown,
	"LEFT":   ArrowLeft,
	"RIGHT":  ArrowRight,
	"UP":     ArrowUp,

	"NUM0": Numpad0, "NUM1": Numpad1, "NUM2": Numpad2, "NUM3": Numpad3,
	"NUM4": Numpad4, "NUM5": Numpad5, "NUM6": Numpad6, "NUM7": Numpad7,
	"NUM8": Numpad8, "NUM9": Numpad9,
	"NUMADD": NumpadAdd, "NUMPADPLUS": NumpadAdd, "NUMPLUS": NumpadAdd,
	"NUMDECIMAL": NumpadDecimal, "NUMDIVIDE": NumpadDivide,
	"NUMENTER": NumpadEnter, "NUMEQUAL": NumpadEqual,
	"NUMMULTIPLY": NumpadMultiply, "NUMSUBTRACT": NumpadSubtract,

	"VOLUMEDOWN": AudioVolumeDown, "VOLUMEMUTE": AudioVolumeMute,
	"VOLUMEUP": AudioVolumeUp,
	"PLAY":     MediaPlay, "STOP": MediaStop,
	"NEXTTRACK": MediaTrackNext, "PREVTRACK": MediaTrackPrevious,
}

// byUpperName is built once from keyNames for case-insensitive lookup.
var byUpperName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[strings.ToUpper(name)] = k
	}
	return m
}()

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether k is one of the defined key constants.
func (k Key) Valid() bool {
	return k > KeyUnknown && k < maxKey
}

// FromName resolves a key by name, case-insensitively. Both canonical names
// ("KeyA", "Digit5") and common shorthands ("a", "5", "esc") are accepted.
func FromName(name string) (Key, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if k, ok := byUpperName[upper]; ok {
		return k, true
	}
	if k, ok := keyAliases[upper]; ok {
		return k, true
	}
	return KeyUnknown, false
}
