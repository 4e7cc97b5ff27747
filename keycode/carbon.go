package keycode

// macOS Carbon virtual keycodes (kVK_* from Events.h) and modifier flags for
// RegisterEventHotKey. ANSI layout positions; Carbon hotkeys are positional.

const (
	macCmdKey     = 0x0100 // cmdKey
	macShiftKey   = 0x0200 // shiftKey
	macOptionKey  = 0x0800 // optionKey
	macControlKey = 0x1000 // controlKey
)

var macKeycodes = map[Key]uint32{
	KeyA: 0x00, KeyB: 0x0B, KeyC: 0x08, KeyD: 0x02, KeyE: 0x0E, KeyF: 0x03,
	KeyG: 0x05, KeyH: 0x04, KeyI: 0x22, KeyJ: 0x26, KeyK: 0x28, KeyL: 0x25,
	KeyM: 0x2E, KeyN: 0x2D, KeyO: 0x1F, KeyP: 0x23, KeyQ: 0x0C, KeyR: 0x0F,
	KeyS: 0x01, KeyT: 0x11, KeyU: 0x20, KeyV: 0x09, KeyW: 0x0D, KeyX: 0x07,
	KeyY: 0x10, KeyZ: 0x06,

	Digit0: 0x1D, Digit1: 0x12, Digit2: 0x13, Digit3: 0x14, Digit4: 0x15,
	Digit5: 0x17, Digit6: 0x16, Digit7: 0x1A, Digit8: 0x1C, Digit9: 0x19,

	Backquote: 0x32, Backslash: 0x2A, BracketLeft: 0x21, BracketRight: 0x1E,
	Comma: 0x2B, Equal: 0x18, Minus: 0x1B, Period: 0x2F, Quote: 0x27,
	Semicolon: 0x29, Slash: 0x2C,

	Backspace: 0x33, CapsLock: 0x39, Enter: 0x24, Space: 0x31, Tab: 0x30,

	Delete: 0x75 /* forward delete */, End: 0x77, Home: 0x73,
	Insert: 0x72 /* help */, PageDown: 0x79, PageUp: 0x74,

	ArrowDown: 0x7D, ArrowLeft: 0x7B, ArrowRight: 0x7C, ArrowUp: 0x7E,

	Escape: 0x35, NumLock: 0x47, /* keypad clear */

	Numpad0: 0x52, Numpad1: 0x53, Numpad2: 0x54, Numpad3: 0x55,
	Numpad4: 0x56, Numpad5: 0x57, Numpad6: 0x58, Numpad7: 0x59,
	Numpad8: 0x5B, Numpad9: 0x5C,
	NumpadAdd: 0x45, NumpadDecimal: 0x41, NumpadDivide: 0x4B,
	NumpadEnter: 0x4C, NumpadEqual: 0x51, NumpadMultiply: 0x43,
	NumpadSubtract: 0x4E,

	F1: 0x7A, F2: 0x78, F3: 0x63, F4: 0x76, F5: 0x60, F6: 0x61, F7: 0x62,
	F8: 0x64, F9: 0x65, F10: 0x6D, F11: 0x67, F12: 0x6F, F13: 0x69,
	F14: 0x6B, F15: 0x71, F16: 0x6A, F17: 0x40, F18: 0x4F, F19: 0x50,
	F20: 0x5A,
	// F21-F24 do not exist in the Carbon keycode space: unsupported.

	AudioVolumeDown: 0x49, AudioVolumeMute: 0x4A, AudioVolumeUp: 0x48,
	// PrintScreen, ScrollLock, Pause, and the media transport keys have no
	// Carbon-registrable keycode: unsupported on macOS.
}

// MacKeycode returns the Carbon virtual keycode for k, or false when the key
// cannot be registered on macOS.
func MacKeycode(k Key) (uint32, bool) {
	kc, ok := macKeycodes[k]
	return kc, ok
}

// MacModifiers converts a modifier set to Carbon modifier flags.
func MacModifiers(m Modifiers) uint32 {
	var flags uint32
	if m.Has(ModShift) {
		flags |= macShiftKey
	}
	if m.Has(ModControl) {
		flags |= macControlKey
	}
	if m.Has(ModAlt) {
		flags |= macOptionKey
	}
	if m.Has(ModSuper) {
		flags |= macCmdKey
	}
	return flags
}
