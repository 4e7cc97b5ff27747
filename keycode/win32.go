package keycode

// Windows virtual-key codes and RegisterHotKey modifier flags. The table is
// plain data with no build constraint so mapping tests run on every platform.

const (
	winModAlt     = 0x0001 // MOD_ALT
	winModControl = 0x0002 // MOD_CONTROL
	winModShift   = 0x0004 // MOD_SHIFT
	winModWin     = 0x0008 // MOD_WIN
)

var virtualKeys = map[Key]uint32{
	KeyA: 0x41, KeyB: 0x42, KeyC: 0x43, KeyD: 0x44, KeyE: 0x45, KeyF: 0x46,
	KeyG: 0x47, KeyH: 0x48, KeyI: 0x49, KeyJ: 0x4A, KeyK: 0x4B, KeyL: 0x4C,
	KeyM: 0x4D, KeyN: 0x4E, KeyO: 0x4F, KeyP: 0x50, KeyQ: 0x51, KeyR: 0x52,
	KeyS: 0x53, KeyT: 0x54, KeyU: 0x55, KeyV: 0x56, KeyW: 0x57, KeyX: 0x58,
	KeyY: 0x59, KeyZ: 0x5A,

	Digit0: 0x30, Digit1: 0x31, Digit2: 0x32, Digit3: 0x33, Digit4: 0x34,
	Digit5: 0x35, Digit6: 0x36, Digit7: 0x37, Digit8: 0x38, Digit9: 0x39,

	Backquote: 0xC0, Backslash: 0xDC, BracketLeft: 0xDB, BracketRight: 0xDD,
	Comma: 0xBC, Equal: 0xBB, Minus: 0xBD, Period: 0xBE, Quote: 0xDE,
	Semicolon: 0xBA, Slash: 0xBF,

	Backspace: 0x08, CapsLock: 0x14, Enter: 0x0D, Space: 0x20, Tab: 0x09,

	Delete: 0x2E, End: 0x23, Home: 0x24, Insert: 0x2D,
	PageDown: 0x22, PageUp: 0x21,

	ArrowDown: 0x28, ArrowLeft: 0x25, ArrowRight: 0x27, ArrowUp: 0x26,

	Escape: 0x1B, PrintScreen: 0x2C, ScrollLock: 0x91, Pause: 0x13,
	NumLock: 0x90,

	Numpad0: 0x60, Numpad1: 0x61, Numpad2: 0x62, Numpad3: 0x63,
	Numpad4: 0x64, Numpad5: 0x65, Numpad6: 0x66, Numpad7: 0x67,
	Numpad8: 0x68, Numpad9: 0x69,
	NumpadAdd: 0x6B, NumpadDecimal: 0x6E, NumpadDivide: 0x6F,
	NumpadEnter: 0x0D, NumpadMultiply: 0x6A, NumpadSubtract: 0x6D,
	// NumpadEqual has no virtual-key code: unsupported on Windows.

	F1: 0x70, F2: 0x71, F3: 0x72, F4: 0x73, F5: 0x74, F6: 0x75, F7: 0x76,
	F8: 0x77, F9: 0x78, F10: 0x79, F11: 0x7A, F12: 0x7B, F13: 0x7C,
	F14: 0x7D, F15: 0x7E, F16: 0x7F, F17: 0x80, F18: 0x81, F19: 0x82,
	F20: 0x83, F21: 0x84, F22: 0x85, F23: 0x86, F24: 0x87,

	AudioVolumeDown: 0xAE, AudioVolumeMute: 0xAD, AudioVolumeUp: 0xAF,
	MediaPlay: 0xB3, MediaStop: 0xB2,
	MediaTrackNext: 0xB0, MediaTrackPrevious: 0xB1,
	// MediaPause has no dedicated virtual-key code (VK_MEDIA_PLAY_PAUSE
	// toggles): unsupported on Windows.
}

// VirtualKey returns the Windows virtual-key code for k, or false when the
// key cannot be registered on Windows.
func VirtualKey(k Key) (uint32, bool) {
	vk, ok := virtualKeys[k]
	return vk, ok
}

// WinModifiers converts a modifier set to RegisterHotKey MOD_* flags.
func WinModifiers(m Modifiers) uint32 {
	var flags uint32
	if m.Has(ModShift) {
		flags |= winModShift
	}
	if m.Has(ModControl) {
		flags |= winModControl
	}
	if m.Has(ModAlt) {
		flags |= winModAlt
	}
	if m.Has(ModSuper) {
		flags |= winModWin
	}
	return flags
}
