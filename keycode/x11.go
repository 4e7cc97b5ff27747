package keycode

// X11 keysyms (X11/keysymdef.h, XF86keysym.h) and modifier masks. The grab
// path converts keysyms to server keycodes with XKeysymToKeycode at
// registration time; this table only carries the symbolic values.

const (
	x11ShiftMask   = 1 << 0
	x11LockMask    = 1 << 1 // CapsLock
	x11ControlMask = 1 << 2
	x11Mod1Mask    = 1 << 3 // Alt
	x11Mod2Mask    = 1 << 4 // NumLock
	x11Mod4Mask    = 1 << 6 // Super
)

// X11LockMask and X11NumLockMask are the "don't care" lock-modifier bits a
// grab must be repeated for (or masked out of incoming event state), since
// the X server treats toggled locks as additional modifiers.
const (
	X11LockMask    = x11LockMask
	X11NumLockMask = x11Mod2Mask
)

var keysyms = map[Key]uint32{
	KeyA: 0x0041, KeyB: 0x0042, KeyC: 0x0043, KeyD: 0x0044, KeyE: 0x0045,
	KeyF: 0x0046, KeyG: 0x0047, KeyH: 0x0048, KeyI: 0x0049, KeyJ: 0x004a,
	KeyK: 0x004b, KeyL: 0x004c, KeyM: 0x004d, KeyN: 0x004e, KeyO: 0x004f,
	KeyP: 0x0050, KeyQ: 0x0051, KeyR: 0x0052, KeyS: 0x0053, KeyT: 0x0054,
	KeyU: 0x0055, KeyV: 0x0056, KeyW: 0x0057, KeyX: 0x0058, KeyY: 0x0059,
	KeyZ: 0x005a,

	Digit0: 0x0030, Digit1: 0x0031, Digit2: 0x0032, Digit3: 0x0033,
	Digit4: 0x0034, Digit5: 0x0035, Digit6: 0x0036, Digit7: 0x0037,
	Digit8: 0x0038, Digit9: 0x0039,

	Backquote: 0x0060 /* quoteleft */, Backslash: 0x005c,
	BracketLeft: 0x005b, BracketRight: 0x005d, Comma: 0x002c,
	Equal: 0x003d, Minus: 0x002d, Period: 0x002e,
	Quote: 0x0027 /* apostrophe */, Semicolon: 0x003b, Slash: 0x002f,

	Backspace: 0xff08, CapsLock: 0xffe5, Enter: 0xff0d, Space: 0x0020,
	Tab: 0xff09,

	Delete: 0xffff, End: 0xff57, Home: 0xff50, Insert: 0xff63,
	PageDown: 0xff56, PageUp: 0xff55,

	ArrowDown: 0xff54, ArrowLeft: 0xff51, ArrowRight: 0xff53,
	ArrowUp: 0xff52,

	Escape: 0xff1b, PrintScreen: 0xff61, ScrollLock: 0xff14,
	Pause: 0xff13, NumLock: 0xff7f,

	Numpad0: 0xffb0, Numpad1: 0xffb1, Numpad2: 0xffb2, Numpad3: 0xffb3,
	Numpad4: 0xffb4, Numpad5: 0xffb5, Numpad6: 0xffb6, Numpad7: 0xffb7,
	Numpad8: 0xffb8, Numpad9: 0xffb9,
	NumpadAdd: 0xffab, NumpadDecimal: 0xffae, NumpadDivide: 0xffaf,
	NumpadEnter: 0xff8d, NumpadEqual: 0xffbd, NumpadMultiply: 0xffaa,
	NumpadSubtract: 0xffad,

	F1: 0xffbe, F2: 0xffbf, F3: 0xffc0, F4: 0xffc1, F5: 0xffc2, F6: 0xffc3,
	F7: 0xffc4, F8: 0xffc5, F9: 0xffc6, F10: 0xffc7, F11: 0xffc8,
	F12: 0xffc9, F13: 0xffca, F14: 0xffcb, F15: 0xffcc, F16: 0xffcd,
	F17: 0xffce, F18: 0xffcf, F19: 0xffd0, F20: 0xffd1, F21: 0xffd2,
	F22: 0xffd3, F23: 0xffd4, F24: 0xffd5,

	AudioVolumeDown: 0x1008ff11, AudioVolumeMute: 0x1008ff12,
	AudioVolumeUp: 0x1008ff13,
	MediaPlay:     0x1008ff14, MediaPause: 0x1008ff31, MediaStop: 0x1008ff15,
	MediaTrackNext: 0x1008ff17, MediaTrackPrevious: 0x1008ff16,
}

// Keysym returns the X11 keysym for k, or false when the key cannot be
// grabbed on X11.
func Keysym(k Key) (uint32, bool) {
	sym, ok := keysyms[k]
	return sym, ok
}

// X11Modifiers converts a modifier set to an XGrabKey modifier mask.
func X11Modifiers(m Modifiers) uint32 {
	var mask uint32
	if m.Has(ModShift) {
		mask |= x11ShiftMask
	}
	if m.Has(ModControl) {
		mask |= x11ControlMask
	}
	if m.Has(ModAlt) {
		mask |= x11Mod1Mask
	}
	if m.Has(ModSuper) {
		mask |= x11Mod4Mask
	}
	return mask
}

// X11EventModifiers extracts the four registrable modifier bits from an X
// key event's state field, discarding lock-key bits the server reports.
func X11EventModifiers(state uint32) uint32 {
	return state & (x11ShiftMask | x11ControlMask | x11Mod1Mask | x11Mod4Mask)
}
