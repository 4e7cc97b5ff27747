package keycode

import "strings"

// Modifiers is a bit-set over the four registrable modifier keys. The bit-set
// representation makes modifier combinations order-independent by
// construction: {Ctrl, Shift} and {Shift, Ctrl} produce the same value.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	// ModSuper is the Windows key on PC keyboards and Command on Mac.
	// "meta" parses to this bit as well.
	ModSuper
)

// allMods masks off any bits outside the registrable modifier set.
const allMods = ModShift | ModControl | ModAlt | ModSuper

// Normalize returns m restricted to the supported modifier bits. It is
// idempotent.
func (m Modifiers) Normalize() Modifiers {
	return m & allMods
}

// Has reports whether every bit of mod is set in m.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

// String renders the set in a fixed shift-control-alt-super order, matching
// the canonical ordering used for descriptor identity.
func (m Modifiers) String() string {
	var parts []string
	if m.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if m.Has(ModControl) {
		parts = append(parts, "control")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if m.Has(ModSuper) {
		parts = append(parts, "super")
	}
	return strings.Join(parts, "+")
}

// ParseModifier resolves a single modifier token ("ctrl", "OPTION", "cmd",
// ...). It returns false for anything that is not a modifier, which callers
// use to tell modifiers apart from the final key token.
func ParseModifier(name string) (Modifiers, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "SHIFT":
		return ModShift, true
	case "CONTROL", "CTRL":
		return ModControl, true
	case "ALT", "OPTION":
		return ModAlt, true
	case "SUPER", "META", "COMMAND", "CMD", "WIN":
		return ModSuper, true
	}
	return 0, false
}
