// Package hotbind registers system-wide keyboard shortcuts and delivers
// press/release events on a single ordered stream, independent of which
// window has input focus.
//
// The platform integration differs per OS and carries preconditions the
// library cannot hide:
//
//   - Windows: RegisterHotKey binds hotkeys to the registering thread, and
//     that thread must pump window messages. Call Register and Unregister
//     from your message-loop thread and forward every retrieved message
//     through Manager.Dispatch. The library never creates the pump.
//   - X11: the library owns a dedicated listener thread; no caller
//     obligations beyond a reachable display.
//   - macOS: Carbon delivers hotkey events through the main run loop. The
//     library attaches to it but never starts it; if the process does not
//     run the main run loop (e.g. a plain CLI without an app framework),
//     registered hotkeys silently never fire.
package hotbind

import (
	"encoding/json"
	"fmt"
	"strings"

	"hotbind/keycode"
)

// Descriptor is a normalized (modifiers, key) pair identifying a hotkey's
// semantic content. Two descriptors that normalize equal denote the same
// hotkey and cannot be registered twice concurrently.
type Descriptor struct {
	Mods keycode.Modifiers
	Key  keycode.Key
}

// Normalize returns the canonical form of d. Modifier sets are
// order-independent by representation, so this only masks unknown bits.
// Idempotent.
func (d Descriptor) Normalize() Descriptor {
	d.Mods = d.Mods.Normalize()
	return d
}

// String renders the descriptor as "shift+control+KeyX" with modifiers in
// canonical order.
func (d Descriptor) String() string {
	if mods := d.Mods.String(); mods != "" {
		return mods + "+" + d.Key.String()
	}
	return d.Key.String()
}

// ParseDescriptor parses strings like "ctrl+shift+KeyX". All modifiers must
// precede the single non-modifier key: "shift+alt+KeyQ" is legal,
// "shift+KeyQ+alt" is not. "CmdOrCtrl" resolves to Command on macOS and
// Control elsewhere.
func ParseDescriptor(s string) (Descriptor, error) {
	var d Descriptor
	haveKey := false

	for _, raw := range strings.Split(s, "+") {
		token := strings.TrimSpace(raw)
		if token == "" {
			return Descriptor{}, fmt.Errorf("empty token in hotkey %q", s)
		}
		if haveKey {
			// Either a second non-modifier key or modifiers after the key.
			return Descriptor{}, fmt.Errorf("unexpected token %q in hotkey %q: modifiers must precede a single key", token, s)
		}
		if isCmdOrCtrl(token) {
			d.Mods |= cmdOrCtrl
			continue
		}
		if mod, ok := keycode.ParseModifier(token); ok {
			d.Mods |= mod
			continue
		}
		key, ok := keycode.FromName(token)
		if !ok {
			return Descriptor{}, fmt.Errorf("unrecognized key %q in hotkey %q", token, s)
		}
		d.Key = key
		haveKey = true
	}

	if !haveKey {
		return Descriptor{}, fmt.Errorf("hotkey %q has no non-modifier key", s)
	}
	return d.Normalize(), nil
}

func isCmdOrCtrl(token string) bool {
	switch strings.ToUpper(token) {
	case "COMMANDORCONTROL", "COMMANDORCTRL", "CMDORCTRL", "CMDORCONTROL":
		return true
	}
	return false
}

type descriptorJSON struct {
	Modifiers []string `json:"modifiers"`
	Key       string   `json:"key"`
}

// MarshalJSON encodes the descriptor as
// {"modifiers":["control","shift"],"key":"KeyX"}.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	enc := descriptorJSON{Key: d.Key.String()}
	if mods := d.Mods.Normalize().String(); mods != "" {
		enc.Modifiers = strings.Split(mods, "+")
	}
	return json.Marshal(enc)
}

// UnmarshalJSON decodes the structured form produced by MarshalJSON.
func (d *Descriptor) UnmarshalJSON(data []byte) error {
	var dec descriptorJSON
	if err := json.Unmarshal(data, &dec); err != nil {
		return err
	}
	key, ok := keycode.FromName(dec.Key)
	if !ok {
		return fmt.Errorf("unrecognized key %q", dec.Key)
	}
	var mods keycode.Modifiers
	for _, name := range dec.Modifiers {
		mod, ok := keycode.ParseModifier(name)
		if !ok {
			return fmt.Errorf("unrecognized modifier %q", name)
		}
		mods |= mod
	}
	d.Key = key
	d.Mods = mods
	return nil
}
