package hotbind

import (
	"encoding/json"
	"testing"

	"hotbind/keycode"
)

func TestParseDescriptor(t *testing.T) {
	tests := []struct {
		in   string
		want Descriptor
	}{
		{"KeyX", Descriptor{Key: keycode.KeyX}},
		{"CTRL+KeyX", Descriptor{Mods: keycode.ModControl, Key: keycode.KeyX}},
		{"SHIFT+KeyC", Descriptor{Mods: keycode.ModShift, Key: keycode.KeyC}},
		{"super+ctrl+SHIFT+alt+ArrowUp", Descriptor{
			Mods: keycode.ModSuper | keycode.ModControl | keycode.ModShift | keycode.ModAlt,
			Key:  keycode.ArrowUp,
		}},
		{"Digit5", Descriptor{Key: keycode.Digit5}},
		{"SHiFT+F12", Descriptor{Mods: keycode.ModShift, Key: keycode.F12}},
		{"CmdOrCtrl+Space", Descriptor{Mods: cmdOrCtrl, Key: keycode.Space}},
		{" ctrl + shift + KeyA ", Descriptor{Mods: keycode.ModControl | keycode.ModShift, Key: keycode.KeyA}},
		{"option+KeyQ", Descriptor{Mods: keycode.ModAlt, Key: keycode.KeyQ}},
	}

	for _, tt := range tests {
		got, err := ParseDescriptor(tt.in)
		if err != nil {
			t.Errorf("ParseDescriptor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDescriptor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDescriptorErrors(t *testing.T) {
	bad := []string{
		"",
		"shift+KeyQ+alt",  // modifier after key
		"Ctrl+Shift+C+A",  // two non-modifier keys
		"ctrl++KeyA",      // empty token
		"ctrl+shift",      // no key
		"ctrl+NoSuchKey",  // unknown key
		"bogus+KeyA+KeyB", // unknown token then extra key
	}
	for _, in := range bad {
		if d, err := ParseDescriptor(in); err == nil {
			t.Errorf("ParseDescriptor(%q) = %v, want error", in, d)
		}
	}
}

func TestDescriptorEquality(t *testing.T) {
	h1, err := ParseDescriptor("Shift+KeyR")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := ParseDescriptor("Shift+KeyR")
	if err != nil {
		t.Fatal(err)
	}
	h3 := Descriptor{Mods: keycode.ModShift, Key: keycode.KeyR}.Normalize()
	h4, _ := ParseDescriptor("Alt+KeyR")
	h5, _ := ParseDescriptor("KeyR")

	if h1 != h2 || h2 != h3 {
		t.Errorf("equal descriptors compare unequal: %v %v %v", h1, h2, h3)
	}
	if h1 == h4 || h4 == h5 || h1 == h5 {
		t.Error("distinct descriptors compare equal")
	}
}

func TestDescriptorString(t *testing.T) {
	d := Descriptor{Mods: keycode.ModControl | keycode.ModShift, Key: keycode.KeyA}
	if got := d.String(); got != "shift+control+KeyA" {
		t.Errorf("String() = %q", got)
	}
	bare := Descriptor{Key: keycode.F5}
	if got := bare.String(); got != "F5" {
		t.Errorf("String() = %q", got)
	}
}

func TestDescriptorJSON(t *testing.T) {
	d := Descriptor{Mods: keycode.ModControl | keycode.ModShift, Key: keycode.KeyX}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"modifiers":["shift","control"],"key":"KeyX"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var back Descriptor
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestDescriptorJSONNoModifiers(t *testing.T) {
	d := Descriptor{Key: keycode.Space}
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"modifiers":null,"key":"Space"}` {
		t.Errorf("Marshal = %s", data)
	}
	var back Descriptor
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestDescriptorJSONUnknown(t *testing.T) {
	var d Descriptor
	if err := json.Unmarshal([]byte(`{"modifiers":["hyper"],"key":"KeyA"}`), &d); err == nil {
		t.Error("expected error for unknown modifier")
	}
	if err := json.Unmarshal([]byte(`{"modifiers":[],"key":"NoSuchKey"}`), &d); err == nil {
		t.Error("expected error for unknown key")
	}
}
