package hotbind

import (
	"errors"
	"testing"

	"hotbind/keycode"
)

func desc(mods keycode.Modifiers, key keycode.Key) Descriptor {
	return Descriptor{Mods: mods, Key: key}
}

func TestRegistryAllocateDistinct(t *testing.T) {
	r := newRegistry()

	id1, err := r.allocate(desc(keycode.ModControl, keycode.KeyA))
	if err != nil {
		t.Fatal(err)
	}
	id2, err := r.allocate(desc(keycode.ModControl, keycode.KeyB))
	if err != nil {
		t.Fatal(err)
	}
	if id1 == id2 {
		t.Fatalf("distinct descriptors share id %d", id1)
	}
	if r.count() != 2 {
		t.Fatalf("count = %d, want 2", r.count())
	}
}

func TestRegistryDuplicate(t *testing.T) {
	r := newRegistry()
	d := desc(keycode.ModControl|keycode.ModShift, keycode.KeyA)

	if _, err := r.allocate(d); err != nil {
		t.Fatal(err)
	}
	if _, err := r.allocate(d); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("err = %v, want ErrAlreadyRegistered", err)
	}
	// Same set built in the other order is the same descriptor.
	swapped := desc(keycode.ModShift|keycode.ModControl, keycode.KeyA)
	if _, err := r.allocate(swapped); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("err = %v, want ErrAlreadyRegistered", err)
	}
	if r.count() != 1 {
		t.Fatalf("count = %d, want 1", r.count())
	}
}

func TestRegistryReleaseAndReuse(t *testing.T) {
	r := newRegistry()
	d := desc(keycode.ModAlt, keycode.F1)

	id, err := r.allocate(d)
	if err != nil {
		t.Fatal(err)
	}
	r.attach(id, "handle")

	gotDesc, handle, err := r.release(id)
	if err != nil {
		t.Fatal(err)
	}
	if gotDesc != d.Normalize() {
		t.Errorf("release descriptor = %v, want %v", gotDesc, d)
	}
	if handle != "handle" {
		t.Errorf("release handle = %v, want %q", handle, "handle")
	}

	// Same descriptor registers again and may recycle the identifier.
	id2, err := r.allocate(d)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.lookup(id2); !ok {
		t.Fatal("recycled id not live")
	}

	// A recycled id must never alias another live registration.
	other, err := r.allocate(desc(keycode.ModAlt, keycode.F2))
	if err != nil {
		t.Fatal(err)
	}
	if other == id2 {
		t.Fatalf("live ids alias: %d", other)
	}
}

func TestRegistryReleaseUnknown(t *testing.T) {
	r := newRegistry()
	if _, _, err := r.release(42); !errors.Is(err, ErrUnknownIdentifier) {
		t.Fatalf("err = %v, want ErrUnknownIdentifier", err)
	}

	id, _ := r.allocate(desc(0, keycode.Space))
	if _, _, err := r.release(id); err != nil {
		t.Fatal(err)
	}
	// Strict liveness: a second release of the same id is an error.
	if _, _, err := r.release(id); !errors.Is(err, ErrUnknownIdentifier) {
		t.Fatalf("double release err = %v, want ErrUnknownIdentifier", err)
	}
}

func TestRegistryLookup(t *testing.T) {
	r := newRegistry()
	d := desc(keycode.ModSuper, keycode.KeyK)
	id, _ := r.allocate(d)

	got, ok := r.lookup(id)
	if !ok || got != d.Normalize() {
		t.Fatalf("lookup(%d) = (%v, %v)", id, got, ok)
	}
	if _, ok := r.lookup(id + 1); ok {
		t.Error("lookup of unallocated id succeeded")
	}
}
