package hotbind

import (
	"errors"
	"testing"
	"time"

	"hotbind/keycode"
)

func newTestManager(t *testing.T) (*Manager, *FakeBackend) {
	t.Helper()
	fb := NewFakeBackend()
	mgr := NewWithBackend(fb)
	t.Cleanup(mgr.Close)
	return mgr, fb
}

func waitEvent(t *testing.T, s *Stream) Event {
	t.Helper()
	ev, ok := s.ReceiveTimeout(time.Second)
	if !ok {
		t.Fatal("timed out waiting for event")
	}
	return ev
}

func TestRegisterDistinctDescriptors(t *testing.T) {
	mgr, fb := newTestManager(t)

	id1, err := mgr.Register(keycode.ModControl, keycode.KeyA)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := mgr.Register(keycode.ModControl, keycode.KeyB)
	if err != nil {
		t.Fatal(err)
	}
	if id1 == id2 {
		t.Fatalf("distinct hotkeys share id %d", id1)
	}
	if !fb.Registered(id1) || !fb.Registered(id2) {
		t.Fatal("native registrations missing")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	mgr, fb := newTestManager(t)

	if _, err := mgr.Register(keycode.ModControl|keycode.ModShift, keycode.KeyA); err != nil {
		t.Fatal(err)
	}
	_, err := mgr.Register(keycode.ModControl|keycode.ModShift, keycode.KeyA)
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("err = %v, want ErrAlreadyRegistered", err)
	}
	if fb.Count() != 1 {
		t.Fatalf("native count = %d, want 1", fb.Count())
	}
}

func TestRegisterModifierOrderIndependent(t *testing.T) {
	mgr, _ := newTestManager(t)

	if _, err := mgr.Register(keycode.ModControl|keycode.ModShift, keycode.KeyA); err != nil {
		t.Fatal(err)
	}
	// {Shift, Control}+A is the same hotkey as {Control, Shift}+A.
	_, err := mgr.Register(keycode.ModShift|keycode.ModControl, keycode.KeyA)
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("err = %v, want ErrAlreadyRegistered", err)
	}
}

func TestRegisterRollbackOnBackendFailure(t *testing.T) {
	mgr, fb := newTestManager(t)

	fb.RegisterErr = ErrUnsupportedKey
	_, err := mgr.Register(0, keycode.MediaPause)
	if !errors.Is(err, ErrUnsupportedKey) {
		t.Fatalf("err = %v, want ErrUnsupportedKey", err)
	}
	if fb.Count() != 0 {
		t.Fatalf("native count = %d, want 0", fb.Count())
	}

	// The rolled-back identifier is immediately reusable.
	fb.RegisterErr = nil
	id, err := mgr.Register(0, keycode.MediaPause)
	if err != nil {
		t.Fatal(err)
	}
	if id != 1 {
		t.Fatalf("id = %d, want recycled 1", id)
	}
}

func TestUnregisterAndReuse(t *testing.T) {
	mgr, fb := newTestManager(t)

	id1, err := mgr.Register(keycode.ModAlt, keycode.F1)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := mgr.Register(keycode.ModAlt, keycode.F2)
	if err != nil {
		t.Fatal(err)
	}

	if err := mgr.Unregister(id1); err != nil {
		t.Fatal(err)
	}
	if fb.Registered(id1) {
		t.Fatal("native handle survived unregister")
	}

	// Re-registering the released combination succeeds; a recycled id must
	// not alias the other live registration.
	id3, err := mgr.Register(keycode.ModAlt, keycode.F1)
	if err != nil {
		t.Fatal(err)
	}
	if id3 == id2 {
		t.Fatalf("recycled id aliases live id %d", id2)
	}
}

func TestUnregisterUnknown(t *testing.T) {
	mgr, _ := newTestManager(t)

	if err := mgr.Unregister(99); !errors.Is(err, ErrUnknownIdentifier) {
		t.Fatalf("err = %v, want ErrUnknownIdentifier", err)
	}

	id, err := mgr.Register(keycode.ModControl, keycode.KeyQ)
	if err != nil {
		t.Fatal(err)
	}
	if err := mgr.Unregister(id); err != nil {
		t.Fatal(err)
	}
	if err := mgr.Unregister(id); !errors.Is(err, ErrUnknownIdentifier) {
		t.Fatalf("double unregister err = %v, want ErrUnknownIdentifier", err)
	}
}

func TestUnregisterSurfacesNativeFailure(t *testing.T) {
	mgr, fb := newTestManager(t)

	id, err := mgr.Register(keycode.ModControl, keycode.KeyW)
	if err != nil {
		t.Fatal(err)
	}

	nerr := &NativeError{Op: "UnregisterHotKey", Code: 87}
	fb.UnregisterErr = nerr
	if err := mgr.Unregister(id); !errors.Is(err, nerr) {
		t.Fatalf("err = %v, want %v", err, nerr)
	}
	// Registry state is the source of truth: the id is gone regardless.
	if _, ok := mgr.Lookup(id); ok {
		t.Fatal("id still live after failed native teardown")
	}
}

func TestEventDeliveryAndOrdering(t *testing.T) {
	mgr, fb := newTestManager(t)

	var ids []int
	for _, k := range []keycode.Key{keycode.KeyA, keycode.KeyB, keycode.KeyC} {
		id, err := mgr.Register(keycode.ModControl, k)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}

	// Native triggers for the third, first, third hotkey in that order.
	fb.SimulatePress(ids[2])
	fb.SimulatePress(ids[0])
	fb.SimulatePress(ids[2])

	stream := mgr.Events()
	for _, want := range []int{ids[2], ids[0], ids[2]} {
		ev := waitEvent(t, stream)
		if ev.ID != want || ev.State != Pressed {
			t.Fatalf("got %+v, want id %d pressed", ev, want)
		}
	}
}

func TestEventPressRelease(t *testing.T) {
	mgr, fb := newTestManager(t)

	id, err := mgr.Register(keycode.ModControl|keycode.ModShift, keycode.Space)
	if err != nil {
		t.Fatal(err)
	}

	fb.SimulatePress(id)
	fb.SimulateRelease(id)

	stream := mgr.Events()
	if ev := waitEvent(t, stream); ev.State != Pressed {
		t.Fatalf("first event %+v, want pressed", ev)
	}
	if ev := waitEvent(t, stream); ev.State != Released {
		t.Fatalf("second event %+v, want released", ev)
	}
}

func TestLookup(t *testing.T) {
	mgr, _ := newTestManager(t)

	d := Descriptor{Mods: keycode.ModSuper, Key: keycode.KeyL}
	id, err := mgr.RegisterDescriptor(d)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := mgr.Lookup(id)
	if !ok || got != d {
		t.Fatalf("Lookup(%d) = (%v, %v), want (%v, true)", id, got, ok, d)
	}
}

func TestRegisterAllAtomic(t *testing.T) {
	mgr, fb := newTestManager(t)

	descs := []Descriptor{
		{Mods: keycode.ModControl, Key: keycode.F1},
		{Mods: keycode.ModControl, Key: keycode.F2},
		{Mods: keycode.ModControl, Key: keycode.F1}, // duplicate of the first
	}
	if _, err := mgr.RegisterAll(descs); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("err = %v, want ErrAlreadyRegistered", err)
	}
	if fb.Count() != 0 {
		t.Fatalf("native count = %d, want 0 after rollback", fb.Count())
	}

	ids, err := mgr.RegisterAll(descs[:2])
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 {
		t.Fatalf("got %d ids, want 2", len(ids))
	}
}

func TestUnregisterAll(t *testing.T) {
	mgr, fb := newTestManager(t)

	for _, k := range []keycode.Key{keycode.KeyA, keycode.KeyB, keycode.KeyC} {
		if _, err := mgr.Register(keycode.ModAlt, k); err != nil {
			t.Fatal(err)
		}
	}
	if err := mgr.UnregisterAll(); err != nil {
		t.Fatal(err)
	}
	if fb.Count() != 0 {
		t.Fatalf("native count = %d, want 0", fb.Count())
	}
	// Everything can be registered again from scratch.
	if _, err := mgr.Register(keycode.ModAlt, keycode.KeyA); err != nil {
		t.Fatal(err)
	}
}

func TestCloseTeardown(t *testing.T) {
	fb := NewFakeBackend()
	mgr := NewWithBackend(fb)

	id, err := mgr.Register(keycode.ModControl, keycode.KeyD)
	if err != nil {
		t.Fatal(err)
	}

	mgr.Close()
	if fb.Count() != 0 {
		t.Fatalf("native count = %d after close, want 0", fb.Count())
	}

	// No events for previously registered ids after teardown.
	fb.SimulatePress(id)
	if ev, ok := mgr.Events().Poll(); ok {
		t.Fatalf("event %+v delivered after close", ev)
	}

	// Idempotent, and further calls fail cleanly.
	mgr.Close()
	if _, err := mgr.Register(keycode.ModControl, keycode.KeyE); !errors.Is(err, ErrClosed) {
		t.Fatalf("err = %v, want ErrClosed", err)
	}
	if err := mgr.Unregister(id); !errors.Is(err, ErrClosed) {
		t.Fatalf("err = %v, want ErrClosed", err)
	}
}

func TestConcurrentRegisterUnregister(t *testing.T) {
	mgr, _ := newTestManager(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			id, err := mgr.Register(keycode.ModControl, keycode.KeyA)
			if err != nil {
				continue
			}
			mgr.Unregister(id)
		}
	}()
	for i := 0; i < 100; i++ {
		id, err := mgr.Register(keycode.ModShift, keycode.KeyA)
		if err != nil {
			continue
		}
		mgr.Unregister(id)
	}
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("concurrent loop stuck")
	}
}
