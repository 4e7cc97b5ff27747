//go:build darwin

package hotbind

/*
#cgo LDFLAGS: -framework Carbon

#include <Carbon/Carbon.h>

extern void hotbindHotkeyEvent(UInt32 id, int pressed);

static EventHandlerRef hotbind_handler_ref = NULL;

static OSStatus hotbind_handler(EventHandlerCallRef next, EventRef event, void *data) {
	EventHotKeyID hkID;
	GetEventParameter(event, kEventParamDirectObject, typeEventHotKeyID,
		NULL, sizeof(hkID), NULL, &hkID);
	hotbindHotkeyEvent(hkID.id, GetEventKind(event) == kEventHotKeyPressed ? 1 : 0);
	return noErr;
}

static OSStatus hotbind_install_handler(void) {
	if (hotbind_handler_ref != NULL) {
		return noErr;
	}
	EventTypeSpec types[2] = {
		{kEventClassKeyboard, kEventHotKeyPressed},
		{kEventClassKeyboard, kEventHotKeyReleased},
	};
	return InstallEventHandler(GetEventDispatcherTarget(),
		NewEventHandlerUPP(hotbind_handler), 2, types, NULL, &hotbind_handler_ref);
}

static void hotbind_remove_handler(void) {
	if (hotbind_handler_ref != NULL) {
		RemoveEventHandler(hotbind_handler_ref);
		hotbind_handler_ref = NULL;
	}
}

static OSStatus hotbind_register(UInt32 keycode, UInt32 mods, UInt32 id, EventHotKeyRef *out) {
	EventHotKeyID hkID = { 'HTBD', id };
	return RegisterEventHotKey(keycode, mods, hkID, GetEventDispatcherTarget(), 0, out);
}

static OSStatus hotbind_unregister(EventHotKeyRef ref) {
	return UnregisterEventHotKey(ref);
}
*/
import "C"

import (
	"sync"

	"hotbind/keycode"
)

// The macOS backend registers Carbon event hotkeys. Carbon delivers the
// matching key-down/key-up events through the application's main run loop;
// this layer installs the handler but never starts that loop, so in a
// process that does not run it (plain CLI without an app framework) the
// events never fire. That is a documented caller responsibility, not a
// failure this layer can detect.

const macHotkeyExistsErr = -9878 // eventHotKeyExistsErr

// darwinActive is the backend receiving the exported cgo callback. Carbon's
// handler is process-wide, so only one live backend is supported, which
// matches one-Manager-per-process usage.
var (
	darwinMu     sync.Mutex
	darwinActive *macBackend
)

//export hotbindHotkeyEvent
func hotbindHotkeyEvent(id C.UInt32, pressed C.int) {
	darwinMu.Lock()
	b := darwinActive
	darwinMu.Unlock()
	if b == nil {
		return
	}
	state := Released
	if pressed != 0 {
		state = Pressed
	}
	b.deliver(int(id), state)
}

type macBackend struct {
	mu   sync.Mutex
	emit EmitFunc
	refs map[int]C.EventHotKeyRef
}

func newPlatformBackend() (Backend, error) {
	// Probe the handler install once so construction fails early, then
	// drop it again; it is reinstalled while hotkeys are registered.
	if status := C.hotbind_install_handler(); status != C.noErr {
		return nil, &NativeError{Op: "InstallEventHandler", Code: int64(status)}
	}
	C.hotbind_remove_handler()

	b := &macBackend{refs: make(map[int]C.EventHotKeyRef)}
	darwinMu.Lock()
	darwinActive = b
	darwinMu.Unlock()
	return b, nil
}

func (b *macBackend) Attach(emit EmitFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.emit = emit
}

func (b *macBackend) deliver(id int, state State) {
	b.mu.Lock()
	emit := b.emit
	_, live := b.refs[id]
	b.mu.Unlock()
	if emit != nil && live {
		emit(id, state)
	}
}

func (b *macBackend) Register(id int, d Descriptor) (any, error) {
	kc, ok := keycode.MacKeycode(d.Key)
	if !ok {
		return nil, ErrUnsupportedKey
	}
	mods := keycode.MacModifiers(d.Mods)

	// The handler only lives while at least one hotkey is registered.
	if status := C.hotbind_install_handler(); status != C.noErr {
		return nil, &NativeError{Op: "InstallEventHandler", Code: int64(status)}
	}

	var ref C.EventHotKeyRef
	status := C.hotbind_register(C.UInt32(kc), C.UInt32(mods), C.UInt32(id), &ref)
	if status != C.noErr {
		b.removeHandlerIfIdle()
		if int64(status) == macHotkeyExistsErr {
			return nil, ErrAlreadyRegistered
		}
		return nil, &NativeError{Op: "RegisterEventHotKey", Code: int64(status)}
	}

	b.mu.Lock()
	b.refs[id] = ref
	b.mu.Unlock()
	return ref, nil
}

func (b *macBackend) removeHandlerIfIdle() {
	b.mu.Lock()
	idle := len(b.refs) == 0
	b.mu.Unlock()
	if idle {
		C.hotbind_remove_handler()
	}
}

func (b *macBackend) Unregister(id int, handle any) error {
	ref, ok := handle.(C.EventHotKeyRef)
	if !ok {
		return ErrUnknownIdentifier
	}
	b.mu.Lock()
	delete(b.refs, id)
	b.mu.Unlock()

	status := C.hotbind_unregister(ref)
	b.removeHandlerIfIdle()
	if status != C.noErr {
		return &NativeError{Op: "UnregisterEventHotKey", Code: int64(status)}
	}
	return nil
}

func (b *macBackend) Close() error {
	b.mu.Lock()
	refs := b.refs
	b.refs = make(map[int]C.EventHotKeyRef)
	b.mu.Unlock()

	var first error
	for _, ref := range refs {
		if status := C.hotbind_unregister(ref); status != C.noErr && first == nil {
			first = &NativeError{Op: "UnregisterEventHotKey", Code: int64(status)}
		}
	}

	darwinMu.Lock()
	if darwinActive == b {
		darwinActive = nil
		C.hotbind_remove_handler()
	}
	darwinMu.Unlock()
	return first
}
