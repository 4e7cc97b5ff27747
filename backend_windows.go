//go:build windows

package hotbind

import (
	"sync"
	"syscall"
	"time"

	"golang.org/x/sys/windows"

	"hotbind/keycode"
)

// The Windows backend wraps RegisterHotKey/UnregisterHotKey. Both bind the
// hotkey to the calling thread, and WM_HOTKEY arrives on that thread's
// message queue, which the host application must already be pumping: call
// Register/Unregister from the pumping thread and feed retrieved messages
// through Manager.Dispatch. Because the pump is external and lives as long
// as the host wants it to, this backend has no listener of its own to tear
// down; its armed/idle state is just the registration count.

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procRegisterHotKey   = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey = user32.NewProc("UnregisterHotKey")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

const (
	wmHotkey = 0x0312

	// MOD_NOREPEAT keeps a held key from re-firing WM_HOTKEY.
	modNoRepeat = 0x4000

	errHotkeyAlreadyRegistered = 1409 // ERROR_HOTKEY_ALREADY_REGISTERED
	errAccessDenied            = 5    // ERROR_ACCESS_DENIED
)

// callErrno extracts the raw error code from a failed LazyProc call.
func callErrno(err error) int64 {
	if e, ok := err.(syscall.Errno); ok {
		return int64(e)
	}
	return -1
}

// Msg mirrors the layout of the win32 MSG structure so hosts can pass the
// messages they retrieve straight to Manager.Dispatch.
type Msg struct {
	HWND    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      [2]int32
}

type winHandle struct {
	vk uint32
}

type winBackend struct {
	mu      sync.Mutex
	emit    EmitFunc
	vkByID  map[int]uint32
	pressed map[int]bool
	closed  bool
}

func newPlatformBackend() (Backend, error) {
	return &winBackend{
		vkByID:  make(map[int]uint32),
		pressed: make(map[int]bool),
	}, nil
}

func (b *winBackend) Attach(emit EmitFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.emit = emit
}

func (b *winBackend) Register(id int, d Descriptor) (any, error) {
	vk, ok := keycode.VirtualKey(d.Key)
	if !ok {
		return nil, ErrUnsupportedKey
	}
	mods := keycode.WinModifiers(d.Mods) | modNoRepeat

	ret, _, errno := procRegisterHotKey.Call(0, uintptr(id), uintptr(mods), uintptr(vk))
	if ret == 0 {
		switch code := callErrno(errno); code {
		case errHotkeyAlreadyRegistered:
			// The OS rejects duplicates from this process and from other
			// processes with the same code; both surface identically.
			return nil, ErrAlreadyRegistered
		case errAccessDenied:
			return nil, ErrPermissionDenied
		default:
			return nil, &NativeError{Op: "RegisterHotKey", Code: code}
		}
	}

	b.mu.Lock()
	b.vkByID[id] = vk
	b.mu.Unlock()
	return winHandle{vk: vk}, nil
}

func (b *winBackend) Unregister(id int, _ any) error {
	b.mu.Lock()
	delete(b.vkByID, id)
	delete(b.pressed, id)
	b.mu.Unlock()

	ret, _, errno := procUnregisterHotKey.Call(0, uintptr(id))
	if ret == 0 {
		return &NativeError{Op: "UnregisterHotKey", Code: callErrno(errno)}
	}
	return nil
}

func (b *winBackend) Close() error {
	b.mu.Lock()
	ids := make([]int, 0, len(b.vkByID))
	for id := range b.vkByID {
		ids = append(ids, id)
	}
	b.vkByID = make(map[int]uint32)
	b.pressed = make(map[int]bool)
	b.closed = true
	b.mu.Unlock()

	var first error
	for _, id := range ids {
		ret, _, errno := procUnregisterHotKey.Call(0, uintptr(id))
		if ret == 0 && first == nil {
			first = &NativeError{Op: "UnregisterHotKey", Code: callErrno(errno)}
		}
	}
	return first
}

// Dispatch examines one retrieved window message and consumes it if it is a
// WM_HOTKEY for a registration owned by this manager. Hosts call it from
// their message loop for every message, before TranslateMessage/
// DispatchMessage; a true return means the message was handled here.
func (m *Manager) Dispatch(msg *Msg) bool {
	b, ok := m.backend.(*winBackend)
	if !ok || msg == nil || msg.Message != wmHotkey {
		return false
	}
	return b.dispatch(int(msg.WParam))
}

func (b *winBackend) dispatch(id int) bool {
	b.mu.Lock()
	vk, ok := b.vkByID[id]
	if !ok || b.closed {
		b.mu.Unlock()
		return false
	}
	already := b.pressed[id]
	b.pressed[id] = true
	emit := b.emit
	b.mu.Unlock()

	if already {
		// Repeat while held; the release watcher is already running.
		return true
	}
	emit(id, Pressed)
	go b.watchRelease(id, vk, emit)
	return true
}

// watchRelease polls the async key state until the key comes back up.
// WM_HOTKEY only reports presses, so the release edge has to be observed
// this way.
func (b *winBackend) watchRelease(id int, vk uint32, emit EmitFunc) {
	for {
		time.Sleep(10 * time.Millisecond)
		ret, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
		if int16(ret) >= 0 { // high bit clear: key is up
			break
		}
	}

	b.mu.Lock()
	_, live := b.vkByID[id]
	closed := b.closed
	if live {
		b.pressed[id] = false
	}
	b.mu.Unlock()

	if live && !closed {
		emit(id, Released)
	}
}
