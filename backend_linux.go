//go:build linux

package hotbind

/*
#cgo LDFLAGS: -lX11

#include <stdlib.h>
#include <X11/Xlib.h>
#include <X11/XKBlib.h>

// Grab failures (notably BadAccess when another client holds the combo)
// arrive through the asynchronous error handler, so the handler records the
// last error code and the Go side checks it after XSync.
static volatile int hotbind_xerr = 0;

static int hotbind_err_handler(Display *d, XErrorEvent *e) {
	hotbind_xerr = e->error_code;
	return 0;
}

static void hotbind_install_err_handler(void) {
	XSetErrorHandler(hotbind_err_handler);
}

static int hotbind_take_xerr(void) {
	int e = hotbind_xerr;
	hotbind_xerr = 0;
	return e;
}
*/
import "C"

import (
	"runtime"
	"sync"
	"time"
	"unsafe"

	"hotbind/keycode"
)

// The X11 backend owns a dedicated OS thread holding the Display connection
// (Xlib is not thread-safe across unsynchronized callers, so everything
// touching the display is confined to that thread). Register and unregister
// requests are marshaled to it over a command channel; grabbed key events
// are drained with XPending between commands.
//
// XGrabKey matches the exact modifier state, and the server counts toggled
// NumLock/CapsLock as modifiers, so every combo is additionally grabbed with
// those lock bits set. Event state is masked back down before matching.

const xPollInterval = 50 * time.Millisecond

// extra lock-modifier masks each grab is repeated for.
var ignoredMods = [4]uint32{
	0,
	keycode.X11NumLockMask,
	keycode.X11LockMask,
	keycode.X11NumLockMask | keycode.X11LockMask,
}

const (
	xBadAccess     = 10
	xGrabModeAsync = 1
)

type x11Handle struct {
	code uint8  // server keycode
	mods uint32 // grab modifier mask
}

type x11Op int

const (
	x11Register x11Op = iota
	x11Unregister
	x11Shutdown
)

type x11Cmd struct {
	op     x11Op
	id     int
	desc   Descriptor
	handle x11Handle
	reply  chan x11Reply
}

type x11Reply struct {
	handle x11Handle
	err    error
}

// x11Grab tracks one registration on a server keycode. pressed suppresses
// repeated KeyPress deliveries while the combo is held.
type x11Grab struct {
	id      int
	mods    uint32
	pressed bool
}

type x11Backend struct {
	emitMu sync.Mutex
	emit   EmitFunc

	cmds chan x11Cmd

	closeOnce sync.Once
	done      chan struct{}
}

func newPlatformBackend() (Backend, error) {
	b := &x11Backend{
		cmds: make(chan x11Cmd),
		done: make(chan struct{}),
	}
	ready := make(chan error, 1)
	go b.run(ready)
	if err := <-ready; err != nil {
		return nil, err
	}
	return b, nil
}

func (b *x11Backend) Attach(emit EmitFunc) {
	b.emitMu.Lock()
	defer b.emitMu.Unlock()
	b.emit = emit
}

func (b *x11Backend) deliver(id int, state State) {
	b.emitMu.Lock()
	emit := b.emit
	b.emitMu.Unlock()
	if emit != nil {
		emit(id, state)
	}
}

func (b *x11Backend) Register(id int, d Descriptor) (any, error) {
	reply := make(chan x11Reply, 1)
	select {
	case b.cmds <- x11Cmd{op: x11Register, id: id, desc: d, reply: reply}:
	case <-b.done:
		return nil, ErrClosed
	}
	r := <-reply
	if r.err != nil {
		return nil, r.err
	}
	return r.handle, nil
}

func (b *x11Backend) Unregister(id int, handle any) error {
	h, ok := handle.(x11Handle)
	if !ok {
		return ErrUnknownIdentifier
	}
	reply := make(chan x11Reply, 1)
	select {
	case b.cmds <- x11Cmd{op: x11Unregister, id: id, handle: h, reply: reply}:
	case <-b.done:
		return ErrClosed
	}
	return (<-reply).err
}

func (b *x11Backend) Close() error {
	b.closeOnce.Do(func() {
		reply := make(chan x11Reply, 1)
		b.cmds <- x11Cmd{op: x11Shutdown, reply: reply}
		<-reply
		close(b.done)
	})
	return nil
}

// run is the display-owning thread. It opens the connection, then
// alternates between servicing commands and draining pending X events while
// at least one grab is active; with zero grabs nothing can arrive, so it
// parks on the command channel.
func (b *x11Backend) run(ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	display := C.XOpenDisplay(nil)
	if display == nil {
		ready <- &NativeError{Op: "XOpenDisplay", Code: 0}
		return
	}
	root := C.XDefaultRootWindow(display)

	C.hotbind_install_err_handler()

	// Only deliver KeyRelease at the true end of a repeated key.
	var supported C.int
	C.XkbSetDetectableAutoRepeat(display, 1, &supported)

	ready <- nil

	// grabs indexed by server keycode, matching the event path.
	grabs := make(map[uint8][]*x11Grab)
	ticker := time.NewTicker(xPollInterval)
	ticker.Stop()
	armed := false

	arm := func() {
		if !armed && len(grabs) > 0 {
			ticker.Reset(xPollInterval)
			armed = true
		}
	}
	disarm := func() {
		if armed && len(grabs) == 0 {
			ticker.Stop()
			armed = false
		}
	}

	for {
		select {
		case cmd := <-b.cmds:
			switch cmd.op {
			case x11Register:
				h, err := grabHotkey(display, root, grabs, cmd.id, cmd.desc)
				cmd.reply <- x11Reply{handle: h, err: err}
				arm()
			case x11Unregister:
				err := ungrabHotkey(display, root, grabs, cmd.id, cmd.handle)
				cmd.reply <- x11Reply{err: err}
				disarm()
			case x11Shutdown:
				for code, entries := range grabs {
					for _, g := range entries {
						ungrabAll(display, root, code, g.mods)
					}
				}
				C.XCloseDisplay(display)
				cmd.reply <- x11Reply{}
				return
			}
		case <-ticker.C:
			b.drainEvents(display, grabs)
		}
	}
}

func (b *x11Backend) drainEvents(display *C.Display, grabs map[uint8][]*x11Grab) {
	var ev C.XEvent
	for C.XPending(display) > 0 {
		C.XNextEvent(display, &ev)
		anyEv := (*C.XAnyEvent)(unsafe.Pointer(&ev))
		if anyEv._type != C.KeyPress && anyEv._type != C.KeyRelease {
			continue
		}
		key := (*C.XKeyEvent)(unsafe.Pointer(&ev))
		code := uint8(key.keycode)
		state := keycode.X11EventModifiers(uint32(key.state))

		entries, ok := grabs[code]
		if !ok {
			continue
		}
		switch anyEv._type {
		case C.KeyPress:
			for _, g := range entries {
				if g.mods == state && !g.pressed {
					g.pressed = true
					b.deliver(g.id, Pressed)
				}
			}
		case C.KeyRelease:
			for _, g := range entries {
				if g.pressed {
					g.pressed = false
					b.deliver(g.id, Released)
				}
			}
		}
	}
}

func grabHotkey(display *C.Display, root C.Window, grabs map[uint8][]*x11Grab, id int, d Descriptor) (x11Handle, error) {
	sym, ok := keycode.Keysym(d.Key)
	if !ok {
		return x11Handle{}, ErrUnsupportedKey
	}
	mods := keycode.X11Modifiers(d.Mods)
	code := uint8(C.XKeysymToKeycode(display, C.KeySym(sym)))
	if code == 0 {
		return x11Handle{}, ErrUnsupportedKey
	}

	// Distinct keys can collapse to one server keycode; refuse a second
	// grab of the same (keycode, modifiers) combo.
	for _, g := range grabs[code] {
		if g.mods == mods {
			return x11Handle{}, ErrAlreadyRegistered
		}
	}

	C.hotbind_take_xerr()
	for _, extra := range ignoredMods {
		C.XGrabKey(display, C.int(code), C.uint(mods|extra), root, 0,
			xGrabModeAsync, xGrabModeAsync)
	}
	C.XSync(display, 0)
	if xerr := int(C.hotbind_take_xerr()); xerr != 0 {
		ungrabAll(display, root, code, mods)
		if xerr == xBadAccess {
			return x11Handle{}, ErrAlreadyRegistered
		}
		return x11Handle{}, &NativeError{Op: "XGrabKey", Code: int64(xerr)}
	}

	grabs[code] = append(grabs[code], &x11Grab{id: id, mods: mods})
	return x11Handle{code: code, mods: mods}, nil
}

func ungrabHotkey(display *C.Display, root C.Window, grabs map[uint8][]*x11Grab, id int, h x11Handle) error {
	ungrabAll(display, root, h.code, h.mods)
	C.XSync(display, 0)

	entries := grabs[h.code]
	kept := entries[:0]
	for _, g := range entries {
		if g.id != id {
			kept = append(kept, g)
		}
	}
	if len(kept) == 0 {
		delete(grabs, h.code)
	} else {
		grabs[h.code] = kept
	}
	return nil
}

func ungrabAll(display *C.Display, root C.Window, code uint8, mods uint32) {
	for _, extra := range ignoredMods {
		C.XUngrabKey(display, C.int(code), C.uint(mods|extra), root)
	}
}
