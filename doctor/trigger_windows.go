//go:build windows

package doctor

import (
	"runtime"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"hotbind"
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procPeekMessageW = user32.NewProc("PeekMessageW")
)

const pmRemove = 0x0001

func waitForTrigger(mgr *hotbind.Manager, d hotbind.Descriptor, timeout time.Duration) (hotbind.Event, bool, error) {
	// RegisterHotKey binds to the calling thread and WM_HOTKEY arrives on
	// its queue, so registration and the pump share one locked thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if _, err := mgr.RegisterDescriptor(d); err != nil {
		return hotbind.Event{}, false, err
	}

	deadline := time.Now().Add(timeout)
	var msg hotbind.Msg
	for time.Now().Before(deadline) {
		for {
			ret, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0, pmRemove)
			if ret == 0 {
				break
			}
			mgr.Dispatch(&msg)
		}
		if ev, ok := mgr.Events().Poll(); ok {
			return ev, true, nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	return hotbind.Event{}, false, nil
}
