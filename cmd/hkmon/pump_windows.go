//go:build windows

package main

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

func init() {
	// RegisterHotKey binds hotkeys to the registering thread and WM_HOTKEY
	// arrives on its queue. Locking in init pins the main goroutine to the
	// main thread, so registration in main and the pump below share it.
	runtime.LockOSThread()
}

func pump(mgr *hotbind.Manager, done <-chan struct{}) {
	var msg hotbind.Msg
	for {
		select {
		case <-done:
			return
		default:
		}
		for {
			ret, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0, pmRemove)
			if ret == 0 {
				break
			}
			mgr.Dispatch(&msg)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
