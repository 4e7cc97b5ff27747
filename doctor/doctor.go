// Package doctor runs interactive diagnostics for global hotkey support:
// can a manager attach to the native event source, can it register a probe
// combination, and does pressing the combination actually deliver events.
package doctor

import (
	"errors"
	"fmt"
	"time"

	"hotbind"
	"hotbind/keycode"
)

// probe is a combination unlikely to collide with desktop defaults.
var probe = hotbind.Descriptor{
	Mods: keycode.ModControl | keycode.ModShift,
	Key:  keycode.F12,
}

// Run executes the checks and returns an exit code (0=all pass, 1=any fail).
func Run() int {
	fmt.Println("hotbind doctor - global hotkey diagnostics")
	fmt.Println("==========================================")

	allPass := true
	if !checkAttach() {
		allPass = false
	}
	if allPass && !checkRegister() {
		allPass = false
	}
	if allPass && !checkTrigger() {
		allPass = false
	}

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
		return 0
	}
	fmt.Println("Some checks failed. See details above.")
	return 1
}

func checkAttach() bool {
	fmt.Println()
	fmt.Println("[1/3] Native event source")

	mgr, err := hotbind.New()
	if err != nil {
		fmt.Printf("  FAIL: cannot attach event source: %v\n", err)
		fmt.Printf("  hint: %s\n", attachHint)
		return false
	}
	mgr.Close()
	fmt.Println("  OK: event source attached")
	return true
}

func checkRegister() bool {
	fmt.Println()
	fmt.Printf("[2/3] Registration (%s)\n", probe)

	mgr, err := hotbind.New()
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		return false
	}
	defer mgr.Close()

	id, err := mgr.RegisterDescriptor(probe)
	if err != nil {
		fmt.Printf("  FAIL: could not register: %v\n", err)
		if errors.Is(err, hotbind.ErrPermissionDenied) {
			fmt.Printf("  hint: %s\n", permissionHint)
		}
		return false
	}
	if err := mgr.Unregister(id); err != nil {
		fmt.Printf("  FAIL: could not unregister: %v\n", err)
		return false
	}
	fmt.Println("  OK: register/unregister round-trip")
	return true
}

func checkTrigger() bool {
	fmt.Println()
	fmt.Printf("[3/3] Event delivery - press %s within 10 seconds...\n", probe)

	mgr, err := hotbind.New()
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		return false
	}
	defer mgr.Close()

	// Registration and the event wait are platform-specific: on Windows
	// both must happen on one locked thread that also pumps messages.
	ev, ok, err := waitForTrigger(mgr, probe, 10*time.Second)
	if err != nil {
		fmt.Printf("  FAIL: could not register: %v\n", err)
		return false
	}
	if !ok {
		fmt.Println("  FAIL: no event received")
		fmt.Printf("  hint: %s\n", deliveryHint)
		return false
	}
	fmt.Printf("  OK: received %s event for id %d\n", ev.State, ev.ID)
	return true
}
