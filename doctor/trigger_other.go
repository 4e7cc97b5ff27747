//go:build !windows

package doctor

import (
	"time"

	"hotbind"
)

func waitForTrigger(mgr *hotbind.Manager, d hotbind.Descriptor, timeout time.Duration) (hotbind.Event, bool, error) {
	if _, err := mgr.RegisterDescriptor(d); err != nil {
		return hotbind.Event{}, false, err
	}
	ev, ok := mgr.Events().ReceiveTimeout(timeout)
	return ev, ok, nil
}
