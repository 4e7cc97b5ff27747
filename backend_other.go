//go:build (!windows && !linux && !darwin) || (linux && !cgo) || (darwin && !cgo)

package hotbind

import "errors"

func newPlatformBackend() (Backend, error) {
	return nil, errors.New("global hotkeys are not supported on this platform")
}
