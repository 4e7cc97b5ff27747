package hotbind

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyRegistered means an equal normalized descriptor is already
	// active, either inside this process or (reported identically by the
	// OS) in another one. Pick a different combination.
	ErrAlreadyRegistered = errors.New("hotkey already registered")

	// ErrUnsupportedKey means the key has no native equivalent on the
	// running platform. Registration fails rather than substituting a
	// different key.
	ErrUnsupportedKey = errors.New("key not supported on this platform")

	// ErrPermissionDenied means the OS refused the registration for
	// privilege reasons; remediation is usually OS-level (e.g. input-group
	// membership or accessibility permission).
	ErrPermissionDenied = errors.New("permission denied")

	// ErrUnknownIdentifier means the identifier is not live: never
	// registered, or already released. Unregistering twice is an error.
	ErrUnknownIdentifier = errors.New("unknown hotkey identifier")

	// ErrClosed is returned by Manager operations after Close.
	ErrClosed = errors.New("hotkey manager closed")
)

// NativeError carries a raw OS error code from a failed native call. The
// code is surfaced for diagnostics, never interpreted further.
type NativeError struct {
	Op   string
	Code int64
}

func (e *NativeError) Error() string {
	return fmt.Sprintf("%s failed with native error %d", e.Op, e.Code)
}
