package hotbind

// EmitFunc is how a backend hands a translated native trigger to the event
// stream. Implementations are called from the platform's delivery thread and
// never block.
type EmitFunc func(id int, state State)

// Backend is the platform-specific subsystem performing native registration
// and event translation. One implementation exists per OS family; the
// Manager selects it once at construction, so there is no per-call dynamic
// platform dispatch beyond this interface.
//
// Register and Unregister are called with the Manager's lock held and are
// expected to be non-blocking syscalls (or marshaled equivalents). The
// returned handle is opaque to everything but the backend itself; it is
// stored by the registry and handed back on Unregister.
type Backend interface {
	// Attach wires the backend to the event stream. Called exactly once,
	// before any Register.
	Attach(emit EmitFunc)

	// Register performs the native registration for id. The descriptor is
	// already normalized and known to be unique in-process; the OS may
	// still reject it (cross-process conflict), reported as
	// ErrAlreadyRegistered.
	Register(id int, d Descriptor) (handle any, err error)

	// Unregister releases the native registration previously created for
	// id. The handle is the one Register returned.
	Unregister(id int, handle any) error

	// Close tears down the native event source. No events are delivered
	// after Close returns. Idempotent.
	Close() error
}
