package hotbind

import (
	"fmt"
	"sync"
	"sync/atomic"

	"hotbind/keycode"
	"hotbind/log"
)

// Manager is the composition root: one registry plus the platform backend,
// selected once at construction. Registration calls may come from any
// goroutine (subject to the Windows thread-affinity precondition documented
// in the package comment); the manager serializes them internally.
type Manager struct {
	mu      sync.Mutex
	reg     *registry
	backend Backend
	stream  *Stream
	closed  atomic.Bool
}

// New builds a Manager on the running platform's backend. It fails only if
// the backend cannot attach its native event source, e.g. no X display
// reachable.
func New() (*Manager, error) {
	b, err := newPlatformBackend()
	if err != nil {
		return nil, err
	}
	return NewWithBackend(b), nil
}

// NewWithBackend builds a Manager around an explicit backend. Intended for
// tests and headless wiring with FakeBackend.
func NewWithBackend(b Backend) *Manager {
	m := &Manager{
		reg:     newRegistry(),
		backend: b,
		stream:  newStream(defaultStreamCap),
	}
	b.Attach(m.deliver)
	return m
}

// deliver runs on the platform's event-delivery thread.
func (m *Manager) deliver(id int, state State) {
	if m.closed.Load() {
		return
	}
	m.stream.push(Event{ID: id, State: state})
}

// Register registers the hotkey (mods, key) and returns its identifier.
// Fails with ErrAlreadyRegistered, ErrUnsupportedKey, ErrPermissionDenied,
// or a NativeError; on failure no identifier is allocated.
func (m *Manager) Register(mods keycode.Modifiers, key keycode.Key) (int, error) {
	return m.RegisterDescriptor(Descriptor{Mods: mods, Key: key})
}

// RegisterDescriptor is Register for an already-built descriptor.
func (m *Manager) RegisterDescriptor(d Descriptor) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.registerLocked(d)
}

func (m *Manager) registerLocked(d Descriptor) (int, error) {
	if m.closed.Load() {
		return 0, ErrClosed
	}
	d = d.Normalize()
	id, err := m.reg.allocate(d)
	if err != nil {
		return 0, err
	}
	handle, err := m.backend.Register(id, d)
	if err != nil {
		// Roll back so the identifier is immediately reusable.
		m.reg.release(id)
		return 0, fmt.Errorf("registering %s: %w", d, err)
	}
	m.reg.attach(id, handle)
	return id, nil
}

// RegisterAll registers every descriptor or none: on the first failure the
// ones registered so far are unregistered again and the error returned.
func (m *Manager) RegisterAll(descs []Descriptor) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int, 0, len(descs))
	for _, d := range descs {
		id, err := m.registerLocked(d)
		if err != nil {
			for _, done := range ids {
				if uerr := m.unregisterLocked(done); uerr != nil {
					log.Warnf("rollback unregister %d: %v", done, uerr)
				}
			}
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Unregister releases the hotkey id. After it returns the identifier is no
// longer live regardless of the outcome; a non-nil error means the native
// teardown failed and a native resource may have leaked.
func (m *Manager) Unregister(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed.Load() {
		return ErrClosed
	}
	return m.unregisterLocked(id)
}

func (m *Manager) unregisterLocked(id int) error {
	desc, handle, err := m.reg.release(id)
	if err != nil {
		return err
	}
	if err := m.backend.Unregister(id, handle); err != nil {
		return fmt.Errorf("unregistering %s: %w", desc, err)
	}
	return nil
}

// UnregisterAll releases every live hotkey. Best-effort: it keeps going past
// native failures and returns the first one.
func (m *Manager) UnregisterAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed.Load() {
		return ErrClosed
	}
	return m.unregisterAllLocked()
}

func (m *Manager) unregisterAllLocked() error {
	var first error
	for _, id := range m.reg.ids() {
		if err := m.unregisterLocked(id); err != nil {
			log.Warnf("unregister %d: %v", id, err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// Lookup resolves a live identifier back to its descriptor, e.g. for
// labeling events.
func (m *Manager) Lookup(id int) (Descriptor, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reg.lookup(id)
}

// Events returns the stream the backend delivers into. One stream per
// Manager; multiple goroutines may drain it concurrently.
func (m *Manager) Events() *Stream {
	return m.stream
}

// Close unregisters everything and tears down the native event source. No
// native handle outlives Close. Idempotent; teardown failures are logged
// and not returned since Close typically runs on shutdown paths that must
// not abort.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed.Swap(true) {
		return
	}
	if err := m.unregisterAllLocked(); err != nil {
		log.Warnf("teardown: %v", err)
	}
	if err := m.backend.Close(); err != nil {
		log.Warnf("closing backend: %v", err)
	}
}
