package hotbind

import "sync"

// FakeBackend is an in-memory Backend for tests and headless wiring. It
// accepts every supported descriptor, and triggers are driven explicitly via
// SimulatePress and SimulateRelease.
type FakeBackend struct {
	mu         sync.Mutex
	emit       EmitFunc
	registered map[int]Descriptor
	closed     bool

	// RegisterErr, when set, is returned by the next Register calls.
	// Lets tests exercise the Manager's rollback path.
	RegisterErr error
	// UnregisterErr, when set, is returned by Unregister calls.
	UnregisterErr error
}

func NewFakeBackend() *FakeBackend {
	return &FakeBackend{registered: make(map[int]Descriptor)}
}

func (f *FakeBackend) Attach(emit EmitFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emit = emit
}

func (f *FakeBackend) Register(id int, d Descriptor) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.RegisterErr != nil {
		return nil, f.RegisterErr
	}
	f.registered[id] = d
	return d, nil
}

func (f *FakeBackend) Unregister(id int, _ any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.registered, id)
	return f.UnregisterErr
}

func (f *FakeBackend) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// Registered reports whether id currently holds a fake native registration.
func (f *FakeBackend) Registered(id int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.registered[id]
	return ok
}

// Count returns the number of fake native registrations.
func (f *FakeBackend) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.registered)
}

// SimulatePress delivers a Pressed event for id as if the OS reported it.
// Events simulated for unregistered ids or after Close are discarded, the
// way a torn-down native listener stops delivering.
func (f *FakeBackend) SimulatePress(id int) {
	f.simulate(id, Pressed)
}

// SimulateRelease delivers a Released event for id.
func (f *FakeBackend) SimulateRelease(id int) {
	f.simulate(id, Released)
}

func (f *FakeBackend) simulate(id int, state State) {
	f.mu.Lock()
	emit := f.emit
	_, live := f.registered[id]
	closed := f.closed
	f.mu.Unlock()
	if emit == nil || !live || closed {
		return
	}
	emit(id, state)
}
