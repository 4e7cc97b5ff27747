package hotbind

// registration is the in-process record for one live hotkey: the identifier,
// its descriptor, and the opaque native handle the backend attached after a
// successful native call.
type registration struct {
	id     int
	desc   Descriptor
	handle any
}

// registry is the platform-independent bookkeeping layer. It is the sole
// in-process arbiter of what is registered: it allocates identifiers,
// detects duplicates before any native call is issued, and never holds a
// record whose native handle has been released. Identifiers are small
// integers starting at 1, recycled after release. Not safe for concurrent
// use; the Manager serializes access.
type registry struct {
	byID   map[int]*registration
	byDesc map[Descriptor]int
	free   []int
	next   int
}

func newRegistry() *registry {
	return &registry{
		byID:   make(map[int]*registration),
		byDesc: make(map[Descriptor]int),
		next:   1,
	}
}

// allocate mints (or recycles) an identifier for d and stores a pending
// record with no native handle yet. Fails with ErrAlreadyRegistered when an
// equal normalized descriptor is active.
func (r *registry) allocate(d Descriptor) (int, error) {
	d = d.Normalize()
	if _, dup := r.byDesc[d]; dup {
		return 0, ErrAlreadyRegistered
	}
	var id int
	if n := len(r.free); n > 0 {
		id = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		id = r.next
		r.next++
	}
	r.byID[id] = &registration{id: id, desc: d}
	r.byDesc[d] = id
	return id, nil
}

// attach completes a pending record with the backend's native handle.
func (r *registry) attach(id int, handle any) {
	if rec, ok := r.byID[id]; ok {
		rec.handle = handle
	}
}

// release removes the record and hands the descriptor and native handle back
// to the caller, which still owns the native registration at this point and
// performs the native teardown. After release returns, id is no longer live
// and may be recycled.
func (r *registry) release(id int) (Descriptor, any, error) {
	rec, ok := r.byID[id]
	if !ok {
		return Descriptor{}, nil, ErrUnknownIdentifier
	}
	delete(r.byID, id)
	delete(r.byDesc, rec.desc)
	r.free = append(r.free, id)
	return rec.desc, rec.handle, nil
}

// lookup resolves a live identifier to its descriptor.
func (r *registry) lookup(id int) (Descriptor, bool) {
	rec, ok := r.byID[id]
	if !ok {
		return Descriptor{}, false
	}
	return rec.desc, true
}

// ids returns the live identifiers in unspecified order.
func (r *registry) ids() []int {
	out := make([]int, 0, len(r.byID))
	for id := range r.byID {
		out = append(out, id)
	}
	return out
}

func (r *registry) count() int {
	return len(r.byID)
}
