package lightpath

import "sync"

// MirrorRegistry tracks the mirrors placed in a scene between searches.
//
// Placement code adds and removes mirrors here; before each search the caller
// takes a Snapshot and passes it in the Query. The registry is safe for
// concurrent use, but a search only ever sees the snapshot it was given.
type MirrorRegistry struct {
	mu      sync.RWMutex
	nextID  int
	order   []int
	mirrors map[int]Mirror
}

func NewMirrorRegistry() *MirrorRegistry {
	return &MirrorRegistry{mirrors: map[int]Mirror{}}
}

// Add registers m and returns a handle for later Update or Remove calls.
func (r *MirrorRegistry) Add(m Mirror) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.order = append(r.order, id)
	r.mirrors[id] = m
	return id
}

// Update moves an existing mirror. It reports false for an unknown handle.
func (r *MirrorRegistry) Update(id int, m Mirror) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.mirrors[id]; !ok {
		return false
	}
	r.mirrors[id] = m
	return true
}

// Remove unregisters a mirror. It reports false for an unknown handle.
func (r *MirrorRegistry) Remove(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.mirrors[id]; !ok {
		return false
	}
	delete(r.mirrors, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *MirrorRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Snapshot copies the registered mirrors in the order they were added.
func (r *MirrorRegistry) Snapshot() []Mirror {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Mirror, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.mirrors[id])
	}
	return out
}
