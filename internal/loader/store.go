package loader

import "sync"

// Store holds loaded datasets by ID and tracks which one is current. All
// methods are safe for concurrent use by HTTP handlers.
type Store struct {
	mu       sync.RWMutex
	datasets map[string]*Dataset
	current  string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{datasets: map[string]*Dataset{}}
}

// Put registers a dataset and makes it current.
func (s *Store) Put(ds *Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets[ds.ID] = ds
	s.current = ds.ID
}

// Get looks a dataset up by ID.
func (s *Store) Get(id string) (*Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds, ok := s.datasets[id]
	return ds, ok
}

// Current returns the active dataset, or nil when nothing is loaded.
func (s *Store) Current() *Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.datasets[s.current]
}

// SetCurrent switches the active dataset; unknown IDs are ignored and
// reported false.
func (s *Store) SetCurrent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.datasets[id]; !ok {
		return false
	}
	s.current = id
	return true
}

// Remove drops a dataset. Removing the current one leaves no current
// dataset.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.datasets, id)
	if s.current == id {
		s.current = ""
	}
}

// List snapshots all datasets in no particular order.
func (s *Store) List() []*Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Dataset, 0, len(s.datasets))
	for _, ds := range s.datasets {
		out = append(out, ds)
	}
	return out
}
