package loader

import "sync/atomic"

// Session serializes overlapping load requests from one client view: each
// new load takes a token, and only the result holding the latest token may
// be adopted. A slow earlier load finishing after a newer one started is
// discarded instead of clobbering the fresher dataset.
type Session struct {
	latest atomic.Uint64
}

// Begin claims a new token, invalidating all earlier ones.
func (s *Session) Begin() uint64 {
	return s.latest.Add(1)
}

// Stale reports whether token has been superseded by a later Begin.
func (s *Session) Stale(token uint64) bool {
	return token != s.latest.Load()
}

// Adopt stores ds into store only when token is still the latest; it
// reports whether the dataset was kept.
func (s *Session) Adopt(token uint64, store *Store, ds *Dataset) bool {
	if s.Stale(token) {
		return false
	}
	store.Put(ds)
	return true
}
