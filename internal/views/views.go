// Package views tracks which storefront views are stale after a mutation.
//
// Each view path carries a monotonic version; clients compare the versions
// they rendered against the current ones to decide whether to re-fetch.
package views

import "sync"

// View paths whose rendered data depends on the store.
const (
	Home           = "/"
	Shop           = "/shop"
	AdminDashboard = "/admin/dashboard"
)

// Tracker holds a version counter per view path.
type Tracker struct {
	mu       sync.Mutex
	versions map[string]uint64
}

// NewTracker creates a Tracker with all known views at version 0.
func NewTracker() *Tracker {
	return &Tracker{
		versions: map[string]uint64{
			Home:           0,
			Shop:           0,
			AdminDashboard: 0,
		},
	}
}

// Revalidate bumps the version of each given view path.
func (t *Tracker) Revalidate(paths ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, p := range paths {
		t.versions[p]++
	}
}

// Versions returns a copy of the current view versions.
func (t *Tracker) Versions() map[string]uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]uint64, len(t.versions))
	for p, v := range t.versions {
		out[p] = v
	}
	return out
}
