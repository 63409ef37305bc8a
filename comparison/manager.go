package comparison

import (
	"context"
	"encoding/json"
	"log"
	"sync"
)

// Capacity is the most products a visitor can compare side by side.
const Capacity = 4

// Manager owns one selection: an ordered, deduplicated list of product
// ids, never longer than Capacity. Every mutation persists write-through
// before returning, so a reload always restores the latest state.
//
// Safe for concurrent use; each selection key gets its own Manager.
type Manager struct {
	mu    sync.Mutex
	store Store
	key   string
	seed  []int // fallback when the stored blob is absent or corrupt
	ids   []int
}

// NewManager binds a selection to a store key. seed (may be nil) is the
// default selection used when nothing valid can be restored.
func NewManager(store Store, key string, seed []int) *Manager {
	return &Manager{store: store, key: key, seed: clamp(seed)}
}

// Restore loads the persisted selection. Corrupt or unparseable blobs fall
// back to the seed; a broken stored value must never take the page down.
// Restored lists are re-clamped to the capacity and dedup invariants in
// case an older writer left them violated.
func (m *Manager) Restore(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	blob, ok, err := m.store.Get(ctx, m.key)
	if err != nil {
		log.Printf("⚠️ comparison: restore %q failed, using default: %v", m.key, err)
		m.ids = append([]int{}, m.seed...)
		return
	}
	if !ok {
		m.ids = append([]int{}, m.seed...)
		return
	}

	var ids []int
	if err := json.Unmarshal([]byte(blob), &ids); err != nil {
		log.Printf("⚠️ comparison: corrupt selection under %q, using default", m.key)
		m.ids = append([]int{}, m.seed...)
		return
	}
	m.ids = clamp(ids)
}

// Add appends id unless it is already selected or the selection is full.
// Returns whether the selection changed.
func (m *Manager) Add(ctx context.Context, id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.ids) >= Capacity || containsID(m.ids, id) {
		return false
	}
	m.ids = append(m.ids, id)
	m.persist(ctx)
	return true
}

// Remove drops id if present. Returns whether the selection changed.
func (m *Manager) Remove(ctx context.Context, id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.ids {
		if existing == id {
			m.ids = append(m.ids[:i], m.ids[i+1:]...)
			m.persist(ctx)
			return true
		}
	}
	return false
}

// Clear empties the selection. The empty list is persisted rather than
// the key deleted, so a later Restore sees the cleared state instead of
// falling back to the seed.
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ids = []int{}
	m.persist(ctx)
}

// IDs returns the selection in insertion order.
func (m *Manager) IDs() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int{}, m.ids...)
}

// persist writes the current selection; callers hold the lock.
func (m *Manager) persist(ctx context.Context) {
	blob, err := json.Marshal(m.ids)
	if err != nil {
		log.Printf("⚠️ comparison: marshal selection for %q failed: %v", m.key, err)
		return
	}
	if err := m.store.Set(ctx, m.key, string(blob)); err != nil {
		log.Printf("⚠️ comparison: persist %q failed: %v", m.key, err)
	}
}

// clamp enforces the selection invariants: no duplicates, at most Capacity
// entries, order preserved.
func clamp(ids []int) []int {
	out := make([]int, 0, Capacity)
	for _, id := range ids {
		if len(out) == Capacity {
			break
		}
		if !containsID(out, id) {
			out = append(out, id)
		}
	}
	return out
}

func containsID(ids []int, id int) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
