package memstore

import (
	"sort"
	"sync"
)

// table is one entity type's id counter and rows. The mutex covers both.
// Rows are stored and returned as copies so callers never alias stored state.
type table[T any] struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]*T
	clone  func(*T) *T
}

func newTable[T any](clone func(*T) *T) *table[T] {
	return &table[T]{
		rows:  make(map[int64]*T),
		clone: clone,
	}
}

func shallow[T any](v *T) *T {
	c := *v
	return &c
}

// allocLocked returns the next id. Caller holds mu for writing.
func (t *table[T]) allocLocked() int64 {
	t.nextID++
	return t.nextID
}

func (t *table[T]) get(id int64) (*T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	return t.clone(row), true
}

// filterLocked returns copies of matching rows in id order. Caller holds mu.
func (t *table[T]) filterLocked(keep func(*T) bool) []*T {
	ids := make([]int64, 0, len(t.rows))
	for id, row := range t.rows {
		if keep(row) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*T, len(ids))
	for i, id := range ids {
		out[i] = t.clone(t.rows[id])
	}
	return out
}

func (t *table[T]) filter(keep func(*T) bool) []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.filterLocked(keep)
}

func (t *table[T]) delete(id int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.rows, id)
}
