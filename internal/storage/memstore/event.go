package memstore

import "github.com/matteocalo/photodesk/internal/event"

type eventRepo struct{ s *MemStorage }

func (r *eventRepo) Create(e *event.Event) error {
	t := r.s.events
	t.mu.Lock()
	defer t.mu.Unlock()

	e.ID = t.allocLocked()
	e.CreatedAt = r.s.now()
	t.rows[e.ID] = e.Clone()
	return nil
}

func (r *eventRepo) GetByID(id int64) (*event.Event, error) {
	e, ok := r.s.events.get(id)
	if !ok {
		return nil, event.ErrNotFound
	}
	return e, nil
}

func (r *eventRepo) ListByOwner(userID int64) ([]*event.Event, error) {
	return r.s.events.filter(func(e *event.Event) bool { return e.UserID == userID }), nil
}

func (r *eventRepo) Update(id int64, p event.Patch) (*event.Event, error) {
	t := r.s.events
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, event.ErrNotFound
	}
	row.Merge(p)
	return row.Clone(), nil
}

func (r *eventRepo) Delete(id int64) error {
	r.s.events.delete(id)
	return nil
}
