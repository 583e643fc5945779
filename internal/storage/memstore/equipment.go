package memstore

import "github.com/matteocalo/photodesk/internal/equipment"

type equipmentRepo struct{ s *MemStorage }

func (r *equipmentRepo) Create(e *equipment.Equipment) error {
	t := r.s.equipment
	t.mu.Lock()
	defer t.mu.Unlock()

	e.ID = t.allocLocked()
	e.CreatedAt = r.s.now()
	t.rows[e.ID] = shallow(e)
	return nil
}

func (r *equipmentRepo) GetByID(id int64) (*equipment.Equipment, error) {
	e, ok := r.s.equipment.get(id)
	if !ok {
		return nil, equipment.ErrNotFound
	}
	return e, nil
}

func (r *equipmentRepo) ListByOwner(userID int64) ([]*equipment.Equipment, error) {
	return r.s.equipment.filter(func(e *equipment.Equipment) bool { return e.UserID == userID }), nil
}

func (r *equipmentRepo) Update(id int64, p equipment.Patch) (*equipment.Equipment, error) {
	t := r.s.equipment
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, equipment.ErrNotFound
	}
	row.Merge(p)
	return shallow(row), nil
}

func (r *equipmentRepo) Delete(id int64) error {
	r.s.equipment.delete(id)
	return nil
}
