package memstore

import "github.com/matteocalo/photodesk/internal/team"

type teamRepo struct{ s *MemStorage }

func (r *teamRepo) Create(tm *team.Team) error {
	t := r.s.teams
	t.mu.Lock()
	defer t.mu.Unlock()

	tm.ID = t.allocLocked()
	tm.CreatedAt = r.s.now()
	t.rows[tm.ID] = shallow(tm)
	return nil
}

func (r *teamRepo) GetByID(id int64) (*team.Team, error) {
	tm, ok := r.s.teams.get(id)
	if !ok {
		return nil, team.ErrNotFound
	}
	return tm, nil
}

func (r *teamRepo) ListByOwner(userID int64) ([]*team.Team, error) {
	return r.s.teams.filter(func(tm *team.Team) bool { return tm.UserID == userID }), nil
}

func (r *teamRepo) Update(id int64, p team.Patch) (*team.Team, error) {
	t := r.s.teams
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, team.ErrNotFound
	}
	row.Merge(p)
	return shallow(row), nil
}

func (r *teamRepo) Delete(id int64) error {
	r.s.teams.delete(id)
	return nil
}
