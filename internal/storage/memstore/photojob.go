package memstore

import "github.com/matteocalo/photodesk/internal/photojob"

type photoJobRepo struct{ s *MemStorage }

func (r *photoJobRepo) Create(j *photojob.PhotoJob) error {
	t := r.s.jobs
	t.mu.Lock()
	defer t.mu.Unlock()

	now := r.s.now()
	j.ID = t.allocLocked()
	j.CreatedAt = now
	j.UpdatedAt = now
	t.rows[j.ID] = j.Clone()
	return nil
}

func (r *photoJobRepo) GetByID(id int64) (*photojob.PhotoJob, error) {
	j, ok := r.s.jobs.get(id)
	if !ok {
		return nil, photojob.ErrNotFound
	}
	return j, nil
}

func (r *photoJobRepo) ListByOwner(userID int64) ([]*photojob.PhotoJob, error) {
	return r.s.jobs.filter(func(j *photojob.PhotoJob) bool { return j.UserID == userID }), nil
}

func (r *photoJobRepo) Update(id int64, p photojob.Patch) (*photojob.PhotoJob, error) {
	t := r.s.jobs
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, photojob.ErrNotFound
	}
	row.Merge(p, r.s.now())
	return row.Clone(), nil
}

// Delete removes the job and every comment on it while holding both locks, so no
// reader sees the job gone with its comments still present.
func (r *photoJobRepo) Delete(id int64) error {
	jobs, comments := r.s.jobs, r.s.comments
	jobs.mu.Lock()
	defer jobs.mu.Unlock()
	comments.mu.Lock()
	defer comments.mu.Unlock()

	for cid, c := range comments.rows {
		if c.JobID == id {
			delete(comments.rows, cid)
		}
	}
	delete(jobs.rows, id)
	return nil
}
