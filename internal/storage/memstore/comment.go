package memstore

import (
	"sort"

	"github.com/matteocalo/photodesk/internal/comment"
)

type commentRepo struct{ s *MemStorage }

func (r *commentRepo) Create(c *comment.Comment) error {
	t := r.s.comments
	t.mu.Lock()
	defer t.mu.Unlock()

	now := r.s.now()
	c.ID = t.allocLocked()
	c.CreatedAt = now
	c.UpdatedAt = now
	t.rows[c.ID] = shallow(c)
	return nil
}

func (r *commentRepo) GetByID(id int64) (*comment.Comment, error) {
	c, ok := r.s.comments.get(id)
	if !ok {
		return nil, comment.ErrNotFound
	}
	return c, nil
}

// ListByJob returns newest first; equal timestamps fall back to id, highest first.
func (r *commentRepo) ListByJob(jobID int64) ([]*comment.Comment, error) {
	out := r.s.comments.filter(func(c *comment.Comment) bool { return c.JobID == jobID })
	sort.SliceStable(out, func(i, j int) bool { return comment.NewestFirst(out[i], out[j]) })
	return out, nil
}

func (r *commentRepo) Update(id int64, p comment.Patch) (*comment.Comment, error) {
	t := r.s.comments
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, comment.ErrNotFound
	}
	row.Merge(p, r.s.now())
	return shallow(row), nil
}

func (r *commentRepo) DeleteByJob(jobID int64) error {
	t := r.s.comments
	t.mu.Lock()
	defer t.mu.Unlock()

	for id, c := range t.rows {
		if c.JobID == jobID {
			delete(t.rows, id)
		}
	}
	return nil
}
