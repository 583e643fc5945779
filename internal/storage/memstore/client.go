package memstore

import "github.com/matteocalo/photodesk/internal/client"

type clientRepo struct{ s *MemStorage }

func (r *clientRepo) Create(c *client.Client) error {
	t := r.s.clients
	t.mu.Lock()
	defer t.mu.Unlock()

	c.ID = t.allocLocked()
	c.CreatedAt = r.s.now()
	t.rows[c.ID] = shallow(c)
	return nil
}

func (r *clientRepo) GetByID(id int64) (*client.Client, error) {
	c, ok := r.s.clients.get(id)
	if !ok {
		return nil, client.ErrNotFound
	}
	return c, nil
}

func (r *clientRepo) ListByOwner(userID int64) ([]*client.Client, error) {
	return r.s.clients.filter(func(c *client.Client) bool { return c.UserID == userID }), nil
}

func (r *clientRepo) Update(id int64, p client.Patch) (*client.Client, error) {
	t := r.s.clients
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, client.ErrNotFound
	}
	row.Merge(p)
	return shallow(row), nil
}

// Delete removes the client and nulls client_id on the jobs and events that
// referenced it, all under the three table locks.
func (r *clientRepo) Delete(id int64) error {
	clients, jobs, events := r.s.clients, r.s.jobs, r.s.events
	clients.mu.Lock()
	defer clients.mu.Unlock()
	jobs.mu.Lock()
	defer jobs.mu.Unlock()
	events.mu.Lock()
	defer events.mu.Unlock()

	now := r.s.now()
	for _, j := range jobs.rows {
		if refersTo(j.ClientID, id) {
			j.ClientID = nil
			j.UpdatedAt = now
		}
	}
	for _, e := range events.rows {
		if refersTo(e.ClientID, id) {
			e.ClientID = nil
		}
	}
	delete(clients.rows, id)
	return nil
}

func refersTo(ref *int64, id int64) bool {
	return ref != nil && *ref == id
}
