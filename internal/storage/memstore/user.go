package memstore

import "github.com/matteocalo/photodesk/internal/user"

type userRepo struct{ s *MemStorage }

// Create rejects a username or email that is already taken.
func (r *userRepo) Create(u *user.User) error {
	t := r.s.users
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, existing := range t.rows {
		if existing.Username == u.Username || existing.Email == u.Email {
			return user.ErrDuplicate
		}
	}

	u.ID = t.allocLocked()
	u.CreatedAt = r.s.now()
	t.rows[u.ID] = shallow(u)
	return nil
}

func (r *userRepo) GetByID(id int64) (*user.User, error) {
	u, ok := r.s.users.get(id)
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByUsername(username string) (*user.User, error) {
	return r.findOne(func(u *user.User) bool { return u.Username == username })
}

func (r *userRepo) GetByEmail(email string) (*user.User, error) {
	return r.findOne(func(u *user.User) bool { return u.Email == email })
}

func (r *userRepo) findOne(match func(*user.User) bool) (*user.User, error) {
	found := r.s.users.filter(match)
	if len(found) == 0 {
		return nil, user.ErrNotFound
	}
	return found[0], nil
}
