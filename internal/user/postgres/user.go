package postgres

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	userDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/user"
	"github.com/matteocalo/photodesk/internal/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *user.User) error {
	row := user.ToDataModel(u)
	row.ID = 0
	if err := r.db.Create(row).Error; err != nil {
		if IsUniqueViolation(err) {
			return user.ErrDuplicate
		}
		return err
	}
	*u = *user.FromDataModel(row)
	return nil
}

func (r *UserRepository) GetByID(id int64) (*user.User, error) {
	return r.first("id = ?", id)
}

func (r *UserRepository) GetByUsername(username string) (*user.User, error) {
	return r.first("username = ?", username)
}

func (r *UserRepository) GetByEmail(email string) (*user.User, error) {
	return r.first("email = ?", email)
}

func (r *UserRepository) first(query string, arg interface{}) (*user.User, error) {
	var row userDatamodel.User
	if err := r.db.Where(query, arg).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return user.FromDataModel(&row), nil
}

// IsUniqueViolation recognises duplicate keys from both the translated gorm error
// and a raw Postgres error.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
