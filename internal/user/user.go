package user

import (
	"errors"
	"time"

	userDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/user"
)

const (
	RoleAdmin        = "admin"
	RolePhotographer = "photographer"
	RoleAssistant    = "assistant"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("username or email already taken")
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	TeamID       *int64    `json:"team_id"`
	IBAN         *string   `json:"iban"`
	BankName     *string   `json:"bank_name"`
	BankAddress  *string   `json:"bank_address"`
	BIC          *string   `json:"bic"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		TeamID:       u.TeamID,
		IBAN:         u.IBAN,
		BankName:     u.BankName,
		BankAddress:  u.BankAddress,
		BIC:          u.BIC,
		CreatedAt:    u.CreatedAt,
	}
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		TeamID:       u.TeamID,
		IBAN:         u.IBAN,
		BankName:     u.BankName,
		BankAddress:  u.BankAddress,
		BIC:          u.BIC,
		CreatedAt:    u.CreatedAt,
	}
}
