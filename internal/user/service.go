package user

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/matteocalo/photodesk/internal"
	"github.com/matteocalo/photodesk/internal/core/password"
)

type Repository interface {
	Create(u *User) error
	GetByID(id int64) (*User, error)
	GetByUsername(username string) (*User, error)
	GetByEmail(email string) (*User, error)
}

type Service struct {
	repo   Repository
	hasher *password.Hasher
	logger *slog.Logger
}

func NewService(repo Repository, hasher *password.Hasher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// Register creates an account. The role defaults to photographer.
func (s *Service) Register(dto RegisterDTO) (*User, error) {
	dto.Username = strings.TrimSpace(dto.Username)
	dto.Email = strings.ToLower(strings.TrimSpace(dto.Email))
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationErrorFrom(err)
	}

	role := dto.Role
	if role == "" {
		role = RolePhotographer
	}

	hash, err := s.hasher.Hash(dto.Password)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	u := &User{
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: hash,
		Role:         role,
		TeamID:       dto.TeamID,
		IBAN:         dto.IBAN,
		BankName:     dto.BankName,
		BankAddress:  dto.BankAddress,
		BIC:          dto.BIC,
	}

	if err := s.repo.Create(u); err != nil {
		if errors.Is(err, ErrDuplicate) {
			s.logger.Warn("registration rejected, duplicate identity", "username", dto.Username)
			return nil, internal.NewConflictError("username or email already taken", internal.ErrCodeDuplicateUser)
		}
		s.logger.Error("failed to create user", "error", err, "username", dto.Username)
		return nil, internal.NewInternalError("failed to create user", err)
	}

	s.logger.Info("user registered", "user_id", u.ID, "role", u.Role)
	return u, nil
}

func (s *Service) GetByID(userID int64) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.NewNotFoundError("user not found", internal.ErrCodeUserNotFound)
		}
		return nil, internal.NewInternalError("failed to get user", err)
	}
	return u, nil
}
