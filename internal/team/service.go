package team

import (
	"errors"
	"log/slog"

	"github.com/matteocalo/photodesk/internal"
)

type Repository interface {
	Create(t *Team) error
	GetByID(id int64) (*Team, error)
	ListByOwner(userID int64) ([]*Team, error)
	Update(id int64, p Patch) (*Team, error)
	Delete(id int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) CreateTeam(userID int64, dto CreateTeamDTO) (*Team, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationErrorFrom(err)
	}
	t := &Team{Name: dto.Name, UserID: userID}
	if err := s.repo.Create(t); err != nil {
		s.logger.Error("failed to create team", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to create team", err)
	}
	return t, nil
}

func (s *Service) GetOwned(id, callerID int64) (*Team, error) {
	t, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.NewNotFoundError("team not found", internal.ErrCodeTeamNotFound)
		}
		return nil, internal.NewInternalError("failed to get team", err)
	}
	if t.UserID != callerID {
		return nil, internal.NotOwner("team")
	}
	return t, nil
}

func (s *Service) ListTeams(callerID int64) ([]*Team, error) {
	teams, err := s.repo.ListByOwner(callerID)
	if err != nil {
		return nil, internal.NewInternalError("failed to list teams", err)
	}
	return teams, nil
}

func (s *Service) UpdateTeam(id, callerID int64, p Patch) (*Team, error) {
	if _, err := s.GetOwned(id, callerID); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, internal.NewValidationErrorFrom(err)
	}
	t, err := s.repo.Update(id, p)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.NewNotFoundError("team not found", internal.ErrCodeTeamNotFound)
		}
		return nil, internal.NewInternalError("failed to update team", err)
	}
	return t, nil
}

func (s *Service) DeleteTeam(id, callerID int64) error {
	if _, err := s.GetOwned(id, callerID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return internal.NewInternalError("failed to delete team", err)
	}
	return nil
}
