package equipment

import (
	"errors"
	"log/slog"

	"github.com/matteocalo/photodesk/internal"
)

type Repository interface {
	Create(e *Equipment) error
	GetByID(id int64) (*Equipment, error)
	ListByOwner(userID int64) ([]*Equipment, error)
	Update(id int64, p Patch) (*Equipment, error)
	Delete(id int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) CreateEquipment(userID int64, dto CreateEquipmentDTO) (*Equipment, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationErrorFrom(err)
	}
	status := dto.Status
	if status == "" {
		status = StatusAvailable
	}

	e := &Equipment{
		UserID: userID,
		Name:   dto.Name,
		Type:   dto.Type,
		Status: status,
	}
	if err := s.repo.Create(e); err != nil {
		s.logger.Error("failed to create equipment", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to create equipment", err)
	}
	return e, nil
}

func (s *Service) GetOwned(id, callerID int64) (*Equipment, error) {
	e, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.NewNotFoundError("equipment not found", internal.ErrCodeEquipmentNotFound)
		}
		return nil, internal.NewInternalError("failed to get equipment", err)
	}
	if e.UserID != callerID {
		return nil, internal.NotOwner("equipment")
	}
	return e, nil
}

func (s *Service) ListEquipment(callerID int64) ([]*Equipment, error) {
	items, err := s.repo.ListByOwner(callerID)
	if err != nil {
		return nil, internal.NewInternalError("failed to list equipment", err)
	}
	return items, nil
}

func (s *Service) UpdateEquipment(id, callerID int64, p Patch) (*Equipment, error) {
	if _, err := s.GetOwned(id, callerID); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, internal.NewValidationErrorFrom(err)
	}
	e, err := s.repo.Update(id, p)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.NewNotFoundError("equipment not found", internal.ErrCodeEquipmentNotFound)
		}
		return nil, internal.NewInternalError("failed to update equipment", err)
	}
	return e, nil
}

func (s *Service) DeleteEquipment(id, callerID int64) error {
	if _, err := s.GetOwned(id, callerID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return internal.NewInternalError("failed to delete equipment", err)
	}
	return nil
}
