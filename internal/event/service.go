package event

import (
	"errors"
	"log/slog"

	"github.com/matteocalo/photodesk/internal"
	"github.com/matteocalo/photodesk/internal/client"
)

type Repository interface {
	Create(e *Event) error
	GetByID(id int64) (*Event, error)
	ListByOwner(userID int64) ([]*Event, error)
	Update(id int64, p Patch) (*Event, error)
	Delete(id int64) error
}

type ClientLookup interface {
	GetByID(id int64) (*client.Client, error)
}

type Service struct {
	repo    Repository
	clients ClientLookup
	logger  *slog.Logger
}

func NewService(repo Repository, clients ClientLookup, logger *slog.Logger) *Service {
	return &Service{repo: repo, clients: clients, logger: logger}
}

func (s *Service) CreateEvent(userID int64, dto CreateEventDTO) (*Event, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationErrorFrom(err)
	}

	e := &Event{
		UserID:       userID,
		Title:        dto.Title,
		Date:         dto.Date,
		EndDate:      dto.EndDate,
		ClientID:     dto.ClientID,
		EquipmentIDs: dto.EquipmentIDs,
		Notes:        dto.Notes,
	}
	if err := s.checkConsistency(e, userID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(e); err != nil {
		s.logger.Error("failed to create event", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to create event", err)
	}
	return e, nil
}

func (s *Service) GetOwned(id, callerID int64) (*Event, error) {
	e, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.NewNotFoundError("event not found", internal.ErrCodeEventNotFound)
		}
		return nil, internal.NewInternalError("failed to get event", err)
	}
	if e.UserID != callerID {
		return nil, internal.NotOwner("event")
	}
	return e, nil
}

func (s *Service) ListEvents(callerID int64) ([]*Event, error) {
	events, err := s.repo.ListByOwner(callerID)
	if err != nil {
		return nil, internal.NewInternalError("failed to list events", err)
	}
	return events, nil
}

func (s *Service) UpdateEvent(id, callerID int64, p Patch) (*Event, error) {
	existing, err := s.GetOwned(id, callerID)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, internal.NewValidationErrorFrom(err)
	}

	candidate := existing.Clone()
	candidate.Merge(p)
	if err := s.checkConsistency(candidate, callerID); err != nil {
		return nil, err
	}

	e, err := s.repo.Update(id, p)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.NewNotFoundError("event not found", internal.ErrCodeEventNotFound)
		}
		return nil, internal.NewInternalError("failed to update event", err)
	}
	return e, nil
}

func (s *Service) DeleteEvent(id, callerID int64) error {
	if _, err := s.GetOwned(id, callerID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return internal.NewInternalError("failed to delete event", err)
	}
	return nil
}

func (s *Service) checkConsistency(e *Event, callerID int64) error {
	if e.endsBeforeStart() {
		return internal.NewValidationFieldError("end_date", "end_date must not be before date", internal.ErrCodeValidationFailed)
	}
	if e.ClientID == nil {
		return nil
	}
	c, err := s.clients.GetByID(*e.ClientID)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return internal.NewNotFoundError("client not found", internal.ErrCodeClientNotFound)
		}
		return internal.NewInternalError("failed to get client", err)
	}
	if !c.OwnedBy(callerID) {
		return internal.NotOwner("client")
	}
	return nil
}
