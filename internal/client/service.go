package client

import (
	"errors"
	"log/slog"

	"github.com/matteocalo/photodesk/internal"
)

type Repository interface {
	Create(c *Client) error
	GetByID(id int64) (*Client, error)
	ListByOwner(userID int64) ([]*Client, error)
	Update(id int64, p Patch) (*Client, error)
	Delete(id int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) CreateClient(userID int64, dto CreateClientDTO) (*Client, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationErrorFrom(err)
	}

	c := &Client{
		UserID:    userID,
		Name:      dto.Name,
		Email:     dto.Email,
		Phone:     dto.Phone,
		Notes:     dto.Notes,
		Address:   dto.Address,
		VATNumber: dto.VATNumber,
	}
	if err := s.repo.Create(c); err != nil {
		s.logger.Error("failed to create client", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to create client", err)
	}

	s.logger.Info("client created", "client_id", c.ID, "user_id", userID)
	return c, nil
}

// GetOwned returns the client when callerID owns it.
func (s *Service) GetOwned(id, callerID int64) (*Client, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.NewNotFoundError("client not found", internal.ErrCodeClientNotFound)
		}
		return nil, internal.NewInternalError("failed to get client", err)
	}
	if !c.OwnedBy(callerID) {
		s.logger.Warn("client access denied", "client_id", id, "user_id", callerID)
		return nil, internal.NotOwner("client")
	}
	return c, nil
}

// Lookup fetches a client without an ownership check, for joins in other services.
func (s *Service) Lookup(id int64) (*Client, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListClients(callerID int64) ([]*Client, error) {
	clients, err := s.repo.ListByOwner(callerID)
	if err != nil {
		s.logger.Error("failed to list clients", "error", err, "user_id", callerID)
		return nil, internal.NewInternalError("failed to list clients", err)
	}
	return clients, nil
}

func (s *Service) UpdateClient(id, callerID int64, p Patch) (*Client, error) {
	if _, err := s.GetOwned(id, callerID); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, internal.NewValidationErrorFrom(err)
	}

	c, err := s.repo.Update(id, p)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.NewNotFoundError("client not found", internal.ErrCodeClientNotFound)
		}
		return nil, internal.NewInternalError("failed to update client", err)
	}
	return c, nil
}

// DeleteClient removes the client. Jobs and events that pointed at it keep existing
// with a null client_id.
func (s *Service) DeleteClient(id, callerID int64) error {
	if _, err := s.GetOwned(id, callerID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete client", "error", err, "client_id", id)
		return internal.NewInternalError("failed to delete client", err)
	}
	s.logger.Info("client deleted", "client_id", id, "user_id", callerID)
	return nil
}
