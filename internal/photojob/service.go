package photojob

import (
	"context"
	"errors"
	"log/slog"

	"github.com/matteocalo/photodesk/internal"
	"github.com/matteocalo/photodesk/internal/client"
	"github.com/matteocalo/photodesk/internal/comment"
	"github.com/matteocalo/photodesk/internal/core/events"
	"github.com/matteocalo/photodesk/internal/core/password"
)

type Repository interface {
	Create(j *PhotoJob) error
	GetByID(id int64) (*PhotoJob, error)
	ListByOwner(userID int64) ([]*PhotoJob, error)
	Update(id int64, p Patch) (*PhotoJob, error)
	// Delete removes the job together with its comments.
	Delete(id int64) error
}

type ClientLookup interface {
	GetByID(id int64) (*client.Client, error)
}

type CommentLister interface {
	ListByJob(jobID int64) ([]*comment.Comment, error)
}

type Service struct {
	repo      Repository
	clients   ClientLookup
	comments  CommentLister
	hasher    *password.Hasher
	publisher events.Publisher
	logger    *slog.Logger
}

func NewService(repo Repository, clients ClientLookup, comments CommentLister, hasher *password.Hasher, publisher events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		clients:   clients,
		comments:  comments,
		hasher:    hasher,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *Service) CreateJob(userID int64, dto CreatePhotoJobDTO) (*View, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationErrorFrom(err)
	}

	c, err := s.ownedClient(*dto.ClientID, userID)
	if err != nil {
		return nil, err
	}

	status := StatusTBC
	if dto.Status != "" {
		if status, err = ParseStatus(dto.Status); err != nil {
			return nil, internal.NewValidationFieldError("status", err.Error(), internal.ErrCodeInvalidStatus)
		}
	}

	hash, err := s.hashPassword(dto.Password)
	if err != nil {
		return nil, err
	}

	j := &PhotoJob{
		UserID:         userID,
		ClientID:       dto.ClientID,
		Title:          dto.Title,
		Description:    dto.Description,
		Status:         status,
		Amount:         dto.Amount,
		JobDate:        dto.JobDate,
		EndDate:        dto.EndDate,
		DownloadLink:   dto.DownloadLink,
		DownloadExpiry: dto.DownloadExpiry,
		Password:       hash,
		EquipmentIDs:   dto.EquipmentIDs,
	}
	if err := s.repo.Create(j); err != nil {
		s.logger.Error("failed to create photo job", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to create photo job", err)
	}

	s.logger.Info("photo job created",
		"job_id", j.ID,
		"user_id", userID,
		"status", j.Status,
		"has_password", j.HasPassword())

	v := NewView(j)
	v.Client = c
	v.Comments = []*comment.Comment{}
	return v, nil
}

// Find loads a job with no ownership check.
func (s *Service) Find(id int64) (*PhotoJob, error) {
	j, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.NewNotFoundError("photo job not found", internal.ErrCodeJobNotFound)
		}
		return nil, internal.NewInternalError("failed to get photo job", err)
	}
	return j, nil
}

// GetOwned loads a job and checks that callerID owns it.
func (s *Service) GetOwned(id, callerID int64) (*PhotoJob, error) {
	j, err := s.Find(id)
	if err != nil {
		return nil, err
	}
	if !j.OwnedBy(callerID) {
		s.logger.Warn("photo job access denied", "job_id", id, "user_id", callerID)
		return nil, internal.NotOwner("photo job")
	}
	return j, nil
}

func (s *Service) GetJob(id, callerID int64) (*View, error) {
	j, err := s.GetOwned(id, callerID)
	if err != nil {
		return nil, err
	}
	return s.join(j)
}

// ListJobs returns the caller's jobs joined with their client and comments.
func (s *Service) ListJobs(callerID int64) ([]*View, error) {
	jobs, err := s.repo.ListByOwner(callerID)
	if err != nil {
		s.logger.Error("failed to list photo jobs", "error", err, "user_id", callerID)
		return nil, internal.NewInternalError("failed to list photo jobs", err)
	}

	views := make([]*View, 0, len(jobs))
	for _, j := range jobs {
		v, err := s.join(j)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *Service) UpdateJob(id, callerID int64, dto UpdatePhotoJobDTO) (*View, error) {
	existing, err := s.GetOwned(id, callerID)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationErrorFrom(err)
	}
	if dto.ClientID != nil {
		if _, err := s.ownedClient(*dto.ClientID, callerID); err != nil {
			return nil, err
		}
	}

	patch := Patch{
		ClientID:       dto.ClientID,
		Title:          dto.Title,
		Description:    dto.Description,
		Amount:         dto.Amount,
		JobDate:        dto.JobDate,
		EndDate:        dto.EndDate,
		DownloadLink:   dto.DownloadLink,
		DownloadExpiry: dto.DownloadExpiry,
		EquipmentIDs:   dto.EquipmentIDs,
	}
	if dto.Status != nil && *dto.Status != "" {
		status, err := ParseStatus(*dto.Status)
		if err != nil {
			return nil, internal.NewValidationFieldError("status", err.Error(), internal.ErrCodeInvalidStatus)
		}
		patch.Status = &status
	}
	if patch.Password, err = s.hashPassword(dto.Password); err != nil {
		return nil, err
	}

	j, err := s.repo.Update(id, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.NewNotFoundError("photo job not found", internal.ErrCodeJobNotFound)
		}
		s.logger.Error("failed to update photo job", "error", err, "job_id", id)
		return nil, internal.NewInternalError("failed to update photo job", err)
	}

	if j.Status != existing.Status {
		s.logger.Info("photo job status changed",
			"job_id", id,
			"from", existing.Status,
			"to", j.Status)
		s.publish(events.NewJobStatusChangedEvent(j.ID, j.UserID, string(existing.Status), string(j.Status)))
	}

	return s.join(j)
}

// DeleteJob removes the job; the repository drops its comments in the same step.
func (s *Service) DeleteJob(id, callerID int64) error {
	if _, err := s.GetOwned(id, callerID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete photo job", "error", err, "job_id", id)
		return internal.NewInternalError("failed to delete photo job", err)
	}
	s.logger.Info("photo job deleted", "job_id", id, "user_id", callerID)
	s.publish(events.NewJobDeletedEvent(id, callerID))
	return nil
}

func (s *Service) join(j *PhotoJob) (*View, error) {
	v := NewView(j)

	if j.ClientID != nil {
		c, err := s.clients.GetByID(*j.ClientID)
		switch {
		case err == nil:
			v.Client = c
		case errors.Is(err, client.ErrNotFound):
		default:
			return nil, internal.NewInternalError("failed to load client", err)
		}
	}

	comments, err := s.comments.ListByJob(j.ID)
	if err != nil {
		return nil, internal.NewInternalError("failed to load comments", err)
	}
	if comments == nil {
		comments = []*comment.Comment{}
	}
	v.Comments = comments
	return v, nil
}

func (s *Service) ownedClient(clientID, callerID int64) (*client.Client, error) {
	c, err := s.clients.GetByID(clientID)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, internal.NewNotFoundError("client not found", internal.ErrCodeClientNotFound)
		}
		return nil, internal.NewInternalError("failed to get client", err)
	}
	if !c.OwnedBy(callerID) {
		return nil, internal.NotOwner("client")
	}
	return c, nil
}

// hashPassword treats nil and empty as "no password".
func (s *Service) hashPassword(plain *string) (*string, error) {
	if plain == nil || *plain == "" {
		return nil, nil
	}
	hash, err := s.hasher.Hash(*plain)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash portal password", err)
	}
	return &hash, nil
}

func (s *Service) publish(event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(context.Background(), event); err != nil {
		s.logger.Warn("failed to publish event", "event_type", event.EventType(), "error", err)
	}
}
