package access

import (
	"context"
	"errors"
	"log/slog"

	"github.com/matteocalo/photodesk/internal"
	"github.com/matteocalo/photodesk/internal/client"
	"github.com/matteocalo/photodesk/internal/comment"
	"github.com/matteocalo/photodesk/internal/core/events"
	"github.com/matteocalo/photodesk/internal/core/password"
	"github.com/matteocalo/photodesk/internal/photojob"
)

type JobLookup interface {
	GetByID(id int64) (*photojob.PhotoJob, error)
}

type ClientLookup interface {
	GetByID(id int64) (*client.Client, error)
}

type CommentService interface {
	ListByJob(jobID int64) ([]*comment.Comment, error)
	Post(jobID int64, content string, fromClient bool) (*comment.Comment, error)
	Get(id int64) (*comment.Comment, error)
	Update(id int64, p comment.Patch) (*comment.Comment, error)
}

// Service gates the unauthenticated portal channel and the owner comment channel.
// It keeps no session state: every call re-checks the password.
type Service struct {
	jobs      JobLookup
	clients   ClientLookup
	comments  CommentService
	hasher    *password.Hasher
	publisher events.Publisher
	logger    *slog.Logger
}

func NewService(jobs JobLookup, clients ClientLookup, comments CommentService, hasher *password.Hasher, publisher events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		jobs:      jobs,
		clients:   clients,
		comments:  comments,
		hasher:    hasher,
		publisher: publisher,
		logger:    logger,
	}
}

// VerifyPortalPassword reports whether supplied unlocks the job. A job without a
// password is open to anyone. A missing job is an error, never true.
func (s *Service) VerifyPortalPassword(jobID int64, supplied string) (bool, error) {
	j, err := s.loadJob(jobID)
	if err != nil {
		return false, err
	}
	ok := s.unlocks(j, supplied)
	if !ok {
		s.logger.Warn("portal password rejected", "job_id", jobID)
	}
	return ok, nil
}

// GetPortalView returns the portal projection. Without the right password the view
// is locked and carries only the status fields.
func (s *Service) GetPortalView(jobID int64, supplied *string) (*PortalView, error) {
	j, err := s.loadJob(jobID)
	if err != nil {
		return nil, err
	}

	locked := j.HasPassword() && !s.unlocks(j, deref(supplied))
	var c *client.Client
	if !locked && j.ClientID != nil {
		c, err = s.clients.GetByID(*j.ClientID)
		if err != nil && !errors.Is(err, client.ErrNotFound) {
			return nil, internal.NewInternalError("failed to load client", err)
		}
	}
	return newPortalView(j, c, locked), nil
}

// ListPortalComments applies the same gate as posting.
func (s *Service) ListPortalComments(jobID int64, supplied *string) ([]*comment.Comment, error) {
	j, err := s.loadJob(jobID)
	if err != nil {
		return nil, err
	}
	if err := s.checkGate(j, supplied); err != nil {
		return nil, err
	}
	return s.comments.ListByJob(jobID)
}

// PostClientComment checks, in order: the job exists, the content is non-empty,
// then the password when the job has one.
func (s *Service) PostClientComment(jobID int64, content string, supplied *string) (*comment.Comment, error) {
	j, err := s.loadJob(jobID)
	if err != nil {
		return nil, err
	}
	if err := comment.ValidateContent(content); err != nil {
		return nil, err
	}
	if err := s.checkGate(j, supplied); err != nil {
		return nil, err
	}

	c, err := s.comments.Post(jobID, content, true)
	if err != nil {
		return nil, err
	}
	s.logger.Info("client comment posted", "job_id", jobID, "comment_id", c.ID)
	s.publish(events.NewCommentPostedEvent(c.ID, jobID, true))
	return c, nil
}

// PostOwnerComment posts on behalf of the authenticated owner. No password check.
func (s *Service) PostOwnerComment(jobID int64, content string, callerID int64) (*comment.Comment, error) {
	j, err := s.loadJob(jobID)
	if err != nil {
		return nil, err
	}
	if err := comment.ValidateContent(content); err != nil {
		return nil, err
	}
	if !j.OwnedBy(callerID) {
		s.logger.Warn("owner comment rejected", "job_id", jobID, "user_id", callerID)
		return nil, internal.NotOwner("photo job")
	}

	c, err := s.comments.Post(jobID, content, false)
	if err != nil {
		return nil, err
	}
	s.publish(events.NewCommentPostedEvent(c.ID, jobID, false))
	return c, nil
}

func (s *Service) ListOwnerComments(jobID, callerID int64) ([]*comment.Comment, error) {
	j, err := s.loadJob(jobID)
	if err != nil {
		return nil, err
	}
	if !j.OwnedBy(callerID) {
		return nil, internal.NotOwner("photo job")
	}
	return s.comments.ListByJob(jobID)
}

// UpdateComment edits a comment. Only the owner of the comment's job may do so.
func (s *Service) UpdateComment(commentID, callerID int64, dto UpdateCommentDTO) (*comment.Comment, error) {
	existing, err := s.comments.Get(commentID)
	if err != nil {
		return nil, err
	}
	j, err := s.loadJob(existing.JobID)
	if err != nil {
		return nil, err
	}
	if !j.OwnedBy(callerID) {
		s.logger.Warn("comment update rejected", "comment_id", commentID, "user_id", callerID)
		return nil, internal.NotOwner("photo job")
	}
	return s.comments.Update(commentID, comment.Patch{
		Content:      dto.Content,
		IsFromClient: dto.IsFromClient,
	})
}

func (s *Service) loadJob(jobID int64) (*photojob.PhotoJob, error) {
	j, err := s.jobs.GetByID(jobID)
	if err != nil {
		if errors.Is(err, photojob.ErrNotFound) {
			return nil, internal.NewNotFoundError("photo job not found", internal.ErrCodeJobNotFound)
		}
		return nil, internal.NewInternalError("failed to get photo job", err)
	}
	return j, nil
}

// checkGate returns Unauthorized when the job has a password and supplied is
// absent or wrong. An empty string counts as absent.
func (s *Service) checkGate(j *photojob.PhotoJob, supplied *string) error {
	if !j.HasPassword() {
		return nil
	}
	if supplied == nil || *supplied == "" {
		return internal.NewUnauthorizedError("password required", internal.ErrCodePasswordRequired)
	}
	if !s.hasher.Matches(*j.Password, *supplied) {
		s.logger.Warn("portal password rejected", "job_id", j.ID)
		return internal.NewUnauthorizedError("invalid password", internal.ErrCodeInvalidPassword)
	}
	return nil
}

func (s *Service) unlocks(j *photojob.PhotoJob, supplied string) bool {
	if !j.HasPassword() {
		return true
	}
	return s.hasher.Matches(*j.Password, supplied)
}

func (s *Service) publish(event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(context.Background(), event); err != nil {
		s.logger.Warn("failed to publish event", "event_type", event.EventType(), "error", err)
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
