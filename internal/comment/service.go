package comment

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/matteocalo/photodesk/internal"
)

type Repository interface {
	Create(c *Comment) error
	GetByID(id int64) (*Comment, error)
	ListByJob(jobID int64) ([]*Comment, error)
	Update(id int64, p Patch) (*Comment, error)
	DeleteByJob(jobID int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListByJob returns the job's comments, most recent first.
func (s *Service) ListByJob(jobID int64) ([]*Comment, error) {
	comments, err := s.repo.ListByJob(jobID)
	if err != nil {
		s.logger.Error("failed to list comments", "error", err, "job_id", jobID)
		return nil, internal.NewInternalError("failed to list comments", err)
	}
	if comments == nil {
		comments = []*Comment{}
	}
	return comments, nil
}

// Post appends a comment to a job. The caller has already resolved the job.
func (s *Service) Post(jobID int64, content string, fromClient bool) (*Comment, error) {
	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	c := &Comment{
		JobID:        jobID,
		Content:      content,
		IsFromClient: fromClient,
	}
	if err := s.repo.Create(c); err != nil {
		s.logger.Error("failed to create comment", "error", err, "job_id", jobID)
		return nil, internal.NewInternalError("failed to create comment", err)
	}
	return c, nil
}

func (s *Service) Get(id int64) (*Comment, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.NewNotFoundError("comment not found", internal.ErrCodeCommentNotFound)
		}
		return nil, internal.NewInternalError("failed to get comment", err)
	}
	return c, nil
}

func (s *Service) Update(id int64, p Patch) (*Comment, error) {
	if p.Content != nil {
		if err := ValidateContent(*p.Content); err != nil {
			return nil, err
		}
	}

	c, err := s.repo.Update(id, p)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.NewNotFoundError("comment not found", internal.ErrCodeCommentNotFound)
		}
		return nil, internal.NewInternalError("failed to update comment", err)
	}
	return c, nil
}

// ValidateContent rejects empty and whitespace-only content.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return internal.NewValidationFieldError("content", "content must not be empty", internal.ErrCodeEmptyComment)
	}
	return nil
}
