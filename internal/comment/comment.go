package comment

import (
	"errors"
	"time"

	photojobDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/photojob"
)

var ErrNotFound = errors.New("comment not found")

// Comment is an entry in a job's discussion. IsFromClient separates portal posts
// from the photographer's own.
type Comment struct {
	ID           int64     `json:"id"`
	JobID        int64     `json:"job_id"`
	Content      string    `json:"content"`
	IsFromClient bool      `json:"is_from_client"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Patch struct {
	Content      *string `json:"content,omitempty"`
	IsFromClient *bool   `json:"is_from_client,omitempty"`
}

// Merge applies p and stamps UpdatedAt with now.
func (c *Comment) Merge(p Patch, now time.Time) {
	if p.Content != nil {
		c.Content = *p.Content
	}
	if p.IsFromClient != nil {
		c.IsFromClient = *p.IsFromClient
	}
	c.UpdatedAt = now
}

// NewestFirst reports whether a sorts before b in a job listing.
func NewestFirst(a, b *Comment) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

func ToDataModel(c *Comment) *photojobDatamodel.PhotoJobComment {
	return &photojobDatamodel.PhotoJobComment{
		ID:           c.ID,
		JobID:        c.JobID,
		Content:      c.Content,
		IsFromClient: c.IsFromClient,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromDataModel(c *photojobDatamodel.PhotoJobComment) *Comment {
	return &Comment{
		ID:           c.ID,
		JobID:        c.JobID,
		Content:      c.Content,
		IsFromClient: c.IsFromClient,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
