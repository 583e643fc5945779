package team

import (
	"errors"
	"time"

	teamDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/team"
)

var ErrNotFound = errors.New("team not found")

type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Patch struct {
	Name *string `json:"name,omitempty"`
}

func (t *Team) Merge(p Patch) {
	if p.Name != nil {
		t.Name = *p.Name
	}
}

func ToDataModel(t *Team) *teamDatamodel.Team {
	return &teamDatamodel.Team{
		ID:        t.ID,
		Name:      t.Name,
		UserID:    t.UserID,
		CreatedAt: t.CreatedAt,
	}
}

func FromDataModel(t *teamDatamodel.Team) *Team {
	return &Team{
		ID:        t.ID,
		Name:      t.Name,
		UserID:    t.UserID,
		CreatedAt: t.CreatedAt,
	}
}
