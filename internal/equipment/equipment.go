package equipment

import (
	"errors"
	"time"

	equipmentDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/equipment"
)

const (
	StatusAvailable   = "available"
	StatusInUse       = "in_use"
	StatusMaintenance = "maintenance"
)

var ErrNotFound = errors.New("equipment not found")

type Equipment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Patch struct {
	Name   *string `json:"name,omitempty"`
	Type   *string `json:"type,omitempty"`
	Status *string `json:"status,omitempty"`
}

func (e *Equipment) Merge(p Patch) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
}

func ToDataModel(e *Equipment) *equipmentDatamodel.Equipment {
	return &equipmentDatamodel.Equipment{
		ID:        e.ID,
		UserID:    e.UserID,
		Name:      e.Name,
		Type:      e.Type,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
	}
}

func FromDataModel(e *equipmentDatamodel.Equipment) *Equipment {
	return &Equipment{
		ID:        e.ID,
		UserID:    e.UserID,
		Name:      e.Name,
		Type:      e.Type,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
	}
}
