package event

import (
	"errors"
	"time"

	eventDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/event"
)

var ErrNotFound = errors.New("event not found")

type Event struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	Title        string     `json:"title"`
	Date         time.Time  `json:"date"`
	EndDate      *time.Time `json:"end_date"`
	ClientID     *int64     `json:"client_id"`
	EquipmentIDs []int64    `json:"equipment_ids"`
	Notes        *string    `json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Patch is a partial update. A nil EquipmentIDs keeps the stored list.
type Patch struct {
	Title        *string    `json:"title,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	ClientID     *int64     `json:"client_id,omitempty"`
	EquipmentIDs []int64    `json:"equipment_ids,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

func (e *Event) Merge(p Patch) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.EndDate != nil {
		e.EndDate = p.EndDate
	}
	if p.ClientID != nil {
		e.ClientID = p.ClientID
	}
	if p.EquipmentIDs != nil {
		e.EquipmentIDs = append([]int64(nil), p.EquipmentIDs...)
	}
	if p.Notes != nil {
		e.Notes = p.Notes
	}
}

// Clone returns a deep copy.
func (e *Event) Clone() *Event {
	c := *e
	if e.EquipmentIDs != nil {
		c.EquipmentIDs = append([]int64(nil), e.EquipmentIDs...)
	}
	return &c
}

func (e *Event) endsBeforeStart() bool {
	return e.EndDate != nil && e.EndDate.Before(e.Date)
}

func ToDataModel(e *Event) *eventDatamodel.Event {
	return &eventDatamodel.Event{
		ID:           e.ID,
		UserID:       e.UserID,
		Title:        e.Title,
		Date:         e.Date,
		EndDate:      e.EndDate,
		ClientID:     e.ClientID,
		EquipmentIDs: e.EquipmentIDs,
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
	}
}

func FromDataModel(e *eventDatamodel.Event) *Event {
	return &Event{
		ID:           e.ID,
		UserID:       e.UserID,
		Title:        e.Title,
		Date:         e.Date,
		EndDate:      e.EndDate,
		ClientID:     e.ClientID,
		EquipmentIDs: e.EquipmentIDs,
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
	}
}
