package postgres

import (
	"errors"

	eventDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/event"
	"github.com/matteocalo/photodesk/internal/event"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) event.Repository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(e *event.Event) error {
	row := event.ToDataModel(e)
	row.ID = 0
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	*e = *event.FromDataModel(row)
	return nil
}

func (r *EventRepository) GetByID(id int64) (*event.Event, error) {
	var row eventDatamodel.Event
	if err := r.db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, event.ErrNotFound
		}
		return nil, err
	}
	return event.FromDataModel(&row), nil
}

func (r *EventRepository) ListByOwner(userID int64) ([]*event.Event, error) {
	var rows []*eventDatamodel.Event
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	events := make([]*event.Event, len(rows))
	for i, row := range rows {
		events[i] = event.FromDataModel(row)
	}
	return events, nil
}

func (r *EventRepository) Update(id int64, p event.Patch) (*event.Event, error) {
	var updated *event.Event
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var row eventDatamodel.Event
		if err := tx.Where("id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return event.ErrNotFound
			}
			return err
		}
		e := event.FromDataModel(&row)
		e.Merge(p)
		if err := tx.Save(event.ToDataModel(e)).Error; err != nil {
			return err
		}
		updated = e
		return nil
	})
	return updated, err
}

func (r *EventRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&eventDatamodel.Event{}).Error
}
