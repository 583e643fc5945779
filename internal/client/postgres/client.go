package postgres

import (
	"errors"

	"github.com/matteocalo/photodesk/internal/client"
	clientDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/client"
	eventDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/event"
	photojobDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/photojob"
	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) client.Repository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(c *client.Client) error {
	row := client.ToDataModel(c)
	row.ID = 0
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	*c = *client.FromDataModel(row)
	return nil
}

func (r *ClientRepository) GetByID(id int64) (*client.Client, error) {
	var row clientDatamodel.Client
	if err := r.db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, client.ErrNotFound
		}
		return nil, err
	}
	return client.FromDataModel(&row), nil
}

func (r *ClientRepository) ListByOwner(userID int64) ([]*client.Client, error) {
	var rows []*clientDatamodel.Client
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return client.FromDataModelSlice(rows), nil
}

func (r *ClientRepository) Update(id int64, p client.Patch) (*client.Client, error) {
	var updated *client.Client
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var row clientDatamodel.Client
		if err := tx.Where("id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return client.ErrNotFound
			}
			return err
		}
		c := client.FromDataModel(&row)
		c.Merge(p)
		if err := tx.Save(client.ToDataModel(c)).Error; err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the client and nulls the client_id of jobs and events that referenced it.
func (r *ClientRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&photojobDatamodel.PhotoJob{}).
			Where("client_id = ?", id).
			Update("client_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&eventDatamodel.Event{}).
			Where("client_id = ?", id).
			Update("client_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&clientDatamodel.Client{}).Error
	})
}
