package postgres

import (
	"errors"
	"time"

	photojobDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/photojob"
	"github.com/matteocalo/photodesk/internal/photojob"
	"gorm.io/gorm"
)

type PhotoJobRepository struct {
	db *gorm.DB
}

func NewPhotoJobRepository(db *gorm.DB) photojob.Repository {
	return &PhotoJobRepository{db: db}
}

func (r *PhotoJobRepository) Create(j *photojob.PhotoJob) error {
	row := photojob.ToDataModel(j)
	row.ID = 0
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	*j = *photojob.FromDataModel(row)
	return nil
}

func (r *PhotoJobRepository) GetByID(id int64) (*photojob.PhotoJob, error) {
	var row photojobDatamodel.PhotoJob
	if err := r.db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, photojob.ErrNotFound
		}
		return nil, err
	}
	return photojob.FromDataModel(&row), nil
}

func (r *PhotoJobRepository) ListByOwner(userID int64) ([]*photojob.PhotoJob, error) {
	var rows []*photojobDatamodel.PhotoJob
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	jobs := make([]*photojob.PhotoJob, len(rows))
	for i, row := range rows {
		jobs[i] = photojob.FromDataModel(row)
	}
	return jobs, nil
}

func (r *PhotoJobRepository) Update(id int64, p photojob.Patch) (*photojob.PhotoJob, error) {
	var updated *photojob.PhotoJob
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var row photojobDatamodel.PhotoJob
		if err := tx.Where("id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return photojob.ErrNotFound
			}
			return err
		}
		j := photojob.FromDataModel(&row)
		j.Merge(p, time.Now())
		if err := tx.Save(photojob.ToDataModel(j)).Error; err != nil {
			return err
		}
		updated = j
		return nil
	})
	return updated, err
}

// Delete drops the job's comments and then the job in one transaction.
func (r *PhotoJobRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&photojobDatamodel.PhotoJobComment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&photojobDatamodel.PhotoJob{}).Error
	})
}
