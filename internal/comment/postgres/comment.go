package postgres

import (
	"errors"
	"time"

	"github.com/matteocalo/photodesk/internal/comment"
	photojobDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/photojob"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) comment.Repository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(c *comment.Comment) error {
	row := comment.ToDataModel(c)
	row.ID = 0
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	*c = *comment.FromDataModel(row)
	return nil
}

func (r *CommentRepository) GetByID(id int64) (*comment.Comment, error) {
	var row photojobDatamodel.PhotoJobComment
	if err := r.db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, comment.ErrNotFound
		}
		return nil, err
	}
	return comment.FromDataModel(&row), nil
}

func (r *CommentRepository) ListByJob(jobID int64) ([]*comment.Comment, error) {
	var rows []*photojobDatamodel.PhotoJobComment
	err := r.db.Where("job_id = ?", jobID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	comments := make([]*comment.Comment, len(rows))
	for i, row := range rows {
		comments[i] = comment.FromDataModel(row)
	}
	return comments, nil
}

func (r *CommentRepository) Update(id int64, p comment.Patch) (*comment.Comment, error) {
	var updated *comment.Comment
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var row photojobDatamodel.PhotoJobComment
		if err := tx.Where("id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return comment.ErrNotFound
			}
			return err
		}
		c := comment.FromDataModel(&row)
		c.Merge(p, time.Now())
		if err := tx.Save(comment.ToDataModel(c)).Error; err != nil {
			return err
		}
		updated = c
		return nil
	})
	return updated, err
}

func (r *CommentRepository) DeleteByJob(jobID int64) error {
	return r.db.Where("job_id = ?", jobID).Delete(&photojobDatamodel.PhotoJobComment{}).Error
}
