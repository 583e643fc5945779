package postgres

import (
	"errors"

	teamDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/team"
	"github.com/matteocalo/photodesk/internal/team"
	"gorm.io/gorm"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) team.Repository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(t *team.Team) error {
	row := team.ToDataModel(t)
	row.ID = 0
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	*t = *team.FromDataModel(row)
	return nil
}

func (r *TeamRepository) GetByID(id int64) (*team.Team, error) {
	var row teamDatamodel.Team
	if err := r.db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, team.ErrNotFound
		}
		return nil, err
	}
	return team.FromDataModel(&row), nil
}

func (r *TeamRepository) ListByOwner(userID int64) ([]*team.Team, error) {
	var rows []*teamDatamodel.Team
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	teams := make([]*team.Team, len(rows))
	for i, row := range rows {
		teams[i] = team.FromDataModel(row)
	}
	return teams, nil
}

func (r *TeamRepository) Update(id int64, p team.Patch) (*team.Team, error) {
	var updated *team.Team
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var row teamDatamodel.Team
		if err := tx.Where("id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return team.ErrNotFound
			}
			return err
		}
		t := team.FromDataModel(&row)
		t.Merge(p)
		if err := tx.Save(team.ToDataModel(t)).Error; err != nil {
			return err
		}
		updated = t
		return nil
	})
	return updated, err
}

func (r *TeamRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&teamDatamodel.Team{}).Error
}
