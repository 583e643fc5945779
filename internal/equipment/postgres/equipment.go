package postgres

import (
	"errors"

	equipmentDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/equipment"
	"github.com/matteocalo/photodesk/internal/equipment"
	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) equipment.Repository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) Create(e *equipment.Equipment) error {
	row := equipment.ToDataModel(e)
	row.ID = 0
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	*e = *equipment.FromDataModel(row)
	return nil
}

func (r *EquipmentRepository) GetByID(id int64) (*equipment.Equipment, error) {
	var row equipmentDatamodel.Equipment
	if err := r.db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, equipment.ErrNotFound
		}
		return nil, err
	}
	return equipment.FromDataModel(&row), nil
}

func (r *EquipmentRepository) ListByOwner(userID int64) ([]*equipment.Equipment, error) {
	var rows []*equipmentDatamodel.Equipment
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]*equipment.Equipment, len(rows))
	for i, row := range rows {
		items[i] = equipment.FromDataModel(row)
	}
	return items, nil
}

func (r *EquipmentRepository) Update(id int64, p equipment.Patch) (*equipment.Equipment, error) {
	var updated *equipment.Equipment
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var row equipmentDatamodel.Equipment
		if err := tx.Where("id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return equipment.ErrNotFound
			}
			return err
		}
		e := equipment.FromDataModel(&row)
		e.Merge(p)
		if err := tx.Save(equipment.ToDataModel(e)).Error; err != nil {
			return err
		}
		updated = e
		return nil
	})
	return updated, err
}

func (r *EquipmentRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&equipmentDatamodel.Equipment{}).Error
}
