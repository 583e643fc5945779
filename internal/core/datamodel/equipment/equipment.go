package equipment

import "time"

type Equipment struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	Name      string    `gorm:"column:name;not null"`
	Type      string    `gorm:"column:type;not null"`
	Status    string    `gorm:"column:status;not null;default:available"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Equipment) TableName() string {
	return "equipment"
}
