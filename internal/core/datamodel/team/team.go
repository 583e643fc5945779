package team

import "time"

type Team struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Team) TableName() string {
	return "teams"
}
