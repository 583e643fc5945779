package event

import "time"

type Event struct {
	ID           int64      `gorm:"primaryKey"`
	UserID       int64      `gorm:"column:user_id;not null;index"`
	Title        string     `gorm:"column:title;not null"`
	Date         time.Time  `gorm:"column:date;not null"`
	EndDate      *time.Time `gorm:"column:end_date"`
	ClientID     *int64     `gorm:"column:client_id;index"`
	EquipmentIDs []int64    `gorm:"column:equipment_ids;serializer:json"`
	Notes        *string    `gorm:"column:notes"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (Event) TableName() string {
	return "events"
}
