package photojob

import "time"

type PhotoJob struct {
	ID             int64      `gorm:"primaryKey"`
	UserID         int64      `gorm:"column:user_id;not null;index"`
	ClientID       *int64     `gorm:"column:client_id;index"`
	Title          string     `gorm:"column:title;not null"`
	Description    *string    `gorm:"column:description"`
	Status         string     `gorm:"column:status;not null;default:TBC"`
	Amount         *float64   `gorm:"column:amount"`
	JobDate        *time.Time `gorm:"column:job_date"`
	EndDate        *time.Time `gorm:"column:end_date"`
	DownloadLink   *string    `gorm:"column:download_link"`
	DownloadExpiry *time.Time `gorm:"column:download_expiry"`
	Password       *string    `gorm:"column:password"`
	EquipmentIDs   []int64    `gorm:"column:equipment_ids;serializer:json"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (PhotoJob) TableName() string {
	return "photo_jobs"
}

type PhotoJobComment struct {
	ID           int64     `gorm:"primaryKey"`
	JobID        int64     `gorm:"column:job_id;not null;index"`
	Content      string    `gorm:"column:content;not null"`
	IsFromClient bool      `gorm:"column:is_from_client;not null;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (PhotoJobComment) TableName() string {
	return "photo_job_comments"
}
