package client

import "time"

type Client struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	Name      string    `gorm:"column:name;not null"`
	Email     string    `gorm:"column:email;not null"`
	Phone     *string   `gorm:"column:phone"`
	Notes     *string   `gorm:"column:notes"`
	Address   *string   `gorm:"column:address"`
	VATNumber *string   `gorm:"column:vat_number"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Client) TableName() string {
	return "clients"
}
