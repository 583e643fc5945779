package user

import "time"

type User struct {
	ID           int64     `gorm:"primaryKey"`
	Username     string    `gorm:"column:username;uniqueIndex;not null"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         string    `gorm:"column:role;not null;default:photographer"`
	TeamID       *int64    `gorm:"column:team_id"`
	IBAN         *string   `gorm:"column:iban"`
	BankName     *string   `gorm:"column:bank_name"`
	BankAddress  *string   `gorm:"column:bank_address"`
	BIC          *string   `gorm:"column:bic"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
