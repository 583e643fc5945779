package user

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type RegisterDTO struct {
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	TeamID      *int64  `json:"team_id,omitempty"`
	IBAN        *string `json:"iban,omitempty"`
	BankName    *string `json:"bank_name,omitempty"`
	BankAddress *string `json:"bank_address,omitempty"`
	BIC         *string `json:"bic,omitempty"`
}

func (d *RegisterDTO) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Username, validation.Required, validation.Length(3, 64)),
		validation.Field(&d.Email, validation.Required, is.Email),
		validation.Field(&d.Password, validation.Required, validation.Length(8, 72)),
		validation.Field(&d.Role, validation.In(RoleAdmin, RolePhotographer, RoleAssistant)),
	)
}
