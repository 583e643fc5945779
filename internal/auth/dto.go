package auth

import validation "github.com/go-ozzo/ozzo-validation"

// LoginDTO accepts either a username or an email in Login.
type LoginDTO struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}

func (d *LoginDTO) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Login, validation.Required),
		validation.Field(&d.Password, validation.Required),
	)
}

func (d *RefreshTokenDTO) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.RefreshToken, validation.Required),
	)
}
