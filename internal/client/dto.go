package client

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateClientDTO struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	Address   *string `json:"address,omitempty"`
	VATNumber *string `json:"vat_number,omitempty"`
}

func (d *CreateClientDTO) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&d.Email, validation.Required, is.Email),
	)
}

func (p *Patch) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&p.Email, validation.NilOrNotEmpty, is.Email),
	)
}
