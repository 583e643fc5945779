package team

import validation "github.com/go-ozzo/ozzo-validation"

type CreateTeamDTO struct {
	Name string `json:"name"`
}

func (d *CreateTeamDTO) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Name, validation.Required, validation.Length(1, 120)),
	)
}

func (p *Patch) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.NilOrNotEmpty, validation.Length(1, 120)),
	)
}
