package equipment

import validation "github.com/go-ozzo/ozzo-validation"

type CreateEquipmentDTO struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status,omitempty"`
}

func (d *CreateEquipmentDTO) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&d.Type, validation.Required, validation.Length(1, 100)),
		validation.Field(&d.Status, validation.In(StatusAvailable, StatusInUse, StatusMaintenance)),
	)
}

func (p *Patch) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.NilOrNotEmpty),
		validation.Field(&p.Type, validation.NilOrNotEmpty),
		validation.Field(&p.Status, validation.NilOrNotEmpty, validation.In(StatusAvailable, StatusInUse, StatusMaintenance)),
	)
}
