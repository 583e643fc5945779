package event

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateEventDTO struct {
	Title        string     `json:"title"`
	Date         time.Time  `json:"date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	ClientID     *int64     `json:"client_id,omitempty"`
	EquipmentIDs []int64    `json:"equipment_ids,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

func (d *CreateEventDTO) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&d.Date, validation.Required),
		validation.Field(&d.ClientID, validation.NilOrNotEmpty, validation.Min(int64(1))),
	)
}

func (p *Patch) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.NilOrNotEmpty),
		validation.Field(&p.ClientID, validation.NilOrNotEmpty, validation.Min(int64(1))),
	)
}
