package photojob

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CreatePhotoJobDTO struct {
	ClientID       *int64     `json:"client_id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	Status         string     `json:"status,omitempty"`
	Amount         *float64   `json:"amount,omitempty"`
	JobDate        *time.Time `json:"job_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	DownloadLink   *string    `json:"download_link,omitempty"`
	DownloadExpiry *time.Time `json:"download_expiry,omitempty"`
	Password       *string    `json:"password,omitempty"`
	EquipmentIDs   []int64    `json:"equipment_ids,omitempty"`
}

func (d *CreatePhotoJobDTO) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.ClientID, validation.Required, validation.Min(int64(1))),
		validation.Field(&d.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&d.Status, validation.By(validStatus)),
		validation.Field(&d.Amount, validation.Min(float64(0))),
	)
}

// UpdatePhotoJobDTO is the PATCH body. Absent fields keep their stored value.
type UpdatePhotoJobDTO struct {
	ClientID       *int64     `json:"client_id,omitempty"`
	Title          *string    `json:"title,omitempty"`
	Description    *string    `json:"description,omitempty"`
	Status         *string    `json:"status,omitempty"`
	Amount         *float64   `json:"amount,omitempty"`
	JobDate        *time.Time `json:"job_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	DownloadLink   *string    `json:"download_link,omitempty"`
	DownloadExpiry *time.Time `json:"download_expiry,omitempty"`
	Password       *string    `json:"password,omitempty"`
	EquipmentIDs   []int64    `json:"equipment_ids,omitempty"`
}

func (d *UpdatePhotoJobDTO) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.ClientID, validation.NilOrNotEmpty, validation.Min(int64(1))),
		validation.Field(&d.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&d.Status, validation.By(validStatus)),
		validation.Field(&d.Amount, validation.Min(float64(0))),
	)
}

func validStatus(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case *string:
		if v == nil {
			return nil
		}
		raw = *v
	default:
		return errors.New("must be a string")
	}
	if raw == "" {
		return nil
	}
	if _, err := ParseStatus(raw); err != nil {
		return errors.New("must be a known job status")
	}
	return nil
}
