package photojob

import (
	"errors"
	"time"

	"github.com/matteocalo/photodesk/internal/client"
	"github.com/matteocalo/photodesk/internal/comment"
	photojobDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/photojob"
)

var ErrNotFound = errors.New("photo job not found")

type PhotoJob struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	ClientID       *int64     `json:"client_id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	Status         Status     `json:"status"`
	Amount         *float64   `json:"amount"`
	JobDate        *time.Time `json:"job_date"`
	EndDate        *time.Time `json:"end_date"`
	DownloadLink   *string    `json:"download_link"`
	DownloadExpiry *time.Time `json:"download_expiry"`
	// Password holds a bcrypt hash and is never serialized.
	Password     *string   `json:"-"`
	EquipmentIDs []int64   `json:"equipment_ids"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Patch is a partial update; nil keeps the stored value. Password must already be hashed.
type Patch struct {
	ClientID       *int64
	Title          *string
	Description    *string
	Status         *Status
	Amount         *float64
	JobDate        *time.Time
	EndDate        *time.Time
	DownloadLink   *string
	DownloadExpiry *time.Time
	Password       *string
	EquipmentIDs   []int64
}

// Merge applies p and stamps UpdatedAt. UserID is immutable.
func (j *PhotoJob) Merge(p Patch, now time.Time) {
	if p.ClientID != nil {
		j.ClientID = p.ClientID
	}
	if p.Title != nil {
		j.Title = *p.Title
	}
	if p.Description != nil {
		j.Description = p.Description
	}
	if p.Status != nil {
		j.Status = *p.Status
	}
	if p.Amount != nil {
		j.Amount = p.Amount
	}
	if p.JobDate != nil {
		j.JobDate = p.JobDate
	}
	if p.EndDate != nil {
		j.EndDate = p.EndDate
	}
	if p.DownloadLink != nil {
		j.DownloadLink = p.DownloadLink
	}
	if p.DownloadExpiry != nil {
		j.DownloadExpiry = p.DownloadExpiry
	}
	if p.Password != nil {
		j.Password = p.Password
	}
	if p.EquipmentIDs != nil {
		j.EquipmentIDs = append([]int64(nil), p.EquipmentIDs...)
	}
	j.UpdatedAt = now
}

func (j *PhotoJob) Clone() *PhotoJob {
	c := *j
	if j.EquipmentIDs != nil {
		c.EquipmentIDs = append([]int64(nil), j.EquipmentIDs...)
	}
	return &c
}

func (j *PhotoJob) HasPassword() bool {
	return j.Password != nil && *j.Password != ""
}

func (j *PhotoJob) OwnedBy(userID int64) bool {
	return j.UserID == userID
}

// View is the owner-facing representation of a job.
type View struct {
	*PhotoJob
	HasPassword   bool               `json:"has_password"`
	Progress      float64            `json:"progress"`
	StatusLabel   string             `json:"status_label"`
	ClientActions ClientActions      `json:"client_actions"`
	Client        *client.Client     `json:"client,omitempty"`
	Comments      []*comment.Comment `json:"comments"`
}

func NewView(j *PhotoJob) *View {
	return &View{
		PhotoJob:      j,
		HasPassword:   j.HasPassword(),
		Progress:      Progress(j.Status),
		StatusLabel:   Label(j.Status),
		ClientActions: AllowedClientActions(j.Status),
	}
}

func ToDataModel(j *PhotoJob) *photojobDatamodel.PhotoJob {
	return &photojobDatamodel.PhotoJob{
		ID:             j.ID,
		UserID:         j.UserID,
		ClientID:       j.ClientID,
		Title:          j.Title,
		Description:    j.Description,
		Status:         string(j.Status),
		Amount:         j.Amount,
		JobDate:        j.JobDate,
		EndDate:        j.EndDate,
		DownloadLink:   j.DownloadLink,
		DownloadExpiry: j.DownloadExpiry,
		Password:       j.Password,
		EquipmentIDs:   j.EquipmentIDs,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

func FromDataModel(j *photojobDatamodel.PhotoJob) *PhotoJob {
	return &PhotoJob{
		ID:             j.ID,
		UserID:         j.UserID,
		ClientID:       j.ClientID,
		Title:          j.Title,
		Description:    j.Description,
		Status:         Status(j.Status),
		Amount:         j.Amount,
		JobDate:        j.JobDate,
		EndDate:        j.EndDate,
		DownloadLink:   j.DownloadLink,
		DownloadExpiry: j.DownloadExpiry,
		Password:       j.Password,
		EquipmentIDs:   j.EquipmentIDs,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}
