package access

import (
	"time"

	"github.com/matteocalo/photodesk/internal/client"
	"github.com/matteocalo/photodesk/internal/photojob"
)

// PortalView is what a client sees through the portal. It has no password field,
// so the stored hash cannot leak through it.
type PortalView struct {
	JobID            int64                  `json:"job_id"`
	Title            string                 `json:"title"`
	Description      *string                `json:"description"`
	Status           photojob.Status        `json:"status"`
	StatusLabel      string                 `json:"status_label"`
	Progress         float64                `json:"progress"`
	ClientActions    photojob.ClientActions `json:"client_actions"`
	JobDate          *time.Time             `json:"job_date"`
	EndDate          *time.Time             `json:"end_date"`
	Amount           *float64               `json:"amount"`
	DownloadLink     *string                `json:"download_link"`
	DownloadExpiry   *time.Time             `json:"download_expiry"`
	ClientName       *string                `json:"client_name"`
	PasswordRequired bool                   `json:"password_required"`
	Locked           bool                   `json:"locked"`
}

// newPortalView projects a job. A locked view keeps only what the status page needs.
func newPortalView(j *photojob.PhotoJob, c *client.Client, locked bool) *PortalView {
	v := &PortalView{
		JobID:            j.ID,
		Title:            j.Title,
		Status:           j.Status,
		StatusLabel:      photojob.Label(j.Status),
		Progress:         photojob.Progress(j.Status),
		ClientActions:    photojob.AllowedClientActions(j.Status),
		PasswordRequired: j.HasPassword(),
		Locked:           locked,
	}
	if locked {
		return v
	}

	v.Description = j.Description
	v.JobDate = j.JobDate
	v.EndDate = j.EndDate
	v.Amount = j.Amount
	v.DownloadLink = j.DownloadLink
	v.DownloadExpiry = j.DownloadExpiry
	if c != nil {
		name := c.Name
		v.ClientName = &name
	}
	return v
}
