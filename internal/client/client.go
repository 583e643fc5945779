package client

import (
	"errors"
	"time"

	clientDatamodel "github.com/matteocalo/photodesk/internal/core/datamodel/client"
)

var ErrNotFound = errors.New("client not found")

type Client struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Notes     *string   `json:"notes"`
	Address   *string   `json:"address"`
	VATNumber *string   `json:"vat_number"`
	CreatedAt time.Time `json:"created_at"`
}

// Patch carries a partial update. Nil fields keep the stored value.
type Patch struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	Address   *string `json:"address,omitempty"`
	VATNumber *string `json:"vat_number,omitempty"`
}

// Merge applies p over c. UserID, ID and CreatedAt are never touched.
func (c *Client) Merge(p Patch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = p.Phone
	}
	if p.Notes != nil {
		c.Notes = p.Notes
	}
	if p.Address != nil {
		c.Address = p.Address
	}
	if p.VATNumber != nil {
		c.VATNumber = p.VATNumber
	}
}

func (c *Client) OwnedBy(userID int64) bool {
	return c.UserID == userID
}

func ToDataModel(c *Client) *clientDatamodel.Client {
	return &clientDatamodel.Client{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Notes:     c.Notes,
		Address:   c.Address,
		VATNumber: c.VATNumber,
		CreatedAt: c.CreatedAt,
	}
}

func FromDataModel(c *clientDatamodel.Client) *Client {
	return &Client{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Notes:     c.Notes,
		Address:   c.Address,
		VATNumber: c.VATNumber,
		CreatedAt: c.CreatedAt,
	}
}

func FromDataModelSlice(rows []*clientDatamodel.Client) []*Client {
	result := make([]*Client, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
