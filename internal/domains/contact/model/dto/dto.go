package dto

import (
	"strings"

	"comfort/internal/domains/contact/model"
	gDto "comfort/shared/dto"
	gModel "comfort/shared/model"
	"comfort/shared/timezone"

	"github.com/google/uuid"
)

type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,notblank,min=2,max=100"`
	Email   string `json:"email" validate:"required,email_addr"`
	Message string `json:"message" validate:"required,notblank"`
}

// Normalize trims the free-text fields and lowercases the email. Called
// after validation passes, before the record is persisted.
func (c *CreateContactRequest) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Message = strings.TrimSpace(c.Message)
}

func (c *CreateContactRequest) ToModel(user string) model.Contact {
	return model.Contact{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Email:   c.Email,
		Message: c.Message,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			CreatedBy: user,
			UpdatedAt: timezone.Now(),
			UpdatedBy: user,
		},
	}
}

// UpdateContactRequest is a full-record replacement: every field is
// required and every db-tagged field is written back, so the rules match
// creation.
type UpdateContactRequest struct {
	Name    string `db:"name" json:"name" validate:"required,notblank,min=2,max=100"`
	Email   string `db:"email" json:"email" validate:"required,email_addr"`
	Message string `db:"message" json:"message" validate:"required,notblank"`
}

func (c *UpdateContactRequest) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Message = strings.TrimSpace(c.Message)
}

type ContactResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	gDto.Metadata
}

func (r *ContactResponse) FromModel(model model.Contact) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Message = model.Message
	r.Metadata.FromModel(model.Metadata)
}

type CreateContactResponse struct {
	ID string `json:"id"`
}

func FromModels(models []model.Contact) []ContactResponse {
	responses := make([]ContactResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
