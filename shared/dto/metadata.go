package dto

import (
	"comfort/shared/constant"
	"comfort/shared/model"
	"comfort/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"created_at,omitempty"`
	CreatedBy string `json:"created_by,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
	UpdatedBy string `json:"updated_by,omitempty"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	if !model.CreatedAt.IsZero() {
		m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	}

	if !model.UpdatedAt.IsZero() {
		m.UpdatedAt = timezone.Format(model.UpdatedAt, constant.DateFormat)
	}

	m.CreatedBy = model.CreatedBy
	m.UpdatedBy = model.UpdatedBy
}
