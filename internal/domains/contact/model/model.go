package model

import (
	"comfort/shared/constant"
	"comfort/shared/model"
)

const (
	TableName  = "contacts"
	EntityName = "contact"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// QueryColumns maps the field names accepted in sortBy/fields query
// parameters to store columns. Anything not listed here is ignored.
var QueryColumns = map[string]string{
	"name":       FieldName,
	"email":      FieldEmail,
	"message":    FieldMessage,
	"created_at": constant.FieldCreatedAt,
	"created_by": constant.FieldCreatedBy,
	"updated_at": constant.FieldUpdatedAt,
	"updated_by": constant.FieldUpdatedBy,
}

// Contact is a visitor inquiry, either submitted through the public form or
// entered by staff.
type Contact struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Message string `db:"message"`
	model.Metadata
}
