package model

import "time"

// Metadata carries the audit stamps shared by every stored record.
// CreatedBy is empty for records created by unauthenticated visitors.
type Metadata struct {
	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
	UpdatedAt time.Time `db:"updated_at"`
	UpdatedBy string    `db:"updated_by"`
}
