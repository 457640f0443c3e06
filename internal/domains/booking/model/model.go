package model

import (
	"time"

	"comfort/shared/constant"
	"comfort/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldRoomName        = "room_name"
	FieldRoomType        = "room_type"
	FieldGuestName       = "guest_name"
	FieldGuestEmail      = "guest_email"
	FieldGuestPhone      = "guest_phone"
	FieldCheckInDate     = "check_in_date"
	FieldCheckOutDate    = "check_out_date"
	FieldDuration        = "duration"
	FieldNumberOfGuests  = "number_of_guests"
	FieldTotalPrice      = "total_price"
	FieldSpecialRequests = "special_requests"
	FieldStatus          = "status"
)

// QueryColumns maps the field names accepted in sortBy/fields query
// parameters to store columns. The external names match the JSON payload,
// anything not listed here is ignored.
var QueryColumns = map[string]string{
	"roomName":        FieldRoomName,
	"roomType":        FieldRoomType,
	"guestName":       FieldGuestName,
	"guestEmail":      FieldGuestEmail,
	"guestPhone":      FieldGuestPhone,
	"checkInDate":     FieldCheckInDate,
	"checkOutDate":    FieldCheckOutDate,
	"duration":        FieldDuration,
	"numberOfGuests":  FieldNumberOfGuests,
	"totalPrice":      FieldTotalPrice,
	"specialRequests": FieldSpecialRequests,
	"status":          FieldStatus,
	"created_at":      constant.FieldCreatedAt,
	"created_by":      constant.FieldCreatedBy,
	"updated_at":      constant.FieldUpdatedAt,
	"updated_by":      constant.FieldUpdatedBy,
}

// Booking is a room reservation. Duration is derived from the date pair and
// recomputed on every write, never taken from input.
type Booking struct {
	ID              string    `db:"id"`
	RoomName        string    `db:"room_name"`
	RoomType        string    `db:"room_type"`
	GuestName       string    `db:"guest_name"`
	GuestEmail      string    `db:"guest_email"`
	GuestPhone      string    `db:"guest_phone"`
	CheckInDate     time.Time `db:"check_in_date"`
	CheckOutDate    time.Time `db:"check_out_date"`
	Duration        int       `db:"duration"`
	NumberOfGuests  int       `db:"number_of_guests"`
	TotalPrice      float64   `db:"total_price"`
	SpecialRequests string    `db:"special_requests"`
	Status          string    `db:"status"`
	model.Metadata
}
