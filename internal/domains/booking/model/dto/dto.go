package dto

import (
	"math"
	"strings"
	"time"

	"comfort/internal/domains/booking/model"
	"comfort/shared/constant"
	gDto "comfort/shared/dto"
	"comfort/shared/failure"
	gModel "comfort/shared/model"
	"comfort/shared/timezone"

	"github.com/google/uuid"
)

const hoursPerDay = 24

// ParseStayDates parses and checks a check-in/check-out pair, returning the
// parsed dates plus the derived duration in nights. The check-in rule is
// date-only: booking for today is fine, yesterday is not.
func ParseStayDates(checkIn, checkOut string) (time.Time, time.Time, int, error) {
	in, err := timezone.Parse(constant.DateOnlyFormat, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, 0, failure.BadRequestFromString("invalid check-in date") //nolint:wrapcheck
	}

	out, err := timezone.Parse(constant.DateOnlyFormat, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, 0, failure.BadRequestFromString("invalid check-out date") //nolint:wrapcheck
	}

	if in.Before(timezone.Today()) {
		return time.Time{}, time.Time{}, 0, failure.BadRequestFromString("check-in date cannot be in the past") //nolint:wrapcheck
	}

	if !out.After(in) {
		return time.Time{}, time.Time{}, 0, failure.BadRequestFromString("check-out date must be after check-in date") //nolint:wrapcheck
	}

	duration := int(math.Ceil(out.Sub(in).Hours() / hoursPerDay))

	return in, out, duration, nil
}

type CreateBookingRequest struct {
	RoomName        string  `json:"roomName" validate:"required,notblank"`
	RoomType        string  `json:"roomType" validate:"required,notblank"`
	GuestName       string  `json:"guestName" validate:"required,notblank"`
	GuestEmail      string  `json:"guestEmail" validate:"required,email_addr"`
	GuestPhone      string  `json:"guestPhone" validate:"omitempty,phone"`
	CheckInDate     string  `json:"checkInDate" validate:"required"`
	CheckOutDate    string  `json:"checkOutDate" validate:"required"`
	NumberOfGuests  int     `json:"numberOfGuests" validate:"required,min=1,max=10"`
	TotalPrice      float64 `json:"totalPrice" validate:"min=0"`
	SpecialRequests string  `json:"specialRequests"`
}

func (c *CreateBookingRequest) Normalize() {
	c.RoomName = strings.TrimSpace(c.RoomName)
	c.RoomType = strings.TrimSpace(c.RoomType)
	c.GuestName = strings.TrimSpace(c.GuestName)
	c.GuestEmail = strings.ToLower(strings.TrimSpace(c.GuestEmail))
	c.GuestPhone = strings.TrimSpace(c.GuestPhone)
	c.SpecialRequests = strings.TrimSpace(c.SpecialRequests)
}

// ToModel builds the stored record. Status always starts as pending, any
// status in the request payload would simply not bind anywhere.
func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, checkOut, duration, err := ParseStayDates(c.CheckInDate, c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:              uuid.NewString(),
		RoomName:        c.RoomName,
		RoomType:        c.RoomType,
		GuestName:       c.GuestName,
		GuestEmail:      c.GuestEmail,
		GuestPhone:      c.GuestPhone,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Duration:        duration,
		NumberOfGuests:  c.NumberOfGuests,
		TotalPrice:      c.TotalPrice,
		SpecialRequests: c.SpecialRequests,
		Status:          constant.BookingStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			CreatedBy: user,
			UpdatedAt: timezone.Now(),
			UpdatedBy: user,
		},
	}, nil
}

// UpdateBookingRequest is a full-record replacement, except status which is
// only written when explicitly provided.
type UpdateBookingRequest struct {
	RoomName        string  `json:"roomName" validate:"required,notblank"`
	RoomType        string  `json:"roomType" validate:"required,notblank"`
	GuestName       string  `json:"guestName" validate:"required,notblank"`
	GuestEmail      string  `json:"guestEmail" validate:"required,email_addr"`
	GuestPhone      string  `json:"guestPhone" validate:"omitempty,phone"`
	CheckInDate     string  `json:"checkInDate" validate:"required"`
	CheckOutDate    string  `json:"checkOutDate" validate:"required"`
	NumberOfGuests  int     `json:"numberOfGuests" validate:"required,min=1,max=10"`
	TotalPrice      float64 `json:"totalPrice" validate:"min=0"`
	SpecialRequests string  `json:"specialRequests"`
	Status          string  `json:"status" validate:"omitempty,oneof=pending confirmed checked-in completed cancelled"`
}

func (u *UpdateBookingRequest) Normalize() {
	u.RoomName = strings.TrimSpace(u.RoomName)
	u.RoomType = strings.TrimSpace(u.RoomType)
	u.GuestName = strings.TrimSpace(u.GuestName)
	u.GuestEmail = strings.ToLower(strings.TrimSpace(u.GuestEmail))
	u.GuestPhone = strings.TrimSpace(u.GuestPhone)
	u.SpecialRequests = strings.TrimSpace(u.SpecialRequests)
}

// UpdateRecord carries the db-tagged columns a full update writes back.
// Status is deliberately absent, the service appends it only when provided.
type UpdateRecord struct {
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
}

func (u *UpdateBookingRequest) ToRecord() (UpdateRecord, error) {
	checkIn, checkOut, duration, err := ParseStayDates(u.CheckInDate, u.CheckOutDate)
	if err != nil {
		return UpdateRecord{}, err
	}

	return UpdateRecord{
		RoomName:        u.RoomName,
		RoomType:        u.RoomType,
		GuestName:       u.GuestName,
		GuestEmail:      u.GuestEmail,
		GuestPhone:      u.GuestPhone,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Duration:        duration,
		NumberOfGuests:  u.NumberOfGuests,
		TotalPrice:      u.TotalPrice,
		SpecialRequests: u.SpecialRequests,
	}, nil
}

// BookingResponse serializes every column without omitempty: a projected
// zero value (a free booking's totalPrice, say) must stay in the payload.
type BookingResponse struct {
	ID              string  `json:"id"`
	RoomName        string  `json:"roomName"`
	RoomType        string  `json:"roomType"`
	GuestName       string  `json:"guestName"`
	GuestEmail      string  `json:"guestEmail"`
	GuestPhone      string  `json:"guestPhone"`
	CheckInDate     string  `json:"checkInDate"`
	CheckOutDate    string  `json:"checkOutDate"`
	Duration        int     `json:"duration"`
	NumberOfGuests  int     `json:"numberOfGuests"`
	TotalPrice      float64 `json:"totalPrice"`
	SpecialRequests string  `json:"specialRequests"`
	Status          string  `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomName = model.RoomName
	r.RoomType = model.RoomType
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.Duration = model.Duration
	r.NumberOfGuests = model.NumberOfGuests
	r.TotalPrice = model.TotalPrice
	r.SpecialRequests = model.SpecialRequests
	r.Status = model.Status

	if !model.CheckInDate.IsZero() {
		r.CheckInDate = timezone.Format(model.CheckInDate, constant.DateOnlyFormat)
	}

	if !model.CheckOutDate.IsZero() {
		r.CheckOutDate = timezone.Format(model.CheckOutDate, constant.DateOnlyFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type CreateBookingResponse struct {
	ID string `json:"id"`
}

func FromModels(models []model.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}
