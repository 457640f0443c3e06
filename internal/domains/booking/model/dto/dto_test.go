package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"comfort/internal/domains/booking/model"
	"comfort/internal/domains/booking/model/dto"
	"comfort/shared"
	"comfort/shared/constant"
	"comfort/shared/timezone"
	"comfort/shared/validator"
)

func futureDate(days int) string {
	return timezone.Today().AddDate(0, 0, days).Format(constant.DateOnlyFormat)
}

func TestParseStayDates(t *testing.T) {
	tests := []struct {
		name         string
		checkIn      string
		checkOut     string
		wantDuration int
		wantErr      string
	}{
		{
			name:         "three nights",
			checkIn:      futureDate(1),
			checkOut:     futureDate(4),
			wantDuration: 3,
		},
		{
			name:         "single night",
			checkIn:      futureDate(2),
			checkOut:     futureDate(3),
			wantDuration: 1,
		},
		{
			name:         "check-in today is allowed",
			checkIn:      futureDate(0),
			checkOut:     futureDate(1),
			wantDuration: 1,
		},
		{
			name:     "check-in in the past",
			checkIn:  futureDate(-1),
			checkOut: futureDate(2),
			wantErr:  "check-in date cannot be in the past",
		},
		{
			name:     "check-out equal to check-in",
			checkIn:  futureDate(1),
			checkOut: futureDate(1),
			wantErr:  "check-out date must be after check-in date",
		},
		{
			name:     "check-out before check-in",
			checkIn:  futureDate(4),
			checkOut: futureDate(1),
			wantErr:  "check-out date must be after check-in date",
		},
		{
			name:     "unparseable check-in",
			checkIn:  "01-09-2026",
			checkOut: futureDate(1),
			wantErr:  "invalid check-in date",
		},
		{
			name:     "unparseable check-out",
			checkIn:  futureDate(1),
			checkOut: "tomorrow",
			wantErr:  "invalid check-out date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkIn, checkOut, duration, err := dto.ParseStayDates(tt.checkIn, tt.checkOut)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantDuration, duration)
			assert.True(t, checkOut.After(checkIn))
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomName:       "  Deluxe Suite ",
		RoomType:       "suite",
		GuestName:      "Jane Guest",
		GuestEmail:     " Jane@Example.COM ",
		CheckInDate:    futureDate(1),
		CheckOutDate:   futureDate(4),
		NumberOfGuests: 2,
		TotalPrice:     450,
	}

	req.Normalize()

	booking, err := req.ToModel("staff")

	assert.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "Deluxe Suite", booking.RoomName)
	assert.Equal(t, "jane@example.com", booking.GuestEmail)
	assert.Equal(t, 3, booking.Duration)
	assert.Equal(t, constant.BookingStatusPending, booking.Status)
	assert.Equal(t, "staff", booking.CreatedBy)
}

func TestUpdateBookingRequest_ToRecord(t *testing.T) {
	req := dto.UpdateBookingRequest{
		RoomName:       "Standard Room",
		RoomType:       "standard",
		GuestName:      "Jane Guest",
		GuestEmail:     "jane@example.com",
		CheckInDate:    futureDate(1),
		CheckOutDate:   futureDate(2),
		NumberOfGuests: 1,
		TotalPrice:     120,
		Status:         constant.BookingStatusConfirmed,
	}

	record, err := req.ToRecord()

	assert.NoError(t, err)
	assert.Equal(t, 1, record.Duration)

	req.CheckOutDate = futureDate(0)
	_, err = req.ToRecord()
	assert.EqualError(t, err, "check-out date must be after check-in date")
}

func validUpdateBookingRequest() dto.UpdateBookingRequest {
	return dto.UpdateBookingRequest{
		RoomName:       "Standard Room",
		RoomType:       "standard",
		GuestName:      "Jane Guest",
		GuestEmail:     "jane@example.com",
		CheckInDate:    futureDate(1),
		CheckOutDate:   futureDate(2),
		NumberOfGuests: 1,
		TotalPrice:     120,
	}
}

func TestCreateBookingRequest_GuestCountBounds(t *testing.T) {
	tests := []struct {
		name    string
		guests  int
		wantErr bool
	}{
		{name: "single guest", guests: 1},
		{name: "ten guests", guests: 10},
		{name: "zero guests", guests: 0, wantErr: true},
		{name: "eleven guests", guests: 11, wantErr: true},
		{name: "negative guests", guests: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{
				RoomName:       "Deluxe Suite",
				RoomType:       "suite",
				GuestName:      "Jane Guest",
				GuestEmail:     "jane@example.com",
				CheckInDate:    futureDate(1),
				CheckOutDate:   futureDate(4),
				NumberOfGuests: tt.guests,
				TotalPrice:     450,
			}

			err := validator.ValidateStruct(&req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateBookingRequest_StatusEnum(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr bool
	}{
		{name: "empty status is optional", status: ""},
		{name: "pending", status: constant.BookingStatusPending},
		{name: "confirmed", status: constant.BookingStatusConfirmed},
		{name: "checked-in", status: constant.BookingStatusCheckedIn},
		{name: "completed", status: constant.BookingStatusCompleted},
		{name: "cancelled", status: constant.BookingStatusCancelled},
		{name: "unknown value", status: "archived", wantErr: true},
		{name: "wrong case", status: "CONFIRMED", wantErr: true},
		{name: "free text", status: "done", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpdateBookingRequest()
			req.Status = tt.status

			err := validator.ValidateStruct(&req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingResponse_ProjectedZeroValuesSurvive(t *testing.T) {
	resp := dto.BookingResponse{}
	resp.FromModel(model.Booking{
		ID:         "3b2f6a38-59d0-4c6b-8f0e-6a1a4fbe4a77",
		RoomName:   "Standard Room",
		GuestEmail: "jane@example.com",
		TotalPrice: 0,
	})

	projected, err := shared.ProjectFields([]dto.BookingResponse{resp}, []string{"totalPrice"})

	assert.NoError(t, err)
	assert.Len(t, projected, 1)
	assert.Equal(t, float64(0), projected[0]["totalPrice"])
	assert.NotContains(t, projected[0], "guestEmail")
}
