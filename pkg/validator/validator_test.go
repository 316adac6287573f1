package validator

import (
	"testing"
	"time"

	"hotel-frontdesk/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBooking() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		Guest: &dto.CreateGuestRequest{
			FirstName: "Amina",
			LastName:  "Nakato",
			Phone:     "+256700000001",
		},
		RoomID:         uuid.New(),
		CheckInDate:    time.Date(2026, 11, 1, 14, 0, 0, 0, time.UTC),
		CheckOutDate:   time.Date(2026, 11, 3, 11, 0, 0, 0, time.UTC),
		NumberOfGuests: 2,
		PurposeOfStay:  "leisure",
		Payment:        dto.InitialPaymentRequest{PaymentMode: "cash"},
	}
}

func TestValidate_AcceptsValidBooking(t *testing.T) {
	v := NewValidator()
	req := validBooking()
	assert.NoError(t, v.Validate(&req))
}

func TestFormatValidationErrors_UsesJSONPaths(t *testing.T) {
	v := NewValidator()
	req := validBooking()
	req.Guest.Phone = ""
	req.PurposeOfStay = "holiday"
	req.Payment.PaymentMode = ""
	req.NumberOfGuests = 0

	err := v.Validate(&req)
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "phone is required", errs["guest.phone"])
	assert.Equal(t, "purpose_of_stay must be one of: business, leisure, transit, event, other", errs["purpose_of_stay"])
	assert.Equal(t, "payment_mode is required", errs["payment.payment_mode"])
	assert.Contains(t, errs, "number_of_guests")
}

func TestFormatValidationErrors_GuestOrGuestID(t *testing.T) {
	v := NewValidator()
	req := validBooking()
	req.Guest = nil

	errs := v.FormatValidationErrors(v.Validate(&req))
	assert.Equal(t, "guest is required when GuestID is not given", errs["guest"])

	id := uuid.New()
	req.GuestID = &id
	assert.NoError(t, v.Validate(&req))
}

func TestFormatValidationErrors_StatusColor(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&dto.CreateRoomStatusRequest{Name: "Inspection", Color: "green"})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "color must be a hex color such as #22C55E", errs["color"])
	assert.Len(t, errs, 1)
}

func TestFormatValidationErrors_NotValidationError(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.FormatValidationErrors(assert.AnError))
}
