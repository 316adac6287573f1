package usecase

import (
	"context"
	"testing"

	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGuest_IncludesBookings(t *testing.T) {
	guest := &entity.Guest{ID: uuid.New(), FirstName: "Amina", LastName: "Nakato"}
	booking := &entity.Booking{ID: uuid.New(), GuestID: guest.ID, BookingCode: "BK-1", Status: entity.BookingStatusActive}
	uc := NewGuestUsecase(nil, testLogger(), newMockGuestRepo(guest), newMockBookingRepo(booking))

	resp, err := uc.GetGuest(context.Background(), guest.ID)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "Amina Nakato", resp.Bookings[0].GuestName)

	_, err = uc.GetGuest(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestDeleteGuest(t *testing.T) {
	booked := &entity.Guest{ID: uuid.New(), FirstName: "John", LastName: "Okello"}
	walkIn := &entity.Guest{ID: uuid.New(), FirstName: "Sara", LastName: "Atim"}
	guestRepo := newMockGuestRepo(booked, walkIn)
	bookingRepo := newMockBookingRepo(&entity.Booking{ID: uuid.New(), GuestID: booked.ID})
	uc := NewGuestUsecase(nil, testLogger(), guestRepo, bookingRepo)
	ctx := context.Background()

	assert.ErrorIs(t, uc.DeleteGuest(ctx, booked.ID), ErrGuestHasBookings)
	require.NoError(t, uc.DeleteGuest(ctx, walkIn.ID))
	assert.ErrorIs(t, uc.DeleteGuest(ctx, walkIn.ID), ErrGuestNotFound)
}

func TestUpdateGuest(t *testing.T) {
	guest := &entity.Guest{ID: uuid.New(), FirstName: "Amina", LastName: "Nakato", Phone: "+256700000001"}
	uc := NewGuestUsecase(nil, testLogger(), newMockGuestRepo(guest), newMockBookingRepo())

	resp, err := uc.UpdateGuest(context.Background(), guest.ID, &dto.UpdateGuestRequest{
		FirstName: "Amina",
		LastName:  "Nakato-Okello",
		Phone:     "+256700000002",
	})
	require.NoError(t, err)
	assert.Equal(t, "Nakato-Okello", resp.LastName)
	assert.Equal(t, "+256700000002", resp.Phone)

	_, err = uc.UpdateGuest(context.Background(), uuid.New(), &dto.UpdateGuestRequest{FirstName: "X", LastName: "Y", Phone: "1"})
	assert.ErrorIs(t, err, ErrGuestNotFound)
}
