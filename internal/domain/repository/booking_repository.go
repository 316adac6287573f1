package repository

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, db *gorm.DB, booking *entity.Booking) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	// FindByIDForUpdate locks the booking row so concurrent payments see each other's balance.
	FindByIDForUpdate(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, db *gorm.DB, filter *entity.BookingFilter) ([]entity.Booking, int64, error)
	FindByGuestID(ctx context.Context, db *gorm.DB, guestID uuid.UUID) ([]entity.Booking, error)
	CountByGuestID(ctx context.Context, db *gorm.DB, guestID uuid.UUID) (int64, error)
	// MarkCheckedIn stamps actual_check_in only on an active booking that has not arrived yet.
	MarkCheckedIn(ctx context.Context, db *gorm.DB, id uuid.UUID, at time.Time) (int64, error)
	// MarkCheckedOut closes an active, checked-in booking.
	MarkCheckedOut(ctx context.Context, db *gorm.DB, id uuid.UUID, at time.Time) (int64, error)
	// CancelBooking cancels an active booking that has not been checked in.
	CancelBooking(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
	CountActive(ctx context.Context, db *gorm.DB) (int64, error)
	CountArrivalsBetween(ctx context.Context, db *gorm.DB, from, to time.Time) (int64, error)
	CountDeparturesBetween(ctx context.Context, db *gorm.DB, from, to time.Time) (int64, error)
}
