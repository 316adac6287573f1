package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, db *gorm.DB, payment *entity.Payment) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Payment, error)
	FindByBookingID(ctx context.Context, db *gorm.DB, bookingID uuid.UUID) ([]entity.Payment, error)
	FindAll(ctx context.Context, db *gorm.DB, filter *entity.PaymentFilter) ([]entity.Payment, int64, error)
	// OutstandingBalance sums the latest balance of every active booking.
	OutstandingBalance(ctx context.Context, db *gorm.DB) (decimal.Decimal, error)
}
