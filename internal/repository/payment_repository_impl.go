package repository

import (
	"context"
	"errors"

	"hotel-frontdesk/internal/domain/entity"
	domainRepo "hotel-frontdesk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(ctx context.Context, db *gorm.DB, payment *entity.Payment) error {
	return db.WithContext(ctx).Omit("Booking").Create(payment).Error
}

func (r *paymentRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.WithContext(ctx).Preload("Booking").Where("id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

// FindByBookingID returns payments in the order they were recorded. payment_date is
// entered by staff and may be backdated, so it never decides which balance is current.
func (r *paymentRepository) FindByBookingID(ctx context.Context, db *gorm.DB, bookingID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.PaymentFilter) ([]entity.Payment, int64, error) {
	var payments []entity.Payment
	var total int64

	query := db.WithContext(ctx).Model(&entity.Payment{})
	if filter != nil {
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.BookingID != nil {
			query = query.Where("booking_id = ?", *filter.BookingID)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter != nil && filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	err := query.Order("payment_date DESC, created_at DESC").Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

func (r *paymentRepository) OutstandingBalance(ctx context.Context, db *gorm.DB) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(latest.balance_remaining), 0) AS total
		FROM (
			SELECT DISTINCT ON (p.booking_id) p.balance_remaining
			FROM payments p
			JOIN bookings b ON b.id = p.booking_id
			WHERE b.status = ?
			ORDER BY p.booking_id, p.created_at DESC
		) latest`, entity.BookingStatusActive).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}
