package repository

import (
	"context"
	"errors"
	"time"

	"hotel-frontdesk/internal/domain/entity"
	domainRepo "hotel-frontdesk/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(ctx context.Context, db *gorm.DB, booking *entity.Booking) error {
	return db.WithContext(ctx).Omit("Room", "Guest", "Payments").Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.WithContext(ctx).
		Preload("Room.Category").Preload("Room.CurrentStatus").Preload("Guest").
		Preload("Payments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.BookingFilter) ([]entity.Booking, int64, error) {
	var bookings []entity.Booking
	var total int64

	query := db.WithContext(ctx).Model(&entity.Booking{})
	if filter != nil {
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.RoomID != nil {
			query = query.Where("room_id = ?", *filter.RoomID)
		}
		if filter.GuestID != nil {
			query = query.Where("guest_id = ?", *filter.GuestID)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter != nil && filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	err := query.Preload("Room").Preload("Guest").Order("check_in_date DESC, created_at DESC").Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *bookingRepository) FindByGuestID(ctx context.Context, db *gorm.DB, guestID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.WithContext(ctx).Preload("Room").
		Where("guest_id = ?", guestID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) CountByGuestID(ctx context.Context, db *gorm.DB, guestID uuid.UUID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Booking{}).Where("guest_id = ?", guestID).Count(&count).Error
	return count, err
}

// Returns affected rows: 1 = checked in, 0 = not active or already checked in.
func (r *bookingRepository) MarkCheckedIn(ctx context.Context, db *gorm.DB, id uuid.UUID, at time.Time) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Booking{}).
		Where("id = ? AND status = ? AND actual_check_in IS NULL", id, entity.BookingStatusActive).
		Update("actual_check_in", at)
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) MarkCheckedOut(ctx context.Context, db *gorm.DB, id uuid.UUID, at time.Time) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Booking{}).
		Where("id = ? AND status = ? AND actual_check_in IS NOT NULL", id, entity.BookingStatusActive).
		Updates(map[string]interface{}{
			"actual_check_out": at,
			"status":           entity.BookingStatusCheckedOut,
		})
	return result.RowsAffected, result.Error
}

// CancelBooking atomically cancels a booking ONLY if it is still active and the guest has not arrived.
// Returns affected rows: 1 = success, 0 = already closed (prevents double-cancel race).
func (r *bookingRepository) CancelBooking(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Booking{}).
		Where("id = ? AND status = ? AND actual_check_in IS NULL", id, entity.BookingStatusActive).
		Update("status", entity.BookingStatusCancelled)
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) CountActive(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Booking{}).Where("status = ?", entity.BookingStatusActive).Count(&count).Error
	return count, err
}

func (r *bookingRepository) CountArrivalsBetween(ctx context.Context, db *gorm.DB, from, to time.Time) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Booking{}).
		Where("status = ? AND check_in_date >= ? AND check_in_date < ?", entity.BookingStatusActive, from, to).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) CountDeparturesBetween(ctx context.Context, db *gorm.DB, from, to time.Time) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Booking{}).
		Where("status = ? AND check_out_date >= ? AND check_out_date < ?", entity.BookingStatusActive, from, to).
		Count(&count).Error
	return count, err
}
