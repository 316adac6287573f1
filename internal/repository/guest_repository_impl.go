package repository

import (
	"context"
	"errors"

	"hotel-frontdesk/internal/domain/entity"
	domainRepo "hotel-frontdesk/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type guestRepository struct{}

func NewGuestRepository() domainRepo.GuestRepository {
	return &guestRepository{}
}

func (r *guestRepository) Create(ctx context.Context, db *gorm.DB, guest *entity.Guest) error {
	return db.WithContext(ctx).Omit("Bookings").Create(guest).Error
}

func (r *guestRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Guest, error) {
	var guest entity.Guest
	err := db.WithContext(ctx).Where("id = ?", id).First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.GuestFilter) ([]entity.Guest, int64, error) {
	var guests []entity.Guest
	var total int64

	query := db.WithContext(ctx).Model(&entity.Guest{})
	if filter != nil && filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR phone ILIKE ? OR email ILIKE ? OR passport_number ILIKE ? OR national_id ILIKE ?",
			like, like, like, like, like, like,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter != nil && filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	err := query.Order("created_at DESC").Find(&guests).Error
	if err != nil {
		return nil, 0, err
	}
	return guests, total, nil
}

func (r *guestRepository) Update(ctx context.Context, db *gorm.DB, guest *entity.Guest) error {
	return db.WithContext(ctx).Omit("Bookings").Save(guest).Error
}

func (r *guestRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Guest{})
	return result.RowsAffected, result.Error
}
