package repository

import (
	"context"
	"errors"
	"strings"

	"hotel-frontdesk/internal/domain/entity"
	domainRepo "hotel-frontdesk/internal/domain/repository"

	"gorm.io/gorm"
)

type roomStatusRepository struct{}

func NewRoomStatusRepository() domainRepo.RoomStatusRepository {
	return &roomStatusRepository{}
}

func (r *roomStatusRepository) Create(ctx context.Context, db *gorm.DB, status *entity.RoomStatus) error {
	return db.WithContext(ctx).Create(status).Error
}

func (r *roomStatusRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.RoomStatus, error) {
	return r.first(db.WithContext(ctx).Where("id = ?", id))
}

func (r *roomStatusRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.RoomStatus, error) {
	return r.first(db.WithContext(ctx).Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))))
}

func (r *roomStatusRepository) FindDefault(ctx context.Context, db *gorm.DB) (*entity.RoomStatus, error) {
	return r.first(db.WithContext(ctx).Where("is_default = ?", true))
}

func (r *roomStatusRepository) FindAll(ctx context.Context, db *gorm.DB, activeOnly bool) ([]entity.RoomStatus, error) {
	var statuses []entity.RoomStatus
	query := db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("is_default DESC, name ASC").Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *roomStatusRepository) Update(ctx context.Context, db *gorm.DB, status *entity.RoomStatus) error {
	return db.WithContext(ctx).Save(status).Error
}

func (r *roomStatusRepository) ClearDefault(ctx context.Context, db *gorm.DB, exceptID int) error {
	return db.WithContext(ctx).Model(&entity.RoomStatus{}).
		Where("is_default = ? AND id <> ?", true, exceptID).
		Update("is_default", false).Error
}

func (r *roomStatusRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.RoomStatus{})
	return result.RowsAffected, result.Error
}

// CountUsage counts rooms currently holding the status plus history entries referencing it.
func (r *roomStatusRepository) CountUsage(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	var rooms, history int64
	if err := db.WithContext(ctx).Model(&entity.Room{}).Where("current_status_id = ?", id).Count(&rooms).Error; err != nil {
		return 0, err
	}
	if err := db.WithContext(ctx).Model(&entity.RoomStatusHistory{}).
		Where("status_id = ? OR previous_status_id = ?", id, id).
		Count(&history).Error; err != nil {
		return 0, err
	}
	return rooms + history, nil
}

func (r *roomStatusRepository) first(query *gorm.DB) (*entity.RoomStatus, error) {
	var status entity.RoomStatus
	err := query.First(&status).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &status, nil
}
