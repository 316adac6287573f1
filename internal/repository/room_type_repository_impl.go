package repository

import (
	"context"
	"errors"
	"time"

	"hotel-frontdesk/internal/domain/entity"
	domainRepo "hotel-frontdesk/internal/domain/repository"

	"gorm.io/gorm"
)

type roomTypeRepository struct{}

func NewRoomTypeRepository() domainRepo.RoomTypeRepository {
	return &roomTypeRepository{}
}

func (r *roomTypeRepository) Create(ctx context.Context, db *gorm.DB, roomType *entity.RoomType) error {
	return db.WithContext(ctx).Create(roomType).Error
}

// FindByID only sees live room types; GORM adds deleted_at IS NULL.
func (r *roomTypeRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.RoomType, error) {
	var roomType entity.RoomType
	err := db.WithContext(ctx).Where("id = ?", id).First(&roomType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &roomType, nil
}

func (r *roomTypeRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.RoomType, error) {
	var roomTypes []entity.RoomType
	err := db.WithContext(ctx).Order("name ASC").Find(&roomTypes).Error
	if err != nil {
		return nil, err
	}
	return roomTypes, nil
}

func (r *roomTypeRepository) Update(ctx context.Context, db *gorm.DB, roomType *entity.RoomType) error {
	return db.WithContext(ctx).Omit("DeletedAt", "DeletedBy").Save(roomType).Error
}

// SoftDelete moves a live room type into the recycle bin.
func (r *roomTypeRepository) SoftDelete(ctx context.Context, db *gorm.DB, id int, deletedAt time.Time, deletedBy string) (int64, error) {
	result := db.WithContext(ctx).Unscoped().Model(&entity.RoomType{}).
		Where("id = ? AND deleted_at IS NULL", id).
		UpdateColumns(map[string]interface{}{
			"deleted_at": deletedAt,
			"deleted_by": deletedBy,
		})
	return result.RowsAffected, result.Error
}

func (r *roomTypeRepository) FindDeletedByID(ctx context.Context, db *gorm.DB, id int) (*entity.RoomType, error) {
	var roomType entity.RoomType
	err := db.WithContext(ctx).Unscoped().Where("id = ? AND deleted_at IS NOT NULL", id).First(&roomType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &roomType, nil
}

func (r *roomTypeRepository) FindAllDeleted(ctx context.Context, db *gorm.DB) ([]entity.RoomType, error) {
	var roomTypes []entity.RoomType
	err := db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL").
		Order("deleted_at DESC").
		Find(&roomTypes).Error
	if err != nil {
		return nil, err
	}
	return roomTypes, nil
}

func (r *roomTypeRepository) FindDeletedBefore(ctx context.Context, db *gorm.DB, cutoff time.Time) ([]entity.RoomType, error) {
	var roomTypes []entity.RoomType
	err := db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Order("deleted_at ASC").
		Find(&roomTypes).Error
	if err != nil {
		return nil, err
	}
	return roomTypes, nil
}

// Restore clears the tombstone. Returns 0 when the room type is not in the bin.
func (r *roomTypeRepository) Restore(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Unscoped().Model(&entity.RoomType{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		UpdateColumns(map[string]interface{}{
			"deleted_at": nil,
			"deleted_by": nil,
		})
	return result.RowsAffected, result.Error
}

// HardDelete removes a binned room type for good. Live rows are never touched.
func (r *roomTypeRepository) HardDelete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Unscoped().
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Delete(&entity.RoomType{})
	return result.RowsAffected, result.Error
}
