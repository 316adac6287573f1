package repository

import (
	"context"
	"errors"

	"hotel-frontdesk/internal/domain/entity"
	domainRepo "hotel-frontdesk/internal/domain/repository"

	"gorm.io/gorm"
)

type roomCategoryRepository struct{}

func NewRoomCategoryRepository() domainRepo.RoomCategoryRepository {
	return &roomCategoryRepository{}
}

func (r *roomCategoryRepository) Create(ctx context.Context, db *gorm.DB, category *entity.RoomCategory) error {
	return db.WithContext(ctx).Create(category).Error
}

func (r *roomCategoryRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.RoomCategory, error) {
	var category entity.RoomCategory
	err := db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *roomCategoryRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.RoomCategory, error) {
	var categories []entity.RoomCategory
	err := db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *roomCategoryRepository) Update(ctx context.Context, db *gorm.DB, category *entity.RoomCategory) error {
	return db.WithContext(ctx).Omit("Rooms").Save(category).Error
}

func (r *roomCategoryRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.RoomCategory{})
	return result.RowsAffected, result.Error
}

func (r *roomCategoryRepository) CountRooms(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Room{}).Where("category_id = ?", id).Count(&count).Error
	return count, err
}
