package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/entity"

	"gorm.io/gorm"
)

type RoomCategoryRepository interface {
	Create(ctx context.Context, db *gorm.DB, category *entity.RoomCategory) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.RoomCategory, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.RoomCategory, error)
	Update(ctx context.Context, db *gorm.DB, category *entity.RoomCategory) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
	CountRooms(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
