package repository

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/entity"

	"gorm.io/gorm"
)

type RoomTypeRepository interface {
	Create(ctx context.Context, db *gorm.DB, roomType *entity.RoomType) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.RoomType, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.RoomType, error)
	Update(ctx context.Context, db *gorm.DB, roomType *entity.RoomType) error

	// Recycle bin
	SoftDelete(ctx context.Context, db *gorm.DB, id int, deletedAt time.Time, deletedBy string) (int64, error)
	FindDeletedByID(ctx context.Context, db *gorm.DB, id int) (*entity.RoomType, error)
	FindAllDeleted(ctx context.Context, db *gorm.DB) ([]entity.RoomType, error)
	FindDeletedBefore(ctx context.Context, db *gorm.DB, cutoff time.Time) ([]entity.RoomType, error)
	Restore(ctx context.Context, db *gorm.DB, id int) (int64, error)
	HardDelete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}

type RoomTypeHistoryRepository interface {
	Create(ctx context.Context, db *gorm.DB, entry *entity.RoomTypeHistoryEntry) error
	FindAll(ctx context.Context, db *gorm.DB, roomTypeID *int) ([]entity.RoomTypeHistoryEntry, error)
}
