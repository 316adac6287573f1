package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/entity"

	"gorm.io/gorm"
)

type RoomStatusRepository interface {
	Create(ctx context.Context, db *gorm.DB, status *entity.RoomStatus) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.RoomStatus, error)
	// FindByName matches case-insensitively.
	FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.RoomStatus, error)
	FindDefault(ctx context.Context, db *gorm.DB) (*entity.RoomStatus, error)
	FindAll(ctx context.Context, db *gorm.DB, activeOnly bool) ([]entity.RoomStatus, error)
	Update(ctx context.Context, db *gorm.DB, status *entity.RoomStatus) error
	// ClearDefault unsets is_default on every status except exceptID.
	ClearDefault(ctx context.Context, db *gorm.DB, exceptID int) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
	CountUsage(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
