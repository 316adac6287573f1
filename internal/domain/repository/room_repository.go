package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomStatusCount is the number of rooms currently holding a status.
type RoomStatusCount struct {
	StatusID int
	Name     string
	Color    string
	Count    int64
}

type RoomRepository interface {
	Create(ctx context.Context, db *gorm.DB, room *entity.Room) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Room, error)
	// FindByIDForUpdate locks the room row for the rest of the transaction.
	FindByIDForUpdate(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Room, error)
	FindAll(ctx context.Context, db *gorm.DB, filter *entity.RoomFilter) ([]entity.Room, int64, error)
	FindByStatusID(ctx context.Context, db *gorm.DB, statusID int) ([]entity.Room, error)
	Update(ctx context.Context, db *gorm.DB, room *entity.Room) error
	UpdateCurrentStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, statusID int) error
	CountByStatus(ctx context.Context, db *gorm.DB) ([]RoomStatusCount, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
