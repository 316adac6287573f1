package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomStatusHistoryRepository is append-only: there is no update or delete.
type RoomStatusHistoryRepository interface {
	Create(ctx context.Context, db *gorm.DB, entry *entity.RoomStatusHistory) error
	FindByRoomID(ctx context.Context, db *gorm.DB, roomID uuid.UUID) ([]entity.RoomStatusHistory, error)
	FindLatestByRoomID(ctx context.Context, db *gorm.DB, roomID uuid.UUID) (*entity.RoomStatusHistory, error)
}
