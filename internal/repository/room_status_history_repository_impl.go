package repository

import (
	"context"
	"errors"

	"hotel-frontdesk/internal/domain/entity"
	domainRepo "hotel-frontdesk/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type roomStatusHistoryRepository struct{}

func NewRoomStatusHistoryRepository() domainRepo.RoomStatusHistoryRepository {
	return &roomStatusHistoryRepository{}
}

func (r *roomStatusHistoryRepository) Create(ctx context.Context, db *gorm.DB, entry *entity.RoomStatusHistory) error {
	return db.WithContext(ctx).Omit("Status", "PreviousStatus").Create(entry).Error
}

// FindByRoomID returns the room's history newest first, in write order.
func (r *roomStatusHistoryRepository) FindByRoomID(ctx context.Context, db *gorm.DB, roomID uuid.UUID) ([]entity.RoomStatusHistory, error) {
	var entries []entity.RoomStatusHistory
	err := db.WithContext(ctx).
		Preload("Status").Preload("PreviousStatus").
		Where("room_id = ?", roomID).
		Order("id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *roomStatusHistoryRepository) FindLatestByRoomID(ctx context.Context, db *gorm.DB, roomID uuid.UUID) (*entity.RoomStatusHistory, error) {
	var entry entity.RoomStatusHistory
	err := db.WithContext(ctx).
		Preload("Status").Preload("PreviousStatus").
		Where("room_id = ?", roomID).
		Order("id DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}
