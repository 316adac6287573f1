package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/entity"
	domainRepo "hotel-frontdesk/internal/domain/repository"

	"gorm.io/gorm"
)

type roomTypeHistoryRepository struct{}

func NewRoomTypeHistoryRepository() domainRepo.RoomTypeHistoryRepository {
	return &roomTypeHistoryRepository{}
}

func (r *roomTypeHistoryRepository) Create(ctx context.Context, db *gorm.DB, entry *entity.RoomTypeHistoryEntry) error {
	return db.WithContext(ctx).Create(entry).Error
}

func (r *roomTypeHistoryRepository) FindAll(ctx context.Context, db *gorm.DB, roomTypeID *int) ([]entity.RoomTypeHistoryEntry, error) {
	var entries []entity.RoomTypeHistoryEntry
	query := db.WithContext(ctx)
	if roomTypeID != nil {
		query = query.Where("room_type_id = ?", *roomTypeID)
	}
	err := query.Order("created_at DESC, id DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
