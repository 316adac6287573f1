package repository

import (
	"context"
	"errors"

	"hotel-frontdesk/internal/domain/entity"
	domainRepo "hotel-frontdesk/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type roomRepository struct{}

func NewRoomRepository() domainRepo.RoomRepository {
	return &roomRepository{}
}

func (r *roomRepository) Create(ctx context.Context, db *gorm.DB, room *entity.Room) error {
	return db.WithContext(ctx).Omit("Category", "CurrentStatus").Create(room).Error
}

func (r *roomRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Room, error) {
	var room entity.Room
	err := db.WithContext(ctx).Preload("Category").Preload("CurrentStatus").Where("id = ?", id).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindByIDForUpdate(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Room, error) {
	var room entity.Room
	err := db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.RoomFilter) ([]entity.Room, int64, error) {
	var rooms []entity.Room
	var total int64

	query := db.WithContext(ctx).Model(&entity.Room{})
	if filter != nil {
		if filter.CategoryID != nil {
			query = query.Where("category_id = ?", *filter.CategoryID)
		}
		if filter.StatusID != nil {
			query = query.Where("current_status_id = ?", *filter.StatusID)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter != nil && filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	err := query.Preload("Category").Preload("CurrentStatus").Order("room_number ASC").Find(&rooms).Error
	if err != nil {
		return nil, 0, err
	}
	return rooms, total, nil
}

func (r *roomRepository) FindByStatusID(ctx context.Context, db *gorm.DB, statusID int) ([]entity.Room, error) {
	var rooms []entity.Room
	err := db.WithContext(ctx).
		Preload("Category").Preload("CurrentStatus").
		Where("current_status_id = ?", statusID).
		Order("room_number ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// Update saves everything except the current status, which only moves through UpdateCurrentStatus.
func (r *roomRepository) Update(ctx context.Context, db *gorm.DB, room *entity.Room) error {
	return db.WithContext(ctx).Omit("Category", "CurrentStatus", "CurrentStatusID").Save(room).Error
}

func (r *roomRepository) UpdateCurrentStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, statusID int) error {
	return db.WithContext(ctx).Model(&entity.Room{}).Where("id = ?", id).Update("current_status_id", statusID).Error
}

func (r *roomRepository) CountByStatus(ctx context.Context, db *gorm.DB) ([]domainRepo.RoomStatusCount, error) {
	var counts []domainRepo.RoomStatusCount
	err := db.WithContext(ctx).Model(&entity.RoomStatus{}).
		Select("room_statuses.id AS status_id, room_statuses.name, room_statuses.color, COUNT(rooms.id) AS count").
		Joins("LEFT JOIN rooms ON rooms.current_status_id = room_statuses.id").
		Group("room_statuses.id, room_statuses.name, room_statuses.color").
		Order("room_statuses.name ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *roomRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Room{}).Count(&count).Error
	return count, err
}
