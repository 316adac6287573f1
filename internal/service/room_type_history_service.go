package service

import (
	"context"

	"hotel-frontdesk/internal/domain/entity"
	"hotel-frontdesk/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RoomTypeHistoryService appends audit entries for the room type catalog.
type RoomTypeHistoryService interface {
	LogCreated(ctx context.Context, tx *gorm.DB, roomType *entity.RoomType, performedBy string) error
	LogEdited(ctx context.Context, tx *gorm.DB, roomType *entity.RoomType, changes []entity.FieldChange, performedBy string) error
	LogDeleted(ctx context.Context, tx *gorm.DB, roomType *entity.RoomType, permanent bool, performedBy string) error
	LogRestored(ctx context.Context, tx *gorm.DB, roomType *entity.RoomType, performedBy string) error
}

type roomTypeHistoryService struct {
	log         *logrus.Logger
	historyRepo repository.RoomTypeHistoryRepository
}

func NewRoomTypeHistoryService(log *logrus.Logger, historyRepo repository.RoomTypeHistoryRepository) RoomTypeHistoryService {
	return &roomTypeHistoryService{
		log:         log,
		historyRepo: historyRepo,
	}
}

func (s *roomTypeHistoryService) LogCreated(ctx context.Context, tx *gorm.DB, roomType *entity.RoomType, performedBy string) error {
	return s.record(ctx, tx, &entity.RoomTypeHistoryEntry{
		RoomTypeID:   roomType.ID,
		RoomTypeName: roomType.Name,
		Action:       entity.RoomTypeActionCreated,
		Snapshot:     roomType.Snapshot(),
		PerformedBy:  performedBy,
	})
}

func (s *roomTypeHistoryService) LogEdited(ctx context.Context, tx *gorm.DB, roomType *entity.RoomType, changes []entity.FieldChange, performedBy string) error {
	return s.record(ctx, tx, &entity.RoomTypeHistoryEntry{
		RoomTypeID:   roomType.ID,
		RoomTypeName: roomType.Name,
		Action:       entity.RoomTypeActionEdited,
		Changes:      changes,
		Snapshot:     roomType.Snapshot(),
		PerformedBy:  performedBy,
	})
}

// LogDeleted records both bin moves and permanent removals; permanent marks the latter.
func (s *roomTypeHistoryService) LogDeleted(ctx context.Context, tx *gorm.DB, roomType *entity.RoomType, permanent bool, performedBy string) error {
	return s.record(ctx, tx, &entity.RoomTypeHistoryEntry{
		RoomTypeID:   roomType.ID,
		RoomTypeName: roomType.Name,
		Action:       entity.RoomTypeActionDeleted,
		Permanent:    permanent,
		Snapshot:     roomType.Snapshot(),
		PerformedBy:  performedBy,
	})
}

func (s *roomTypeHistoryService) LogRestored(ctx context.Context, tx *gorm.DB, roomType *entity.RoomType, performedBy string) error {
	return s.record(ctx, tx, &entity.RoomTypeHistoryEntry{
		RoomTypeID:   roomType.ID,
		RoomTypeName: roomType.Name,
		Action:       entity.RoomTypeActionRestored,
		Snapshot:     roomType.Snapshot(),
		PerformedBy:  performedBy,
	})
}

func (s *roomTypeHistoryService) record(ctx context.Context, tx *gorm.DB, entry *entity.RoomTypeHistoryEntry) error {
	if err := s.historyRepo.Create(ctx, tx, entry); err != nil {
		s.log.Warnf("Failed to create room type history: %+v", err)
		return err
	}
	return nil
}
