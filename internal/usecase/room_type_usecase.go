package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotel-frontdesk/internal/converter"
	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/domain/entity"
	"hotel-frontdesk/internal/domain/repository"
	"hotel-frontdesk/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrRoomTypeNotFound      = errors.New("room type not found")
	ErrRoomTypeNotInBin      = errors.New("room type is not in the recycle bin")
	ErrInvalidRoomTypeCounts = errors.New("available rooms cannot exceed total rooms")
)

// PurgePerformer is recorded on history entries written by the retention job.
const PurgePerformer = "system"

type RoomTypeUsecase interface {
	CreateRoomType(ctx context.Context, req *dto.CreateRoomTypeRequest) (*dto.RoomTypeResponse, error)
	UpdateRoomType(ctx context.Context, id int, req *dto.UpdateRoomTypeRequest) (*dto.RoomTypeResponse, error)
	GetRoomType(ctx context.Context, id int) (*dto.RoomTypeResponse, error)
	ListRoomTypes(ctx context.Context) ([]dto.RoomTypeResponse, error)

	DeleteRoomType(ctx context.Context, id int, deletedBy string) error
	ListDeletedRoomTypes(ctx context.Context) ([]dto.RoomTypeResponse, error)
	RestoreRoomType(ctx context.Context, id int, restoredBy string) (*dto.RoomTypeResponse, error)
	PermanentlyDeleteRoomType(ctx context.Context, id int, deletedBy string) error
	ListRoomTypeHistory(ctx context.Context, roomTypeID *int) ([]dto.RoomTypeHistoryResponse, error)
	PurgeExpired(ctx context.Context, retention time.Duration) (int, error)
}

type roomTypeUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	transactor     repository.Transactor
	roomTypeRepo   repository.RoomTypeRepository
	historyRepo    repository.RoomTypeHistoryRepository
	historyService service.RoomTypeHistoryService
	events         service.EventPublisher
}

func NewRoomTypeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	transactor repository.Transactor,
	roomTypeRepo repository.RoomTypeRepository,
	historyRepo repository.RoomTypeHistoryRepository,
	historyService service.RoomTypeHistoryService,
	events service.EventPublisher,
) RoomTypeUsecase {
	return &roomTypeUsecase{
		db:             db,
		log:            log,
		transactor:     transactor,
		roomTypeRepo:   roomTypeRepo,
		historyRepo:    historyRepo,
		historyService: historyService,
		events:         events,
	}
}

func (u *roomTypeUsecase) CreateRoomType(ctx context.Context, req *dto.CreateRoomTypeRequest) (*dto.RoomTypeResponse, error) {
	if err := validateRoomTypeFields(req.BasePrice, req.TotalRooms, req.AvailableRooms); err != nil {
		return nil, err
	}

	roomType := &entity.RoomType{
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		BasePrice:      req.BasePrice,
		MaxOccupancy:   req.MaxOccupancy,
		TotalRooms:     req.TotalRooms,
		AvailableRooms: req.AvailableRooms,
		Amenities:      datatypes.JSONSlice[string](req.Amenities),
		BedType:        req.BedType,
		Size:           req.Size,
	}

	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.roomTypeRepo.Create(ctx, tx, roomType); err != nil {
			return err
		}
		return u.historyService.LogCreated(ctx, tx, roomType, actor(ctx, req.PerformedBy))
	})
	if err != nil {
		u.log.Warnf("Failed to create room type: %+v", err)
		return nil, err
	}

	return converter.RoomTypeToResponse(roomType), nil
}

// UpdateRoomType saves the edit and records the tracked field changes (name, description, base price).
func (u *roomTypeUsecase) UpdateRoomType(ctx context.Context, id int, req *dto.UpdateRoomTypeRequest) (*dto.RoomTypeResponse, error) {
	if err := validateRoomTypeFields(req.BasePrice, req.TotalRooms, req.AvailableRooms); err != nil {
		return nil, err
	}

	var updated *entity.RoomType
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		current, err := u.roomTypeRepo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrRoomTypeNotFound
		}

		next := *current
		next.Name = strings.TrimSpace(req.Name)
		next.Description = req.Description
		next.BasePrice = req.BasePrice
		next.MaxOccupancy = req.MaxOccupancy
		next.TotalRooms = req.TotalRooms
		next.AvailableRooms = req.AvailableRooms
		next.Amenities = datatypes.JSONSlice[string](req.Amenities)
		next.BedType = req.BedType
		next.Size = req.Size

		if err := u.roomTypeRepo.Update(ctx, tx, &next); err != nil {
			return err
		}
		updated = &next
		return u.historyService.LogEdited(ctx, tx, &next, current.Diff(&next), actor(ctx, req.PerformedBy))
	})
	if err != nil {
		if !errors.Is(err, ErrRoomTypeNotFound) {
			u.log.Warnf("Failed to update room type %d: %+v", id, err)
		}
		return nil, err
	}

	return converter.RoomTypeToResponse(updated), nil
}

func (u *roomTypeUsecase) GetRoomType(ctx context.Context, id int) (*dto.RoomTypeResponse, error) {
	roomType, err := u.roomTypeRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find room type %d: %+v", id, err)
		return nil, err
	}
	if roomType == nil {
		return nil, ErrRoomTypeNotFound
	}
	return converter.RoomTypeToResponse(roomType), nil
}

func (u *roomTypeUsecase) ListRoomTypes(ctx context.Context) ([]dto.RoomTypeResponse, error) {
	roomTypes, err := u.roomTypeRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list room types: %+v", err)
		return nil, err
	}
	return converter.RoomTypesToResponses(roomTypes), nil
}

// DeleteRoomType moves a live room type into the recycle bin.
func (u *roomTypeUsecase) DeleteRoomType(ctx context.Context, id int, deletedBy string) error {
	by := actor(ctx, deletedBy)
	now := time.Now()

	var deleted *entity.RoomType
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		roomType, err := u.roomTypeRepo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if roomType == nil {
			return ErrRoomTypeNotFound
		}

		affected, err := u.roomTypeRepo.SoftDelete(ctx, tx, id, now, by)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrRoomTypeNotFound
		}

		roomType.DeletedAt = gorm.DeletedAt{Time: now, Valid: true}
		roomType.DeletedBy = &by
		deleted = roomType
		return u.historyService.LogDeleted(ctx, tx, roomType, false, by)
	})
	if err != nil {
		if !errors.Is(err, ErrRoomTypeNotFound) {
			u.log.Warnf("Failed to delete room type %d: %+v", id, err)
		}
		return err
	}

	u.events.Publish(ctx, service.EventRoomTypeDeleted, converter.RoomTypeToResponse(deleted))
	return nil
}

func (u *roomTypeUsecase) ListDeletedRoomTypes(ctx context.Context) ([]dto.RoomTypeResponse, error) {
	roomTypes, err := u.roomTypeRepo.FindAllDeleted(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list deleted room types: %+v", err)
		return nil, err
	}
	return converter.RoomTypesToResponses(roomTypes), nil
}

// RestoreRoomType clears exactly the tombstone; every other field is left as it was.
func (u *roomTypeUsecase) RestoreRoomType(ctx context.Context, id int, restoredBy string) (*dto.RoomTypeResponse, error) {
	by := actor(ctx, restoredBy)

	var restored *entity.RoomType
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		roomType, err := u.roomTypeRepo.FindDeletedByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if roomType == nil {
			return ErrRoomTypeNotInBin
		}

		affected, err := u.roomTypeRepo.Restore(ctx, tx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrRoomTypeNotInBin
		}

		roomType.DeletedAt = gorm.DeletedAt{}
		roomType.DeletedBy = nil
		restored = roomType
		return u.historyService.LogRestored(ctx, tx, roomType, by)
	})
	if err != nil {
		if !errors.Is(err, ErrRoomTypeNotInBin) {
			u.log.Warnf("Failed to restore room type %d: %+v", id, err)
		}
		return nil, err
	}

	resp := converter.RoomTypeToResponse(restored)
	u.events.Publish(ctx, service.EventRoomTypeRestored, resp)
	return resp, nil
}

// PermanentlyDeleteRoomType removes a room type that is already in the recycle bin.
func (u *roomTypeUsecase) PermanentlyDeleteRoomType(ctx context.Context, id int, deletedBy string) error {
	by := actor(ctx, deletedBy)

	var purged *entity.RoomType
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		roomType, err := u.roomTypeRepo.FindDeletedByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if roomType == nil {
			return ErrRoomTypeNotInBin
		}

		affected, err := u.roomTypeRepo.HardDelete(ctx, tx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrRoomTypeNotInBin
		}

		purged = roomType
		return u.historyService.LogDeleted(ctx, tx, roomType, true, by)
	})
	if err != nil {
		if !errors.Is(err, ErrRoomTypeNotInBin) {
			u.log.Warnf("Failed to permanently delete room type %d: %+v", id, err)
		}
		return err
	}

	u.events.Publish(ctx, service.EventRoomTypePurged, converter.RoomTypeToResponse(purged))
	return nil
}

func (u *roomTypeUsecase) ListRoomTypeHistory(ctx context.Context, roomTypeID *int) ([]dto.RoomTypeHistoryResponse, error) {
	entries, err := u.historyRepo.FindAll(ctx, u.db, roomTypeID)
	if err != nil {
		u.log.Warnf("Failed to list room type history: %+v", err)
		return nil, err
	}
	return converter.RoomTypeHistoriesToResponses(entries), nil
}

// PurgeExpired permanently deletes bin entries older than retention. A zero retention
// disables purging. Entries that fail are skipped and reported in the returned error.
func (u *roomTypeUsecase) PurgeExpired(ctx context.Context, retention time.Duration) (int, error) {
	if retention <= 0 {
		return 0, nil
	}

	expired, err := u.roomTypeRepo.FindDeletedBefore(ctx, u.db, time.Now().Add(-retention))
	if err != nil {
		u.log.Warnf("Failed to find expired room types: %+v", err)
		return 0, err
	}

	var errs []error
	purged := 0
	for _, roomType := range expired {
		if err := u.PermanentlyDeleteRoomType(ctx, roomType.ID, PurgePerformer); err != nil {
			if errors.Is(err, ErrRoomTypeNotInBin) {
				continue // restored or purged concurrently
			}
			errs = append(errs, err)
			continue
		}
		purged++
	}

	if purged > 0 {
		u.log.Infof("Purged %d expired room types from the recycle bin", purged)
	}
	return purged, errors.Join(errs...)
}

func validateRoomTypeFields(basePrice decimal.Decimal, totalRooms, availableRooms int) error {
	if !basePrice.GreaterThan(decimal.Zero) {
		return ErrInvalidPrice
	}
	if availableRooms > totalRooms {
		return ErrInvalidRoomTypeCounts
	}
	return nil
}
