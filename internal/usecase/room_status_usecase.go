package usecase

import (
	"context"
	"errors"
	"strings"

	"hotel-frontdesk/internal/converter"
	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/domain/entity"
	"hotel-frontdesk/internal/domain/repository"
	"hotel-frontdesk/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrStatusNameTaken        = errors.New("room status name already exists")
	ErrStatusInUse            = errors.New("room status is referenced by rooms or history")
	ErrDefaultStatusProtected = errors.New("the default room status cannot be deleted")

	// Raised by the status transition service.
	ErrRoomNotFound    = service.ErrRoomNotFound
	ErrStatusNotFound  = service.ErrStatusNotFound
	ErrStatusInactive  = service.ErrStatusInactive
	ErrNotesRequired   = service.ErrNotesRequired
	ErrNoDefaultStatus = service.ErrNoDefaultStatus
)

type RoomStatusUsecase interface {
	CreateStatus(ctx context.Context, req *dto.CreateRoomStatusRequest) (*dto.RoomStatusResponse, error)
	UpdateStatus(ctx context.Context, id int, req *dto.UpdateRoomStatusRequest) (*dto.RoomStatusResponse, error)
	DeleteStatus(ctx context.Context, id int) error
	GetStatus(ctx context.Context, id int) (*dto.RoomStatusResponse, error)
	ListStatuses(ctx context.Context, activeOnly bool) ([]dto.RoomStatusResponse, error)

	UpdateRoomCurrentStatus(ctx context.Context, roomID uuid.UUID, req *dto.UpdateRoomCurrentStatusRequest) (*dto.RoomStatusHistoryResponse, error)
	GetRoomStatusHistory(ctx context.Context, roomID uuid.UUID) ([]dto.RoomStatusHistoryResponse, error)
}

type roomStatusUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	transactor        repository.Transactor
	statusRepo        repository.RoomStatusRepository
	roomRepo          repository.RoomRepository
	historyRepo       repository.RoomStatusHistoryRepository
	transitionService service.StatusTransitionService
	cache             service.CacheService
	events            service.EventPublisher
}

func NewRoomStatusUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	transactor repository.Transactor,
	statusRepo repository.RoomStatusRepository,
	roomRepo repository.RoomRepository,
	historyRepo repository.RoomStatusHistoryRepository,
	transitionService service.StatusTransitionService,
	cache service.CacheService,
	events service.EventPublisher,
) RoomStatusUsecase {
	return &roomStatusUsecase{
		db:                db,
		log:               log,
		transactor:        transactor,
		statusRepo:        statusRepo,
		roomRepo:          roomRepo,
		historyRepo:       historyRepo,
		transitionService: transitionService,
		cache:             cache,
		events:            events,
	}
}

// CreateStatus adds a status to the registry. A new default status takes the flag
// away from every other status in the same transaction.
func (u *roomStatusUsecase) CreateStatus(ctx context.Context, req *dto.CreateRoomStatusRequest) (*dto.RoomStatusResponse, error) {
	name := strings.TrimSpace(req.Name)
	if err := u.ensureNameFree(ctx, name, 0); err != nil {
		return nil, err
	}

	status := &entity.RoomStatus{
		Name:        name,
		Color:       strings.ToUpper(req.Color),
		Description: req.Description,
		IsDefault:   req.IsDefault,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}

	// The single-default index is checked as each row is written, so the old default goes first.
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if status.IsDefault {
			if err := u.statusRepo.ClearDefault(ctx, tx, 0); err != nil {
				return err
			}
		}
		return u.statusRepo.Create(ctx, tx, status)
	})
	if err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrStatusNameTaken
		}
		u.log.Warnf("Failed to create room status: %+v", err)
		return nil, err
	}

	u.invalidate(ctx)
	return converter.RoomStatusToResponse(status), nil
}

func (u *roomStatusUsecase) UpdateStatus(ctx context.Context, id int, req *dto.UpdateRoomStatusRequest) (*dto.RoomStatusResponse, error) {
	status, err := u.statusRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find room status %d: %+v", id, err)
		return nil, err
	}
	if status == nil {
		return nil, ErrStatusNotFound
	}

	name := strings.TrimSpace(req.Name)
	if err := u.ensureNameFree(ctx, name, id); err != nil {
		return nil, err
	}

	status.Name = name
	status.Color = strings.ToUpper(req.Color)
	status.Description = req.Description
	status.IsDefault = req.IsDefault
	if req.IsActive != nil {
		status.IsActive = *req.IsActive
	}

	err = u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if status.IsDefault {
			if err := u.statusRepo.ClearDefault(ctx, tx, status.ID); err != nil {
				return err
			}
		}
		return u.statusRepo.Update(ctx, tx, status)
	})
	if err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrStatusNameTaken
		}
		u.log.Warnf("Failed to update room status %d: %+v", id, err)
		return nil, err
	}

	u.invalidate(ctx)
	return converter.RoomStatusToResponse(status), nil
}

func (u *roomStatusUsecase) DeleteStatus(ctx context.Context, id int) error {
	status, err := u.statusRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find room status %d: %+v", id, err)
		return err
	}
	if status == nil {
		return ErrStatusNotFound
	}
	if status.IsDefault {
		return ErrDefaultStatusProtected
	}

	usage, err := u.statusRepo.CountUsage(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to count usage of room status %d: %+v", id, err)
		return err
	}
	if usage > 0 {
		return ErrStatusInUse
	}

	affected, err := u.statusRepo.Delete(ctx, u.db, id)
	if err != nil {
		if isForeignKeyError(err, "status") {
			return ErrStatusInUse
		}
		u.log.Warnf("Failed to delete room status %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrStatusNotFound
	}

	u.invalidate(ctx)
	return nil
}

func (u *roomStatusUsecase) GetStatus(ctx context.Context, id int) (*dto.RoomStatusResponse, error) {
	status, err := u.statusRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find room status %d: %+v", id, err)
		return nil, err
	}
	if status == nil {
		return nil, ErrStatusNotFound
	}
	return converter.RoomStatusToResponse(status), nil
}

func (u *roomStatusUsecase) ListStatuses(ctx context.Context, activeOnly bool) ([]dto.RoomStatusResponse, error) {
	key := service.CacheKeyRoomStatusesAll
	if activeOnly {
		key = service.CacheKeyRoomStatusesActive
	}

	var cached []dto.RoomStatusResponse
	if u.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	statuses, err := u.statusRepo.FindAll(ctx, u.db, activeOnly)
	if err != nil {
		u.log.Warnf("Failed to list room statuses: %+v", err)
		return nil, err
	}

	responses := converter.RoomStatusesToResponses(statuses)
	u.cache.Set(ctx, key, responses)
	return responses, nil
}

// UpdateRoomCurrentStatus moves a room to any active status and records exactly one
// history entry pointing back at the status it held before.
func (u *roomStatusUsecase) UpdateRoomCurrentStatus(ctx context.Context, roomID uuid.UUID, req *dto.UpdateRoomCurrentStatusRequest) (*dto.RoomStatusHistoryResponse, error) {
	var entry *entity.RoomStatusHistory
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		entry, err = u.transitionService.Apply(ctx, tx, service.Transition{
			RoomID:    roomID,
			StatusID:  req.StatusID,
			Notes:     req.Notes,
			ChangedBy: actor(ctx, req.ChangedBy),
			BookingID: req.BookingID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	resp := converter.RoomStatusHistoryToResponse(entry)
	u.events.Publish(ctx, service.EventRoomStatusChanged, resp)
	u.log.Infof("Room status changed: room=%s, %q -> %q", roomID, resp.OldValue, resp.NewValue)
	return resp, nil
}

func (u *roomStatusUsecase) GetRoomStatusHistory(ctx context.Context, roomID uuid.UUID) ([]dto.RoomStatusHistoryResponse, error) {
	room, err := u.roomRepo.FindByID(ctx, u.db, roomID)
	if err != nil {
		u.log.Warnf("Failed to find room %s: %+v", roomID, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	entries, err := u.historyRepo.FindByRoomID(ctx, u.db, roomID)
	if err != nil {
		u.log.Warnf("Failed to load status history of room %s: %+v", roomID, err)
		return nil, err
	}
	return converter.RoomStatusHistoriesToResponses(entries), nil
}

func (u *roomStatusUsecase) ensureNameFree(ctx context.Context, name string, selfID int) error {
	existing, err := u.statusRepo.FindByName(ctx, u.db, name)
	if err != nil {
		u.log.Warnf("Failed to check room status name %q: %+v", name, err)
		return err
	}
	if existing != nil && existing.ID != selfID {
		return ErrStatusNameTaken
	}
	return nil
}

func (u *roomStatusUsecase) invalidate(ctx context.Context) {
	u.cache.Invalidate(ctx, service.CacheKeyRoomStatusesAll, service.CacheKeyRoomStatusesActive)
}
