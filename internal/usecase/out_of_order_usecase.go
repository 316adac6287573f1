package usecase

import (
	"context"
	"errors"
	"time"

	"hotel-frontdesk/internal/converter"
	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/domain/entity"
	"hotel-frontdesk/internal/domain/repository"
	"hotel-frontdesk/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrRoomNotOutOfOrder = errors.New("room is not out of order")

// OutOfOrderUsecase tracks rooms taken out of service. It is a view over room status:
// a room is out of order exactly when its current status is "Out of Order".
type OutOfOrderUsecase interface {
	MarkOutOfOrder(ctx context.Context, roomID uuid.UUID, req *dto.MarkOutOfOrderRequest) (*dto.OutOfOrderRoomResponse, error)
	ListOutOfOrder(ctx context.Context) ([]dto.OutOfOrderRoomResponse, error)
	MarkAvailable(ctx context.Context, roomID uuid.UUID, req *dto.MarkAvailableRequest) (*dto.RoomStatusHistoryResponse, error)
}

type outOfOrderUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	transactor        repository.Transactor
	roomRepo          repository.RoomRepository
	historyRepo       repository.RoomStatusHistoryRepository
	transitionService service.StatusTransitionService
	events            service.EventPublisher
}

func NewOutOfOrderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	transactor repository.Transactor,
	roomRepo repository.RoomRepository,
	historyRepo repository.RoomStatusHistoryRepository,
	transitionService service.StatusTransitionService,
	events service.EventPublisher,
) OutOfOrderUsecase {
	return &outOfOrderUsecase{
		db:                db,
		log:               log,
		transactor:        transactor,
		roomRepo:          roomRepo,
		historyRepo:       historyRepo,
		transitionService: transitionService,
		events:            events,
	}
}

func (u *outOfOrderUsecase) MarkOutOfOrder(ctx context.Context, roomID uuid.UUID, req *dto.MarkOutOfOrderRequest) (*dto.OutOfOrderRoomResponse, error) {
	var reported *time.Time
	if req.Date != nil && !req.Date.IsZero() {
		reported = req.Date
	}

	var entry *entity.RoomStatusHistory
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		status, err := u.transitionService.StatusByName(ctx, tx, entity.RoomStatusOutOfOrder)
		if err != nil {
			return err
		}
		entry, err = u.transitionService.Apply(ctx, tx, service.Transition{
			RoomID:      roomID,
			StatusID:    status.ID,
			Notes:       req.Reason,
			Reason:      req.Reason,
			Details:     req.Details,
			ChangedBy:   actor(ctx, req.ChangedBy),
			EffectiveAt: reported,
		})
		return err
	})
	if err != nil {
		u.logFailure("mark room out of order", roomID, err)
		return nil, err
	}

	u.events.Publish(ctx, service.EventRoomStatusChanged, converter.RoomStatusHistoryToResponse(entry))

	resp := &dto.OutOfOrderRoomResponse{
		RoomID:    roomID,
		Reason:    entry.Reason,
		Details:   entry.Details,
		Date:      entry.EffectiveDate(),
		ChangedBy: entry.ChangedBy,
	}
	if room, err := u.roomRepo.FindByID(ctx, u.db, roomID); err == nil && room != nil {
		resp.RoomNumber = room.RoomNumber
		resp.CategoryName = room.Category.Name
	}
	return resp, nil
}

// ListOutOfOrder returns every out-of-order room with the reason from its latest status change.
func (u *outOfOrderUsecase) ListOutOfOrder(ctx context.Context) ([]dto.OutOfOrderRoomResponse, error) {
	status, err := u.transitionService.StatusByName(ctx, u.db, entity.RoomStatusOutOfOrder)
	if err != nil {
		if errors.Is(err, ErrStatusNotFound) {
			return []dto.OutOfOrderRoomResponse{}, nil
		}
		return nil, err
	}

	rooms, err := u.roomRepo.FindByStatusID(ctx, u.db, status.ID)
	if err != nil {
		u.log.Warnf("Failed to list out-of-order rooms: %+v", err)
		return nil, err
	}

	responses := make([]dto.OutOfOrderRoomResponse, 0, len(rooms))
	for _, room := range rooms {
		resp := dto.OutOfOrderRoomResponse{
			RoomID:       room.ID,
			RoomNumber:   room.RoomNumber,
			CategoryName: room.Category.Name,
			Date:         room.UpdatedAt,
		}

		latest, err := u.historyRepo.FindLatestByRoomID(ctx, u.db, room.ID)
		if err != nil {
			u.log.Warnf("Failed to load latest status of room %s: %+v", room.ID, err)
			return nil, err
		}
		if latest != nil {
			resp.Reason = latest.Reason
			if resp.Reason == "" {
				resp.Reason = latest.Notes
			}
			resp.Details = latest.Details
			resp.Date = latest.EffectiveDate()
			resp.ChangedBy = latest.ChangedBy
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// MarkAvailable returns an out-of-order room to the default status. Rooms in any other
// status are left alone; their status changes through bookings or a direct update.
func (u *outOfOrderUsecase) MarkAvailable(ctx context.Context, roomID uuid.UUID, req *dto.MarkAvailableRequest) (*dto.RoomStatusHistoryResponse, error) {
	var entry *entity.RoomStatusHistory
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.ensureOutOfOrder(ctx, tx, roomID); err != nil {
			return err
		}
		status, err := u.transitionService.DefaultStatus(ctx, tx)
		if err != nil {
			return err
		}
		entry, err = u.transitionService.Apply(ctx, tx, service.Transition{
			RoomID:    roomID,
			StatusID:  status.ID,
			Notes:     req.Notes,
			ChangedBy: actor(ctx, req.ChangedBy),
		})
		return err
	})
	if err != nil {
		u.logFailure("mark room available", roomID, err)
		return nil, err
	}

	resp := converter.RoomStatusHistoryToResponse(entry)
	u.events.Publish(ctx, service.EventRoomStatusChanged, resp)
	return resp, nil
}

func (u *outOfOrderUsecase) ensureOutOfOrder(ctx context.Context, tx *gorm.DB, roomID uuid.UUID) error {
	room, err := u.roomRepo.FindByIDForUpdate(ctx, tx, roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return ErrRoomNotFound
	}

	outOfOrder, err := u.transitionService.StatusByName(ctx, tx, entity.RoomStatusOutOfOrder)
	if err != nil {
		if errors.Is(err, ErrStatusNotFound) {
			return ErrRoomNotOutOfOrder
		}
		return err
	}
	if room.CurrentStatusID == nil || *room.CurrentStatusID != outOfOrder.ID {
		return ErrRoomNotOutOfOrder
	}
	return nil
}

func (u *outOfOrderUsecase) logFailure(action string, roomID uuid.UUID, err error) {
	switch {
	case errors.Is(err, ErrRoomNotFound), errors.Is(err, ErrStatusNotFound),
		errors.Is(err, ErrStatusInactive), errors.Is(err, ErrNotesRequired),
		errors.Is(err, ErrNoDefaultStatus), errors.Is(err, ErrRoomNotOutOfOrder):
	default:
		u.log.Warnf("Failed to %s %s: %+v", action, roomID, err)
	}
}
