package usecase

import (
	"context"
	"errors"
	"strings"

	"hotel-frontdesk/internal/converter"
	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/domain/entity"
	"hotel-frontdesk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrRoomNumberTaken = errors.New("room number already exists")
	ErrInvalidPrice    = errors.New("price must be greater than zero")
)

type RoomUsecase interface {
	CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*dto.RoomResponse, error)
	ListRooms(ctx context.Context, categoryID, statusID *int, page, limit int) ([]dto.RoomResponse, int64, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error)
}

type roomUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	roomRepo     repository.RoomRepository
	categoryRepo repository.RoomCategoryRepository
	statusRepo   repository.RoomStatusRepository
}

func NewRoomUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roomRepo repository.RoomRepository,
	categoryRepo repository.RoomCategoryRepository,
	statusRepo repository.RoomStatusRepository,
) RoomUsecase {
	return &roomUsecase{
		db:           db,
		log:          log,
		roomRepo:     roomRepo,
		categoryRepo: categoryRepo,
		statusRepo:   statusRepo,
	}
}

// CreateRoom registers a room in the default status. Rooms are never deleted.
func (u *roomUsecase) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	if !req.Price.GreaterThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if err := u.ensureCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	defaultStatus, err := u.statusRepo.FindDefault(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find default room status: %+v", err)
		return nil, err
	}

	room := &entity.Room{
		RoomNumber:  strings.TrimSpace(req.RoomNumber),
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Description: req.Description,
		Images:      datatypes.JSONSlice[string](req.Images),
	}
	if defaultStatus != nil {
		room.CurrentStatusID = &defaultStatus.ID
	}

	if err := u.roomRepo.Create(ctx, u.db, room); err != nil {
		if isDuplicateKeyError(err, "room_number") {
			return nil, ErrRoomNumberTaken
		}
		u.log.Warnf("Failed to create room: %+v", err)
		return nil, err
	}

	return u.reload(ctx, room), nil
}

func (u *roomUsecase) GetRoom(ctx context.Context, id uuid.UUID) (*dto.RoomResponse, error) {
	room, err := u.roomRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find room %s: %+v", id, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return converter.RoomToResponse(room), nil
}

func (u *roomUsecase) ListRooms(ctx context.Context, categoryID, statusID *int, page, limit int) ([]dto.RoomResponse, int64, error) {
	_, limit, offset := paginate(page, limit)

	rooms, total, err := u.roomRepo.FindAll(ctx, u.db, &entity.RoomFilter{
		CategoryID: categoryID,
		StatusID:   statusID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		u.log.Warnf("Failed to list rooms: %+v", err)
		return nil, 0, err
	}
	return converter.RoomsToResponses(rooms), total, nil
}

// UpdateRoom edits the room record. The current status only changes through status transitions.
func (u *roomUsecase) UpdateRoom(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	if !req.Price.GreaterThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	room, err := u.roomRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find room %s: %+v", id, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	if room.CategoryID != req.CategoryID {
		if err := u.ensureCategory(ctx, req.CategoryID); err != nil {
			return nil, err
		}
	}

	room.RoomNumber = strings.TrimSpace(req.RoomNumber)
	room.CategoryID = req.CategoryID
	room.Price = req.Price
	room.Description = req.Description
	room.Images = datatypes.JSONSlice[string](req.Images)

	if err := u.roomRepo.Update(ctx, u.db, room); err != nil {
		if isDuplicateKeyError(err, "room_number") {
			return nil, ErrRoomNumberTaken
		}
		u.log.Warnf("Failed to update room %s: %+v", id, err)
		return nil, err
	}

	return u.reload(ctx, room), nil
}

func (u *roomUsecase) ensureCategory(ctx context.Context, categoryID int) error {
	category, err := u.categoryRepo.FindByID(ctx, u.db, categoryID)
	if err != nil {
		u.log.Warnf("Failed to find room category %d: %+v", categoryID, err)
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return nil
}

// reload returns the room with its category and status; falls back to what was written.
func (u *roomUsecase) reload(ctx context.Context, room *entity.Room) *dto.RoomResponse {
	full, err := u.roomRepo.FindByID(ctx, u.db, room.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload room %s: %+v", room.ID, err)
		return converter.RoomToResponse(room)
	}
	return converter.RoomToResponse(full)
}
