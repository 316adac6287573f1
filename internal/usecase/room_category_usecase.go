package usecase

import (
	"context"
	"errors"
	"strings"

	"hotel-frontdesk/internal/converter"
	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/domain/entity"
	"hotel-frontdesk/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound  = errors.New("room category not found")
	ErrCategoryNameTaken = errors.New("room category name already exists")
	ErrCategoryInUse     = errors.New("room category still has rooms")
)

type RoomCategoryUsecase interface {
	Create(ctx context.Context, req *dto.CreateRoomCategoryRequest) (*dto.RoomCategoryResponse, error)
	GetAll(ctx context.Context) ([]dto.RoomCategoryResponse, error)
	GetByID(ctx context.Context, id int) (*dto.RoomCategoryResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateRoomCategoryRequest) (*dto.RoomCategoryResponse, error)
	Delete(ctx context.Context, id int) error
}

type roomCategoryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	categoryRepo repository.RoomCategoryRepository
}

func NewRoomCategoryUsecase(db *gorm.DB, log *logrus.Logger, categoryRepo repository.RoomCategoryRepository) RoomCategoryUsecase {
	return &roomCategoryUsecase{
		db:           db,
		log:          log,
		categoryRepo: categoryRepo,
	}
}

func (u *roomCategoryUsecase) Create(ctx context.Context, req *dto.CreateRoomCategoryRequest) (*dto.RoomCategoryResponse, error) {
	category := &entity.RoomCategory{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}

	if err := u.categoryRepo.Create(ctx, u.db, category); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrCategoryNameTaken
		}
		u.log.Warnf("Failed to create room category: %+v", err)
		return nil, err
	}

	return converter.RoomCategoryToResponse(category), nil
}

func (u *roomCategoryUsecase) GetAll(ctx context.Context) ([]dto.RoomCategoryResponse, error) {
	categories, err := u.categoryRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list room categories: %+v", err)
		return nil, err
	}
	return converter.RoomCategoriesToResponses(categories), nil
}

func (u *roomCategoryUsecase) GetByID(ctx context.Context, id int) (*dto.RoomCategoryResponse, error) {
	category, err := u.categoryRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find room category %d: %+v", id, err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return converter.RoomCategoryToResponse(category), nil
}

func (u *roomCategoryUsecase) Update(ctx context.Context, id int, req *dto.UpdateRoomCategoryRequest) (*dto.RoomCategoryResponse, error) {
	category, err := u.categoryRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find room category %d: %+v", id, err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	category.Name = strings.TrimSpace(req.Name)
	category.Description = req.Description

	if err := u.categoryRepo.Update(ctx, u.db, category); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrCategoryNameTaken
		}
		u.log.Warnf("Failed to update room category %d: %+v", id, err)
		return nil, err
	}

	return converter.RoomCategoryToResponse(category), nil
}

func (u *roomCategoryUsecase) Delete(ctx context.Context, id int) error {
	rooms, err := u.categoryRepo.CountRooms(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to count rooms of category %d: %+v", id, err)
		return err
	}
	if rooms > 0 {
		return ErrCategoryInUse
	}

	affected, err := u.categoryRepo.Delete(ctx, u.db, id)
	if err != nil {
		if isForeignKeyError(err, "category") {
			return ErrCategoryInUse
		}
		u.log.Warnf("Failed to delete room category %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
