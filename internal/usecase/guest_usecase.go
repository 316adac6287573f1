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
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrGuestNotFound    = errors.New("guest not found")
	ErrGuestHasBookings = errors.New("guest has bookings and cannot be deleted")
)

type GuestUsecase interface {
	CreateGuest(ctx context.Context, req *dto.CreateGuestRequest) (*dto.GuestResponse, error)
	GetGuest(ctx context.Context, id uuid.UUID) (*dto.GuestDetailResponse, error)
	ListGuests(ctx context.Context, search string, page, limit int) ([]dto.GuestResponse, int64, error)
	UpdateGuest(ctx context.Context, id uuid.UUID, req *dto.UpdateGuestRequest) (*dto.GuestResponse, error)
	DeleteGuest(ctx context.Context, id uuid.UUID) error
}

type guestUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	guestRepo   repository.GuestRepository
	bookingRepo repository.BookingRepository
}

func NewGuestUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	guestRepo repository.GuestRepository,
	bookingRepo repository.BookingRepository,
) GuestUsecase {
	return &guestUsecase{
		db:          db,
		log:         log,
		guestRepo:   guestRepo,
		bookingRepo: bookingRepo,
	}
}

func (u *guestUsecase) CreateGuest(ctx context.Context, req *dto.CreateGuestRequest) (*dto.GuestResponse, error) {
	guest := &entity.Guest{}
	converter.GuestRequestToEntity(req, guest)

	if err := u.guestRepo.Create(ctx, u.db, guest); err != nil {
		u.log.Warnf("Failed to create guest: %+v", err)
		return nil, err
	}
	return converter.GuestToResponse(guest), nil
}

func (u *guestUsecase) GetGuest(ctx context.Context, id uuid.UUID) (*dto.GuestDetailResponse, error) {
	guest, err := u.guestRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find guest %s: %+v", id, err)
		return nil, err
	}
	if guest == nil {
		return nil, ErrGuestNotFound
	}

	bookings, err := u.bookingRepo.FindByGuestID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find bookings for guest %s: %+v", id, err)
		return nil, err
	}
	for i := range bookings {
		bookings[i].Guest = *guest
	}

	return &dto.GuestDetailResponse{
		GuestResponse: *converter.GuestToResponse(guest),
		Bookings:      converter.BookingsToResponses(bookings),
	}, nil
}

func (u *guestUsecase) ListGuests(ctx context.Context, search string, page, limit int) ([]dto.GuestResponse, int64, error) {
	_, limit, offset := paginate(page, limit)

	guests, total, err := u.guestRepo.FindAll(ctx, u.db, &entity.GuestFilter{
		Search: strings.TrimSpace(search),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		u.log.Warnf("Failed to list guests: %+v", err)
		return nil, 0, err
	}
	return converter.GuestsToResponses(guests), total, nil
}

func (u *guestUsecase) UpdateGuest(ctx context.Context, id uuid.UUID, req *dto.UpdateGuestRequest) (*dto.GuestResponse, error) {
	guest, err := u.guestRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find guest %s: %+v", id, err)
		return nil, err
	}
	if guest == nil {
		return nil, ErrGuestNotFound
	}

	converter.GuestRequestToEntity((*dto.CreateGuestRequest)(req), guest)

	if err := u.guestRepo.Update(ctx, u.db, guest); err != nil {
		u.log.Warnf("Failed to update guest %s: %+v", id, err)
		return nil, err
	}
	return converter.GuestToResponse(guest), nil
}

// DeleteGuest removes a guest who never booked. Guests with bookings are kept for the records.
func (u *guestUsecase) DeleteGuest(ctx context.Context, id uuid.UUID) error {
	count, err := u.bookingRepo.CountByGuestID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to count bookings for guest %s: %+v", id, err)
		return err
	}
	if count > 0 {
		return ErrGuestHasBookings
	}

	affected, err := u.guestRepo.Delete(ctx, u.db, id)
	if err != nil {
		if isForeignKeyError(err, "guest") {
			return ErrGuestHasBookings
		}
		u.log.Warnf("Failed to delete guest %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrGuestNotFound
	}
	return nil
}
