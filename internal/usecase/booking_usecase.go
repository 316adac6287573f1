package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-frontdesk/internal/converter"
	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/domain/entity"
	"hotel-frontdesk/internal/domain/pricing"
	"hotel-frontdesk/internal/domain/repository"
	"hotel-frontdesk/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound           = errors.New("booking not found")
	ErrInvalidStayRange          = errors.New("check-out cannot be before check-in")
	ErrRoomUnavailable           = errors.New("room is out of order or under maintenance")
	ErrBookingNotActive          = errors.New("booking is no longer active")
	ErrBookingAlreadyCancelled   = errors.New("booking is already cancelled")
	ErrBookingAlreadyCheckedIn   = errors.New("guest has already checked in")
	ErrBookingNotCheckedIn       = errors.New("guest has not checked in yet")
	ErrInvalidAmount             = errors.New("amount cannot be negative")
	ErrMobileMoneyDetailsMissing = errors.New("mobile money payments need a provider and a number")
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingDetailResponse, error)
	QuoteBooking(ctx context.Context, req *dto.QuoteBookingRequest) (*dto.QuoteResponse, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*dto.BookingDetailResponse, error)
	ListBookings(ctx context.Context, status string, roomID, guestID *uuid.UUID, page, limit int) ([]dto.BookingResponse, int64, error)
	CheckIn(ctx context.Context, id uuid.UUID, req *dto.BookingActionRequest) (*dto.BookingDetailResponse, error)
	CheckOut(ctx context.Context, id uuid.UUID, req *dto.BookingActionRequest) (*dto.BookingDetailResponse, error)
	CancelBooking(ctx context.Context, id uuid.UUID, req *dto.BookingActionRequest) (*dto.BookingDetailResponse, error)
}

type bookingUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	transactor        repository.Transactor
	bookingRepo       repository.BookingRepository
	guestRepo         repository.GuestRepository
	paymentRepo       repository.PaymentRepository
	roomRepo          repository.RoomRepository
	statusRepo        repository.RoomStatusRepository
	transitionService service.StatusTransitionService
	settingUsecase    SettingUsecase
	events            service.EventPublisher
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	transactor repository.Transactor,
	bookingRepo repository.BookingRepository,
	guestRepo repository.GuestRepository,
	paymentRepo repository.PaymentRepository,
	roomRepo repository.RoomRepository,
	statusRepo repository.RoomStatusRepository,
	transitionService service.StatusTransitionService,
	settingUsecase SettingUsecase,
	events service.EventPublisher,
) BookingUsecase {
	return &bookingUsecase{
		db:                db,
		log:               log,
		transactor:        transactor,
		bookingRepo:       bookingRepo,
		guestRepo:         guestRepo,
		paymentRepo:       paymentRepo,
		roomRepo:          roomRepo,
		statusRepo:        statusRepo,
		transitionService: transitionService,
		settingUsecase:    settingUsecase,
		events:            events,
	}
}

// CreateBooking books a room in one transaction.
//
// Flow:
// 1. Validate the stay range, discount and first payment
// 2. Lock the room and refuse rooms that are out of order or under maintenance
// 3. Reuse the registered guest or register a new one
// 4. Price the stay under the configured policy
// 5. Insert booking and first payment
// 6. Move the room to "Booked" with a history entry tagged with the booking id
// Any failure rolls back every write.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingDetailResponse, error) {
	if req.CheckOutDate.Before(req.CheckInDate) {
		return nil, ErrInvalidStayRange
	}
	if req.Payment.Amount.IsNegative() || req.Payment.DiscountAmount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	mode := entity.PaymentMode(req.Payment.PaymentMode)
	if err := checkMobileMoney(mode, req.Payment.MobileMoneyProvider, req.Payment.MobileMoneyNumber); err != nil {
		return nil, err
	}

	settings, err := u.settingUsecase.CurrentSettings(ctx)
	if err != nil {
		return nil, err
	}

	changedBy := actor(ctx, req.ChangedBy)
	discount := toDiscount(req.Payment.DiscountType, req.Payment.DiscountAmount)
	now := time.Now()

	var booking *entity.Booking
	var entry *entity.RoomStatusHistory
	err = u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		room, err := u.lockBookableRoom(ctx, tx, req.RoomID)
		if err != nil {
			return err
		}

		guest, err := u.resolveGuest(ctx, tx, req)
		if err != nil {
			return err
		}

		quote := quoteStay(settings, room.Price, req.CheckInDate, req.CheckOutDate, discount)

		booking = &entity.Booking{
			BookingCode:     generateCode("BK", req.CheckInDate),
			RoomID:          room.ID,
			GuestID:         guest.ID,
			CheckInDate:     req.CheckInDate,
			CheckOutDate:    req.CheckOutDate,
			NumberOfGuests:  req.NumberOfGuests,
			PurposeOfStay:   entity.PurposeOfStay(req.PurposeOfStay),
			PurposeDetails:  req.PurposeDetails,
			VehicleMake:     req.VehicleMake,
			VehiclePlate:    req.VehiclePlate,
			ParkingRequired: req.ParkingRequired,
			Company:         req.Company,
			Status:          entity.BookingStatusActive,
		}
		if err := u.bookingRepo.Create(ctx, tx, booking); err != nil {
			return err
		}

		balance := pricing.BalanceRemaining(quote.Subtotal, quote.Discount, req.Payment.Amount)
		payment := &entity.Payment{
			BookingID:           booking.ID,
			Amount:              req.Payment.Amount,
			PaymentMode:         mode,
			MobileMoneyProvider: req.Payment.MobileMoneyProvider,
			MobileMoneyNumber:   req.Payment.MobileMoneyNumber,
			RoomRate:            room.Price,
			DiscountType:        string(discount.Type),
			DiscountAmount:      quote.Discount,
			TotalBill:           quote.Subtotal,
			BalanceRemaining:    balance,
			Status:              entity.PaymentStatus(pricing.PaymentStatus(balance, req.Payment.Amount)),
			ReceiptNumber:       generateCode("RCP", now),
			PaymentDate:         now,
		}
		if err := u.paymentRepo.Create(ctx, tx, payment); err != nil {
			return err
		}

		booked, err := u.transitionService.StatusByName(ctx, tx, entity.RoomStatusBooked)
		if err != nil {
			return err
		}
		entry, err = u.transitionService.Apply(ctx, tx, service.Transition{
			RoomID:    room.ID,
			StatusID:  booked.ID,
			Notes:     fmt.Sprintf("Booking %s", booking.BookingCode),
			ChangedBy: changedBy,
			ChangedAt: now,
			BookingID: &booking.ID,
		})
		return err
	})
	if err != nil {
		if !isBookingRuleError(err) {
			u.log.Warnf("Failed to create booking: %+v", err)
		}
		return nil, err
	}

	resp := u.reload(ctx, booking)
	u.events.Publish(ctx, service.EventBookingCreated, resp)
	u.events.Publish(ctx, service.EventRoomStatusChanged, converter.RoomStatusHistoryToResponse(entry))

	u.log.Infof("Booking created: id=%s, code=%s, room=%s", booking.ID, booking.BookingCode, booking.RoomID)
	return resp, nil
}

// QuoteBooking prices a stay without writing anything.
func (u *bookingUsecase) QuoteBooking(ctx context.Context, req *dto.QuoteBookingRequest) (*dto.QuoteResponse, error) {
	if req.CheckOutDate.Before(req.CheckInDate) {
		return nil, ErrInvalidStayRange
	}
	if req.DiscountAmount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	room, err := u.roomRepo.FindByID(ctx, u.db, req.RoomID)
	if err != nil {
		u.log.Warnf("Failed to find room %s: %+v", req.RoomID, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	settings, err := u.settingUsecase.CurrentSettings(ctx)
	if err != nil {
		return nil, err
	}

	discount := toDiscount(req.DiscountType, req.DiscountAmount)
	quote := quoteStay(settings, room.Price, req.CheckInDate, req.CheckOutDate, discount)

	return &dto.QuoteResponse{
		PricingPolicy: string(settings.PricingPolicy),
		Currency:      settings.Currency,
		RoomRate:      room.Price,
		Nights:        quote.Nights,
		Hours:         quote.Hours,
		Subtotal:      quote.Subtotal,
		DiscountType:  string(discount.Type),
		Discount:      quote.Discount,
		Total:         quote.Total,
	}, nil
}

func (u *bookingUsecase) GetBooking(ctx context.Context, id uuid.UUID) (*dto.BookingDetailResponse, error) {
	booking, err := u.bookingRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", id, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return converter.BookingToDetailResponse(booking), nil
}

func (u *bookingUsecase) ListBookings(ctx context.Context, status string, roomID, guestID *uuid.UUID, page, limit int) ([]dto.BookingResponse, int64, error) {
	_, limit, offset := paginate(page, limit)

	bookings, total, err := u.bookingRepo.FindAll(ctx, u.db, &entity.BookingFilter{
		Status:  entity.BookingStatus(status),
		RoomID:  roomID,
		GuestID: guestID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, 0, err
	}
	return converter.BookingsToResponses(bookings), total, nil
}

// CheckIn stamps the arrival and moves the room to "Occupied".
func (u *bookingUsecase) CheckIn(ctx context.Context, id uuid.UUID, req *dto.BookingActionRequest) (*dto.BookingDetailResponse, error) {
	now := time.Now()
	return u.transition(ctx, id, req, service.EventBookingCheckedIn, func(tx *gorm.DB, booking *entity.Booking) (*entity.RoomStatus, error) {
		switch {
		case booking.IsCancelled():
			return nil, ErrBookingAlreadyCancelled
		case !booking.IsActive():
			return nil, ErrBookingNotActive
		case booking.IsCheckedIn():
			return nil, ErrBookingAlreadyCheckedIn
		}

		affected, err := u.bookingRepo.MarkCheckedIn(ctx, tx, booking.ID, now)
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			return nil, ErrBookingNotActive
		}
		booking.CheckIn(now)

		return u.transitionService.StatusByName(ctx, tx, entity.RoomStatusOccupied)
	})
}

// CheckOut closes a checked-in booking and returns the room to the default status.
func (u *bookingUsecase) CheckOut(ctx context.Context, id uuid.UUID, req *dto.BookingActionRequest) (*dto.BookingDetailResponse, error) {
	now := time.Now()
	return u.transition(ctx, id, req, service.EventBookingCheckedOut, func(tx *gorm.DB, booking *entity.Booking) (*entity.RoomStatus, error) {
		switch {
		case booking.IsCancelled():
			return nil, ErrBookingAlreadyCancelled
		case !booking.IsActive():
			return nil, ErrBookingNotActive
		case !booking.IsCheckedIn():
			return nil, ErrBookingNotCheckedIn
		}

		affected, err := u.bookingRepo.MarkCheckedOut(ctx, tx, booking.ID, now)
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			return nil, ErrBookingNotActive
		}
		booking.CheckOut(now)

		return u.transitionService.DefaultStatus(ctx, tx)
	})
}

// CancelBooking cancels a booking before arrival and returns the room to the default status.
func (u *bookingUsecase) CancelBooking(ctx context.Context, id uuid.UUID, req *dto.BookingActionRequest) (*dto.BookingDetailResponse, error) {
	return u.transition(ctx, id, req, service.EventBookingCancelled, func(tx *gorm.DB, booking *entity.Booking) (*entity.RoomStatus, error) {
		switch {
		case booking.IsCancelled():
			return nil, ErrBookingAlreadyCancelled
		case !booking.IsActive():
			return nil, ErrBookingNotActive
		case booking.IsCheckedIn():
			return nil, ErrBookingAlreadyCheckedIn
		}

		// Atomic conditional update: 0 rows means another request closed it first.
		affected, err := u.bookingRepo.CancelBooking(ctx, tx, booking.ID)
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			return nil, ErrBookingAlreadyCancelled
		}
		booking.Cancel()

		return u.transitionService.DefaultStatus(ctx, tx)
	})
}

// transition runs a booking state change and the matching room status change in one transaction.
// step updates the booking and returns the status the room moves to.
func (u *bookingUsecase) transition(
	ctx context.Context,
	id uuid.UUID,
	req *dto.BookingActionRequest,
	event string,
	step func(tx *gorm.DB, booking *entity.Booking) (*entity.RoomStatus, error),
) (*dto.BookingDetailResponse, error) {
	if req == nil {
		req = &dto.BookingActionRequest{}
	}

	var booking *entity.Booking
	var entry *entity.RoomStatusHistory
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		booking, err = u.bookingRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if booking == nil {
			return ErrBookingNotFound
		}

		target, err := step(tx, booking)
		if err != nil {
			return err
		}

		notes := strings.TrimSpace(req.Notes)
		if notes == "" {
			notes = fmt.Sprintf("Booking %s %s", booking.BookingCode, strings.TrimPrefix(event, "booking."))
		}

		entry, err = u.transitionService.Apply(ctx, tx, service.Transition{
			RoomID:    booking.RoomID,
			StatusID:  target.ID,
			Notes:     notes,
			ChangedBy: actor(ctx, req.ChangedBy),
			BookingID: &booking.ID,
		})
		return err
	})
	if err != nil {
		if !isBookingRuleError(err) {
			u.log.Warnf("Failed to apply %s to booking %s: %+v", event, id, err)
		}
		return nil, err
	}

	resp := u.reload(ctx, booking)
	u.events.Publish(ctx, event, resp)
	u.events.Publish(ctx, service.EventRoomStatusChanged, converter.RoomStatusHistoryToResponse(entry))

	u.log.Infof("Booking %s: id=%s, code=%s", strings.TrimPrefix(event, "booking."), booking.ID, booking.BookingCode)
	return resp, nil
}

func (u *bookingUsecase) lockBookableRoom(ctx context.Context, tx *gorm.DB, roomID uuid.UUID) (*entity.Room, error) {
	room, err := u.roomRepo.FindByIDForUpdate(ctx, tx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	if room.CurrentStatusID != nil {
		current, err := u.statusRepo.FindByID(ctx, tx, *room.CurrentStatusID)
		if err != nil {
			return nil, err
		}
		if current != nil && current.BlocksBooking() {
			return nil, ErrRoomUnavailable
		}
	}
	return room, nil
}

func (u *bookingUsecase) resolveGuest(ctx context.Context, tx *gorm.DB, req *dto.CreateBookingRequest) (*entity.Guest, error) {
	if req.GuestID != nil {
		guest, err := u.guestRepo.FindByID(ctx, tx, *req.GuestID)
		if err != nil {
			return nil, err
		}
		if guest == nil {
			return nil, ErrGuestNotFound
		}
		return guest, nil
	}

	if req.Guest == nil {
		return nil, ErrGuestNotFound
	}
	guest := &entity.Guest{}
	converter.GuestRequestToEntity(req.Guest, guest)
	if err := u.guestRepo.Create(ctx, tx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// reload returns the committed booking with guest, room and payments, falling back to the
// in-memory booking when the read fails.
func (u *bookingUsecase) reload(ctx context.Context, booking *entity.Booking) *dto.BookingDetailResponse {
	full, err := u.bookingRepo.FindByID(ctx, u.db, booking.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload booking %s: %+v", booking.ID, err)
		return converter.BookingToDetailResponse(booking)
	}
	return converter.BookingToDetailResponse(full)
}

func quoteStay(settings *entity.SystemSetting, roomPrice decimal.Decimal, checkIn, checkOut time.Time, discount pricing.Discount) pricing.Quote {
	return pricing.CalculateWithPolicy(
		pricing.Policy(settings.PricingPolicy),
		pricing.Rates{
			Nightly:  roomPrice,
			Hourly:   settings.HourlyRate,
			Overtime: settings.OvertimeRate,
		},
		checkIn, checkOut, discount,
	)
}

func toDiscount(discountType string, amount decimal.Decimal) pricing.Discount {
	t := pricing.DiscountType(discountType)
	if t == "" {
		t = pricing.DiscountNone
	}
	return pricing.Discount{Type: t, Amount: amount}
}

func checkMobileMoney(mode entity.PaymentMode, provider, number string) error {
	if mode == entity.PaymentModeMobileMoney && (strings.TrimSpace(provider) == "" || strings.TrimSpace(number) == "") {
		return ErrMobileMoneyDetailsMissing
	}
	return nil
}

// isBookingRuleError reports expected business-rule rejections, which are not logged as failures.
func isBookingRuleError(err error) bool {
	for _, target := range []error{
		ErrBookingNotFound, ErrRoomNotFound, ErrGuestNotFound, ErrRoomUnavailable,
		ErrBookingNotActive, ErrBookingAlreadyCancelled, ErrBookingAlreadyCheckedIn,
		ErrBookingNotCheckedIn, ErrStatusNotFound, ErrStatusInactive, ErrNotesRequired,
		ErrNoDefaultStatus,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
