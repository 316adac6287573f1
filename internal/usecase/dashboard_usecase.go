package usecase

import (
	"context"
	"time"

	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/domain/entity"
	"hotel-frontdesk/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error)
}

type dashboardUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	roomRepo    repository.RoomRepository
	bookingRepo repository.BookingRepository
	paymentRepo repository.PaymentRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roomRepo repository.RoomRepository,
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:          db,
		log:         log,
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
	}
}

// GetSummary runs the independent dashboard queries concurrently; the first failure cancels the rest.
func (u *dashboardUsecase) GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	now := time.Now()
	year, month, day := now.Date()
	startOfDay := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	var (
		byStatus    []repository.RoomStatusCount
		totalRooms  int64
		active      int64
		arrivals    int64
		departures  int64
		outstanding decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		byStatus, err = u.roomRepo.CountByStatus(gctx, u.db)
		return err
	})
	g.Go(func() (err error) {
		totalRooms, err = u.roomRepo.Count(gctx, u.db)
		return err
	})
	g.Go(func() (err error) {
		active, err = u.bookingRepo.CountActive(gctx, u.db)
		return err
	})
	g.Go(func() (err error) {
		arrivals, err = u.bookingRepo.CountArrivalsBetween(gctx, u.db, startOfDay, endOfDay)
		return err
	})
	g.Go(func() (err error) {
		departures, err = u.bookingRepo.CountDeparturesBetween(gctx, u.db, startOfDay, endOfDay)
		return err
	})
	g.Go(func() (err error) {
		outstanding, err = u.paymentRepo.OutstandingBalance(gctx, u.db)
		return err
	})

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to build dashboard summary: %+v", err)
		return nil, err
	}

	summary := &dto.DashboardSummaryResponse{
		TotalRooms:         totalRooms,
		RoomsByStatus:      make([]dto.StatusCountResponse, 0, len(byStatus)),
		ActiveBookings:     active,
		ArrivalsToday:      arrivals,
		DeparturesToday:    departures,
		OutstandingBalance: outstanding,
	}
	for _, c := range byStatus {
		summary.RoomsByStatus = append(summary.RoomsByStatus, dto.StatusCountResponse{
			StatusID: c.StatusID,
			Name:     c.Name,
			Color:    c.Color,
			Count:    c.Count,
		})
		status := entity.RoomStatus{Name: c.Name}
		if status.Is(entity.RoomStatusOutOfOrder) {
			summary.OutOfOrderRooms += c.Count
		}
	}
	return summary, nil
}
