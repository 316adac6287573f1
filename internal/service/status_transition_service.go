package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"hotel-frontdesk/internal/domain/entity"
	"hotel-frontdesk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrStatusNotFound  = errors.New("room status not found")
	ErrStatusInactive  = errors.New("room status is inactive")
	ErrNotesRequired   = errors.New("notes are required for this status")
	ErrNoDefaultStatus = errors.New("no default room status is configured")
)

// Transition describes one room status change.
type Transition struct {
	RoomID    uuid.UUID
	StatusID  int
	Notes     string
	Reason    string
	Details   string
	ChangedBy string
	ChangedAt time.Time
	// EffectiveAt is a staff-reported date. It is stored as is and never orders history.
	EffectiveAt *time.Time
	BookingID   *uuid.UUID
}

// StatusTransitionService is the only writer of rooms.current_status_id. Every change
// it makes is paired with exactly one history entry in the caller's transaction.
type StatusTransitionService interface {
	Apply(ctx context.Context, tx *gorm.DB, t Transition) (*entity.RoomStatusHistory, error)
	StatusByName(ctx context.Context, db *gorm.DB, name string) (*entity.RoomStatus, error)
	DefaultStatus(ctx context.Context, db *gorm.DB) (*entity.RoomStatus, error)
}

type statusTransitionService struct {
	log         *logrus.Logger
	roomRepo    repository.RoomRepository
	statusRepo  repository.RoomStatusRepository
	historyRepo repository.RoomStatusHistoryRepository
}

func NewStatusTransitionService(
	log *logrus.Logger,
	roomRepo repository.RoomRepository,
	statusRepo repository.RoomStatusRepository,
	historyRepo repository.RoomStatusHistoryRepository,
) StatusTransitionService {
	return &statusTransitionService{
		log:         log,
		roomRepo:    roomRepo,
		statusRepo:  statusRepo,
		historyRepo: historyRepo,
	}
}

// Apply locks the room, moves it to the target status and appends the history entry.
// Any status may follow any other; only the target status itself is validated.
func (s *statusTransitionService) Apply(ctx context.Context, tx *gorm.DB, t Transition) (*entity.RoomStatusHistory, error) {
	target, err := s.statusRepo.FindByID(ctx, tx, t.StatusID)
	if err != nil {
		s.log.Warnf("Failed to find room status %d: %+v", t.StatusID, err)
		return nil, err
	}
	if target == nil {
		return nil, ErrStatusNotFound
	}
	if !target.IsActive {
		return nil, ErrStatusInactive
	}

	notes := strings.TrimSpace(t.Notes)
	if target.RequiresNotes() && notes == "" {
		return nil, ErrNotesRequired
	}

	room, err := s.roomRepo.FindByIDForUpdate(ctx, tx, t.RoomID)
	if err != nil {
		s.log.Warnf("Failed to lock room %s: %+v", t.RoomID, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	var previous *entity.RoomStatus
	if room.CurrentStatusID != nil {
		previous, err = s.statusRepo.FindByID(ctx, tx, *room.CurrentStatusID)
		if err != nil {
			s.log.Warnf("Failed to find previous status %d: %+v", *room.CurrentStatusID, err)
			return nil, err
		}
	}

	if err := s.roomRepo.UpdateCurrentStatus(ctx, tx, room.ID, target.ID); err != nil {
		s.log.Warnf("Failed to update status of room %s: %+v", room.ID, err)
		return nil, err
	}

	changedAt := t.ChangedAt
	if changedAt.IsZero() {
		changedAt = time.Now()
	}

	entry := &entity.RoomStatusHistory{
		RoomID:           room.ID,
		StatusID:         target.ID,
		PreviousStatusID: room.CurrentStatusID,
		Notes:            notes,
		Reason:           strings.TrimSpace(t.Reason),
		Details:          strings.TrimSpace(t.Details),
		ChangedBy:        strings.TrimSpace(t.ChangedBy),
		ChangedAt:        changedAt,
		EffectiveAt:      t.EffectiveAt,
		BookingID:        t.BookingID,
	}
	if err := s.historyRepo.Create(ctx, tx, entry); err != nil {
		s.log.Warnf("Failed to append status history for room %s: %+v", room.ID, err)
		return nil, err
	}

	entry.Status = target
	entry.PreviousStatus = previous
	return entry, nil
}

func (s *statusTransitionService) StatusByName(ctx context.Context, db *gorm.DB, name string) (*entity.RoomStatus, error) {
	status, err := s.statusRepo.FindByName(ctx, db, name)
	if err != nil {
		s.log.Warnf("Failed to find room status %q: %+v", name, err)
		return nil, err
	}
	if status == nil {
		return nil, ErrStatusNotFound
	}
	return status, nil
}

func (s *statusTransitionService) DefaultStatus(ctx context.Context, db *gorm.DB) (*entity.RoomStatus, error) {
	status, err := s.statusRepo.FindDefault(ctx, db)
	if err != nil {
		s.log.Warnf("Failed to find default room status: %+v", err)
		return nil, err
	}
	if status == nil {
		return nil, ErrNoDefaultStatus
	}
	return status, nil
}
