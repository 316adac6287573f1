package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/entity"
	"hotel-frontdesk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// callLog records the order in which the fakes below are hit.
type callLog []string

type fakeRoomRepo struct {
	repository.RoomRepository
	calls  *callLog
	room   *entity.Room
	update error
}

func (f *fakeRoomRepo) FindByIDForUpdate(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Room, error) {
	*f.calls = append(*f.calls, "room.lock")
	if f.room == nil || f.room.ID != id {
		return nil, nil
	}
	copied := *f.room
	return &copied, nil
}

func (f *fakeRoomRepo) UpdateCurrentStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, statusID int) error {
	*f.calls = append(*f.calls, "room.update")
	if f.update != nil {
		return f.update
	}
	f.room.CurrentStatusID = &statusID
	return nil
}

type fakeStatusRepo struct {
	repository.RoomStatusRepository
	calls    *callLog
	statuses map[int]entity.RoomStatus
}

func (f *fakeStatusRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.RoomStatus, error) {
	*f.calls = append(*f.calls, "status.find")
	s, ok := f.statuses[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeStatusRepo) FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.RoomStatus, error) {
	for _, s := range f.statuses {
		if s.Is(name) {
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeStatusRepo) FindDefault(ctx context.Context, db *gorm.DB) (*entity.RoomStatus, error) {
	for _, s := range f.statuses {
		if s.IsDefault {
			return &s, nil
		}
	}
	return nil, nil
}

type fakeHistoryRepo struct {
	repository.RoomStatusHistoryRepository
	calls   *callLog
	entries []*entity.RoomStatusHistory
}

func (f *fakeHistoryRepo) Create(ctx context.Context, db *gorm.DB, entry *entity.RoomStatusHistory) error {
	*f.calls = append(*f.calls, "history.create")
	entry.ID = int64(len(f.entries) + 1)
	f.entries = append(f.entries, entry)
	return nil
}

type transitionFixture struct {
	svc     StatusTransitionService
	calls   *callLog
	room    *entity.Room
	rooms   *fakeRoomRepo
	history *fakeHistoryRepo
	status  *fakeStatusRepo
}

func newTransitionFixture(t *testing.T) *transitionFixture {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	calls := &callLog{}
	available := 1
	f := &transitionFixture{
		calls: calls,
		room:  &entity.Room{ID: uuid.New(), RoomNumber: "101", CurrentStatusID: &available},
	}
	f.rooms = &fakeRoomRepo{calls: calls, room: f.room}
	f.history = &fakeHistoryRepo{calls: calls}
	f.status = &fakeStatusRepo{calls: calls, statuses: map[int]entity.RoomStatus{
		1: {ID: 1, Name: entity.RoomStatusAvailable, Color: "#22C55E", IsDefault: true, IsActive: true},
		2: {ID: 2, Name: entity.RoomStatusBooked, Color: "#3B82F6", IsActive: true},
		5: {ID: 5, Name: entity.RoomStatusMaintenance, Color: "#F97316", IsActive: true},
		6: {ID: 6, Name: entity.RoomStatusOutOfOrder, Color: "#6B7280", IsActive: true},
		7: {ID: 7, Name: "Renovation", Color: "#000000", IsActive: false},
	}}
	f.svc = NewStatusTransitionService(log, f.rooms, f.status, f.history)
	return f
}

func TestApply_WritesRoomThenHistory(t *testing.T) {
	f := newTransitionFixture(t)
	bookingID := uuid.New()
	at := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)

	entry, err := f.svc.Apply(context.Background(), nil, Transition{
		RoomID:    f.room.ID,
		StatusID:  2,
		Notes:     " Booking BK-1 ",
		ChangedBy: "Reception",
		ChangedAt: at,
		BookingID: &bookingID,
	})
	require.NoError(t, err)

	assert.Equal(t, callLog{"status.find", "room.lock", "status.find", "room.update", "history.create"}, *f.calls)
	assert.Equal(t, 2, *f.room.CurrentStatusID)

	require.Len(t, f.history.entries, 1)
	assert.Same(t, entry, f.history.entries[0])
	assert.Equal(t, 2, entry.StatusID)
	require.NotNil(t, entry.PreviousStatusID)
	assert.Equal(t, 1, *entry.PreviousStatusID)
	assert.Equal(t, "Booking BK-1", entry.Notes)
	assert.Equal(t, at, entry.ChangedAt)
	assert.Equal(t, &bookingID, entry.BookingID)
	assert.Equal(t, entity.RoomStatusBooked, entry.Status.Name)
	assert.Equal(t, entity.RoomStatusAvailable, entry.PreviousStatus.Name)
}

func TestApply_FirstStatusHasNoPrevious(t *testing.T) {
	f := newTransitionFixture(t)
	f.room.CurrentStatusID = nil

	entry, err := f.svc.Apply(context.Background(), nil, Transition{RoomID: f.room.ID, StatusID: 1})
	require.NoError(t, err)

	assert.Nil(t, entry.PreviousStatusID)
	assert.Nil(t, entry.PreviousStatus)
	assert.False(t, entry.ChangedAt.IsZero())
	assert.Equal(t, callLog{"status.find", "room.lock", "room.update", "history.create"}, *f.calls)
}

func TestApply_NotesRequired(t *testing.T) {
	for _, id := range []int{5, 6} {
		f := newTransitionFixture(t)

		_, err := f.svc.Apply(context.Background(), nil, Transition{RoomID: f.room.ID, StatusID: id, Notes: "  "})
		assert.ErrorIs(t, err, ErrNotesRequired)
		assert.Empty(t, f.history.entries)
		assert.Equal(t, 1, *f.room.CurrentStatusID)

		_, err = f.svc.Apply(context.Background(), nil, Transition{RoomID: f.room.ID, StatusID: id, Notes: "AC repair"})
		assert.NoError(t, err)
		assert.Equal(t, id, *f.room.CurrentStatusID)
	}
}

func TestApply_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		roomID   func(f *transitionFixture) uuid.UUID
		statusID int
		wantErr  error
	}{
		{"unknown status", func(f *transitionFixture) uuid.UUID { return f.room.ID }, 99, ErrStatusNotFound},
		{"inactive status", func(f *transitionFixture) uuid.UUID { return f.room.ID }, 7, ErrStatusInactive},
		{"unknown room", func(f *transitionFixture) uuid.UUID { return uuid.New() }, 2, ErrRoomNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTransitionFixture(t)

			_, err := f.svc.Apply(context.Background(), nil, Transition{RoomID: tt.roomID(f), StatusID: tt.statusID})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.history.entries)
			assert.NotContains(t, *f.calls, "room.update")
		})
	}
}

func TestApply_UpdateFailureSkipsHistory(t *testing.T) {
	f := newTransitionFixture(t)
	f.rooms.update = errors.New("deadlock detected")

	_, err := f.svc.Apply(context.Background(), nil, Transition{RoomID: f.room.ID, StatusID: 2})
	assert.ErrorIs(t, err, f.rooms.update)
	assert.Empty(t, f.history.entries)
}

func TestStatusLookups(t *testing.T) {
	f := newTransitionFixture(t)
	ctx := context.Background()

	booked, err := f.svc.StatusByName(ctx, nil, "booked")
	require.NoError(t, err)
	assert.Equal(t, 2, booked.ID)

	_, err = f.svc.StatusByName(ctx, nil, "Cleaning")
	assert.ErrorIs(t, err, ErrStatusNotFound)

	def, err := f.svc.DefaultStatus(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, def.ID)

	delete(f.status.statuses, 1)
	_, err = f.svc.DefaultStatus(ctx, nil)
	assert.ErrorIs(t, err, ErrNoDefaultStatus)
}
