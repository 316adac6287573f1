package usecase

import (
	"context"
	"testing"

	"hotel-frontdesk/internal/delivery/dto"
	"hotel-frontdesk/internal/domain/entity"
	"hotel-frontdesk/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomStatusFixture struct {
	uc          RoomStatusUsecase
	room        *entity.Room
	statusRepo  *mockStatusRepo
	historyRepo *mockStatusHistoryRepo
	cache       *memoryCache
	events      *recordingEvents
}

func newRoomStatusFixture(t *testing.T) *roomStatusFixture {
	t.Helper()
	log := testLogger()

	f := &roomStatusFixture{
		room: &entity.Room{
			ID:              uuid.New(),
			RoomNumber:      "204",
			Price:           decimal.NewFromInt(80000),
			CurrentStatusID: intPtr(statusAvailable),
		},
		statusRepo:  newMockStatusRepo(seedStatuses()...),
		historyRepo: &mockStatusHistoryRepo{},
		cache:       newMemoryCache(),
		events:      &recordingEvents{},
	}
	roomRepo := newRoomStore(f.room)
	transition := service.NewStatusTransitionService(log, roomRepo, f.statusRepo, f.historyRepo)

	f.uc = NewRoomStatusUsecase(nil, log, &fakeTransactor{}, f.statusRepo, roomRepo, f.historyRepo,
		transition, f.cache, f.events)
	return f
}

func TestUpdateRoomCurrentStatus_MaintenanceNeedsNotes(t *testing.T) {
	f := newRoomStatusFixture(t)

	_, err := f.uc.UpdateRoomCurrentStatus(context.Background(), f.room.ID, &dto.UpdateRoomCurrentStatusRequest{
		StatusID: statusMaintenance,
		Notes:    "   ",
	})
	assert.ErrorIs(t, err, ErrNotesRequired)
	assert.Empty(t, f.historyRepo.entries)
	assert.Equal(t, statusAvailable, *f.room.CurrentStatusID)

	resp, err := f.uc.UpdateRoomCurrentStatus(context.Background(), f.room.ID, &dto.UpdateRoomCurrentStatusRequest{
		StatusID:  statusMaintenance,
		Notes:     "AC repair",
		ChangedBy: "Housekeeping",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoomStatusAvailable, resp.OldValue)
	assert.Equal(t, entity.RoomStatusMaintenance, resp.NewValue)
	assert.Equal(t, "#F97316", resp.Color)
	assert.Equal(t, "AC repair", resp.Notes)
	assert.Equal(t, "Housekeeping", resp.ChangedBy)
	require.NotNil(t, resp.PreviousStatusID)
	assert.Equal(t, statusAvailable, *resp.PreviousStatusID)

	assert.Equal(t, statusMaintenance, *f.room.CurrentStatusID)
	assert.Len(t, f.historyRepo.entries, 1)
	assert.Equal(t, []string{service.EventRoomStatusChanged}, f.events.events)
}

func TestUpdateRoomCurrentStatus_AnyStatusMayFollowAny(t *testing.T) {
	f := newRoomStatusFixture(t)
	ctx := context.Background()

	for _, id := range []int{statusCleaning, statusOccupied, statusAvailable, statusBooked} {
		_, err := f.uc.UpdateRoomCurrentStatus(ctx, f.room.ID, &dto.UpdateRoomCurrentStatusRequest{StatusID: id})
		require.NoError(t, err)
	}

	history, err := f.uc.GetRoomStatusHistory(ctx, f.room.ID)
	require.NoError(t, err)
	require.Len(t, history, 4)
	// Newest first, each entry pointing back at the one before it.
	assert.Equal(t, statusBooked, history[0].StatusID)
	assert.Equal(t, statusAvailable, *history[0].PreviousStatusID)
	assert.Equal(t, statusCleaning, history[3].StatusID)
	assert.Equal(t, statusAvailable, *history[3].PreviousStatusID)
}

func TestUpdateRoomCurrentStatus_Rejections(t *testing.T) {
	f := newRoomStatusFixture(t)
	f.statusRepo.statuses[statusCleaning].IsActive = false

	_, err := f.uc.UpdateRoomCurrentStatus(context.Background(), f.room.ID, &dto.UpdateRoomCurrentStatusRequest{StatusID: statusCleaning})
	assert.ErrorIs(t, err, ErrStatusInactive)

	_, err = f.uc.UpdateRoomCurrentStatus(context.Background(), f.room.ID, &dto.UpdateRoomCurrentStatusRequest{StatusID: 99})
	assert.ErrorIs(t, err, ErrStatusNotFound)

	_, err = f.uc.UpdateRoomCurrentStatus(context.Background(), uuid.New(), &dto.UpdateRoomCurrentStatusRequest{StatusID: statusBooked})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	assert.Empty(t, f.historyRepo.entries)
	assert.Empty(t, f.events.events)
}

func TestGetRoomStatusHistory_UnknownRoom(t *testing.T) {
	f := newRoomStatusFixture(t)

	_, err := f.uc.GetRoomStatusHistory(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCreateStatus(t *testing.T) {
	f := newRoomStatusFixture(t)

	_, err := f.uc.CreateStatus(context.Background(), &dto.CreateRoomStatusRequest{Name: "available", Color: "#000000"})
	assert.ErrorIs(t, err, ErrStatusNameTaken)

	resp, err := f.uc.CreateStatus(context.Background(), &dto.CreateRoomStatusRequest{
		Name:      " Inspection ",
		Color:     "#abcdef",
		IsDefault: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Inspection", resp.Name)
	assert.Equal(t, "#ABCDEF", resp.Color)
	assert.True(t, resp.IsActive)
	assert.True(t, resp.IsDefault)

	// Only one default remains.
	assert.False(t, f.statusRepo.statuses[statusAvailable].IsDefault)
	assert.Contains(t, f.cache.invalidated, service.CacheKeyRoomStatusesAll)
}

func TestCreateStatus_NewDefaultReplacesSeededDefault(t *testing.T) {
	f := newRoomStatusFixture(t)
	ctx := context.Background()

	ready, err := f.uc.CreateStatus(ctx, &dto.CreateRoomStatusRequest{Name: "Ready", Color: "#10B981", IsDefault: true})
	require.NoError(t, err)
	assert.True(t, ready.IsDefault)

	def, err := f.statusRepo.FindDefault(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, ready.ID, def.ID)

	defaults := 0
	for _, s := range f.statusRepo.statuses {
		if s.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)

	cleaning, err := f.uc.UpdateStatus(ctx, statusCleaning, &dto.UpdateRoomStatusRequest{Name: "Cleaning", Color: "#EAB308", IsDefault: true})
	require.NoError(t, err)
	assert.True(t, cleaning.IsDefault)
	assert.False(t, f.statusRepo.statuses[ready.ID].IsDefault)
}

func TestUpdateStatus_KeepsOwnName(t *testing.T) {
	f := newRoomStatusFixture(t)
	inactive := false

	resp, err := f.uc.UpdateStatus(context.Background(), statusCleaning, &dto.UpdateRoomStatusRequest{
		Name:     "Cleaning",
		Color:    "#eab308",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	_, err = f.uc.UpdateStatus(context.Background(), statusCleaning, &dto.UpdateRoomStatusRequest{Name: "Booked", Color: "#eab308"})
	assert.ErrorIs(t, err, ErrStatusNameTaken)

	_, err = f.uc.UpdateStatus(context.Background(), 99, &dto.UpdateRoomStatusRequest{Name: "Ghost", Color: "#eab308"})
	assert.ErrorIs(t, err, ErrStatusNotFound)
}

func TestDeleteStatus(t *testing.T) {
	f := newRoomStatusFixture(t)

	err := f.uc.DeleteStatus(context.Background(), statusAvailable)
	assert.ErrorIs(t, err, ErrDefaultStatusProtected)

	f.statusRepo.usage = 3
	err = f.uc.DeleteStatus(context.Background(), statusCleaning)
	assert.ErrorIs(t, err, ErrStatusInUse)

	f.statusRepo.usage = 0
	require.NoError(t, f.uc.DeleteStatus(context.Background(), statusCleaning))
	assert.Equal(t, []int{statusCleaning}, f.statusRepo.deleted)

	err = f.uc.DeleteStatus(context.Background(), statusCleaning)
	assert.ErrorIs(t, err, ErrStatusNotFound)
}

func TestListStatuses_UsesCache(t *testing.T) {
	f := newRoomStatusFixture(t)
	f.statusRepo.statuses[statusCleaning].IsActive = false

	active, err := f.uc.ListStatuses(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, active, 5)

	// A change behind the cache's back is not seen until invalidation.
	f.statusRepo.statuses[statusBooked].IsActive = false
	cached, err := f.uc.ListStatuses(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, cached, 5)

	all, err := f.uc.ListStatuses(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}
