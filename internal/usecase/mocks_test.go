package usecase

import (
	"context"
	"encoding/json"
	"io"
	"sort"
	"sync"
	"time"

	"hotel-frontdesk/internal/domain/entity"
	"hotel-frontdesk/internal/domain/repository"
	"hotel-frontdesk/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeTransactor runs fn without a database. A non-nil err from fn is returned as is,
// which is what a rolled-back transaction looks like to the caller.
type fakeTransactor struct {
	calls int
}

func (t *fakeTransactor) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	t.calls++
	return fn(nil)
}

type recordingEvents struct {
	mu     sync.Mutex
	events []string
}

func (e *recordingEvents) Publish(ctx context.Context, routingKey string, payload interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, routingKey)
}

type memoryCache struct {
	data        map[string][]byte
	invalidated []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) Get(ctx context.Context, key string, dest interface{}) bool {
	raw, ok := c.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}) {
	raw, _ := json.Marshal(value)
	c.data[key] = raw
}

func (c *memoryCache) Invalidate(ctx context.Context, keys ...string) {
	for _, key := range keys {
		delete(c.data, key)
		c.invalidated = append(c.invalidated, key)
	}
}

// Repository mocks. Unset functions return zero values.

type mockRoomRepo struct {
	findByIDFn          func(id uuid.UUID) (*entity.Room, error)
	findByIDForUpdateFn func(id uuid.UUID) (*entity.Room, error)
	findByStatusIDFn    func(statusID int) ([]entity.Room, error)
	updateStatusFn      func(id uuid.UUID, statusID int) error
	countByStatusFn     func() ([]repository.RoomStatusCount, error)
	countFn             func() (int64, error)
	createFn            func(room *entity.Room) error
	updateFn            func(room *entity.Room) error
	created             []*entity.Room
}

func (m *mockRoomRepo) Create(ctx context.Context, db *gorm.DB, room *entity.Room) error {
	if m.createFn != nil {
		if err := m.createFn(room); err != nil {
			return err
		}
	}
	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}
	m.created = append(m.created, room)
	return nil
}

func (m *mockRoomRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Room, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(id)
}

func (m *mockRoomRepo) FindByIDForUpdate(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Room, error) {
	if m.findByIDForUpdateFn == nil {
		return m.FindByID(ctx, db, id)
	}
	return m.findByIDForUpdateFn(id)
}

func (m *mockRoomRepo) FindAll(ctx context.Context, db *gorm.DB, filter *entity.RoomFilter) ([]entity.Room, int64, error) {
	return nil, 0, nil
}

func (m *mockRoomRepo) FindByStatusID(ctx context.Context, db *gorm.DB, statusID int) ([]entity.Room, error) {
	if m.findByStatusIDFn == nil {
		return nil, nil
	}
	return m.findByStatusIDFn(statusID)
}

func (m *mockRoomRepo) Update(ctx context.Context, db *gorm.DB, room *entity.Room) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(room)
}

func (m *mockRoomRepo) UpdateCurrentStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, statusID int) error {
	if m.updateStatusFn == nil {
		return nil
	}
	return m.updateStatusFn(id, statusID)
}

func (m *mockRoomRepo) CountByStatus(ctx context.Context, db *gorm.DB) ([]repository.RoomStatusCount, error) {
	if m.countByStatusFn == nil {
		return nil, nil
	}
	return m.countByStatusFn()
}

func (m *mockRoomRepo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	if m.countFn == nil {
		return 0, nil
	}
	return m.countFn()
}

// mockStatusRepo keeps statuses in memory, keyed by id.
type mockStatusRepo struct {
	statuses map[int]*entity.RoomStatus
	deleted  []int
	usage    int64
}

func newMockStatusRepo(statuses ...entity.RoomStatus) *mockStatusRepo {
	m := &mockStatusRepo{statuses: map[int]*entity.RoomStatus{}}
	for i := range statuses {
		s := statuses[i]
		m.statuses[s.ID] = &s
	}
	return m
}

// secondDefault mirrors uq_room_statuses_default: another row already holds the flag.
func (m *mockStatusRepo) secondDefault(status *entity.RoomStatus) error {
	if !status.IsDefault {
		return nil
	}
	for id, s := range m.statuses {
		if id != status.ID && s.IsDefault {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_room_statuses_default"}
		}
	}
	return nil
}

func (m *mockStatusRepo) Create(ctx context.Context, db *gorm.DB, status *entity.RoomStatus) error {
	if err := m.secondDefault(status); err != nil {
		return err
	}
	status.ID = len(m.statuses) + 100
	m.statuses[status.ID] = status
	return nil
}

func (m *mockStatusRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.RoomStatus, error) {
	s, ok := m.statuses[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (m *mockStatusRepo) FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.RoomStatus, error) {
	for _, s := range m.statuses {
		if s.Is(name) {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockStatusRepo) FindDefault(ctx context.Context, db *gorm.DB) (*entity.RoomStatus, error) {
	for _, s := range m.statuses {
		if s.IsDefault {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockStatusRepo) FindAll(ctx context.Context, db *gorm.DB, activeOnly bool) ([]entity.RoomStatus, error) {
	var all []entity.RoomStatus
	for _, s := range m.statuses {
		if activeOnly && !s.IsActive {
			continue
		}
		all = append(all, *s)
	}
	return all, nil
}

func (m *mockStatusRepo) Update(ctx context.Context, db *gorm.DB, status *entity.RoomStatus) error {
	if err := m.secondDefault(status); err != nil {
		return err
	}
	copied := *status
	m.statuses[status.ID] = &copied
	return nil
}

func (m *mockStatusRepo) ClearDefault(ctx context.Context, db *gorm.DB, exceptID int) error {
	for id, s := range m.statuses {
		if id != exceptID {
			s.IsDefault = false
		}
	}
	return nil
}

func (m *mockStatusRepo) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	if _, ok := m.statuses[id]; !ok {
		return 0, nil
	}
	delete(m.statuses, id)
	m.deleted = append(m.deleted, id)
	return 1, nil
}

func (m *mockStatusRepo) CountUsage(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	return m.usage, nil
}

type mockStatusHistoryRepo struct {
	entries  []*entity.RoomStatusHistory
	createFn func(entry *entity.RoomStatusHistory) error
}

func (m *mockStatusHistoryRepo) Create(ctx context.Context, db *gorm.DB, entry *entity.RoomStatusHistory) error {
	if m.createFn != nil {
		if err := m.createFn(entry); err != nil {
			return err
		}
	}
	entry.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockStatusHistoryRepo) FindByRoomID(ctx context.Context, db *gorm.DB, roomID uuid.UUID) ([]entity.RoomStatusHistory, error) {
	var result []entity.RoomStatusHistory
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].RoomID == roomID {
			result = append(result, *m.entries[i])
		}
	}
	return result, nil
}

func (m *mockStatusHistoryRepo) FindLatestByRoomID(ctx context.Context, db *gorm.DB, roomID uuid.UUID) (*entity.RoomStatusHistory, error) {
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].RoomID == roomID {
			return m.entries[i], nil
		}
	}
	return nil, nil
}

type mockBookingRepo struct {
	bookings         map[uuid.UUID]*entity.Booking
	createFn         func(booking *entity.Booking) error
	countByGuestFn   func(guestID uuid.UUID) (int64, error)
	countActiveFn    func() (int64, error)
	countArrivalsFn  func(from, to time.Time) (int64, error)
	countDepartureFn func(from, to time.Time) (int64, error)
}

func newMockBookingRepo(bookings ...*entity.Booking) *mockBookingRepo {
	m := &mockBookingRepo{bookings: map[uuid.UUID]*entity.Booking{}}
	for _, b := range bookings {
		m.bookings[b.ID] = b
	}
	return m
}

func (m *mockBookingRepo) Create(ctx context.Context, db *gorm.DB, booking *entity.Booking) error {
	if m.createFn != nil {
		if err := m.createFn(booking); err != nil {
			return err
		}
	}
	booking.ID = uuid.New()
	m.bookings[booking.ID] = booking
	return nil
}

func (m *mockBookingRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (m *mockBookingRepo) FindByIDForUpdate(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	return m.FindByID(ctx, db, id)
}

func (m *mockBookingRepo) FindAll(ctx context.Context, db *gorm.DB, filter *entity.BookingFilter) ([]entity.Booking, int64, error) {
	return nil, 0, nil
}

func (m *mockBookingRepo) FindByGuestID(ctx context.Context, db *gorm.DB, guestID uuid.UUID) ([]entity.Booking, error) {
	var result []entity.Booking
	for _, b := range m.bookings {
		if b.GuestID == guestID {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (m *mockBookingRepo) CountByGuestID(ctx context.Context, db *gorm.DB, guestID uuid.UUID) (int64, error) {
	if m.countByGuestFn != nil {
		return m.countByGuestFn(guestID)
	}
	bookings, _ := m.FindByGuestID(ctx, db, guestID)
	return int64(len(bookings)), nil
}

func (m *mockBookingRepo) MarkCheckedIn(ctx context.Context, db *gorm.DB, id uuid.UUID, at time.Time) (int64, error) {
	b, ok := m.bookings[id]
	if !ok || !b.IsActive() || b.ActualCheckIn != nil {
		return 0, nil
	}
	b.CheckIn(at)
	return 1, nil
}

func (m *mockBookingRepo) MarkCheckedOut(ctx context.Context, db *gorm.DB, id uuid.UUID, at time.Time) (int64, error) {
	b, ok := m.bookings[id]
	if !ok || !b.IsCheckedIn() {
		return 0, nil
	}
	b.CheckOut(at)
	return 1, nil
}

func (m *mockBookingRepo) CancelBooking(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	b, ok := m.bookings[id]
	if !ok || !b.IsActive() || b.ActualCheckIn != nil {
		return 0, nil
	}
	b.Cancel()
	return 1, nil
}

func (m *mockBookingRepo) CountActive(ctx context.Context, db *gorm.DB) (int64, error) {
	if m.countActiveFn == nil {
		return 0, nil
	}
	return m.countActiveFn()
}

func (m *mockBookingRepo) CountArrivalsBetween(ctx context.Context, db *gorm.DB, from, to time.Time) (int64, error) {
	if m.countArrivalsFn == nil {
		return 0, nil
	}
	return m.countArrivalsFn(from, to)
}

func (m *mockBookingRepo) CountDeparturesBetween(ctx context.Context, db *gorm.DB, from, to time.Time) (int64, error) {
	if m.countDepartureFn == nil {
		return 0, nil
	}
	return m.countDepartureFn(from, to)
}

type mockGuestRepo struct {
	guests   map[uuid.UUID]*entity.Guest
	createFn func(guest *entity.Guest) error
	created  []*entity.Guest
}

func newMockGuestRepo(guests ...*entity.Guest) *mockGuestRepo {
	m := &mockGuestRepo{guests: map[uuid.UUID]*entity.Guest{}}
	for _, g := range guests {
		m.guests[g.ID] = g
	}
	return m
}

func (m *mockGuestRepo) Create(ctx context.Context, db *gorm.DB, guest *entity.Guest) error {
	if m.createFn != nil {
		if err := m.createFn(guest); err != nil {
			return err
		}
	}
	guest.ID = uuid.New()
	m.guests[guest.ID] = guest
	m.created = append(m.created, guest)
	return nil
}

func (m *mockGuestRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Guest, error) {
	g, ok := m.guests[id]
	if !ok {
		return nil, nil
	}
	copied := *g
	return &copied, nil
}

func (m *mockGuestRepo) FindAll(ctx context.Context, db *gorm.DB, filter *entity.GuestFilter) ([]entity.Guest, int64, error) {
	return nil, 0, nil
}

func (m *mockGuestRepo) Update(ctx context.Context, db *gorm.DB, guest *entity.Guest) error {
	m.guests[guest.ID] = guest
	return nil
}

func (m *mockGuestRepo) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := m.guests[id]; !ok {
		return 0, nil
	}
	delete(m.guests, id)
	return 1, nil
}

type mockPaymentRepo struct {
	payments      []*entity.Payment
	createFn      func(payment *entity.Payment) error
	outstandingFn func() (decimal.Decimal, error)
}

func (m *mockPaymentRepo) Create(ctx context.Context, db *gorm.DB, payment *entity.Payment) error {
	if m.createFn != nil {
		if err := m.createFn(payment); err != nil {
			return err
		}
	}
	payment.ID = uuid.New()
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}
	m.payments = append(m.payments, payment)
	return nil
}

func (m *mockPaymentRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Payment, error) {
	for _, p := range m.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockPaymentRepo) FindByBookingID(ctx context.Context, db *gorm.DB, bookingID uuid.UUID) ([]entity.Payment, error) {
	var result []entity.Payment
	for _, p := range m.payments {
		if p.BookingID == bookingID {
			result = append(result, *p)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (m *mockPaymentRepo) FindAll(ctx context.Context, db *gorm.DB, filter *entity.PaymentFilter) ([]entity.Payment, int64, error) {
	return nil, 0, nil
}

func (m *mockPaymentRepo) OutstandingBalance(ctx context.Context, db *gorm.DB) (decimal.Decimal, error) {
	if m.outstandingFn == nil {
		return decimal.Zero, nil
	}
	return m.outstandingFn()
}

type mockSettingRepo struct {
	setting *entity.SystemSetting
	saved   []*entity.SystemSetting
}

func (m *mockSettingRepo) Get(ctx context.Context, db *gorm.DB) (*entity.SystemSetting, error) {
	return m.setting, nil
}

func (m *mockSettingRepo) Save(ctx context.Context, db *gorm.DB, setting *entity.SystemSetting) error {
	m.setting = setting
	m.saved = append(m.saved, setting)
	return nil
}

// mockRoomTypeRepo holds live and tombstoned room types in one map, like the table does.
type mockRoomTypeRepo struct {
	roomTypes map[int]*entity.RoomType
	hardDelFn func(id int) (int64, error)
}

func newMockRoomTypeRepo(roomTypes ...*entity.RoomType) *mockRoomTypeRepo {
	m := &mockRoomTypeRepo{roomTypes: map[int]*entity.RoomType{}}
	for _, rt := range roomTypes {
		m.roomTypes[rt.ID] = rt
	}
	return m
}

func (m *mockRoomTypeRepo) Create(ctx context.Context, db *gorm.DB, roomType *entity.RoomType) error {
	roomType.ID = len(m.roomTypes) + 1
	roomType.CreatedAt = time.Now()
	m.roomTypes[roomType.ID] = roomType
	return nil
}

func (m *mockRoomTypeRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.RoomType, error) {
	rt, ok := m.roomTypes[id]
	if !ok || rt.IsDeleted() {
		return nil, nil
	}
	copied := *rt
	return &copied, nil
}

func (m *mockRoomTypeRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.RoomType, error) {
	var result []entity.RoomType
	for _, rt := range m.roomTypes {
		if !rt.IsDeleted() {
			result = append(result, *rt)
		}
	}
	return result, nil
}

func (m *mockRoomTypeRepo) Update(ctx context.Context, db *gorm.DB, roomType *entity.RoomType) error {
	copied := *roomType
	m.roomTypes[roomType.ID] = &copied
	return nil
}

func (m *mockRoomTypeRepo) SoftDelete(ctx context.Context, db *gorm.DB, id int, deletedAt time.Time, deletedBy string) (int64, error) {
	rt, ok := m.roomTypes[id]
	if !ok || rt.IsDeleted() {
		return 0, nil
	}
	rt.DeletedAt = gorm.DeletedAt{Time: deletedAt, Valid: true}
	rt.DeletedBy = &deletedBy
	return 1, nil
}

func (m *mockRoomTypeRepo) FindDeletedByID(ctx context.Context, db *gorm.DB, id int) (*entity.RoomType, error) {
	rt, ok := m.roomTypes[id]
	if !ok || !rt.IsDeleted() {
		return nil, nil
	}
	copied := *rt
	return &copied, nil
}

func (m *mockRoomTypeRepo) FindAllDeleted(ctx context.Context, db *gorm.DB) ([]entity.RoomType, error) {
	var result []entity.RoomType
	for _, rt := range m.roomTypes {
		if rt.IsDeleted() {
			result = append(result, *rt)
		}
	}
	return result, nil
}

func (m *mockRoomTypeRepo) FindDeletedBefore(ctx context.Context, db *gorm.DB, cutoff time.Time) ([]entity.RoomType, error) {
	var result []entity.RoomType
	for _, rt := range m.roomTypes {
		if rt.IsDeleted() && rt.DeletedAt.Time.Before(cutoff) {
			result = append(result, *rt)
		}
	}
	return result, nil
}

func (m *mockRoomTypeRepo) Restore(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	rt, ok := m.roomTypes[id]
	if !ok || !rt.IsDeleted() {
		return 0, nil
	}
	rt.DeletedAt = gorm.DeletedAt{}
	rt.DeletedBy = nil
	return 1, nil
}

func (m *mockRoomTypeRepo) HardDelete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	if m.hardDelFn != nil {
		return m.hardDelFn(id)
	}
	rt, ok := m.roomTypes[id]
	if !ok || !rt.IsDeleted() {
		return 0, nil
	}
	delete(m.roomTypes, id)
	return 1, nil
}

type mockRoomTypeHistoryRepo struct {
	entries []*entity.RoomTypeHistoryEntry
}

func (m *mockRoomTypeHistoryRepo) Create(ctx context.Context, db *gorm.DB, entry *entity.RoomTypeHistoryEntry) error {
	entry.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockRoomTypeHistoryRepo) FindAll(ctx context.Context, db *gorm.DB, roomTypeID *int) ([]entity.RoomTypeHistoryEntry, error) {
	var result []entity.RoomTypeHistoryEntry
	for i := len(m.entries) - 1; i >= 0; i-- {
		if roomTypeID == nil || m.entries[i].RoomTypeID == *roomTypeID {
			result = append(result, *m.entries[i])
		}
	}
	return result, nil
}

type mockPreferenceRepo struct {
	data map[string]map[string]json.RawMessage
}

func newMockPreferenceRepo() *mockPreferenceRepo {
	return &mockPreferenceRepo{data: map[string]map[string]json.RawMessage{}}
}

func (m *mockPreferenceRepo) GetAll(ctx context.Context, owner string) (map[string]json.RawMessage, error) {
	result := map[string]json.RawMessage{}
	for k, v := range m.data[owner] {
		result[k] = v
	}
	return result, nil
}

func (m *mockPreferenceRepo) Get(ctx context.Context, owner, key string) (json.RawMessage, error) {
	return m.data[owner][key], nil
}

func (m *mockPreferenceRepo) Set(ctx context.Context, owner, key string, value json.RawMessage) error {
	if m.data[owner] == nil {
		m.data[owner] = map[string]json.RawMessage{}
	}
	m.data[owner][key] = value
	return nil
}

func (m *mockPreferenceRepo) Delete(ctx context.Context, owner, key string) (int64, error) {
	if _, ok := m.data[owner][key]; !ok {
		return 0, nil
	}
	delete(m.data[owner], key)
	return 1, nil
}

// Compile-time checks that the mocks satisfy the interfaces.
var (
	_ repository.Transactor                  = (*fakeTransactor)(nil)
	_ service.EventPublisher                 = (*recordingEvents)(nil)
	_ service.CacheService                   = (*memoryCache)(nil)
	_ repository.RoomRepository              = (*mockRoomRepo)(nil)
	_ repository.RoomStatusRepository        = (*mockStatusRepo)(nil)
	_ repository.RoomStatusHistoryRepository = (*mockStatusHistoryRepo)(nil)
	_ repository.BookingRepository           = (*mockBookingRepo)(nil)
	_ repository.GuestRepository             = (*mockGuestRepo)(nil)
	_ repository.PaymentRepository           = (*mockPaymentRepo)(nil)
	_ repository.SystemSettingRepository     = (*mockSettingRepo)(nil)
	_ repository.RoomTypeRepository          = (*mockRoomTypeRepo)(nil)
	_ repository.RoomTypeHistoryRepository   = (*mockRoomTypeHistoryRepo)(nil)
	_ repository.PreferenceRepository        = (*mockPreferenceRepo)(nil)
)
