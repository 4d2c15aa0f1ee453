package admit_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
	overrideRepo "github.com/st-neumann/SNR-BookingService/internal/infra/storage/dayoverride"
	reservationRepo "github.com/st-neumann/SNR-BookingService/internal/infra/storage/reservation"
	"github.com/st-neumann/SNR-BookingService/pkg/ptr"
)

// --- Фейки для изоляции usecase ---

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	createErr    error
	nextID       int64
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	f.nextID++
	created := *res
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.reservations = append(f.reservations, &created)
	return &created, nil
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0, len(f.reservations))
	for _, res := range f.reservations {
		if !filter.IncludeReleased && !res.IsOccupying() {
			continue
		}
		result = append(result, res)
	}
	return result, nil
}

type fakeOverrideRepo struct {
	overrides map[string]*domain.DayOverride
}

func (f *fakeOverrideRepo) GetByDate(_ context.Context, date time.Time) (*domain.DayOverride, error) {
	o, ok := f.overrides[date.Format(domain.DateFormat)]
	if !ok {
		return nil, overrideRepo.ErrOverrideNotFound
	}
	return o, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var tuesday = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

func newTestUseCase(resRepo *fakeReservationRepo, ovRepo *fakeOverrideRepo) *UseCase {
	if ovRepo == nil {
		ovRepo = &fakeOverrideRepo{}
	}
	uc := NewUseCase(resRepo, ovRepo, domain.DefaultDayDefaults(), fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: tuesday}
	return uc
}

func alternativeSlots(err error) []int {
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		return nil
	}

	slots := make([]int, 0, len(conflictErr.Alternatives))
	for _, a := range conflictErr.Alternatives {
		slots = append(slots, a.StartSlot)
	}
	return slots
}

// --- Тесты ---

func TestExecute_AdmitsFreeRange(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID: 100,
		Date:       tuesday,
		StartSlot:  0,
		SlotCount:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(100), resp.CustomerID)
	assert.Equal(t, 0, resp.StartSlot)
	assert.Equal(t, 2, resp.SlotCount)
	assert.Equal(t, "08:00-13:30", resp.Label)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC), resp.SlotStart)
	assert.Equal(t, time.Date(2026, 9, 15, 13, 30, 0, 0, time.UTC), resp.SlotEnd)
}

func TestExecute_ConflictWithExistingReservation(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	uc := newTestUseCase(resRepo, nil)

	// Первое бронирование занимает слоты 0 и 1
	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 100, Date: tuesday, StartSlot: 0, SlotCount: 2,
	})
	require.NoError(t, err)

	// Попытка взять слот 1 конфликтует; единственная альтернатива - слот 2
	_, err = uc.Execute(context.Background(), &Request{
		CustomerID: 200, Date: tuesday, StartSlot: 1, SlotCount: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, []int{2}, alternativeSlots(err))

	// В хранилище осталось ровно одно бронирование
	assert.Len(t, resRepo.reservations, 1)
}

func TestExecute_CapacityConflict(t *testing.T) {
	ovRepo := &fakeOverrideRepo{overrides: map[string]*domain.DayOverride{
		"2026-09-15": {Date: tuesday, OpenSlotCount: ptr.Ptr(1)},
	}}
	uc := newTestUseCase(&fakeReservationRepo{}, ovRepo)

	// Слот 1 закрыт по вместимости; альтернатива только слот 0
	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 100, Date: tuesday, StartSlot: 1, SlotCount: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, []int{0}, alternativeSlots(err))
}

func TestExecute_MalformedOverrideFallsBackToDefault(t *testing.T) {
	ovRepo := &fakeOverrideRepo{overrides: map[string]*domain.DayOverride{
		"2026-09-15": {Date: tuesday, OpenSlotCount: ptr.Ptr(9)},
	}}
	uc := newTestUseCase(&fakeReservationRepo{}, ovRepo)

	// Невалидный override не закрывает день: действует дефолт вторника (3)
	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID: 100, Date: tuesday, StartSlot: 2, SlotCount: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.StartSlot)
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, nil)
	longNote := string(make([]byte, domain.MaxNoteLength+1))

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero customer", &Request{CustomerID: 0, Date: tuesday, StartSlot: 0, SlotCount: 1}},
		{"missing date", &Request{CustomerID: 100, StartSlot: 0, SlotCount: 1}},
		{"start slot out of grid", &Request{CustomerID: 100, Date: tuesday, StartSlot: 3, SlotCount: 1}},
		{"negative start slot", &Request{CustomerID: 100, Date: tuesday, StartSlot: -1, SlotCount: 1}},
		{"zero slot count", &Request{CustomerID: 100, Date: tuesday, StartSlot: 0, SlotCount: 0}},
		{"slot count above grid", &Request{CustomerID: 100, Date: tuesday, StartSlot: 0, SlotCount: 4}},
		{"range exceeds grid", &Request{CustomerID: 100, Date: tuesday, StartSlot: 1, SlotCount: 3}},
		{"note too long", &Request{CustomerID: 100, Date: tuesday, StartSlot: 0, SlotCount: 1, Note: &longNote}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 100,
		Date:       tuesday.AddDate(0, 0, -1),
		StartSlot:  0,
		SlotCount:  1,
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TodayIsAllowed(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 100, Date: tuesday, StartSlot: 0, SlotCount: 1,
	})
	assert.NoError(t, err)
}

func TestExecute_StoreLevelConflict(t *testing.T) {
	// Exclusion constraint БД сработал между проверкой и записью:
	// конкурент выиграл гонку. Отказ приходит как тот же ConflictError,
	// запрошенный диапазон не предлагается в альтернативах
	resRepo := &fakeReservationRepo{createErr: reservationRepo.ErrTimeRangeConflict}
	uc := newTestUseCase(resRepo, nil)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 100, Date: tuesday, StartSlot: 0, SlotCount: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, []int{1, 2}, alternativeSlots(err))
}

func TestExecute_MoveExcludesOwnReservation(t *testing.T) {
	// Перенос: существующее бронирование не должно блокировать
	// собственный новый диапазон
	existing := &domain.Reservation{
		ID:         42,
		CustomerID: 100,
		SlotStart:  time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC),
		SlotEnd:    time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC),
		Status:     domain.StatusConfirmed,
	}
	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{existing}, nextID: 42}
	uc := newTestUseCase(resRepo, nil)

	// Без исключения тот же диапазон конфликтует
	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 100, Date: tuesday, StartSlot: 0, SlotCount: 2,
	})
	assert.ErrorIs(t, err, ErrSlotConflict)

	// С исключением собственного ID допуск проходит
	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID:           100,
		Date:                 tuesday,
		StartSlot:            0,
		SlotCount:            2,
		ExcludeReservationID: ptr.Ptr(int64(42)),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.StartSlot)
	assert.Equal(t, 2, resp.SlotCount)
}

func TestExecute_ConflictErrorUnwrapsToSentinel(t *testing.T) {
	conflictErr := &ConflictError{Alternatives: []domain.StartOption{{StartSlot: 2}}}
	assert.ErrorIs(t, conflictErr, ErrSlotConflict)
	assert.Contains(t, conflictErr.Error(), "1 alternatives")
}
