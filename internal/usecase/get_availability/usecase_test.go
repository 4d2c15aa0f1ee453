package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
	"github.com/st-neumann/SNR-BookingService/pkg/ptr"
)

// --- Фейки для изоляции usecase ---

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationRepo) GetWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}

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
	err       error
}

func (f *fakeOverrideRepo) GetByDateRange(_ context.Context, from, to time.Time) ([]*domain.DayOverride, error) {
	if f.err != nil {
		return nil, f.err
	}

	result := make([]*domain.DayOverride, 0, len(f.overrides))
	for _, o := range f.overrides {
		if !o.Date.Before(from) && !o.Date.After(to) {
			result = append(result, o)
		}
	}
	return result, nil
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

var (
	tuesday  = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(resRepo *fakeReservationRepo, ovRepo *fakeOverrideRepo) *UseCase {
	uc := NewUseCase(resRepo, ovRepo, DefaultPolicy(), nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: tuesday}
	return uc
}

func confirmedReservation(id int64, start, end time.Time) *domain.Reservation {
	return &domain.Reservation{
		ID:         id,
		CustomerID: 100,
		SlotStart:  start,
		SlotEnd:    end,
		Status:     domain.StatusConfirmed,
	}
}

func startSlots(day domain.DayAvailability) []int {
	slots := make([]int, 0, len(day.ValidStarts))
	for _, s := range day.ValidStarts {
		slots = append(slots, s.StartSlot)
	}
	return slots
}

// --- Тесты ---

func TestExecute_EmptyWeekday(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeOverrideRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		FromDate:  tuesday,
		Days:      1,
		SlotCount: 1,
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)

	day := resp.Days[0]
	assert.Equal(t, []int{0, 1, 2}, startSlots(day))
	assert.Equal(t, 3, day.OpenSlotCount)
	assert.Equal(t, 0, day.BlockedSlotCount)
	assert.Equal(t, 3, day.RemainingSlotCount)
	assert.True(t, day.HasValidStarts())
}

func TestExecute_SaturdayDefaultCapacity(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeOverrideRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		FromDate:  saturday,
		Days:      1,
		SlotCount: 1,
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)

	// Суббота: открыты только слоты 0 и 1
	assert.Equal(t, []int{0, 1}, startSlots(resp.Days[0]))
	assert.Equal(t, 2, resp.Days[0].OpenSlotCount)
}

func TestExecute_OverrideReducesCapacity(t *testing.T) {
	ovRepo := &fakeOverrideRepo{overrides: map[string]*domain.DayOverride{
		"2026-09-15": {Date: tuesday, OpenSlotCount: ptr.Ptr(1)},
	}}
	uc := newTestUseCase(&fakeReservationRepo{}, ovRepo)

	// Для одного слота открыт только старт 0
	resp, err := uc.Execute(context.Background(), &Request{FromDate: tuesday, Days: 1, SlotCount: 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, startSlots(resp.Days[0]))
	assert.Equal(t, 1, resp.Days[0].OpenSlotCount)

	// Для двух и трех слотов валидных стартов нет
	resp, err = uc.Execute(context.Background(), &Request{FromDate: tuesday, Days: 1, SlotCount: 2})
	require.NoError(t, err)
	assert.Empty(t, startSlots(resp.Days[0]))

	resp, err = uc.Execute(context.Background(), &Request{FromDate: tuesday, Days: 1, SlotCount: 3})
	require.NoError(t, err)
	assert.Empty(t, startSlots(resp.Days[0]))
}

func TestExecute_ZeroOverrideClosesDay(t *testing.T) {
	ovRepo := &fakeOverrideRepo{overrides: map[string]*domain.DayOverride{
		"2026-09-15": {Date: tuesday, OpenSlotCount: ptr.Ptr(0)},
	}}
	uc := newTestUseCase(&fakeReservationRepo{}, ovRepo)

	resp, err := uc.Execute(context.Background(), &Request{FromDate: tuesday, Days: 1, SlotCount: 1})
	require.NoError(t, err)

	day := resp.Days[0]
	assert.Empty(t, day.ValidStarts)
	assert.Equal(t, 0, day.OpenSlotCount)
	assert.Equal(t, 0, day.RemainingSlotCount)
}

func TestExecute_MalformedOverrideFallsBackToDefault(t *testing.T) {
	// open_slot_count вне диапазона 0..3 трактуется как отсутствующий
	ovRepo := &fakeOverrideRepo{overrides: map[string]*domain.DayOverride{
		"2026-09-15": {Date: tuesday, OpenSlotCount: ptr.Ptr(7)},
	}}
	uc := newTestUseCase(&fakeReservationRepo{}, ovRepo)

	resp, err := uc.Execute(context.Background(), &Request{FromDate: tuesday, Days: 1, SlotCount: 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, startSlots(resp.Days[0]))
	assert.Equal(t, 3, resp.Days[0].OpenSlotCount)
}

func TestExecute_OccupiedMiddleSlot(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		confirmedReservation(1,
			time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 15, 13, 30, 0, 0, time.UTC)),
	}}
	uc := newTestUseCase(resRepo, &fakeOverrideRepo{})

	// Занят слот 1: для одного слота остаются старты 0 и 2
	resp, err := uc.Execute(context.Background(), &Request{FromDate: tuesday, Days: 1, SlotCount: 1})
	require.NoError(t, err)

	day := resp.Days[0]
	assert.Equal(t, []int{0, 2}, startSlots(day))
	assert.Equal(t, 1, day.BlockedSlotCount)
	assert.Equal(t, 2, day.RemainingSlotCount)

	// Для двух подряд идущих слотов места нет
	resp, err = uc.Execute(context.Background(), &Request{FromDate: tuesday, Days: 1, SlotCount: 2})
	require.NoError(t, err)
	assert.Empty(t, startSlots(resp.Days[0]))
}

func TestExecute_CancelledReservationReleasesSlots(t *testing.T) {
	cancelled := confirmedReservation(1,
		time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 15, 13, 30, 0, 0, time.UTC))
	cancelled.Status = domain.StatusCancelledByCustomer

	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{cancelled}}
	uc := newTestUseCase(resRepo, &fakeOverrideRepo{})

	resp, err := uc.Execute(context.Background(), &Request{FromDate: tuesday, Days: 1, SlotCount: 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, startSlots(resp.Days[0]))
	assert.Equal(t, 0, resp.Days[0].BlockedSlotCount)
}

func TestExecute_MisalignedReservationBlocksOverlappedSlots(t *testing.T) {
	// Границы 10:00-12:00 не выровнены по сетке, но блокируют слоты 0 и 1
	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		confirmedReservation(1,
			time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)),
	}}
	uc := newTestUseCase(resRepo, &fakeOverrideRepo{})

	resp, err := uc.Execute(context.Background(), &Request{FromDate: tuesday, Days: 1, SlotCount: 1})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, startSlots(resp.Days[0]))
	assert.Equal(t, 2, resp.Days[0].BlockedSlotCount)
}

func TestExecute_MultiDayRange(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeOverrideRepo{})

	resp, err := uc.Execute(context.Background(), &Request{FromDate: tuesday, Days: 7, SlotCount: 1})
	require.NoError(t, err)
	require.Len(t, resp.Days, 7)

	// Дни идут в хронологическом порядке
	for i, day := range resp.Days {
		assert.Equal(t, tuesday.AddDate(0, 0, i), day.Date)
	}

	// Вторник..пятница по 3 слота, суббота 2, воскресенье 1, понедельник 3
	assert.Equal(t, 3, resp.Days[0].OpenSlotCount)
	assert.Equal(t, 2, resp.Days[4].OpenSlotCount)
	assert.Equal(t, 1, resp.Days[5].OpenSlotCount)
	assert.Equal(t, 3, resp.Days[6].OpenSlotCount)
}

func TestExecute_ClampsSlotCountAndDays(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeOverrideRepo{})

	resp, err := uc.Execute(context.Background(), &Request{FromDate: tuesday, Days: 0, SlotCount: 7})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.SlotCount)
	assert.Len(t, resp.Days, 1)

	resp, err = uc.Execute(context.Background(), &Request{FromDate: tuesday, Days: 500, SlotCount: -1})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SlotCount)
	assert.Len(t, resp.Days, domain.DefaultMaxRangeDays)
}

func TestExecute_MissingFromDate(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeOverrideRepo{})

	_, err := uc.Execute(context.Background(), &Request{Days: 1, SlotCount: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryErrorWrapsInternal(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{err: errors.New("db down")}, &fakeOverrideRepo{})

	_, err := uc.Execute(context.Background(), &Request{FromDate: tuesday, Days: 1, SlotCount: 1})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Idempotent(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		confirmedReservation(1,
			time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC)),
	}}
	uc := newTestUseCase(resRepo, &fakeOverrideRepo{})
	req := &Request{FromDate: tuesday, Days: 3, SlotCount: 2}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_UrgentChannelHidesFlaggedDay(t *testing.T) {
	ovRepo := &fakeOverrideRepo{overrides: map[string]*domain.DayOverride{
		"2026-09-15": {Date: tuesday, VisibleOnUrgentChannel: ptr.Ptr(false)},
	}}
	uc := newTestUseCase(&fakeReservationRepo{}, ovRepo)

	// Без срочного канала день открыт
	resp, err := uc.Execute(context.Background(), &Request{FromDate: tuesday, Days: 1, SlotCount: 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, startSlots(resp.Days[0]))

	// В срочном канале день скрыт целиком
	resp, err = uc.Execute(context.Background(), &Request{FromDate: tuesday, Days: 1, SlotCount: 1, UrgentChannel: true})
	require.NoError(t, err)
	assert.Empty(t, resp.Days[0].ValidStarts)
	assert.Equal(t, 0, resp.Days[0].OpenSlotCount)
}

func TestExecute_UrgentChannelClampsToRollingWindow(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeOverrideRepo{})

	// Окно [сегодня, сегодня+14): запрос на 30 дней обрезается до 14
	resp, err := uc.Execute(context.Background(), &Request{FromDate: tuesday, Days: 30, SlotCount: 1, UrgentChannel: true})
	require.NoError(t, err)
	assert.Len(t, resp.Days, domain.DefaultUrgentWindowDays)
}

func TestExecute_UrgentChannelRangeFullyOutsideWindow(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeOverrideRepo{})

	farFuture := tuesday.AddDate(0, 0, 30)
	resp, err := uc.Execute(context.Background(), &Request{FromDate: farFuture, Days: 5, SlotCount: 1, UrgentChannel: true})
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
	assert.True(t, resp.UrgentChannel)
}
