package overrides

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
	overrideRepo "github.com/st-neumann/SNR-BookingService/internal/infra/storage/dayoverride"
	"github.com/st-neumann/SNR-BookingService/internal/service/overrides/models"
	"github.com/st-neumann/SNR-BookingService/pkg/ptr"
)

type fakeOverrideRepo struct {
	byDate map[string]*domain.DayOverride
	nextID int64
}

func newFakeOverrideRepo() *fakeOverrideRepo {
	return &fakeOverrideRepo{byDate: make(map[string]*domain.DayOverride)}
}

func (f *fakeOverrideRepo) Upsert(_ context.Context, override *domain.DayOverride) (*domain.DayOverride, error) {
	key := override.Date.Format(domain.DateFormat)

	stored := *override
	if existing, ok := f.byDate[key]; ok {
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	} else {
		f.nextID++
		stored.ID = f.nextID
		stored.CreatedAt = time.Now()
	}
	stored.UpdatedAt = time.Now()

	f.byDate[key] = &stored
	return &stored, nil
}

func (f *fakeOverrideRepo) GetByDate(_ context.Context, date time.Time) (*domain.DayOverride, error) {
	o, ok := f.byDate[date.Format(domain.DateFormat)]
	if !ok {
		return nil, overrideRepo.ErrOverrideNotFound
	}
	return o, nil
}

func (f *fakeOverrideRepo) GetByDateRange(_ context.Context, from, to time.Time) ([]*domain.DayOverride, error) {
	result := make([]*domain.DayOverride, 0, len(f.byDate))
	for _, o := range f.byDate {
		if !o.Date.Before(from) && !o.Date.After(to) {
			result = append(result, o)
		}
	}
	return result, nil
}

func (f *fakeOverrideRepo) Delete(_ context.Context, date time.Time) error {
	key := date.Format(domain.DateFormat)
	if _, ok := f.byDate[key]; !ok {
		return overrideRepo.ErrOverrideNotFound
	}
	delete(f.byDate, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var tuesday = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

func newTestService() (*Service, *fakeOverrideRepo) {
	repo := newFakeOverrideRepo()
	return NewService(repo, domain.DefaultDayDefaults(), nopLogger{}), repo
}

func TestUpsert_CreatesOverride(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Upsert(context.Background(), &models.UpsertOverrideRequest{
		Date:          tuesday,
		OpenSlotCount: ptr.Ptr(2),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.EffectiveOpenSlots)
	assert.False(t, resp.UsesDefault)
}

func TestUpsert_Idempotent(t *testing.T) {
	svc, repo := newTestService()

	first, err := svc.Upsert(context.Background(), &models.UpsertOverrideRequest{
		Date:          tuesday,
		OpenSlotCount: ptr.Ptr(2),
	})
	require.NoError(t, err)

	// Повторный upsert на ту же дату заменяет значение, не плодя строки
	second, err := svc.Upsert(context.Background(), &models.UpsertOverrideRequest{
		Date:          tuesday,
		OpenSlotCount: ptr.Ptr(1),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, second.EffectiveOpenSlots)
	assert.Len(t, repo.byDate, 1)
}

func TestUpsert_MalformedCountStoredButReportsDefault(t *testing.T) {
	svc, _ := newTestService()

	// Значение вне 0..3 сохраняется как есть, но эффективная вместимость -
	// дефолт вторника
	resp, err := svc.Upsert(context.Background(), &models.UpsertOverrideRequest{
		Date:          tuesday,
		OpenSlotCount: ptr.Ptr(9),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.OpenSlotCount)
	assert.Equal(t, 9, *resp.OpenSlotCount)
	assert.Equal(t, 3, resp.EffectiveOpenSlots)
	assert.True(t, resp.UsesDefault)
}

func TestUpsert_ValidationFailures(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Upsert(context.Background(), &models.UpsertOverrideRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	longNote := string(make([]byte, domain.MaxNoteLength+1))
	_, err = svc.Upsert(context.Background(), &models.UpsertOverrideRequest{
		Date: tuesday,
		Note: &longNote,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByDateRange(t *testing.T) {
	svc, _ := newTestService()

	for i := 0; i < 3; i++ {
		_, err := svc.Upsert(context.Background(), &models.UpsertOverrideRequest{
			Date:          tuesday.AddDate(0, 0, i),
			OpenSlotCount: ptr.Ptr(1),
		})
		require.NoError(t, err)
	}

	resp, err := svc.GetByDateRange(context.Background(), tuesday, tuesday.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	_, err = svc.GetByDateRange(context.Background(), tuesday.AddDate(0, 0, 1), tuesday)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Upsert(context.Background(), &models.UpsertOverrideRequest{
		Date:          tuesday,
		OpenSlotCount: ptr.Ptr(0),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), tuesday))
	assert.Empty(t, repo.byDate)

	assert.ErrorIs(t, svc.Delete(context.Background(), tuesday), ErrOverrideNotFound)
}
