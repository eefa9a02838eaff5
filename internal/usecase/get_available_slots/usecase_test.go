package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/pkg/types"
)

type fakeRepo struct {
	booked map[string][]types.TimeString
	err    error
	dates  []time.Time
}

func (f *fakeRepo) BookedHours(_ context.Context, kind domain.ServiceKind, date time.Time) ([]types.TimeString, error) {
	f.dates = append(f.dates, date)
	return f.booked[string(kind)], f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_MarksBookedSlots(t *testing.T) {
	repo := &fakeRepo{booked: map[string][]types.TimeString{
		"lavage": {types.MustTimeString("08:00"), types.MustTimeString("20:30")},
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Kind: domain.KindLavage,
		Date: time.Date(2026, 11, 10, 17, 45, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 26)
	assert.True(t, resp.Slots[0].Booked)
	assert.True(t, resp.Slots[25].Booked)
	assert.Equal(t, 24, resp.FreeCount())
	assert.Equal(t, time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC), repo.dates[0])
}

func TestExecute_DetailingHasTwoSessions(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Kind: domain.KindDetailing, Date: time.Now()})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "8:00", resp.Slots[0].Time.String())
	assert.Equal(t, "14:30", resp.Slots[1].Time.String())
}

func TestExecute_Errors(t *testing.T) {
	uc := NewUseCase(&fakeRepo{err: errors.New("db down")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Kind: domain.KindTolerie, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInternal)

	_, err = uc.Execute(context.Background(), &Request{Kind: "vidange", Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Kind: domain.KindTolerie})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
