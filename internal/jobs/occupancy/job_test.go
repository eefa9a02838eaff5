package occupancy

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/pkg/types"
)

type fakeRepo struct {
	mu     sync.Mutex
	booked map[domain.ServiceKind][]types.TimeString
	fail   domain.ServiceKind
	dates  []time.Time
}

func (f *fakeRepo) BookedHours(_ context.Context, kind domain.ServiceKind, date time.Time) ([]types.TimeString, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dates = append(f.dates, date)
	if kind == f.fail {
		return nil, errors.New("db down")
	}
	return f.booked[kind], nil
}

type occupancy struct{ booked, free int }

type fakeMetrics struct {
	mu  sync.Mutex
	got map[string]occupancy
}

func (f *fakeMetrics) SetOccupancy(service string, booked, free int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.got == nil {
		f.got = make(map[string]occupancy)
	}
	f.got[service] = occupancy{booked: booked, free: free}
}

func (f *fakeMetrics) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.got)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestRun_ExportsPerService(t *testing.T) {
	repo := &fakeRepo{
		booked: map[domain.ServiceKind][]types.TimeString{
			domain.KindLavage:    {types.MustTimeString("8:00"), types.MustTimeString("08:30")},
			domain.KindDetailing: {types.MustTimeString("14:30")},
		},
		fail: domain.KindTolerie,
	}
	m := &fakeMetrics{}
	job := NewJob(repo, m, nopLogger{}, "")
	job.now = func() time.Time { return time.Date(2026, 11, 10, 18, 0, 0, 0, time.UTC) }

	job.Run(context.Background())

	assert.Equal(t, occupancy{booked: 2, free: 24}, m.got["lavage"])
	assert.Equal(t, occupancy{booked: 1, free: 1}, m.got["detailing"])
	assert.Equal(t, occupancy{booked: 0, free: 13}, m.got["polissage"])
	assert.NotContains(t, m.got, "tolerie")
	assert.Equal(t, time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC), repo.dates[0])
}

func TestStart_RunsImmediately(t *testing.T) {
	m := &fakeMetrics{}
	job := NewJob(&fakeRepo{}, m, nopLogger{}, "@every 1h")

	require.NoError(t, job.Start())
	defer job.Stop()

	require.Eventually(t, func() bool { return m.len() == len(domain.AllKinds) }, time.Second, 10*time.Millisecond)
}

func TestStart_InvalidSchedule(t *testing.T) {
	job := NewJob(&fakeRepo{}, &fakeMetrics{}, nopLogger{}, "every tuesday")
	assert.Error(t, job.Start())
}

// blockingRepo держит BookedHours до отмены контекста
type blockingRepo struct {
	started  chan struct{}
	finished chan struct{}
	once     sync.Once
}

func (b *blockingRepo) BookedHours(ctx context.Context, _ domain.ServiceKind, _ time.Time) ([]types.TimeString, error) {
	b.once.Do(func() { close(b.started) })
	<-ctx.Done()
	select {
	case <-b.finished:
	default:
		close(b.finished)
	}
	return nil, ctx.Err()
}

func TestStop_WaitsForFirstRun(t *testing.T) {
	repo := &blockingRepo{started: make(chan struct{}), finished: make(chan struct{})}
	job := NewJob(repo, &fakeMetrics{}, nopLogger{}, "@every 1h")

	require.NoError(t, job.Start())

	select {
	case <-repo.started:
	case <-time.After(time.Second):
		t.Fatal("first run did not start")
	}

	job.Stop()

	select {
	case <-repo.finished:
	default:
		t.Fatal("Stop returned while the first run was still querying")
	}
}
