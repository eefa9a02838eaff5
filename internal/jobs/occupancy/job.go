// Package occupancy periodically exports how many of today's slots are booked per service.
package occupancy

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/internal/slots"
)

// DefaultSchedule используется, если расписание не задано в конфиге
const DefaultSchedule = "@every 5m"

// runTimeout ограничивает один проход по всем видам услуг
const runTimeout = 30 * time.Second

type Job struct {
	repo     ReservationRepository
	metrics  Metrics
	logger   Logger
	schedule string
	now      func() time.Time
	cron     *cron.Cron

	// первый проход выполняется вне cron; Stop отменяет и дожидается его
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewJob(repo ReservationRepository, metrics Metrics, logger Logger, schedule string) *Job {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &Job{
		repo:     repo,
		metrics:  metrics,
		logger:   logger,
		schedule: schedule,
		now:      time.Now,
	}
}

// Start регистрирует задачу в cron и сразу выполняет первый проход
func (j *Job) Start() error {
	log := cronLogger{logger: j.logger}
	j.cron = cron.New(cron.WithChain(
		cron.Recover(log),
		cron.SkipIfStillRunning(log),
	))

	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		j.Run(ctx)
	}); err != nil {
		return fmt.Errorf("occupancy: invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("Occupancy: job started with schedule %q", j.schedule)

	firstCtx, cancel := context.WithTimeout(context.Background(), runTimeout)
	j.cancel = cancel
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		defer cancel()
		j.Run(firstCtx)
	}()
	return nil
}

// Stop останавливает планировщик и ждет завершения текущих проходов, включая первый
func (j *Job) Stop() {
	if j.cron == nil {
		return
	}
	j.cancel()
	<-j.cron.Stop().Done()
	j.wg.Wait()
	j.logger.Info("Occupancy: job stopped")
}

// Run выполняет один проход: для каждого вида услуги считает занятые и свободные слоты на сегодня.
// Ошибка по одному виду услуги не прерывает остальные.
func (j *Job) Run(ctx context.Context) {
	now := j.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for _, kind := range domain.AllKinds {
		booked, err := j.repo.BookedHours(ctx, kind, today)
		if err != nil {
			j.logger.Error("Occupancy: failed to get booked hours for %s: %v", kind, err)
			continue
		}

		annotated, err := slots.Calculate(kind, booked)
		if err != nil {
			j.logger.Error("Occupancy: failed to build grid for %s: %v", kind, err)
			continue
		}

		view := domain.AvailabilityView{Date: today, Kind: kind, Slots: annotated}
		free := view.FreeCount()
		j.metrics.SetOccupancy(string(kind), len(annotated)-free, free)
	}
}

// cronLogger передает сообщения cron в логгер приложения
type cronLogger struct {
	logger Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.logger.Info("Occupancy: cron %s %v", msg, keysAndValues)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.logger.Error("Occupancy: cron %s: %v %v", msg, err, keysAndValues)
}
