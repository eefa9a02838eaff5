package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/internal/pricing"
	"github.com/m04kA/SMC-WashBooking/internal/service/stats/models"
)

// Service сервис статистики выручки
type Service struct {
	repo         RevenueRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(repo RevenueRepository, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Get считает выручку платных услуг за текущий месяц, текущий год и за всё время.
// Tolerie без цены в статистику не входит.
func (s *Service) Get(ctx context.Context) (*models.StatsResponse, error) {
	now := s.timeProvider.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	s.logger.Info("GetStats: computing revenue for %s", monthStart.Format("2006-01"))

	resp := &models.StatsResponse{}
	for _, kind := range domain.AllKinds {
		if !pricing.IsPriced(kind) {
			continue
		}

		periods := []struct {
			target   *models.PeriodResponse
			from, to *time.Time
		}{
			{target: &resp.Monthly, from: &monthStart, to: &monthEnd},
			{target: &resp.Yearly, from: &yearStart, to: &yearEnd},
			{target: &resp.AllTime},
		}

		for _, p := range periods {
			revenue, count, err := s.repo.Revenue(ctx, kind, p.from, p.to)
			if err != nil {
				s.logger.Error("GetStats: repository error for %s: %v", kind, err)
				return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
			}
			p.target.Add(string(kind), revenue, count)
		}
	}

	s.logger.Info("GetStats: monthly=%.2f, yearly=%.2f, allTime=%.2f",
		resp.Monthly.Total.Revenue, resp.Yearly.Total.Revenue, resp.AllTime.Total.Revenue)
	return resp, nil
}
