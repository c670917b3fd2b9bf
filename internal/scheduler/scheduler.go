package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/fo-weather-stations/internal/weather"
)

// Scheduler periodically refreshes the record cache for configured stations
// so callers mostly hit warm data.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	stations  []weather.Station
	interval  time.Duration
}

// New creates a new Scheduler.
func New(stations []weather.Station, interval time.Duration, service *weather.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		stations:  stations,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if len(s.stations) == 0 {
		slog.Info("scheduler: no stations configured; nothing to schedule")
		return nil
	}

	interval := s.interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	_, err := s.scheduler.Every(interval).Do(func() {
		slog.Debug("scheduler: running station refresh job")

		var wg sync.WaitGroup
		for _, st := range s.stations {
			st := st
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := s.service.Refresh(ctx, st.Key); err != nil {
					slog.Warn("scheduler: refresh failed", "station", st.Key, "error", err)
				}
			}()
		}
		wg.Wait()
		slog.Debug("scheduler: completed station refresh job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
