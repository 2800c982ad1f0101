// Package scheduler runs the background jobs that keep ratings current.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/jnew00/pool-manager-sub000/internal/elo"
	"github.com/jnew00/pool-manager-sub000/internal/service"
)

const jobTimeout = 30 * time.Minute

// Scheduler manages the cron-driven rating maintenance jobs
type Scheduler struct {
	cron      *cron.Cron
	resultsSv *service.ResultsService
	ratings   *elo.Service
	logger    *logrus.Logger

	mu        sync.Mutex
	isRunning bool
	jobIDs    []cron.EntryID
}

// NewScheduler creates a new scheduler
func NewScheduler(resultsSv *service.ResultsService, ratings *elo.Service, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(time.UTC)),
		resultsSv: resultsSv,
		ratings:   ratings,
		logger:    logger,
	}
}

// ScheduleResultsSync schedules the recurring results-to-ratings job
func (s *Scheduler) ScheduleResultsSync(cronExpression string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	id, err := s.cron.AddFunc(cronExpression, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		processed, err := s.resultsSv.ProcessUnprocessed(ctx, 0)
		if err != nil {
			s.logger.WithError(err).Error("Scheduled results sync failed")
			return
		}
		s.logger.WithField("processed", processed).Info("Scheduled results sync completed")
	})
	if err != nil {
		return fmt.Errorf("failed to schedule results sync: %w", err)
	}

	s.jobIDs = append(s.jobIDs, id)
	return nil
}

// ScheduleSeasonalRegression schedules the offseason regression job
func (s *Scheduler) ScheduleSeasonalRegression(cronExpression string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	id, err := s.cron.AddFunc(cronExpression, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		season := time.Now().UTC().Year()
		if err := s.ratings.ApplySeasonalRegression(ctx, season); err != nil {
			s.logger.WithError(err).Error("Scheduled seasonal regression failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule seasonal regression: %w", err)
	}

	s.jobIDs = append(s.jobIDs, id)
	return nil
}

// Start begins running scheduled jobs
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return
	}
	s.cron.Start()
	s.isRunning = true
	s.logger.WithField("jobs", len(s.jobIDs)).Info("Scheduler started")
}

// Stop halts job execution, waiting for in-flight jobs to finish
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	<-s.cron.Stop().Done()
	s.isRunning = false
	s.logger.Info("Scheduler stopped")
}
