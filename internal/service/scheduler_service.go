package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/pkozlov/outreach/internal/config"
	"github.com/pkozlov/outreach/internal/models"
	"github.com/pkozlov/outreach/internal/scheduler"
)

type schedulerService struct {
	scheduler *scheduler.Scheduler
	sequences SequenceService
	logger    *zap.Logger
}

// NewSchedulerService wraps the ticker scheduler around the enrollment
// sweep. The sweep's own busy flag keeps ticker and manual runs from
// overlapping.
func NewSchedulerService(cfg *config.Config, sequences SequenceService, logger *zap.Logger) SchedulerService {
	s := &schedulerService{
		sequences: sequences,
		logger:    logger,
	}

	interval := time.Duration(cfg.Scheduler.IntervalMinutes) * time.Minute
	s.scheduler = scheduler.NewScheduler(logger, interval, s.sweep)

	return s
}

func (s *schedulerService) Start() error {
	return s.scheduler.Start(context.Background())
}

func (s *schedulerService) Stop() error {
	return s.scheduler.Stop()
}

func (s *schedulerService) IsRunning() bool {
	return s.scheduler.IsRunning()
}

// RunSweepNow triggers one sweep outside the ticker cadence.
func (s *schedulerService) RunSweepNow(ctx context.Context) (*models.SweepResult, error) {
	return s.sequences.ProcessDueEnrollments(ctx)
}

func (s *schedulerService) sweep(ctx context.Context) error {
	_, err := s.sequences.ProcessDueEnrollments(ctx)
	if errors.Is(err, ErrSweepInProgress) {
		s.logger.Debug("Skipping tick, previous sweep still running")
		return nil
	}
	return err
}
