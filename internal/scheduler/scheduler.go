package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler fires a task on a fixed interval. The loop runs the task in its
// own goroutine sequentially; overlap protection across manual triggers is
// the task's own responsibility.
type Scheduler struct {
	logger    *zap.Logger
	interval  time.Duration
	taskFunc  func(context.Context) error
	stopCh    chan struct{}
	doneCh    chan struct{}
	isRunning bool
	mu        sync.RWMutex
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(logger *zap.Logger, interval time.Duration, taskFunc func(context.Context) error) *Scheduler {
	return &Scheduler{
		logger:   logger,
		interval: interval,
		taskFunc: taskFunc,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the periodic loop. The task fires once immediately, then on
// every interval tick.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return ErrSchedulerAlreadyRunning
	}

	s.isRunning = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Scheduler started", zap.Duration("interval", s.interval))
	return nil
}

// Stop halts the loop and waits for the current task to finish.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	s.mu.Unlock()

	close(s.stopCh)
	<-s.doneCh

	s.mu.Lock()
	s.isRunning = false
	s.mu.Unlock()

	s.logger.Info("Scheduler stopped")
	return nil
}

// IsRunning returns whether the scheduler is currently running.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.doneCh)
	defer func() {
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
	}()

	if err := s.executeTask(ctx); err != nil {
		s.logger.Error("Initial task execution failed", zap.Error(err))
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler context canceled")
			return
		case <-s.stopCh:
			s.logger.Info("Scheduler stop signal received")
			return
		case <-ticker.C:
			if err := s.executeTask(ctx); err != nil {
				s.logger.Error("Scheduled task execution failed", zap.Error(err))
			}
		}
	}
}

// executeTask runs one task invocation, bounded to just under the interval
// so a stuck task cannot pile onto the next tick. Short intervals get the
// full interval as the bound.
func (s *Scheduler) executeTask(ctx context.Context) error {
	timeout := s.interval - time.Second
	if timeout <= 0 {
		timeout = s.interval
	}

	taskCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := s.taskFunc(taskCtx)
	if err != nil {
		s.logger.Error("Task execution failed", zap.Error(err))
	}
	return err
}
