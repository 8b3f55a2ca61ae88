// Package service contains the application's business logic: recipient
// resolution, broadcast dispatch, the sequence state machine and the
// enrollment scheduler.
package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/pkozlov/outreach/internal/config"
	"github.com/pkozlov/outreach/internal/provider"
	"github.com/pkozlov/outreach/internal/repository"
)

// Service aggregates all services.
type Service struct {
	Broadcast BroadcastService
	Sequence  SequenceService
	Scheduler SchedulerService
	Health    HealthService
}

// NewService wires the service layer together. goalEvaluator may be nil,
// in which case exit_on_goal never fires.
func NewService(
	cfg *config.Config,
	repo repository.Repository,
	gateway provider.Gateway,
	redisClient *redis.Client,
	goalEvaluator GoalEvaluator,
	logger *zap.Logger,
) *Service {
	sequenceService := NewSequenceService(cfg, repo, gateway, goalEvaluator, logger)
	schedulerService := NewSchedulerService(cfg, sequenceService, logger)

	breaker, _ := gateway.(provider.BreakerReporter)

	return &Service{
		Broadcast: NewBroadcastService(cfg, repo, gateway, redisClient, logger),
		Sequence:  sequenceService,
		Scheduler: schedulerService,
		Health:    NewHealthService(repo, redisClient, schedulerService, breaker),
	}
}
