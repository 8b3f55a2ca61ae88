package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/pkozlov/outreach/internal/provider"
	"github.com/pkozlov/outreach/internal/repository"
)

type healthService struct {
	repo        repository.Repository
	redisClient *redis.Client
	schedulers  SchedulerService
	breaker     provider.BreakerReporter
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	schedulers SchedulerService,
	breaker provider.BreakerReporter,
) HealthService {
	return &healthService{
		repo:        repo,
		redisClient: redisClient,
		schedulers:  schedulers,
		breaker:     breaker,
	}
}

// GetHealth probes every dependency. Database loss is unhealthy; anything
// else degraded.
func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status:          HealthStateHealthy,
		SchedulerStatus: ComponentStatusStopped,
		DatabaseStatus:  ComponentStatusConnected,
		RedisStatus:     ComponentStatusConnected,
	}

	if s.schedulers.IsRunning() {
		status.SchedulerStatus = ComponentStatusRunning
	} else {
		status.Status = HealthStateDegraded
	}

	if err := s.repo.Ping(); err != nil {
		status.DatabaseStatus = ComponentStatusDisconnected
		status.Status = HealthStateUnhealthy
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		status.RedisStatus = ComponentStatusDisconnected
		if status.Status == HealthStateHealthy {
			status.Status = HealthStateDegraded
		}
	}

	if s.breaker != nil {
		state, _, _ := s.breaker.CircuitBreakerStatus()
		status.CircuitBreakerState = state
		status.CircuitBreakerStatus = string(state)
		if state == provider.BreakerOpen && status.Status == HealthStateHealthy {
			status.Status = HealthStateDegraded
		}
	}

	return status
}
