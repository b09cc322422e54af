// File: services/schedule/service.go
package schedule

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	scheduleRepo "clinicbook/database/repository/schedule"
	"clinicbook/models"
	"clinicbook/utils"
)

const cacheKey = "schedule:current"

// Service owns the singleton schedule document.
type Service interface {
	// Current returns the schedule, or the explicit empty schedule when none
	// has been configured. Reads may be served from a short-lived cache.
	Current(ctx context.Context) (models.Schedule, error)
	// Upsert validates and replaces the schedule wholesale.
	Upsert(ctx context.Context, sched models.Schedule) (*models.Schedule, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Repo  scheduleRepo.ScheduleRepository
	Cache *redis.Client // optional; nil disables caching
	TTL   time.Duration
}

func (s *DefaultScheduleService) Current(ctx context.Context) (models.Schedule, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var sched models.Schedule
			if err := json.Unmarshal([]byte(data), &sched); err == nil {
				return sched, nil
			}
		}
	}

	stored, err := s.Repo.Get(ctx)
	if err != nil {
		return models.Schedule{}, err
	}
	sched := models.EmptySchedule()
	if stored != nil {
		sched = *stored
	}

	if s.Cache != nil && s.TTL > 0 {
		if data, err := json.Marshal(sched); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, s.TTL).Err(); err != nil {
				utils.GetLogger().Debug("schedule cache write failed", zap.Error(err))
			}
		}
	}
	return sched, nil
}

func (s *DefaultScheduleService) Upsert(ctx context.Context, sched models.Schedule) (*models.Schedule, error) {
	if sched.Timezone == "" {
		sched.Timezone = models.DefaultTimezone
	}
	if sched.Days == nil {
		sched.Days = []models.WeeklyTemplate{}
	}
	if sched.Overrides == nil {
		sched.Overrides = []models.Override{}
	}
	if err := Validate(sched); err != nil {
		return nil, err
	}

	replaced, err := s.Repo.Replace(ctx, sched)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Del(ctx, cacheKey).Err(); err != nil {
			utils.GetLogger().Debug("schedule cache invalidation failed", zap.Error(err))
		}
	}
	return replaced, nil
}
