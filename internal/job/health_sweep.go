package job

import (
	"context"
	"sync"
	"time"

	v1 "keysentry/api/v1"
	"keysentry/internal/model"
	"keysentry/internal/repository"
	"keysentry/internal/service"

	"go.uber.org/zap"
)

type HealthSweepJob interface {
	// Run executes one scheduler tick: sweep every credential owner whose
	// configured interval has elapsed, notify each opted-in user in
	// isolation, then send the operator one consolidated report. A failure
	// for one user never stops the others.
	Run(ctx context.Context) error
}

func NewHealthSweepJob(
	job *Job,
	credRepo repository.CredentialRepository,
	configRepo repository.ReplenishConfigRepository,
	healthSvc service.HealthService,
	notifySvc service.NotifyService,
) HealthSweepJob {
	return &healthSweepJob{
		Job:        job,
		credRepo:   credRepo,
		configRepo: configRepo,
		healthSvc:  healthSvc,
		notifySvc:  notifySvc,
		lastRun:    make(map[string]time.Time),
	}
}

type healthSweepJob struct {
	*Job
	credRepo   repository.CredentialRepository
	configRepo repository.ReplenishConfigRepository
	healthSvc  service.HealthService
	notifySvc  service.NotifyService

	// lastRun tracks per-user sweep times across ticks so users with long
	// check intervals are skipped on most ticks. In-memory on purpose: a
	// restart just means one early sweep.
	mu      sync.Mutex
	lastRun map[string]time.Time
}

func (j *healthSweepJob) Run(ctx context.Context) error {
	owners, err := j.credRepo.ListOwners(ctx)
	if err != nil {
		j.logger.Error("health sweep: failed to list credential owners", zap.Error(err))
		return err
	}

	summaries := make(map[string]*v1.SweepSummary)
	for _, userId := range owners {
		conf := j.loadConfig(ctx, userId)
		if !j.due(userId, conf) {
			continue
		}

		summary, err := j.healthSvc.RunSweep(ctx, userId, 0)
		if err != nil {
			j.logger.Error("health sweep: sweep failed",
				zap.String("user_id", userId), zap.Error(err))
			continue
		}
		summaries[userId] = summary

		// Personal summaries are opt-in. No config row means the user
		// never enabled notifications.
		if conf == nil || !conf.NotifyEnabled {
			continue
		}
		if err := j.notifySvc.NotifySweep(ctx, userId, summary); err != nil {
			j.logger.Warn("health sweep: user notification failed",
				zap.String("user_id", userId), zap.Error(err))
		}
	}

	if len(summaries) > 0 {
		if err := j.notifySvc.NotifyOperator(ctx, summaries); err != nil {
			j.logger.Warn("health sweep: operator notification failed", zap.Error(err))
		}
	}
	return nil
}

// loadConfig fetches the user's replenish config, treating a load failure
// like an absent row so one bad read cannot stall the whole sweep.
func (j *healthSweepJob) loadConfig(ctx context.Context, userId string) *model.ReplenishConfig {
	conf, err := j.configRepo.GetByUser(ctx, userId)
	if err != nil {
		j.logger.Warn("health sweep: failed to load config, using defaults",
			zap.String("user_id", userId), zap.Error(err))
		return nil
	}
	return conf
}

// due reports whether the user's configured check interval has elapsed
// since the last sweep this process ran for them, and records the tick.
func (j *healthSweepJob) due(userId string, conf *model.ReplenishConfig) bool {
	interval := 300
	if conf != nil && conf.CheckInterval > 0 {
		interval = conf.CheckInterval
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	last, ok := j.lastRun[userId]
	if ok && time.Since(last) < time.Duration(interval)*time.Second {
		return false
	}
	j.lastRun[userId] = time.Now()
	return true
}
