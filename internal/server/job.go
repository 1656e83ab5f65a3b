package server

import (
	"context"
	"time"

	"keysentry/internal/job"
	"keysentry/pkg/log"

	"github.com/go-co-op/gocron"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// minTickInterval is the floor for the scheduler tick, in seconds.
// Per-user check intervals are enforced inside the sweep job itself.
const minTickInterval = 60

type JobServer struct {
	log            *log.Logger
	scheduler      *gocron.Scheduler
	healthSweepJob job.HealthSweepJob
	tickInterval   time.Duration
}

func NewJobServer(
	log *log.Logger,
	conf *viper.Viper,
	healthSweepJob job.HealthSweepJob,
) *JobServer {
	interval := conf.GetInt("sweep.interval")
	if interval < minTickInterval {
		interval = minTickInterval
	}
	return &JobServer{
		log:            log,
		healthSweepJob: healthSweepJob,
		tickInterval:   time.Duration(interval) * time.Second,
	}
}

func (j *JobServer) Start(ctx context.Context) error {
	gocron.SetPanicHandler(func(jobName string, recoverData interface{}) {
		j.log.Error("Job Panic", zap.String("job", jobName), zap.Any("recover", recoverData))
	})

	j.scheduler = gocron.NewScheduler(time.UTC)

	_, err := j.scheduler.Every(j.tickInterval).Do(func() {
		if err := j.healthSweepJob.Run(ctx); err != nil {
			j.log.Error("HealthSweepJob error", zap.Error(err))
		}
	})
	if err != nil {
		j.log.Error("HealthSweepJob schedule error", zap.Error(err))
	}

	j.scheduler.StartBlocking()
	return nil
}

func (j *JobServer) Stop(ctx context.Context) error {
	if j.scheduler != nil {
		j.scheduler.Stop()
	}
	j.log.Info("JobServer stop...")
	return nil
}
