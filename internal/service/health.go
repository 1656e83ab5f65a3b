package service

import (
	"context"
	"time"

	v1 "keysentry/api/v1"
	"keysentry/internal/model"
	"keysentry/internal/repository"
	"keysentry/pkg/cipher"
	"keysentry/pkg/cloud"
	"keysentry/pkg/log"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultBatchWidth  = 5
	defaultProbeWindow = 10 * time.Second
)

type HealthService interface {
	// RunSweep probes every credential of one user in bounded-width
	// groups and persists each group's results before the next starts.
	RunSweep(ctx context.Context, userId string, batchWidth int) (*v1.SweepSummary, error)
	GetStats(ctx context.Context, userId string) (*v1.HealthStatsData, error)
}

func NewHealthService(
	service *Service,
	conf *viper.Viper,
	credRepo repository.CredentialRepository,
	secretCipher cipher.Cipher,
	logger *log.Logger,
) HealthService {
	width := conf.GetInt("sweep.batch_width")
	if width <= 0 {
		width = defaultBatchWidth
	}
	probeWindow := defaultProbeWindow
	if sec := conf.GetInt("sweep.probe_timeout"); sec > 0 {
		probeWindow = time.Duration(sec) * time.Second
	}
	return &healthService{
		credRepo:     credRepo,
		secretCipher: secretCipher,
		batchWidth:   width,
		probeWindow:  probeWindow,
		Service:      service,
		logger:       logger,
	}
}

type healthService struct {
	credRepo     repository.CredentialRepository
	secretCipher cipher.Cipher
	batchWidth   int
	probeWindow  time.Duration
	*Service
	logger *log.Logger
}

func (s *healthService) RunSweep(ctx context.Context, userId string, batchWidth int) (*v1.SweepSummary, error) {
	if batchWidth <= 0 {
		batchWidth = s.batchWidth
	}

	creds, err := s.credRepo.ListByUser(ctx, userId)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list credentials for sweep", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	summary := s.runBatch(ctx, creds, batchWidth)
	s.credRepo.InvalidateStats(ctx, userId)
	s.logger.WithContext(ctx).Info("health sweep finished",
		zap.String("user_id", userId),
		zap.Int("total", summary.Total),
		zap.Int("healthy", summary.Healthy),
		zap.Int("unhealthy", summary.Unhealthy),
		zap.Int("limited", summary.Limited))
	return summary, nil
}

// runBatch partitions creds into consecutive groups of size <= width and
// probes each group with full internal concurrency, group by group. Results
// of group k are persisted before group k+1 starts, so an interrupted run
// loses at most one group of unpersisted work. Aggregate counts do not
// depend on the width.
func (s *healthService) runBatch(ctx context.Context, creds []*model.Credential, width int) *v1.SweepSummary {
	summary := &v1.SweepSummary{
		Results: make([]v1.CheckResult, 0, len(creds)),
	}

	for start := 0; start < len(creds); start += width {
		end := start + width
		if end > len(creds) {
			end = len(creds)
		}
		group := creds[start:end]

		ids := make([]int64, 0, len(group))
		for _, cred := range group {
			ids = append(ids, cred.Id)
		}
		if err := s.credRepo.MarkChecking(ctx, ids); err != nil {
			s.logger.WithContext(ctx).Warn("failed to mark credentials checking", zap.Error(err))
		}

		results := make([]v1.CheckResult, len(group))
		g, gctx := errgroup.WithContext(ctx)
		for i, cred := range group {
			i, cred := i, cred
			g.Go(func() error {
				results[i] = s.checkOne(gctx, cred)
				return nil
			})
		}
		// probes never return errors; failures are carried in results
		_ = g.Wait()

		for i, cred := range group {
			res := results[i]
			lastError := res.Reason
			if res.Status == model.HealthStatusHealthy {
				lastError = ""
			}
			if err := s.credRepo.UpdateHealth(ctx, cred.Id, res.Status, res.CheckedAt, lastError); err != nil {
				s.logger.WithContext(ctx).Error("failed to persist health result",
					zap.Error(err),
					zap.Int64("credential_id", cred.Id))
			}
			summary.Total++
			switch res.Status {
			case model.HealthStatusHealthy:
				summary.Healthy++
			case model.HealthStatusLimited:
				summary.Limited++
			default:
				summary.Unhealthy++
			}
			summary.Results = append(summary.Results, res)
		}
	}
	return summary
}

// checkOne probes a single credential. Every failure mode resolves to a
// CheckResult so callers can process N probes without special-casing.
func (s *healthService) checkOne(ctx context.Context, cred *model.Credential) v1.CheckResult {
	result := v1.CheckResult{
		CredentialId: cred.Id,
		CheckedAt:    time.Now(),
	}

	provider, ok := cloud.Get(cred.Provider)
	if !ok {
		result.Status = model.HealthStatusUnhealthy
		result.Reason = "unsupported provider: " + cred.Provider
		return result
	}

	apiKey, err := s.secretCipher.Decrypt(cred.EncryptedSecret)
	if err != nil {
		result.Status = model.HealthStatusUnhealthy
		result.Reason = "failed to decrypt secret: " + err.Error()
		return result
	}

	probeCtx, cancel := context.WithTimeout(ctx, s.probeWindow)
	defer cancel()
	info, err := provider.GetAccountInfo(probeCtx, apiKey)

	status, reason := provider.Classify(info, err)
	result.Status = string(status)
	result.Reason = reason
	return result
}

func (s *healthService) GetStats(ctx context.Context, userId string) (*v1.HealthStatsData, error) {
	stats, err := s.credRepo.StatsByUser(ctx, userId)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get health stats", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	return stats, nil
}
