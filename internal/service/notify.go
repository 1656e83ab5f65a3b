package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	v1 "keysentry/api/v1"
	"keysentry/internal/model"
	"keysentry/internal/repository"
	"keysentry/pkg/log"
	"keysentry/pkg/notify"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// NotifyService formats outcomes and hands them to the Notifier. Delivery
// failures are returned so callers can log them, but callers must treat
// them as best-effort: a failed send never aborts the surrounding flow.
type NotifyService interface {
	NotifySweep(ctx context.Context, userId string, summary *v1.SweepSummary) error
	// NotifyOperator sends one consolidated summary, plus a distinct
	// high-priority alert when any credential is unhealthy. Both sends are
	// attempted even if the first fails.
	NotifyOperator(ctx context.Context, summaries map[string]*v1.SweepSummary) error
	NotifyReplenish(ctx context.Context, userId string, entry *model.ReplenishLogEntry) error
}

func NewNotifyService(
	service *Service,
	conf *viper.Viper,
	configRepo repository.ReplenishConfigRepository,
	notifier notify.Notifier,
	logger *log.Logger,
) NotifyService {
	return &notifyService{
		notifier:        notifier,
		configRepo:      configRepo,
		userWebhook:     conf.GetString("notify.webhook_url"),
		operatorWebhook: conf.GetString("notify.operator_webhook_url"),
		Service:         service,
		logger:          logger,
	}
}

type notifyService struct {
	notifier        notify.Notifier
	configRepo      repository.ReplenishConfigRepository
	userWebhook     string
	operatorWebhook string
	*Service
	logger *log.Logger
}

// userDestination resolves where a user's personal notifications go: their
// configured webhook when set, otherwise the global one. Empty means the
// user has nowhere to be reached.
func (s *notifyService) userDestination(ctx context.Context, userId string) string {
	conf, err := s.configRepo.GetByUser(ctx, userId)
	if err != nil {
		s.logger.WithContext(ctx).Warn("failed to load config for webhook lookup", zap.Error(err))
		return s.userWebhook
	}
	if conf != nil && conf.NotifyWebhook != "" {
		return conf.NotifyWebhook
	}
	return s.userWebhook
}

func (s *notifyService) NotifySweep(ctx context.Context, userId string, summary *v1.SweepSummary) error {
	dest := s.userDestination(ctx, userId)
	if dest == "" {
		return nil
	}
	msg := fmt.Sprintf("[keysentry] health sweep for user %s: %d checked, %d healthy, %d unhealthy, %d limited",
		userId, summary.Total, summary.Healthy, summary.Unhealthy, summary.Limited)
	return s.notifier.Send(ctx, dest, msg)
}

func (s *notifyService) NotifyOperator(ctx context.Context, summaries map[string]*v1.SweepSummary) error {
	if s.operatorWebhook == "" {
		return nil
	}

	var total, healthy, unhealthy, limited int
	var unhealthyUsers []string
	for userId, summary := range summaries {
		total += summary.Total
		healthy += summary.Healthy
		unhealthy += summary.Unhealthy
		limited += summary.Limited
		if summary.Unhealthy > 0 {
			unhealthyUsers = append(unhealthyUsers, userId)
		}
	}

	summaryMsg := fmt.Sprintf("[keysentry] sweep complete: %d users, %d credentials, %d healthy, %d unhealthy, %d limited",
		len(summaries), total, healthy, unhealthy, limited)
	summaryErr := s.notifier.Send(ctx, s.operatorWebhook, summaryMsg)

	// The alert is sent regardless of the summary outcome.
	var alertErr error
	if unhealthy > 0 {
		alertMsg := fmt.Sprintf("[keysentry] ALERT: %d unhealthy credential(s) across users: %s",
			unhealthy, strings.Join(unhealthyUsers, ", "))
		alertErr = s.notifier.Send(ctx, s.operatorWebhook, alertMsg)
	}
	return errors.Join(summaryErr, alertErr)
}

func (s *notifyService) NotifyReplenish(ctx context.Context, userId string, entry *model.ReplenishLogEntry) error {
	dest := s.userDestination(ctx, userId)
	if dest == "" {
		return nil
	}

	var msg string
	switch entry.Status {
	case model.ReplenishStatusSuccess:
		msg = fmt.Sprintf("[keysentry] replenish #%d for user %s succeeded: instance %s (%s) at %s",
			entry.Id, userId, entry.NewInstanceName, entry.NewInstanceId, entry.NewIPv4)
	default:
		msg = fmt.Sprintf("[keysentry] replenish #%d for user %s failed: %s",
			entry.Id, userId, entry.ErrorMessage)
	}
	return s.notifier.Send(ctx, dest, msg)
}
