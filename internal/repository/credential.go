package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	v1 "keysentry/api/v1"
	"keysentry/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	statsCacheKeyPrefix = "keysentry:health:stats:"
	statsCacheTTL       = 30 * time.Second
)

type CredentialRepository interface {
	Create(ctx context.Context, cred *model.Credential) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Credential, error)
	ListByUser(ctx context.Context, userId string) ([]*model.Credential, error)
	// ListHealthyByGroup returns healthy credentials of one user, provider
	// and group in insertion (id) order, so selection is deterministic.
	ListHealthyByGroup(ctx context.Context, userId, provider, group string) ([]*model.Credential, error)
	ListOwners(ctx context.Context) ([]string, error)
	MarkChecking(ctx context.Context, ids []int64) error
	UpdateHealth(ctx context.Context, id int64, status string, checkedAt time.Time, lastError string) error
	StatsByUser(ctx context.Context, userId string) (*v1.HealthStatsData, error)
	InvalidateStats(ctx context.Context, userId string)
}

func NewCredentialRepository(r *Repository) CredentialRepository {
	return &credentialRepository{Repository: r}
}

type credentialRepository struct {
	*Repository
}

func (r *credentialRepository) Create(ctx context.Context, cred *model.Credential) error {
	return r.DB(ctx).Create(cred).Error
}

func (r *credentialRepository) Delete(ctx context.Context, id int64) error {
	return r.DB(ctx).Where("id = ?", id).Delete(&model.Credential{}).Error
}

func (r *credentialRepository) GetByID(ctx context.Context, id int64) (*model.Credential, error) {
	var cred model.Credential
	if err := r.DB(ctx).Where("id = ?", id).First(&cred).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cred, nil
}

func (r *credentialRepository) ListByUser(ctx context.Context, userId string) ([]*model.Credential, error) {
	var creds []*model.Credential
	if err := r.DB(ctx).Where("user_id = ?", userId).Order("id").Find(&creds).Error; err != nil {
		return nil, err
	}
	return creds, nil
}

func (r *credentialRepository) ListHealthyByGroup(ctx context.Context, userId, provider, group string) ([]*model.Credential, error) {
	var creds []*model.Credential
	if err := r.DB(ctx).
		Where("user_id = ? AND provider = ? AND cred_group = ? AND health_status = ?",
			userId, provider, group, model.HealthStatusHealthy).
		Order("id").
		Find(&creds).Error; err != nil {
		return nil, err
	}
	return creds, nil
}

func (r *credentialRepository) ListOwners(ctx context.Context) ([]string, error) {
	var owners []string
	if err := r.DB(ctx).Model(&model.Credential{}).
		Distinct("user_id").
		Order("user_id").
		Pluck("user_id", &owners).Error; err != nil {
		return nil, err
	}
	return owners, nil
}

func (r *credentialRepository) MarkChecking(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.DB(ctx).Model(&model.Credential{}).
		Where("id IN ?", ids).
		Update("health_status", model.HealthStatusChecking).Error
}

// UpdateHealth writes only the probed credential's own health fields, so
// concurrent probes never contend on a row.
func (r *credentialRepository) UpdateHealth(ctx context.Context, id int64, status string, checkedAt time.Time, lastError string) error {
	return r.DB(ctx).Model(&model.Credential{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"health_status":   status,
			"last_checked_at": checkedAt,
			"last_error":      lastError,
		}).Error
}

// StatsByUser aggregates health counts, read through a short-lived redis
// cache so dashboard polling does not hammer the DB between sweeps.
func (r *credentialRepository) StatsByUser(ctx context.Context, userId string) (*v1.HealthStatsData, error) {
	cacheKey := statsCacheKeyPrefix + userId
	if r.rdb != nil {
		if cached, err := r.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var stats v1.HealthStatsData
			if json.Unmarshal(cached, &stats) == nil {
				return &stats, nil
			}
		}
	}

	var rows []struct {
		HealthStatus string
		Count        int64
	}
	if err := r.DB(ctx).Model(&model.Credential{}).
		Select("health_status, count(*) as count").
		Where("user_id = ?", userId).
		Group("health_status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := &v1.HealthStatsData{}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.HealthStatus {
		case model.HealthStatusHealthy:
			stats.Healthy = row.Count
		case model.HealthStatusUnhealthy:
			stats.Unhealthy = row.Count
		case model.HealthStatusLimited:
			stats.Limited = row.Count
		default:
			stats.Unknown += row.Count
		}
	}

	var lastChecked sql.NullTime
	if err := r.DB(ctx).Model(&model.Credential{}).
		Where("user_id = ?", userId).
		Select("max(last_checked_at)").
		Scan(&lastChecked).Error; err != nil {
		return nil, err
	}
	if lastChecked.Valid {
		t := lastChecked.Time
		stats.LastCheckedAt = &t
	}

	if r.rdb != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := r.rdb.Set(ctx, cacheKey, data, statsCacheTTL).Err(); err != nil {
				r.logger.WithContext(ctx).Warn("failed to cache health stats", zap.Error(err))
			}
		}
	}
	return stats, nil
}

func (r *credentialRepository) InvalidateStats(ctx context.Context, userId string) {
	if r.rdb == nil {
		return
	}
	if err := r.rdb.Del(ctx, statsCacheKeyPrefix+userId).Err(); err != nil {
		r.logger.WithContext(ctx).Warn("failed to invalidate health stats cache", zap.Error(err))
	}
}
