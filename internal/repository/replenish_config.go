package repository

import (
	"context"
	"errors"

	"keysentry/internal/model"

	"gorm.io/gorm"
)

type ReplenishConfigRepository interface {
	GetByUser(ctx context.Context, userId string) (*model.ReplenishConfig, error)
	Upsert(ctx context.Context, conf *model.ReplenishConfig) error
}

func NewReplenishConfigRepository(r *Repository) ReplenishConfigRepository {
	return &replenishConfigRepository{Repository: r}
}

type replenishConfigRepository struct {
	*Repository
}

func (r *replenishConfigRepository) GetByUser(ctx context.Context, userId string) (*model.ReplenishConfig, error) {
	var conf model.ReplenishConfig
	if err := r.DB(ctx).Where("user_id = ?", userId).First(&conf).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conf, nil
}

// Upsert keeps the one-row-per-user invariant: save when the row exists,
// create otherwise.
func (r *replenishConfigRepository) Upsert(ctx context.Context, conf *model.ReplenishConfig) error {
	if conf.Id > 0 {
		return r.DB(ctx).Save(conf).Error
	}
	return r.DB(ctx).Create(conf).Error
}
