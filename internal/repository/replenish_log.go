package repository

import (
	"context"
	"errors"

	"keysentry/internal/model"

	"gorm.io/gorm"
)

type ReplenishLogRepository interface {
	Create(ctx context.Context, entry *model.ReplenishLogEntry) error
	Update(ctx context.Context, entry *model.ReplenishLogEntry) error
	GetByID(ctx context.Context, id int64) (*model.ReplenishLogEntry, error)
	ListWithPagination(ctx context.Context, userId string, page, pageSize int) ([]*model.ReplenishLogEntry, int64, error)
}

func NewReplenishLogRepository(r *Repository) ReplenishLogRepository {
	return &replenishLogRepository{Repository: r}
}

type replenishLogRepository struct {
	*Repository
}

func (r *replenishLogRepository) Create(ctx context.Context, entry *model.ReplenishLogEntry) error {
	return r.DB(ctx).Create(entry).Error
}

func (r *replenishLogRepository) Update(ctx context.Context, entry *model.ReplenishLogEntry) error {
	return r.DB(ctx).Save(entry).Error
}

func (r *replenishLogRepository) GetByID(ctx context.Context, id int64) (*model.ReplenishLogEntry, error) {
	var entry model.ReplenishLogEntry
	if err := r.DB(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *replenishLogRepository) ListWithPagination(ctx context.Context, userId string, page, pageSize int) ([]*model.ReplenishLogEntry, int64, error) {
	var entries []*model.ReplenishLogEntry
	var total int64

	query := r.DB(ctx).Model(&model.ReplenishLogEntry{}).Where("user_id = ?", userId)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("id DESC").Offset(offset).Limit(pageSize).Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
