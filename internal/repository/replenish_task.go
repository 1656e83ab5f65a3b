package repository

import (
	"context"
	"errors"

	"keysentry/internal/model"

	"gorm.io/gorm"
)

type ReplenishTaskRepository interface {
	Create(ctx context.Context, task *model.ReplenishTask) error
	Update(ctx context.Context, task *model.ReplenishTask) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.ReplenishTask, error)
	GetByName(ctx context.Context, userId, taskName string) (*model.ReplenishTask, error)
	ListByUser(ctx context.Context, userId string) ([]*model.ReplenishTask, error)
	ListEnabled(ctx context.Context) ([]*model.ReplenishTask, error)
}

func NewReplenishTaskRepository(r *Repository) ReplenishTaskRepository {
	return &replenishTaskRepository{Repository: r}
}

type replenishTaskRepository struct {
	*Repository
}

func (r *replenishTaskRepository) Create(ctx context.Context, task *model.ReplenishTask) error {
	return r.DB(ctx).Create(task).Error
}

func (r *replenishTaskRepository) Update(ctx context.Context, task *model.ReplenishTask) error {
	return r.DB(ctx).Save(task).Error
}

func (r *replenishTaskRepository) Delete(ctx context.Context, id int64) error {
	return r.DB(ctx).Where("id = ?", id).Delete(&model.ReplenishTask{}).Error
}

func (r *replenishTaskRepository) GetByID(ctx context.Context, id int64) (*model.ReplenishTask, error) {
	var task model.ReplenishTask
	if err := r.DB(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *replenishTaskRepository) GetByName(ctx context.Context, userId, taskName string) (*model.ReplenishTask, error) {
	var task model.ReplenishTask
	if err := r.DB(ctx).Where("user_id = ? AND task_name = ?", userId, taskName).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *replenishTaskRepository) ListByUser(ctx context.Context, userId string) ([]*model.ReplenishTask, error) {
	var tasks []*model.ReplenishTask
	if err := r.DB(ctx).Where("user_id = ?", userId).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *replenishTaskRepository) ListEnabled(ctx context.Context) ([]*model.ReplenishTask, error) {
	var tasks []*model.ReplenishTask
	if err := r.DB(ctx).Where("enabled = ?", true).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
