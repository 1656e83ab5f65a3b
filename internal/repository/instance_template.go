package repository

import (
	"context"
	"errors"

	"keysentry/internal/model"

	"gorm.io/gorm"
)

type InstanceTemplateRepository interface {
	Create(ctx context.Context, tpl *model.InstanceTemplate) error
	Update(ctx context.Context, tpl *model.InstanceTemplate) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.InstanceTemplate, error)
	GetDefault(ctx context.Context, userId, provider string) (*model.InstanceTemplate, error)
	ListWithPagination(ctx context.Context, userId string, page, pageSize int, provider string) ([]*model.InstanceTemplate, int64, error)
	ClearDefault(ctx context.Context, userId, provider string) error
	SetDefault(ctx context.Context, id int64) error
}

func NewInstanceTemplateRepository(r *Repository) InstanceTemplateRepository {
	return &instanceTemplateRepository{Repository: r}
}

type instanceTemplateRepository struct {
	*Repository
}

func (r *instanceTemplateRepository) Create(ctx context.Context, tpl *model.InstanceTemplate) error {
	return r.DB(ctx).Create(tpl).Error
}

func (r *instanceTemplateRepository) Update(ctx context.Context, tpl *model.InstanceTemplate) error {
	return r.DB(ctx).Save(tpl).Error
}

func (r *instanceTemplateRepository) Delete(ctx context.Context, id int64) error {
	return r.DB(ctx).Where("id = ?", id).Delete(&model.InstanceTemplate{}).Error
}

func (r *instanceTemplateRepository) GetByID(ctx context.Context, id int64) (*model.InstanceTemplate, error) {
	var tpl model.InstanceTemplate
	if err := r.DB(ctx).Where("id = ?", id).First(&tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tpl, nil
}

func (r *instanceTemplateRepository) GetDefault(ctx context.Context, userId, provider string) (*model.InstanceTemplate, error) {
	var tpl model.InstanceTemplate
	if err := r.DB(ctx).
		Where("user_id = ? AND provider = ? AND is_default = ?", userId, provider, true).
		First(&tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tpl, nil
}

func (r *instanceTemplateRepository) ListWithPagination(ctx context.Context, userId string, page, pageSize int, provider string) ([]*model.InstanceTemplate, int64, error) {
	var tpls []*model.InstanceTemplate
	var total int64

	query := r.DB(ctx).Model(&model.InstanceTemplate{}).Where("user_id = ?", userId)
	if provider != "" {
		query = query.Where("provider = ?", provider)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("id").Offset(offset).Limit(pageSize).Find(&tpls).Error; err != nil {
		return nil, 0, err
	}
	return tpls, total, nil
}

func (r *instanceTemplateRepository) ClearDefault(ctx context.Context, userId, provider string) error {
	return r.DB(ctx).Model(&model.InstanceTemplate{}).
		Where("user_id = ? AND provider = ? AND is_default = ?", userId, provider, true).
		Update("is_default", false).Error
}

func (r *instanceTemplateRepository) SetDefault(ctx context.Context, id int64) error {
	return r.DB(ctx).Model(&model.InstanceTemplate{}).
		Where("id = ?", id).
		Update("is_default", true).Error
}
