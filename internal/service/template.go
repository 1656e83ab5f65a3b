package service

import (
	"context"

	v1 "keysentry/api/v1"
	"keysentry/internal/model"
	"keysentry/internal/repository"
	"keysentry/pkg/cloud"
	"keysentry/pkg/log"

	"go.uber.org/zap"
)

type TemplateService interface {
	CreateTemplate(ctx context.Context, userId string, req *v1.CreateTemplateRequest) error
	UpdateTemplate(ctx context.Context, userId string, id int64, req *v1.UpdateTemplateRequest) error
	DeleteTemplate(ctx context.Context, userId string, id int64) error
	GetTemplate(ctx context.Context, userId string, id int64) (*v1.TemplateDetail, error)
	ListTemplates(ctx context.Context, userId string, req *v1.ListTemplateRequest) (*v1.ListTemplateResponseData, error)
	// SetDefaultTemplate atomically moves the per-provider default flag.
	SetDefaultTemplate(ctx context.Context, userId string, id int64) error
}

func NewTemplateService(
	service *Service,
	tplRepo repository.InstanceTemplateRepository,
	logger *log.Logger,
) TemplateService {
	return &templateService{
		tplRepo: tplRepo,
		Service: service,
		logger:  logger,
	}
}

type templateService struct {
	tplRepo repository.InstanceTemplateRepository
	*Service
	logger *log.Logger
}

func (s *templateService) CreateTemplate(ctx context.Context, userId string, req *v1.CreateTemplateRequest) error {
	if _, ok := cloud.Get(req.Provider); !ok {
		return v1.ErrUnsupportedProvider
	}

	tpl := &model.InstanceTemplate{
		UserId:       userId,
		TemplateName: req.TemplateName,
		Provider:     req.Provider,
		Region:       req.Region,
		Plan:         req.Plan,
		Image:        req.Image,
		DiskGB:       req.DiskGB,
		EnableIPv6:   req.EnableIPv6,
		SeedScript:   req.SeedScript,
		RootPassword: req.RootPassword,
		Description:  req.Description,
	}
	if err := s.tplRepo.Create(ctx, tpl); err != nil {
		s.logger.WithContext(ctx).Error("failed to create template", zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *templateService) UpdateTemplate(ctx context.Context, userId string, id int64, req *v1.UpdateTemplateRequest) error {
	tpl, err := s.getOwned(ctx, userId, id)
	if err != nil {
		return err
	}

	if req.TemplateName != nil {
		tpl.TemplateName = *req.TemplateName
	}
	if req.Region != nil {
		tpl.Region = *req.Region
	}
	if req.Plan != nil {
		tpl.Plan = *req.Plan
	}
	if req.Image != nil {
		tpl.Image = *req.Image
	}
	if req.DiskGB != nil {
		tpl.DiskGB = *req.DiskGB
	}
	if req.EnableIPv6 != nil {
		tpl.EnableIPv6 = *req.EnableIPv6
	}
	if req.SeedScript != nil {
		tpl.SeedScript = *req.SeedScript
	}
	if req.RootPassword != nil {
		tpl.RootPassword = *req.RootPassword
	}
	if req.Description != nil {
		tpl.Description = *req.Description
	}

	if err := s.tplRepo.Update(ctx, tpl); err != nil {
		s.logger.WithContext(ctx).Error("failed to update template", zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *templateService) DeleteTemplate(ctx context.Context, userId string, id int64) error {
	if _, err := s.getOwned(ctx, userId, id); err != nil {
		return err
	}
	if err := s.tplRepo.Delete(ctx, id); err != nil {
		s.logger.WithContext(ctx).Error("failed to delete template", zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *templateService) GetTemplate(ctx context.Context, userId string, id int64) (*v1.TemplateDetail, error) {
	tpl, err := s.getOwned(ctx, userId, id)
	if err != nil {
		return nil, err
	}
	return &v1.TemplateDetail{
		TemplateItem: toTemplateItem(tpl),
		DiskGB:       tpl.DiskGB,
		EnableIPv6:   tpl.EnableIPv6,
		SeedScript:   tpl.SeedScript,
		HasPassword:  tpl.RootPassword != "",
		CreateTime:   tpl.CreateTime,
		UpdateTime:   tpl.UpdateTime,
	}, nil
}

func (s *templateService) ListTemplates(ctx context.Context, userId string, req *v1.ListTemplateRequest) (*v1.ListTemplateResponseData, error) {
	page := req.Page
	if page <= 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	tpls, total, err := s.tplRepo.ListWithPagination(ctx, userId, page, pageSize, req.Provider)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list templates", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	items := make([]v1.TemplateItem, 0, len(tpls))
	for _, tpl := range tpls {
		items = append(items, toTemplateItem(tpl))
	}
	return &v1.ListTemplateResponseData{
		Total: total,
		List:  items,
	}, nil
}

func (s *templateService) SetDefaultTemplate(ctx context.Context, userId string, id int64) error {
	tpl, err := s.getOwned(ctx, userId, id)
	if err != nil {
		return err
	}

	err = s.tm.Transaction(ctx, func(ctx context.Context) error {
		if err := s.tplRepo.ClearDefault(ctx, userId, tpl.Provider); err != nil {
			return err
		}
		return s.tplRepo.SetDefault(ctx, id)
	})
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to set default template", zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *templateService) getOwned(ctx context.Context, userId string, id int64) (*model.InstanceTemplate, error) {
	tpl, err := s.tplRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get template", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if tpl == nil {
		return nil, v1.ErrTemplateNotFound
	}
	if tpl.UserId != userId {
		return nil, v1.ErrAccessDenied
	}
	return tpl, nil
}

func toTemplateItem(tpl *model.InstanceTemplate) v1.TemplateItem {
	return v1.TemplateItem{
		Id:           tpl.Id,
		TemplateName: tpl.TemplateName,
		Provider:     tpl.Provider,
		Region:       tpl.Region,
		Plan:         tpl.Plan,
		Image:        tpl.Image,
		IsDefault:    tpl.IsDefault,
		Description:  tpl.Description,
	}
}
