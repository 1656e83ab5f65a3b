package service

import (
	"context"

	v1 "keysentry/api/v1"
	"keysentry/internal/model"
	"keysentry/internal/repository"
	"keysentry/pkg/log"

	"go.uber.org/zap"
)

type ReplenishConfigService interface {
	GetConfig(ctx context.Context, userId string) (*v1.ReplenishConfigData, error)
	UpdateConfig(ctx context.Context, userId string, req *v1.UpdateReplenishConfigRequest) error
	CreateTask(ctx context.Context, userId string, req *v1.CreateReplenishTaskRequest) error
	UpdateTask(ctx context.Context, userId string, id int64, req *v1.UpdateReplenishTaskRequest) error
	DeleteTask(ctx context.Context, userId string, id int64) error
	ListTasks(ctx context.Context, userId string) (*v1.ListReplenishTaskResponseData, error)
}

func NewReplenishConfigService(
	service *Service,
	configRepo repository.ReplenishConfigRepository,
	taskRepo repository.ReplenishTaskRepository,
	logger *log.Logger,
) ReplenishConfigService {
	return &replenishConfigService{
		configRepo: configRepo,
		taskRepo:   taskRepo,
		Service:    service,
		logger:     logger,
	}
}

type replenishConfigService struct {
	configRepo repository.ReplenishConfigRepository
	taskRepo   repository.ReplenishTaskRepository
	*Service
	logger *log.Logger
}

// GetConfig returns disabled defaults when the user has no config row.
func (s *replenishConfigService) GetConfig(ctx context.Context, userId string) (*v1.ReplenishConfigData, error) {
	conf, err := s.configRepo.GetByUser(ctx, userId)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get replenish config", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if conf == nil {
		return &v1.ReplenishConfigData{
			Enabled:       false,
			MonitorMode:   model.MonitorModeInstances,
			Group:         model.CredentialGroupPersonal,
			CheckInterval: 300,
		}, nil
	}
	return &v1.ReplenishConfigData{
		Enabled:         conf.Enabled,
		MonitorMode:     conf.MonitorMode,
		MonitorTargets:  conf.MonitorTargets,
		InstanceMapping: conf.InstanceMapping,
		TemplateId:      conf.TemplateId,
		Group:           conf.Group,
		CheckInterval:   conf.CheckInterval,
		NotifyEnabled:   conf.NotifyEnabled,
		NotifyWebhook:   conf.NotifyWebhook,
	}, nil
}

func (s *replenishConfigService) UpdateConfig(ctx context.Context, userId string, req *v1.UpdateReplenishConfigRequest) error {
	if req.CheckInterval != nil && *req.CheckInterval < model.MinCheckInterval {
		return v1.ErrInvalidCheckInterval
	}
	if req.MonitorMode != nil &&
		*req.MonitorMode != model.MonitorModeInstances && *req.MonitorMode != model.MonitorModeCredentials {
		return v1.ErrBadRequest
	}
	if req.Group != nil &&
		*req.Group != model.CredentialGroupPersonal && *req.Group != model.CredentialGroupRental {
		return v1.ErrInvalidGroup
	}

	conf, err := s.configRepo.GetByUser(ctx, userId)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get replenish config", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if conf == nil {
		conf = &model.ReplenishConfig{
			UserId:        userId,
			MonitorMode:   model.MonitorModeInstances,
			Group:         model.CredentialGroupPersonal,
			CheckInterval: 300,
		}
	}

	if req.Enabled != nil {
		conf.Enabled = *req.Enabled
	}
	if req.MonitorMode != nil {
		conf.MonitorMode = *req.MonitorMode
	}
	if req.MonitorTargets != nil {
		conf.MonitorTargets = *req.MonitorTargets
	}
	if req.InstanceMapping != nil {
		conf.InstanceMapping = *req.InstanceMapping
	}
	if req.TemplateId != nil {
		conf.TemplateId = *req.TemplateId
	}
	if req.Group != nil {
		conf.Group = *req.Group
	}
	if req.CheckInterval != nil {
		conf.CheckInterval = *req.CheckInterval
	}
	if req.NotifyEnabled != nil {
		conf.NotifyEnabled = *req.NotifyEnabled
	}
	if req.NotifyWebhook != nil {
		conf.NotifyWebhook = *req.NotifyWebhook
	}

	if err := s.configRepo.Upsert(ctx, conf); err != nil {
		s.logger.WithContext(ctx).Error("failed to upsert replenish config", zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *replenishConfigService) CreateTask(ctx context.Context, userId string, req *v1.CreateReplenishTaskRequest) error {
	if req.CheckInterval != 0 && req.CheckInterval < model.MinCheckInterval {
		return v1.ErrInvalidCheckInterval
	}

	existing, err := s.taskRepo.GetByName(ctx, userId, req.TaskName)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to check task name", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if existing != nil {
		return v1.ErrTaskNameAlreadyUse
	}

	interval := req.CheckInterval
	if interval == 0 {
		interval = 300
	}
	task := &model.ReplenishTask{
		UserId:          userId,
		TaskName:        req.TaskName,
		CredentialIds:   req.CredentialIds,
		InstanceIds:     req.InstanceIds,
		InstanceMapping: req.InstanceMapping,
		TemplateId:      req.TemplateId,
		CheckInterval:   interval,
		Enabled:         req.Enabled,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		s.logger.WithContext(ctx).Error("failed to create replenish task", zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *replenishConfigService) UpdateTask(ctx context.Context, userId string, id int64, req *v1.UpdateReplenishTaskRequest) error {
	if req.CheckInterval != nil && *req.CheckInterval < model.MinCheckInterval {
		return v1.ErrInvalidCheckInterval
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get replenish task", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if task == nil {
		return v1.ErrNotFound
	}
	if task.UserId != userId {
		return v1.ErrAccessDenied
	}

	if req.TaskName != nil && *req.TaskName != task.TaskName {
		existing, err := s.taskRepo.GetByName(ctx, userId, *req.TaskName)
		if err != nil {
			return v1.ErrInternalServerError
		}
		if existing != nil {
			return v1.ErrTaskNameAlreadyUse
		}
		task.TaskName = *req.TaskName
	}
	if req.CredentialIds != nil {
		task.CredentialIds = *req.CredentialIds
	}
	if req.InstanceIds != nil {
		task.InstanceIds = *req.InstanceIds
	}
	if req.InstanceMapping != nil {
		task.InstanceMapping = *req.InstanceMapping
	}
	if req.TemplateId != nil {
		task.TemplateId = *req.TemplateId
	}
	if req.CheckInterval != nil {
		task.CheckInterval = *req.CheckInterval
	}
	if req.Enabled != nil {
		task.Enabled = *req.Enabled
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		s.logger.WithContext(ctx).Error("failed to update replenish task", zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *replenishConfigService) DeleteTask(ctx context.Context, userId string, id int64) error {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get replenish task", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if task == nil {
		return v1.ErrNotFound
	}
	if task.UserId != userId {
		return v1.ErrAccessDenied
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		s.logger.WithContext(ctx).Error("failed to delete replenish task", zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *replenishConfigService) ListTasks(ctx context.Context, userId string) (*v1.ListReplenishTaskResponseData, error) {
	tasks, err := s.taskRepo.ListByUser(ctx, userId)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list replenish tasks", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	items := make([]v1.ReplenishTaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, v1.ReplenishTaskItem{
			Id:              task.Id,
			TaskName:        task.TaskName,
			CredentialIds:   task.CredentialIds,
			InstanceIds:     task.InstanceIds,
			InstanceMapping: task.InstanceMapping,
			TemplateId:      task.TemplateId,
			CheckInterval:   task.CheckInterval,
			Enabled:         task.Enabled,
		})
	}
	return &v1.ListReplenishTaskResponseData{
		Total: int64(len(items)),
		List:  items,
	}, nil
}
