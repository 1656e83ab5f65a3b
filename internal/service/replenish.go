package service

import (
	"context"
	"fmt"
	"strings"

	v1 "keysentry/api/v1"
	"keysentry/internal/model"
	"keysentry/internal/repository"
	"keysentry/pkg/cipher"
	"keysentry/pkg/cloud"
	"keysentry/pkg/log"

	"github.com/duke-git/lancet/v2/random"
	"go.uber.org/zap"
)

type ReplenishService interface {
	// Trigger runs one orchestration attempt:
	// received -> credential-selected -> instance-requested -> succeeded|failed.
	// Every attempt leaves exactly one log entry, created pending before any
	// external call and mutated to a terminal status before Trigger returns.
	// Repeated triggers for the same underlying failure are NOT deduplicated;
	// that belongs to the trigger-detection layer.
	Trigger(ctx context.Context, userId string, req *v1.TriggerReplenishRequest) (*v1.TriggerReplenishData, error)
	ListLogs(ctx context.Context, userId string, req *v1.ListReplenishLogRequest) (*v1.ListReplenishLogResponseData, error)
}

func NewReplenishService(
	service *Service,
	credRepo repository.CredentialRepository,
	tplRepo repository.InstanceTemplateRepository,
	logRepo repository.ReplenishLogRepository,
	configRepo repository.ReplenishConfigRepository,
	secretCipher cipher.Cipher,
	notifySvc NotifyService,
	logger *log.Logger,
) ReplenishService {
	return &replenishService{
		credRepo:     credRepo,
		tplRepo:      tplRepo,
		logRepo:      logRepo,
		configRepo:   configRepo,
		secretCipher: secretCipher,
		notifySvc:    notifySvc,
		Service:      service,
		logger:       logger,
	}
}

type replenishService struct {
	credRepo     repository.CredentialRepository
	tplRepo      repository.InstanceTemplateRepository
	logRepo      repository.ReplenishLogRepository
	configRepo   repository.ReplenishConfigRepository
	secretCipher cipher.Cipher
	notifySvc    NotifyService
	*Service
	logger *log.Logger
}

func (s *replenishService) Trigger(ctx context.Context, userId string, req *v1.TriggerReplenishRequest) (*v1.TriggerReplenishData, error) {
	trigger := req.Trigger
	if trigger == "" {
		trigger = model.TriggerManual
	}
	switch trigger {
	case model.TriggerManual, model.TriggerInstanceDown, model.TriggerCredentialInvalid:
	default:
		return nil, v1.ErrBadRequest
	}

	tpl, err := s.tplRepo.GetByID(ctx, req.TemplateId)
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

	// The pending entry is written before credential selection and before
	// any provider call, so even a crashed attempt leaves a trace.
	entry := &model.ReplenishLogEntry{
		UserId:     userId,
		Trigger:    trigger,
		InstanceId: req.InstanceId,
		TemplateId: tpl.Id,
		Status:     model.ReplenishStatusPending,
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		s.logger.WithContext(ctx).Error("failed to create replenish log entry", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	cred, selErr := s.resolveCredential(ctx, userId, tpl, req)
	if selErr != nil {
		s.fail(ctx, entry, selErr.Error())
		return nil, selErr
	}
	entry.CredentialId = cred.Id

	instanceName := fmt.Sprintf("%s-%s", tpl.TemplateName, strings.ToLower(random.RandString(6)))
	rootPassword := tpl.RootPassword
	if rootPassword == "" {
		rootPassword = generatePassword(passwordLength)
	}

	provider, ok := cloud.Get(tpl.Provider)
	if !ok {
		s.fail(ctx, entry, "unsupported provider: "+tpl.Provider)
		return nil, v1.ErrUnsupportedProvider
	}
	apiKey, err := s.secretCipher.Decrypt(cred.EncryptedSecret)
	if err != nil {
		s.fail(ctx, entry, "failed to decrypt secret: "+err.Error())
		return nil, v1.ErrInternalServerError
	}

	instance, err := provider.CreateInstance(ctx, apiKey, cloud.CreateInstanceParams{
		Name:         instanceName,
		Region:       tpl.Region,
		Plan:         tpl.Plan,
		Image:        tpl.Image,
		DiskGB:       tpl.DiskGB,
		EnableIPv6:   tpl.EnableIPv6,
		UserData:     tpl.SeedScript,
		RootPassword: rootPassword,
	})
	if err != nil {
		s.logger.WithContext(ctx).Error("instance creation failed",
			zap.Error(err),
			zap.Int64("log_id", entry.Id),
			zap.String("provider", tpl.Provider))
		s.fail(ctx, entry, err.Error())
		return nil, v1.ErrReplenishCreateFailed
	}

	entry.Status = model.ReplenishStatusSuccess
	entry.NewInstanceId = instance.ID
	entry.NewInstanceName = instance.Name
	entry.NewIPv4 = instance.IPv4
	entry.NewIPv6 = instance.IPv6
	// Only record the password when the provider actually applied it;
	// some providers generate their own and hand it out elsewhere.
	if instance.RootPasswordApplied {
		entry.RootPassword = rootPassword
	}
	entry.Details = fmt.Sprintf("provider=%s region=%s plan=%s image=%s", tpl.Provider, tpl.Region, tpl.Plan, tpl.Image)
	if err := s.logRepo.Update(ctx, entry); err != nil {
		s.logger.WithContext(ctx).Error("failed to finalize replenish log entry",
			zap.Error(err), zap.Int64("log_id", entry.Id))
	}

	// Notification is best-effort and never rolls back the log.
	if err := s.notifySvc.NotifyReplenish(ctx, userId, entry); err != nil {
		s.logger.WithContext(ctx).Warn("replenish notification failed", zap.Error(err))
	}

	return &v1.TriggerReplenishData{
		LogId: entry.Id,
		Instance: v1.ReplenishInstance{
			Id:     instance.ID,
			Name:   instance.Name,
			IPv4:   instance.IPv4,
			IPv6:   instance.IPv6,
			Status: instance.Status,
		},
		RootPassword:    entry.RootPassword,
		PasswordApplied: instance.RootPasswordApplied,
	}, nil
}

// resolveCredential validates an explicitly supplied credential or selects
// the first persisted-healthy one from the configured group, in id order so
// repeated runs against an unchanged health table pick the same credential.
func (s *replenishService) resolveCredential(ctx context.Context, userId string, tpl *model.InstanceTemplate, req *v1.TriggerReplenishRequest) (*model.Credential, error) {
	if req.CredentialId > 0 {
		cred, err := s.credRepo.GetByID(ctx, req.CredentialId)
		if err != nil {
			s.logger.WithContext(ctx).Error("failed to get credential", zap.Error(err))
			return nil, v1.ErrInternalServerError
		}
		if cred == nil {
			return nil, v1.ErrCredentialNotFound
		}
		if cred.UserId != userId {
			return nil, v1.ErrAccessDenied
		}
		return cred, nil
	}

	group := req.Group
	if group == "" {
		if conf, err := s.configRepo.GetByUser(ctx, userId); err == nil && conf != nil && conf.Group != "" {
			group = conf.Group
		} else {
			group = model.CredentialGroupPersonal
		}
	}

	creds, err := s.credRepo.ListHealthyByGroup(ctx, userId, tpl.Provider, group)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list healthy credentials", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if len(creds) == 0 {
		return nil, v1.ErrNoHealthyCredential
	}
	return creds[0], nil
}

// fail moves the entry to its terminal failed state, then attempts a
// failure notification. Log mutation happens first so a notification
// failure can never leave the entry pending.
func (s *replenishService) fail(ctx context.Context, entry *model.ReplenishLogEntry, message string) {
	entry.Status = model.ReplenishStatusFailed
	entry.ErrorMessage = message
	if err := s.logRepo.Update(ctx, entry); err != nil {
		s.logger.WithContext(ctx).Error("failed to mark replenish log entry failed",
			zap.Error(err), zap.Int64("log_id", entry.Id))
	}
	if err := s.notifySvc.NotifyReplenish(ctx, entry.UserId, entry); err != nil {
		s.logger.WithContext(ctx).Warn("replenish failure notification failed", zap.Error(err))
	}
}

func (s *replenishService) ListLogs(ctx context.Context, userId string, req *v1.ListReplenishLogRequest) (*v1.ListReplenishLogResponseData, error) {
	entries, total, err := s.logRepo.ListWithPagination(ctx, userId, req.Page, req.PageSize)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list replenish logs", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	items := make([]v1.ReplenishLogItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, v1.ReplenishLogItem{
			Id:           entry.Id,
			Trigger:      entry.Trigger,
			InstanceId:   entry.InstanceId,
			CredentialId: entry.CredentialId,
			NewId:        entry.NewInstanceId,
			NewName:      entry.NewInstanceName,
			NewIPv4:      entry.NewIPv4,
			NewIPv6:      entry.NewIPv6,
			Status:       entry.Status,
			ErrorMessage: entry.ErrorMessage,
			CreateTime:   entry.CreateTime,
		})
	}
	return &v1.ListReplenishLogResponseData{
		Total: total,
		List:  items,
	}, nil
}
