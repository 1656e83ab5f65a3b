package service

import (
	"context"

	v1 "keysentry/api/v1"
	"keysentry/internal/model"
	"keysentry/internal/repository"
	"keysentry/pkg/cipher"
	"keysentry/pkg/cloud"
	"keysentry/pkg/log"

	"go.uber.org/zap"
)

type CredentialService interface {
	CreateCredential(ctx context.Context, userId string, req *v1.CreateCredentialRequest) error
	ListCredentials(ctx context.Context, userId string) (*v1.ListCredentialResponseData, error)
	DeleteCredential(ctx context.Context, userId string, id int64) error
}

func NewCredentialService(
	service *Service,
	credRepo repository.CredentialRepository,
	secretCipher cipher.Cipher,
	logger *log.Logger,
) CredentialService {
	return &credentialService{
		credRepo:     credRepo,
		secretCipher: secretCipher,
		Service:      service,
		logger:       logger,
	}
}

type credentialService struct {
	credRepo     repository.CredentialRepository
	secretCipher cipher.Cipher
	*Service
	logger *log.Logger
}

func (s *credentialService) CreateCredential(ctx context.Context, userId string, req *v1.CreateCredentialRequest) error {
	if _, ok := cloud.Get(req.Provider); !ok {
		return v1.ErrUnsupportedProvider
	}
	group := req.Group
	if group == "" {
		group = model.CredentialGroupPersonal
	}
	if group != model.CredentialGroupPersonal && group != model.CredentialGroupRental {
		return v1.ErrInvalidGroup
	}

	encrypted, err := s.secretCipher.Encrypt(req.Secret)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to encrypt credential secret", zap.Error(err))
		return v1.ErrInternalServerError
	}

	cred := &model.Credential{
		UserId:          userId,
		Name:            req.Name,
		Provider:        req.Provider,
		Group:           group,
		EncryptedSecret: encrypted,
		HealthStatus:    model.HealthStatusUnknown,
	}
	if err := s.credRepo.Create(ctx, cred); err != nil {
		s.logger.WithContext(ctx).Error("failed to create credential", zap.Error(err))
		return v1.ErrInternalServerError
	}
	s.credRepo.InvalidateStats(ctx, userId)
	return nil
}

func (s *credentialService) ListCredentials(ctx context.Context, userId string) (*v1.ListCredentialResponseData, error) {
	creds, err := s.credRepo.ListByUser(ctx, userId)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to list credentials", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	items := make([]v1.CredentialItem, 0, len(creds))
	for _, cred := range creds {
		items = append(items, v1.CredentialItem{
			Id:            cred.Id,
			Name:          cred.Name,
			Provider:      cred.Provider,
			Group:         cred.Group,
			HealthStatus:  cred.HealthStatus,
			LastCheckedAt: cred.LastCheckedAt,
			LastError:     cred.LastError,
		})
	}
	return &v1.ListCredentialResponseData{
		Total: int64(len(items)),
		List:  items,
	}, nil
}

func (s *credentialService) DeleteCredential(ctx context.Context, userId string, id int64) error {
	cred, err := s.credRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithContext(ctx).Error("failed to get credential", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if cred == nil {
		return v1.ErrCredentialNotFound
	}
	if cred.UserId != userId {
		return v1.ErrAccessDenied
	}

	if err := s.credRepo.Delete(ctx, id); err != nil {
		s.logger.WithContext(ctx).Error("failed to delete credential", zap.Error(err))
		return v1.ErrInternalServerError
	}
	s.credRepo.InvalidateStats(ctx, userId)
	return nil
}
