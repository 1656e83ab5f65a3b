package service

import (
	"context"
	"net/http"
	"testing"

	v1 "keysentry/api/v1"
	"keysentry/internal/model"
	"keysentry/pkg/cloud"
	mock_cipher "keysentry/test/mocks/cipher"
	mock_repository "keysentry/test/mocks/repository"
	mock_service "keysentry/test/mocks/service"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

type replenishFixture struct {
	credRepo   *mock_repository.MockCredentialRepository
	tplRepo    *mock_repository.MockInstanceTemplateRepository
	logRepo    *mock_repository.MockReplenishLogRepository
	configRepo *mock_repository.MockReplenishConfigRepository
	cipher     *mock_cipher.MockCipher
	notify     *mock_service.MockNotifyService
	svc        ReplenishService
}

func newReplenishFixture(t *testing.T, ctrl *gomock.Controller) *replenishFixture {
	t.Helper()
	f := &replenishFixture{
		credRepo:   mock_repository.NewMockCredentialRepository(ctrl),
		tplRepo:    mock_repository.NewMockInstanceTemplateRepository(ctrl),
		logRepo:    mock_repository.NewMockReplenishLogRepository(ctrl),
		configRepo: mock_repository.NewMockReplenishConfigRepository(ctrl),
		cipher:     mock_cipher.NewMockCipher(ctrl),
		notify:     mock_service.NewMockNotifyService(ctrl),
	}
	srv, logger := newTestService(t)
	f.svc = NewReplenishService(srv, f.credRepo, f.tplRepo, f.logRepo, f.configRepo, f.cipher, f.notify, logger)
	return f
}

func testTemplate(provider string) *model.InstanceTemplate {
	return &model.InstanceTemplate{
		Id:           10,
		UserId:       "u1",
		TemplateName: "web",
		Provider:     provider,
		Region:       "sgp",
		Plan:         "small",
		Image:        "debian-12",
	}
}

func TestTrigger_SuccessWithExplicitCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newReplenishFixture(t, ctrl)

	provider := &fakeProvider{name: "fakerep-success"}
	cloud.Register(provider)
	tpl := testTemplate(provider.name)

	f.tplRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(tpl, nil)

	var created *model.ReplenishLogEntry
	f.logRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *model.ReplenishLogEntry) error {
			assert.Equal(t, model.ReplenishStatusPending, entry.Status)
			assert.Equal(t, model.TriggerManual, entry.Trigger)
			entry.Id = 99
			created = entry
			return nil
		})

	f.credRepo.EXPECT().GetByID(gomock.Any(), int64(5)).
		Return(&model.Credential{Id: 5, UserId: "u1", Provider: provider.name, EncryptedSecret: "enc"}, nil)
	f.cipher.EXPECT().Decrypt("enc").Return("apikey", nil)

	var finalized *model.ReplenishLogEntry
	f.logRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *model.ReplenishLogEntry) error {
			finalized = entry
			return nil
		})
	f.notify.EXPECT().NotifyReplenish(gomock.Any(), "u1", gomock.Any()).Return(nil)

	data, err := f.svc.Trigger(context.Background(), "u1", &v1.TriggerReplenishRequest{
		TemplateId:   10,
		CredentialId: 5,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(99), data.LogId)
	assert.Equal(t, "fake-1", data.Instance.Id)
	assert.True(t, data.PasswordApplied)
	assert.Len(t, data.RootPassword, passwordLength)

	assert.Same(t, created, finalized)
	assert.Equal(t, model.ReplenishStatusSuccess, finalized.Status)
	assert.Equal(t, int64(5), finalized.CredentialId)
	assert.Equal(t, "fake-1", finalized.NewInstanceId)
	assert.Equal(t, "203.0.113.10", finalized.NewIPv4)
}

func TestTrigger_NoHealthyCredentialLeavesFailedEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newReplenishFixture(t, ctrl)

	provider := &fakeProvider{name: "fakerep-nohealthy"}
	cloud.Register(provider)
	tpl := testTemplate(provider.name)

	f.tplRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(tpl, nil)

	var created *model.ReplenishLogEntry
	f.logRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *model.ReplenishLogEntry) error {
			entry.Id = 100
			created = entry
			return nil
		})
	f.credRepo.EXPECT().ListHealthyByGroup(gomock.Any(), "u1", provider.name, model.CredentialGroupPersonal).
		Return(nil, nil)

	var finalized *model.ReplenishLogEntry
	f.logRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *model.ReplenishLogEntry) error {
			finalized = entry
			return nil
		})
	f.notify.EXPECT().NotifyReplenish(gomock.Any(), "u1", gomock.Any()).Return(nil)

	_, err := f.svc.Trigger(context.Background(), "u1", &v1.TriggerReplenishRequest{
		TemplateId: 10,
		Group:      model.CredentialGroupPersonal,
	})
	assert.ErrorIs(t, err, v1.ErrNoHealthyCredential)

	// even a run that never reached the provider leaves an audit trace
	assert.NotNil(t, created)
	assert.Same(t, created, finalized)
	assert.Equal(t, model.ReplenishStatusFailed, finalized.Status)
	assert.NotEmpty(t, finalized.ErrorMessage)
}

func TestTrigger_ProviderFailurePreservesMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newReplenishFixture(t, ctrl)

	createErr := &cloud.APIError{StatusCode: http.StatusPaymentRequired, Message: "insufficient account balance"}
	provider := &fakeProvider{
		name: "fakerep-fail",
		createFn: func(params cloud.CreateInstanceParams) (*cloud.Instance, error) {
			return nil, createErr
		},
	}
	cloud.Register(provider)
	tpl := testTemplate(provider.name)

	f.tplRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(tpl, nil)
	f.logRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *model.ReplenishLogEntry) error {
			entry.Id = 101
			return nil
		})
	f.credRepo.EXPECT().GetByID(gomock.Any(), int64(5)).
		Return(&model.Credential{Id: 5, UserId: "u1", Provider: provider.name, EncryptedSecret: "enc"}, nil)
	f.cipher.EXPECT().Decrypt("enc").Return("apikey", nil)

	var finalized *model.ReplenishLogEntry
	f.logRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *model.ReplenishLogEntry) error {
			finalized = entry
			return nil
		})
	f.notify.EXPECT().NotifyReplenish(gomock.Any(), "u1", gomock.Any()).Return(nil)

	_, err := f.svc.Trigger(context.Background(), "u1", &v1.TriggerReplenishRequest{
		TemplateId:   10,
		CredentialId: 5,
	})
	assert.ErrorIs(t, err, v1.ErrReplenishCreateFailed)
	assert.Equal(t, model.ReplenishStatusFailed, finalized.Status)
	assert.Equal(t, createErr.Error(), finalized.ErrorMessage)
}

func TestTrigger_ProviderGeneratedPasswordNotReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newReplenishFixture(t, ctrl)

	// mimics DigitalOcean, which mails its own root password
	provider := &fakeProvider{
		name: "fakerep-nopass",
		createFn: func(params cloud.CreateInstanceParams) (*cloud.Instance, error) {
			return &cloud.Instance{ID: "fake-2", Name: params.Name, IPv4: "203.0.113.11", Status: "active"}, nil
		},
	}
	cloud.Register(provider)
	tpl := testTemplate(provider.name)

	f.tplRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(tpl, nil)
	f.logRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.credRepo.EXPECT().GetByID(gomock.Any(), int64(5)).
		Return(&model.Credential{Id: 5, UserId: "u1", Provider: provider.name, EncryptedSecret: "enc"}, nil)
	f.cipher.EXPECT().Decrypt("enc").Return("apikey", nil)

	var finalized *model.ReplenishLogEntry
	f.logRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *model.ReplenishLogEntry) error {
			finalized = entry
			return nil
		})
	f.notify.EXPECT().NotifyReplenish(gomock.Any(), "u1", gomock.Any()).Return(nil)

	data, err := f.svc.Trigger(context.Background(), "u1", &v1.TriggerReplenishRequest{
		TemplateId:   10,
		CredentialId: 5,
	})
	assert.NoError(t, err)
	assert.False(t, data.PasswordApplied)
	assert.Empty(t, data.RootPassword)
	// the log must not record a password the instance doesn't have
	assert.Empty(t, finalized.RootPassword)
}

func TestTrigger_NotificationFailureDoesNotFailTrigger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newReplenishFixture(t, ctrl)

	provider := &fakeProvider{name: "fakerep-notify"}
	cloud.Register(provider)
	tpl := testTemplate(provider.name)

	f.tplRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(tpl, nil)
	f.logRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.credRepo.EXPECT().GetByID(gomock.Any(), int64(5)).
		Return(&model.Credential{Id: 5, UserId: "u1", Provider: provider.name, EncryptedSecret: "enc"}, nil)
	f.cipher.EXPECT().Decrypt("enc").Return("apikey", nil)

	var finalized *model.ReplenishLogEntry
	f.logRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *model.ReplenishLogEntry) error {
			finalized = entry
			return nil
		})
	f.notify.EXPECT().NotifyReplenish(gomock.Any(), "u1", gomock.Any()).Return(assert.AnError)

	data, err := f.svc.Trigger(context.Background(), "u1", &v1.TriggerReplenishRequest{
		TemplateId:   10,
		CredentialId: 5,
	})
	assert.NoError(t, err)
	assert.NotNil(t, data)
	// the log entry was finalized before notification was attempted
	assert.Equal(t, model.ReplenishStatusSuccess, finalized.Status)
}

func TestTrigger_TemplateNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newReplenishFixture(t, ctrl)

	f.tplRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(nil, nil)

	_, err := f.svc.Trigger(context.Background(), "u1", &v1.TriggerReplenishRequest{TemplateId: 10})
	assert.ErrorIs(t, err, v1.ErrTemplateNotFound)
}

func TestTrigger_TemplateOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newReplenishFixture(t, ctrl)

	tpl := testTemplate("vultr")
	tpl.UserId = "someone-else"
	f.tplRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(tpl, nil)

	_, err := f.svc.Trigger(context.Background(), "u1", &v1.TriggerReplenishRequest{TemplateId: 10})
	assert.ErrorIs(t, err, v1.ErrAccessDenied)
}

func TestTrigger_ExplicitCredentialOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newReplenishFixture(t, ctrl)

	provider := &fakeProvider{name: "fakerep-owner"}
	cloud.Register(provider)
	tpl := testTemplate(provider.name)

	f.tplRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(tpl, nil)
	f.logRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.credRepo.EXPECT().GetByID(gomock.Any(), int64(7)).
		Return(&model.Credential{Id: 7, UserId: "intruded", Provider: provider.name}, nil)
	f.logRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	f.notify.EXPECT().NotifyReplenish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Trigger(context.Background(), "u1", &v1.TriggerReplenishRequest{
		TemplateId:   10,
		CredentialId: 7,
	})
	assert.ErrorIs(t, err, v1.ErrAccessDenied)
}

func TestTrigger_GroupFallsBackToConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newReplenishFixture(t, ctrl)

	provider := &fakeProvider{name: "fakerep-group"}
	cloud.Register(provider)
	tpl := testTemplate(provider.name)

	f.tplRepo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(tpl, nil)
	f.logRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.configRepo.EXPECT().GetByUser(gomock.Any(), "u1").
		Return(&model.ReplenishConfig{UserId: "u1", Group: model.CredentialGroupRental}, nil)
	f.credRepo.EXPECT().ListHealthyByGroup(gomock.Any(), "u1", provider.name, model.CredentialGroupRental).
		Return([]*model.Credential{{Id: 3, UserId: "u1", Provider: provider.name, EncryptedSecret: "enc"}}, nil)
	f.cipher.EXPECT().Decrypt("enc").Return("apikey", nil)
	f.logRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	f.notify.EXPECT().NotifyReplenish(gomock.Any(), "u1", gomock.Any()).Return(nil)

	data, err := f.svc.Trigger(context.Background(), "u1", &v1.TriggerReplenishRequest{TemplateId: 10})
	assert.NoError(t, err)
	assert.NotNil(t, data)
}

func TestTrigger_InvalidTriggerType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newReplenishFixture(t, ctrl)

	_, err := f.svc.Trigger(context.Background(), "u1", &v1.TriggerReplenishRequest{
		TemplateId: 10,
		Trigger:    "cosmic-ray",
	})
	assert.ErrorIs(t, err, v1.ErrBadRequest)
}
