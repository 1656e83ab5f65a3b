package service

import (
	"context"
	"testing"

	v1 "keysentry/api/v1"
	"keysentry/internal/model"
	"keysentry/pkg/sid"
	mock_repository "keysentry/test/mocks/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passthroughTm runs the callback without a real transaction.
type passthroughTm struct{}

func (passthroughTm) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTemplateFixture(t *testing.T, ctrl *gomock.Controller) (*mock_repository.MockInstanceTemplateRepository, TemplateService) {
	t.Helper()
	tplRepo := mock_repository.NewMockInstanceTemplateRepository(ctrl)
	_, logger := newTestService(t)
	srv := NewService(passthroughTm{}, logger, sid.NewSid(), nil)
	return tplRepo, NewTemplateService(srv, tplRepo, logger)
}

func TestCreateTemplate_UnsupportedProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	_, svc := newTemplateFixture(t, ctrl)

	err := svc.CreateTemplate(context.Background(), "u1", &v1.CreateTemplateRequest{
		TemplateName: "web",
		Provider:     "aws",
		Region:       "us-east-1",
		Plan:         "small",
		Image:        "debian-12",
	})
	assert.ErrorIs(t, err, v1.ErrUnsupportedProvider)
}

func TestSetDefaultTemplate_ClearsPreviousDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tplRepo, svc := newTemplateFixture(t, ctrl)

	tplRepo.EXPECT().GetByID(gomock.Any(), int64(3)).
		Return(&model.InstanceTemplate{Id: 3, UserId: "u1", Provider: "vultr"}, nil)

	// old default for the same user+provider is cleared before the new one is set
	gomock.InOrder(
		tplRepo.EXPECT().ClearDefault(gomock.Any(), "u1", "vultr").Return(nil),
		tplRepo.EXPECT().SetDefault(gomock.Any(), int64(3)).Return(nil),
	)

	err := svc.SetDefaultTemplate(context.Background(), "u1", 3)
	assert.NoError(t, err)
}

func TestSetDefaultTemplate_ClearFailureAbortsSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tplRepo, svc := newTemplateFixture(t, ctrl)

	tplRepo.EXPECT().GetByID(gomock.Any(), int64(3)).
		Return(&model.InstanceTemplate{Id: 3, UserId: "u1", Provider: "vultr"}, nil)
	tplRepo.EXPECT().ClearDefault(gomock.Any(), "u1", "vultr").Return(assert.AnError)

	err := svc.SetDefaultTemplate(context.Background(), "u1", 3)
	assert.ErrorIs(t, err, v1.ErrInternalServerError)
}

func TestSetDefaultTemplate_Ownership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tplRepo, svc := newTemplateFixture(t, ctrl)

	tplRepo.EXPECT().GetByID(gomock.Any(), int64(3)).
		Return(&model.InstanceTemplate{Id: 3, UserId: "someone-else", Provider: "vultr"}, nil)

	err := svc.SetDefaultTemplate(context.Background(), "u1", 3)
	assert.ErrorIs(t, err, v1.ErrAccessDenied)
}

func TestGetTemplate_MasksRootPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tplRepo, svc := newTemplateFixture(t, ctrl)

	tplRepo.EXPECT().GetByID(gomock.Any(), int64(5)).
		Return(&model.InstanceTemplate{
			Id:           5,
			UserId:       "u1",
			TemplateName: "web",
			Provider:     "vultr",
			RootPassword: "pinned-secret",
		}, nil)

	detail, err := svc.GetTemplate(context.Background(), "u1", 5)
	require.NoError(t, err)
	assert.True(t, detail.HasPassword)
}
