package service

import (
	"context"
	"testing"

	v1 "keysentry/api/v1"
	"keysentry/internal/model"
	mock_repository "keysentry/test/mocks/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newConfigFixture(t *testing.T, ctrl *gomock.Controller) (*mock_repository.MockReplenishConfigRepository, *mock_repository.MockReplenishTaskRepository, ReplenishConfigService) {
	t.Helper()
	configRepo := mock_repository.NewMockReplenishConfigRepository(ctrl)
	taskRepo := mock_repository.NewMockReplenishTaskRepository(ctrl)
	srv, logger := newTestService(t)
	return configRepo, taskRepo, NewReplenishConfigService(srv, configRepo, taskRepo, logger)
}

func TestGetConfig_DefaultsWhenAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	configRepo, _, svc := newConfigFixture(t, ctrl)

	configRepo.EXPECT().GetByUser(gomock.Any(), "u1").Return(nil, nil)

	data, err := svc.GetConfig(context.Background(), "u1")
	assert.NoError(t, err)
	assert.False(t, data.Enabled)
	assert.Equal(t, model.MonitorModeInstances, data.MonitorMode)
	assert.Equal(t, 300, data.CheckInterval)
}

func TestUpdateConfig_IntervalFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	_, _, svc := newConfigFixture(t, ctrl)

	tooLow := 30
	err := svc.UpdateConfig(context.Background(), "u1", &v1.UpdateReplenishConfigRequest{CheckInterval: &tooLow})
	assert.ErrorIs(t, err, v1.ErrInvalidCheckInterval)
}

func TestUpdateConfig_PartialUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	configRepo, _, svc := newConfigFixture(t, ctrl)

	existing := &model.ReplenishConfig{
		UserId:        "u1",
		Enabled:       false,
		MonitorMode:   model.MonitorModeInstances,
		Group:         model.CredentialGroupPersonal,
		CheckInterval: 300,
	}
	configRepo.EXPECT().GetByUser(gomock.Any(), "u1").Return(existing, nil)

	var saved *model.ReplenishConfig
	configRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, conf *model.ReplenishConfig) error {
			saved = conf
			return nil
		})

	enabled := true
	interval := 120
	err := svc.UpdateConfig(context.Background(), "u1", &v1.UpdateReplenishConfigRequest{
		Enabled:       &enabled,
		CheckInterval: &interval,
	})
	assert.NoError(t, err)
	assert.True(t, saved.Enabled)
	assert.Equal(t, 120, saved.CheckInterval)
	// untouched fields keep their values
	assert.Equal(t, model.MonitorModeInstances, saved.MonitorMode)
	assert.Equal(t, model.CredentialGroupPersonal, saved.Group)
}

func TestCreateTask_DuplicateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	_, taskRepo, svc := newConfigFixture(t, ctrl)

	taskRepo.EXPECT().GetByName(gomock.Any(), "u1", "watch-web").
		Return(&model.ReplenishTask{Id: 1, UserId: "u1", TaskName: "watch-web"}, nil)

	err := svc.CreateTask(context.Background(), "u1", &v1.CreateReplenishTaskRequest{TaskName: "watch-web"})
	assert.ErrorIs(t, err, v1.ErrTaskNameAlreadyUse)
}

func TestCreateTask_DefaultsInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	_, taskRepo, svc := newConfigFixture(t, ctrl)

	taskRepo.EXPECT().GetByName(gomock.Any(), "u1", "watch-web").Return(nil, nil)

	var created *model.ReplenishTask
	taskRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task *model.ReplenishTask) error {
			created = task
			return nil
		})

	err := svc.CreateTask(context.Background(), "u1", &v1.CreateReplenishTaskRequest{TaskName: "watch-web"})
	assert.NoError(t, err)
	assert.Equal(t, 300, created.CheckInterval)
}

func TestUpdateTask_Ownership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	_, taskRepo, svc := newConfigFixture(t, ctrl)

	taskRepo.EXPECT().GetByID(gomock.Any(), int64(9)).
		Return(&model.ReplenishTask{Id: 9, UserId: "someone-else", TaskName: "x"}, nil)

	err := svc.UpdateTask(context.Background(), "u1", 9, &v1.UpdateReplenishTaskRequest{})
	assert.ErrorIs(t, err, v1.ErrAccessDenied)
}

func TestDeleteTask_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	_, taskRepo, svc := newConfigFixture(t, ctrl)

	taskRepo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, nil)

	err := svc.DeleteTask(context.Background(), "u1", 9)
	assert.ErrorIs(t, err, v1.ErrNotFound)
}
