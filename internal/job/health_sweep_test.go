package job

import (
	"context"
	"testing"

	v1 "keysentry/api/v1"
	"keysentry/internal/model"
	"keysentry/pkg/log"
	"keysentry/pkg/sid"
	mock_repository "keysentry/test/mocks/repository"
	mock_service "keysentry/test/mocks/service"

	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

type sweepFixture struct {
	credRepo   *mock_repository.MockCredentialRepository
	configRepo *mock_repository.MockReplenishConfigRepository
	healthSvc  *mock_service.MockHealthService
	notifySvc  *mock_service.MockNotifyService
	job        HealthSweepJob
}

func newSweepFixture(t *testing.T, ctrl *gomock.Controller) *sweepFixture {
	t.Helper()
	f := &sweepFixture{
		credRepo:   mock_repository.NewMockCredentialRepository(ctrl),
		configRepo: mock_repository.NewMockReplenishConfigRepository(ctrl),
		healthSvc:  mock_service.NewMockHealthService(ctrl),
		notifySvc:  mock_service.NewMockNotifyService(ctrl),
	}
	logger := log.NewLog(viper.New())
	base := NewJob(nil, logger, sid.NewSid())
	f.job = NewHealthSweepJob(base, f.credRepo, f.configRepo, f.healthSvc, f.notifySvc)
	return f
}

func TestRun_NotificationFailureIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSweepFixture(t, ctrl)

	f.credRepo.EXPECT().ListOwners(gomock.Any()).Return([]string{"u1", "u2"}, nil)
	f.configRepo.EXPECT().GetByUser(gomock.Any(), gomock.Any()).
		Return(&model.ReplenishConfig{NotifyEnabled: true}, nil).Times(2)

	s1 := &v1.SweepSummary{Total: 2, Healthy: 2}
	s2 := &v1.SweepSummary{Total: 1, Unhealthy: 1}
	f.healthSvc.EXPECT().RunSweep(gomock.Any(), "u1", 0).Return(s1, nil)
	f.healthSvc.EXPECT().RunSweep(gomock.Any(), "u2", 0).Return(s2, nil)

	// u1's webhook blows up; u2 must still be swept and notified
	f.notifySvc.EXPECT().NotifySweep(gomock.Any(), "u1", s1).Return(assert.AnError)
	f.notifySvc.EXPECT().NotifySweep(gomock.Any(), "u2", s2).Return(nil)
	f.notifySvc.EXPECT().NotifyOperator(gomock.Any(), map[string]*v1.SweepSummary{"u1": s1, "u2": s2}).Return(nil)

	err := f.job.Run(context.Background())
	assert.NoError(t, err)
}

func TestRun_SweepFailureSkipsOnlyThatUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSweepFixture(t, ctrl)

	f.credRepo.EXPECT().ListOwners(gomock.Any()).Return([]string{"u1", "u2"}, nil)
	f.configRepo.EXPECT().GetByUser(gomock.Any(), gomock.Any()).
		Return(&model.ReplenishConfig{NotifyEnabled: true}, nil).Times(2)

	s2 := &v1.SweepSummary{Total: 3, Healthy: 3}
	f.healthSvc.EXPECT().RunSweep(gomock.Any(), "u1", 0).Return(nil, assert.AnError)
	f.healthSvc.EXPECT().RunSweep(gomock.Any(), "u2", 0).Return(s2, nil)

	f.notifySvc.EXPECT().NotifySweep(gomock.Any(), "u2", s2).Return(nil)
	f.notifySvc.EXPECT().NotifyOperator(gomock.Any(), map[string]*v1.SweepSummary{"u2": s2}).Return(nil)

	err := f.job.Run(context.Background())
	assert.NoError(t, err)
}

func TestRun_IntervalNotElapsedSkipsUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSweepFixture(t, ctrl)

	f.credRepo.EXPECT().ListOwners(gomock.Any()).Return([]string{"u1"}, nil).Times(2)
	f.configRepo.EXPECT().GetByUser(gomock.Any(), "u1").
		Return(&model.ReplenishConfig{NotifyEnabled: true}, nil).Times(2)

	s1 := &v1.SweepSummary{Total: 1, Healthy: 1}
	// only the first tick sweeps; the second is inside the interval
	f.healthSvc.EXPECT().RunSweep(gomock.Any(), "u1", 0).Return(s1, nil).Times(1)
	f.notifySvc.EXPECT().NotifySweep(gomock.Any(), "u1", s1).Return(nil).Times(1)
	f.notifySvc.EXPECT().NotifyOperator(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	assert.NoError(t, f.job.Run(context.Background()))
	assert.NoError(t, f.job.Run(context.Background()))
}

func TestRun_PersonalSummaryIsOptIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSweepFixture(t, ctrl)

	f.credRepo.EXPECT().ListOwners(gomock.Any()).Return([]string{"u1", "u2", "u3"}, nil)
	f.configRepo.EXPECT().GetByUser(gomock.Any(), "u1").
		Return(&model.ReplenishConfig{NotifyEnabled: true}, nil)
	f.configRepo.EXPECT().GetByUser(gomock.Any(), "u2").
		Return(&model.ReplenishConfig{NotifyEnabled: false}, nil)
	// no config row at all means notifications were never enabled
	f.configRepo.EXPECT().GetByUser(gomock.Any(), "u3").Return(nil, nil)

	s1 := &v1.SweepSummary{Total: 2, Healthy: 2}
	s2 := &v1.SweepSummary{Total: 1, Unhealthy: 1}
	s3 := &v1.SweepSummary{Total: 1, Healthy: 1}
	f.healthSvc.EXPECT().RunSweep(gomock.Any(), "u1", 0).Return(s1, nil)
	f.healthSvc.EXPECT().RunSweep(gomock.Any(), "u2", 0).Return(s2, nil)
	f.healthSvc.EXPECT().RunSweep(gomock.Any(), "u3", 0).Return(s3, nil)

	// only the opted-in user gets a personal summary
	f.notifySvc.EXPECT().NotifySweep(gomock.Any(), "u1", s1).Return(nil)

	// everyone still appears in the operator report
	f.notifySvc.EXPECT().NotifyOperator(gomock.Any(), map[string]*v1.SweepSummary{
		"u1": s1, "u2": s2, "u3": s3,
	}).Return(nil)

	err := f.job.Run(context.Background())
	assert.NoError(t, err)
}

func TestRun_ListOwnersFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSweepFixture(t, ctrl)

	f.credRepo.EXPECT().ListOwners(gomock.Any()).Return(nil, assert.AnError)

	err := f.job.Run(context.Background())
	assert.Error(t, err)
}
