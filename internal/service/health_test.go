package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"keysentry/internal/model"
	"keysentry/pkg/cloud"
	"keysentry/pkg/log"
	"keysentry/pkg/sid"
	mock_cipher "keysentry/test/mocks/cipher"
	mock_repository "keysentry/test/mocks/repository"

	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) (*Service, *log.Logger) {
	t.Helper()
	logger := log.NewLog(viper.New())
	return NewService(nil, logger, sid.NewSid(), nil), logger
}

// fakeProvider is a controllable cloud.Provider for sweep tests.
type fakeProvider struct {
	name      string
	delay     time.Duration
	accountFn func(apiKey string) (*cloud.AccountInfo, error)
	createFn  func(params cloud.CreateInstanceParams) (*cloud.Instance, error)

	inFlight    int32
	maxInFlight int32
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) GetAccountInfo(ctx context.Context, apiKey string) (*cloud.AccountInfo, error) {
	cur := atomic.AddInt32(&p.inFlight, 1)
	defer atomic.AddInt32(&p.inFlight, -1)
	for {
		max := atomic.LoadInt32(&p.maxInFlight)
		if cur <= max || atomic.CompareAndSwapInt32(&p.maxInFlight, max, cur) {
			break
		}
	}
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	if p.accountFn != nil {
		return p.accountFn(apiKey)
	}
	return &cloud.AccountInfo{}, nil
}

func (p *fakeProvider) CreateInstance(ctx context.Context, apiKey string, params cloud.CreateInstanceParams) (*cloud.Instance, error) {
	if p.createFn != nil {
		return p.createFn(params)
	}
	return &cloud.Instance{ID: "fake-1", Name: params.Name, IPv4: "203.0.113.10", Status: "active", RootPasswordApplied: true}, nil
}

func (p *fakeProvider) Classify(info *cloud.AccountInfo, err error) (cloud.Status, string) {
	if err != nil {
		if apiErr, ok := err.(*cloud.APIError); ok {
			switch apiErr.StatusCode {
			case http.StatusUnauthorized:
				return cloud.StatusUnhealthy, "credential invalid or expired"
			case http.StatusForbidden, http.StatusTooManyRequests:
				return cloud.StatusLimited, apiErr.Message
			}
		}
		return cloud.StatusUnhealthy, err.Error()
	}
	if info != nil && info.Suspended {
		return cloud.StatusUnhealthy, "account suspended"
	}
	return cloud.StatusHealthy, "ok"
}

func testCredentials(provider string, n int) []*model.Credential {
	creds := make([]*model.Credential, 0, n)
	for i := 1; i <= n; i++ {
		creds = append(creds, &model.Credential{
			Id:              int64(i),
			UserId:          "u1",
			Provider:        provider,
			EncryptedSecret: "secret",
		})
	}
	return creds
}

func TestRunSweep_CountsAndPersistence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := &fakeProvider{
		name: "fakesweep-counts",
		accountFn: func(apiKey string) (*cloud.AccountInfo, error) {
			return &cloud.AccountInfo{}, nil
		},
	}
	cloud.Register(provider)

	creds := testCredentials(provider.name, 7)
	// credentials 2 and 5 fail auth, 3 is rate limited
	provider.accountFn = func(apiKey string) (*cloud.AccountInfo, error) {
		switch apiKey {
		case "key-2", "key-5":
			return nil, &cloud.APIError{StatusCode: http.StatusUnauthorized, Message: "bad key"}
		case "key-3":
			return nil, &cloud.APIError{StatusCode: http.StatusTooManyRequests, Message: "rate limited"}
		}
		return &cloud.AccountInfo{}, nil
	}
	for _, cred := range creds {
		cred.EncryptedSecret = fmt.Sprintf("enc-%d", cred.Id)
	}

	cipherMock := mock_cipher.NewMockCipher(ctrl)
	cipherMock.EXPECT().Decrypt(gomock.Any()).DoAndReturn(func(enc string) (string, error) {
		return strings.Replace(enc, "enc-", "key-", 1), nil
	}).Times(7)

	credRepo := mock_repository.NewMockCredentialRepository(ctrl)
	credRepo.EXPECT().ListByUser(gomock.Any(), "u1").Return(creds, nil)
	// 7 credentials at width 3 means 3 consecutive groups
	credRepo.EXPECT().MarkChecking(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	var mu sync.Mutex
	persisted := map[int64]string{}
	persistedErr := map[int64]string{}
	credRepo.EXPECT().UpdateHealth(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, status string, _ time.Time, lastError string) error {
			mu.Lock()
			defer mu.Unlock()
			persisted[id] = status
			persistedErr[id] = lastError
			return nil
		}).Times(7)
	credRepo.EXPECT().InvalidateStats(gomock.Any(), "u1")

	srv, logger := newTestService(t)
	svc := NewHealthService(srv, viper.New(), credRepo, cipherMock, logger)

	summary, err := svc.RunSweep(context.Background(), "u1", 3)
	assert.NoError(t, err)
	assert.Equal(t, 7, summary.Total)
	assert.Equal(t, 4, summary.Healthy)
	assert.Equal(t, 2, summary.Unhealthy)
	assert.Equal(t, 1, summary.Limited)
	assert.Len(t, summary.Results, 7)
	assert.Len(t, persisted, 7)

	assert.Equal(t, model.HealthStatusUnhealthy, persisted[2])
	assert.Equal(t, model.HealthStatusUnhealthy, persisted[5])
	assert.Equal(t, model.HealthStatusLimited, persisted[3])
	assert.Equal(t, model.HealthStatusHealthy, persisted[1])
	// healthy probes must clear the stored error
	assert.Equal(t, "", persistedErr[1])
	assert.Equal(t, "credential invalid or expired", persistedErr[2])
}

func TestRunSweep_ConcurrencyBoundedByWidth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := &fakeProvider{name: "fakesweep-width", delay: 20 * time.Millisecond}
	cloud.Register(provider)

	creds := testCredentials(provider.name, 10)

	cipherMock := mock_cipher.NewMockCipher(ctrl)
	cipherMock.EXPECT().Decrypt(gomock.Any()).Return("key", nil).Times(10)

	credRepo := mock_repository.NewMockCredentialRepository(ctrl)
	credRepo.EXPECT().ListByUser(gomock.Any(), "u1").Return(creds, nil)
	credRepo.EXPECT().MarkChecking(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	credRepo.EXPECT().UpdateHealth(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(10)
	credRepo.EXPECT().InvalidateStats(gomock.Any(), "u1")

	srv, logger := newTestService(t)
	svc := NewHealthService(srv, viper.New(), credRepo, cipherMock, logger)

	summary, err := svc.RunSweep(context.Background(), "u1", 4)
	assert.NoError(t, err)
	assert.Equal(t, 10, summary.Total)
	assert.LessOrEqual(t, atomic.LoadInt32(&provider.maxInFlight), int32(4))
}

func TestRunSweep_UnsupportedProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creds := []*model.Credential{{Id: 1, UserId: "u1", Provider: "nonexistent-cloud", EncryptedSecret: "x"}}

	cipherMock := mock_cipher.NewMockCipher(ctrl)

	credRepo := mock_repository.NewMockCredentialRepository(ctrl)
	credRepo.EXPECT().ListByUser(gomock.Any(), "u1").Return(creds, nil)
	credRepo.EXPECT().MarkChecking(gomock.Any(), []int64{1}).Return(nil)
	credRepo.EXPECT().UpdateHealth(gomock.Any(), int64(1), model.HealthStatusUnhealthy, gomock.Any(), "unsupported provider: nonexistent-cloud").Return(nil)
	credRepo.EXPECT().InvalidateStats(gomock.Any(), "u1")

	srv, logger := newTestService(t)
	svc := NewHealthService(srv, viper.New(), credRepo, cipherMock, logger)

	summary, err := svc.RunSweep(context.Background(), "u1", 5)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Unhealthy)
	assert.Equal(t, "unsupported provider: nonexistent-cloud", summary.Results[0].Reason)
}

func TestRunSweep_DecryptFailureIsUnhealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := &fakeProvider{name: "fakesweep-decrypt"}
	cloud.Register(provider)
	creds := testCredentials(provider.name, 1)

	cipherMock := mock_cipher.NewMockCipher(ctrl)
	cipherMock.EXPECT().Decrypt(gomock.Any()).Return("", assert.AnError)

	credRepo := mock_repository.NewMockCredentialRepository(ctrl)
	credRepo.EXPECT().ListByUser(gomock.Any(), "u1").Return(creds, nil)
	credRepo.EXPECT().MarkChecking(gomock.Any(), gomock.Any()).Return(nil)
	credRepo.EXPECT().UpdateHealth(gomock.Any(), int64(1), model.HealthStatusUnhealthy, gomock.Any(), gomock.Any()).Return(nil)
	credRepo.EXPECT().InvalidateStats(gomock.Any(), "u1")

	srv, logger := newTestService(t)
	svc := NewHealthService(srv, viper.New(), credRepo, cipherMock, logger)

	summary, err := svc.RunSweep(context.Background(), "u1", 5)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Unhealthy)
	assert.Contains(t, summary.Results[0].Reason, "failed to decrypt secret")
}
