package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"keysentry/internal/model"
	"keysentry/pkg/log"

	"github.com/glebarez/sqlite"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSqliteRepo(t *testing.T) *Repository {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Credential{}))
	return &Repository{db: db, logger: log.NewLog(viper.New())}
}

func seedCredentials(t *testing.T, repo CredentialRepository) {
	t.Helper()
	ctx := context.Background()
	creds := []*model.Credential{
		{UserId: "u1", Name: "a", Provider: "vultr", Group: model.CredentialGroupPersonal, HealthStatus: model.HealthStatusHealthy},
		{UserId: "u1", Name: "b", Provider: "vultr", Group: model.CredentialGroupPersonal, HealthStatus: model.HealthStatusUnhealthy},
		{UserId: "u1", Name: "c", Provider: "vultr", Group: model.CredentialGroupRental, HealthStatus: model.HealthStatusHealthy},
		{UserId: "u1", Name: "d", Provider: "linode", Group: model.CredentialGroupPersonal, HealthStatus: model.HealthStatusHealthy},
		{UserId: "u1", Name: "e", Provider: "vultr", Group: model.CredentialGroupPersonal, HealthStatus: model.HealthStatusHealthy},
		{UserId: "u2", Name: "f", Provider: "vultr", Group: model.CredentialGroupPersonal, HealthStatus: model.HealthStatusHealthy},
	}
	for _, cred := range creds {
		require.NoError(t, repo.Create(ctx, cred))
	}
}

func TestListHealthyByGroup_FilterAndOrder(t *testing.T) {
	repo := NewCredentialRepository(newSqliteRepo(t))
	seedCredentials(t, repo)

	creds, err := repo.ListHealthyByGroup(context.Background(), "u1", "vultr", model.CredentialGroupPersonal)
	assert.NoError(t, err)
	require.Len(t, creds, 2)
	// id order keeps selection deterministic across runs
	assert.Equal(t, "a", creds[0].Name)
	assert.Equal(t, "e", creds[1].Name)
	assert.Less(t, creds[0].Id, creds[1].Id)
}

func TestListOwners_Distinct(t *testing.T) {
	repo := NewCredentialRepository(newSqliteRepo(t))
	seedCredentials(t, repo)

	owners, err := repo.ListOwners(context.Background())
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"u1", "u2"}, owners)
}

func TestMarkCheckingAndUpdateHealth(t *testing.T) {
	base := newSqliteRepo(t)
	repo := NewCredentialRepository(base)
	seedCredentials(t, repo)
	ctx := context.Background()

	require.NoError(t, repo.MarkChecking(ctx, []int64{1, 2}))
	cred, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.HealthStatusChecking, cred.HealthStatus)

	checkedAt := time.Now()
	require.NoError(t, repo.UpdateHealth(ctx, 1, model.HealthStatusUnhealthy, checkedAt, "credential invalid or expired"))
	cred, err = repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.HealthStatusUnhealthy, cred.HealthStatus)
	assert.Equal(t, "credential invalid or expired", cred.LastError)
	require.NotNil(t, cred.LastCheckedAt)

	// recovery clears the stored error
	require.NoError(t, repo.UpdateHealth(ctx, 1, model.HealthStatusHealthy, time.Now(), ""))
	cred, err = repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.HealthStatusHealthy, cred.HealthStatus)
	assert.Empty(t, cred.LastError)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := NewCredentialRepository(newSqliteRepo(t))

	cred, err := repo.GetByID(context.Background(), 12345)
	assert.NoError(t, err)
	assert.Nil(t, cred)
}
