package repository

import (
	"context"
	"testing"

	"keysentry/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return &Repository{db: gdb, logger: log.NewLog(viper.New())}, mock
}

func TestUserGetByID(t *testing.T) {
	base, mock := newMockRepo(t)
	repo := NewUserRepository(base)

	rows := sqlmock.NewRows([]string{"id", "user_id", "username", "email", "password", "nickname"}).
		AddRow(1, "u1", "admin", "admin@keysentry.local", "hash", "Admin")
	mock.ExpectQuery("SELECT \\* FROM `user`").WillReturnRows(rows)

	user, err := repo.GetByID(context.Background(), "u1")
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "admin@keysentry.local", user.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByID_NotFound(t *testing.T) {
	base, mock := newMockRepo(t)
	repo := NewUserRepository(base)

	mock.ExpectQuery("SELECT \\* FROM `user`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.GetByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}
