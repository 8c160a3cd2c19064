package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/classroom-availability-api/internal/models"
)

func TestFindByUsernameAndRole(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"username", "password", "role"}).
		AddRow("alice", "$2a$10$hash", string(models.RoleStudent))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT username, password, role FROM Users WHERE username = ? AND role = ?")).
		WithArgs("alice", "student").
		WillReturnRows(rows)

	users, err := repo.FindByUsernameAndRole(context.Background(), "alice", "student")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleStudent, users[0].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUsernameAndRoleNoRows(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery("FROM Users").
		WithArgs("' OR 1=1 --", "admin").
		WillReturnRows(sqlmock.NewRows([]string{"username", "password", "role"}))

	users, err := repo.FindByUsernameAndRole(context.Background(), "' OR 1=1 --", "admin")
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUsernameAndRoleError(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery("FROM Users").WillReturnError(errors.New("timeout"))

	_, err := repo.FindByUsernameAndRole(context.Background(), "alice", "student")
	require.Error(t, err)
}
