package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/kaitoh/sns-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return NewUserRepository(db), mock
}

func TestGormUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo, mock := setupMockRepo(t)

	// MySQL error 1062: duplicate entry for a unique key. The driver error
	// must come back as ErrDuplicateEmail, untouched by any pre-check.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@x.com' for key 'users.idx_users_email'"})
	mock.ExpectRollback()

	err := repo.Create(&models.User{Email: "a@x.com", IsActive: true})
	require.ErrorIs(t, err, ErrDuplicateEmail)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_Create_OK(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	user := &models.User{Email: "a@x.com", IsActive: true}
	require.NoError(t, repo.Create(user))
	require.EqualValues(t, 1, user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	repo, mock := setupMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "email", "is_active"}).
		AddRow(7, "a@x.com", true)
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WithArgs("a@x.com", 1).
		WillReturnRows(rows)

	user, err := repo.FindByEmail("a@x.com")
	require.NoError(t, err)
	require.EqualValues(t, 7, user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
