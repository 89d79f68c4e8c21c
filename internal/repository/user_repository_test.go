package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"users-api/internal/customerrors"
)

const (
	insertQuery      = "INSERT INTO users (id, email, name, password_hash)"
	selectByEmail    = "SELECT id, email, name, password_hash, created_at FROM users WHERE email = $1"
	selectByID       = "SELECT id, email, name, password_hash, created_at FROM users WHERE id = $1"
	selectAll        = "SELECT id, email, name, password_hash, created_at FROM users ORDER BY created_at DESC"
	deleteQuery      = "DELETE FROM users WHERE id = $1 RETURNING id, email, name, password_hash, created_at"
	testEmail        = "a@x.com"
	testName         = "Ann"
	testID           = "user_1700000000.123456"
	testPasswordHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoO"
)

var (
	userColumnNames = []string{"id", "email", "name", "password_hash", "created_at"}
	createdAt       = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
)

type testDependencies struct {
	repo    UserRepository
	mock    sqlmock.Sqlmock
	cleanup func()
}

func setupTest(t *testing.T) *testDependencies {
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "Error mocking DB")

	return &testDependencies{
		repo: NewUserRepository(db),
		mock: mock,
		cleanup: func() {
			assert.NoError(t, mock.ExpectationsWereMet(), "Expectations were not met")
			db.Close()
		},
	}
}

func q(query string) string {
	return regexp.QuoteMeta(query)
}

func TestCreate(t *testing.T) {
	hash := testPasswordHash

	testCases := []struct {
		name          string
		passwordHash  *string
		mockSetup     func(sqlmock.Sqlmock)
		expectedError error
		expectHash    bool
	}{
		{
			name:         "WithPassword",
			passwordHash: &hash,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(q(insertQuery)).
					WithArgs(testID, testEmail, testName, testPasswordHash).
					WillReturnRows(sqlmock.NewRows(userColumnNames).
						AddRow(testID, testEmail, testName, testPasswordHash, createdAt))
			},
			expectHash: true,
		},
		{
			name:         "WithoutPassword",
			passwordHash: nil,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(q(insertQuery)).
					WithArgs(testID, testEmail, testName, nil).
					WillReturnRows(sqlmock.NewRows(userColumnNames).
						AddRow(testID, testEmail, testName, nil, createdAt))
			},
		},
		{
			name: "DuplicateEmail",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(q(insertQuery)).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})
			},
			expectedError: customerrors.ErrEmailAlreadyExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deps := setupTest(t)
			defer deps.cleanup()
			tc.mockSetup(deps.mock)

			user, err := deps.repo.Create(context.Background(), testID, testEmail, testName, tc.passwordHash)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testID, user.ID)
			assert.Equal(t, testEmail, user.Email)
			assert.Equal(t, createdAt, user.CreatedAt)
			assert.Equal(t, tc.expectHash, user.HasPassword())
		})
	}
}

func TestCreatePrimaryKeyCollisionIsInternal(t *testing.T) {
	deps := setupTest(t)
	defer deps.cleanup()

	deps.mock.ExpectQuery(q(insertQuery)).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_pkey"})

	_, err := deps.repo.Create(context.Background(), testID, testEmail, testName, nil)

	require.Error(t, err)
	assert.NotErrorIs(t, err, customerrors.ErrEmailAlreadyExists)
}

func TestFindByEmail(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		deps := setupTest(t)
		defer deps.cleanup()

		deps.mock.ExpectQuery(q(selectByEmail)).
			WithArgs(testEmail).
			WillReturnRows(sqlmock.NewRows(userColumnNames).
				AddRow(testID, testEmail, testName, testPasswordHash, createdAt))

		user, err := deps.repo.FindByEmail(context.Background(), testEmail)

		require.NoError(t, err)
		require.NotNil(t, user.PasswordHash)
		assert.Equal(t, testPasswordHash, *user.PasswordHash)
	})

	t.Run("NotFound", func(t *testing.T) {
		deps := setupTest(t)
		defer deps.cleanup()

		deps.mock.ExpectQuery(q(selectByEmail)).
			WithArgs(testEmail).
			WillReturnError(sql.ErrNoRows)

		user, err := deps.repo.FindByEmail(context.Background(), testEmail)

		assert.ErrorIs(t, err, customerrors.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestFindByID(t *testing.T) {
	testCases := []struct {
		name          string
		mockSetup     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(q(selectByID)).
					WithArgs(testID).
					WillReturnRows(sqlmock.NewRows(userColumnNames).
						AddRow(testID, testEmail, testName, nil, createdAt))
			},
		},
		{
			name: "NotFound",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(q(selectByID)).
					WithArgs(testID).
					WillReturnRows(sqlmock.NewRows(userColumnNames))
			},
			expectedError: customerrors.ErrUserNotFound,
		},
		{
			name: "DatabaseError",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(q(selectByID)).
					WithArgs(testID).
					WillReturnError(sql.ErrConnDone)
			},
			expectedError: sql.ErrConnDone,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deps := setupTest(t)
			defer deps.cleanup()
			tc.mockSetup(deps.mock)

			user, err := deps.repo.FindByID(context.Background(), testID)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testName, user.Name)
			assert.False(t, user.HasPassword())
		})
	}
}

func TestList(t *testing.T) {
	t.Run("NewestFirst", func(t *testing.T) {
		deps := setupTest(t)
		defer deps.cleanup()

		newer := createdAt.Add(time.Hour)
		deps.mock.ExpectQuery(q(selectAll)).
			WillReturnRows(sqlmock.NewRows(userColumnNames).
				AddRow("user_2", "b@x.com", "Bob", nil, newer).
				AddRow("user_1", testEmail, testName, testPasswordHash, createdAt))

		users, err := deps.repo.List(context.Background())

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "user_2", users[0].ID)
		assert.Equal(t, "user_1", users[1].ID)
	})

	t.Run("Empty", func(t *testing.T) {
		deps := setupTest(t)
		defer deps.cleanup()

		deps.mock.ExpectQuery(q(selectAll)).WillReturnRows(sqlmock.NewRows(userColumnNames))

		users, err := deps.repo.List(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("DatabaseError", func(t *testing.T) {
		deps := setupTest(t)
		defer deps.cleanup()

		deps.mock.ExpectQuery(q(selectAll)).WillReturnError(errors.New("connection reset"))

		_, err := deps.repo.List(context.Background())

		assert.ErrorContains(t, err, "connection reset")
	})
}

func TestDeleteByID(t *testing.T) {
	t.Run("ReturnsDeletedRow", func(t *testing.T) {
		deps := setupTest(t)
		defer deps.cleanup()

		deps.mock.ExpectQuery(q(deleteQuery)).
			WithArgs(testID).
			WillReturnRows(sqlmock.NewRows(userColumnNames).
				AddRow(testID, testEmail, testName, testPasswordHash, createdAt))

		user, err := deps.repo.DeleteByID(context.Background(), testID)

		require.NoError(t, err)
		assert.Equal(t, testID, user.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		deps := setupTest(t)
		defer deps.cleanup()

		// Only the DELETE runs; no SELECT precedes it.
		deps.mock.ExpectQuery(q(deleteQuery)).
			WithArgs("user_missing").
			WillReturnRows(sqlmock.NewRows(userColumnNames))

		user, err := deps.repo.DeleteByID(context.Background(), "user_missing")

		assert.ErrorIs(t, err, customerrors.ErrUserNotFound)
		assert.Nil(t, user)
	})
}
