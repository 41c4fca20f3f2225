package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/mylink/services/auth"
)

// tokenKeyArg matches a freshly generated 40 character hex key
type tokenKeyArg struct{}

func (tokenKeyArg) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok || len(s) != 40 {
		return false
	}
	for _, r := range s {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			return false
		}
	}
	return true
}

func TestObtainOrCreateToken(t *testing.T) {
	userID := uuid.New()

	t.Run("creates token on first login", func(t *testing.T) {
		// Arrange
		repo, mock := setupAuthRepoTest(t)
		mock.ExpectQuery("^INSERT INTO auth_tokens (.+) ON CONFLICT \\(user_id\\) DO NOTHING RETURNING key").
			WithArgs(tokenKeyArg{}, userID, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"key"}).AddRow("9944b09199c62bcf9418ad846dd0e4bbdfc6ee4b"))

		// Act
		key, err := repo.ObtainOrCreateToken(context.Background(), userID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "9944b09199c62bcf9418ad846dd0e4bbdfc6ee4b", key)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns existing token", func(t *testing.T) {
		repo, mock := setupAuthRepoTest(t)
		mock.ExpectQuery("^INSERT INTO auth_tokens").
			WithArgs(tokenKeyArg{}, userID, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"key"}))
		mock.ExpectQuery("^SELECT key FROM auth_tokens WHERE user_id = \\$1").
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"key"}).AddRow("existing"))

		key, err := repo.ObtainOrCreateToken(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, "existing", key)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert error", func(t *testing.T) {
		repo, mock := setupAuthRepoTest(t)
		mock.ExpectQuery("^INSERT INTO auth_tokens").
			WillReturnError(errors.New("foreign key violation"))

		key, err := repo.ObtainOrCreateToken(context.Background(), userID)

		assert.Empty(t, key)
		assert.ErrorContains(t, err, "failed to create token")
	})
}

func TestGetUserByToken(t *testing.T) {
	userID := uuid.New()

	t.Run("resolves user", func(t *testing.T) {
		repo, mock := setupAuthRepoTest(t)
		rows := sqlmock.NewRows(userCols).AddRow(userID.String(), "998901234567", true, false, true, time.Now())
		mock.ExpectQuery("^SELECT (.+) FROM auth_tokens t JOIN users u ON u.id = t.user_id WHERE t.key = \\$1").
			WithArgs("abc").
			WillReturnRows(rows)

		user, err := repo.GetUserByToken(context.Background(), "abc")

		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown token", func(t *testing.T) {
		repo, mock := setupAuthRepoTest(t)
		mock.ExpectQuery("^SELECT (.+) FROM auth_tokens").
			WithArgs("nope").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByToken(context.Background(), "nope")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock := setupAuthRepoTest(t)
		mock.ExpectQuery("^SELECT (.+) FROM auth_tokens").
			WillReturnError(errors.New("timeout"))

		_, err := repo.GetUserByToken(context.Background(), "abc")

		assert.ErrorContains(t, err, "failed to get user by token")
		assert.NotErrorIs(t, err, auth.ErrUserNotFound)
	})
}
