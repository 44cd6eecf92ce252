package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team_roster/internal/models"
)

// 用戶名重複時第二次建立必須失敗，第一個用戶不受影響
func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	first := &models.User{Username: "coach1", Password: "hash-a", Role: models.RoleCoach}
	require.NoError(t, repo.Create(first))

	second := &models.User{Username: "coach1", Password: "hash-b", Role: models.RolePlayer}
	err := repo.Create(second)
	assert.ErrorIs(t, err, models.ErrDuplicateUsername)

	// 第一個用戶原封不動
	found, err := repo.FindByUsername("coach1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
	assert.Equal(t, "hash-a", found.Password)
	assert.Equal(t, models.RoleCoach, found.Role)
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindByUsername("nobody")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUserRepository_Count(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.Create(&models.User{Username: "a", Password: "h", Role: models.RoleAdmin}))
	count, err = repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
