package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team_roster/internal/models"
)

func TestGameRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewGameRepository(db)

	created := seedGame(t, repo, "2026-02-01", "HK Liepāja")

	found, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", found.Date)
	assert.Equal(t, "HK Liepāja", found.Opponent)
}

// 日期排序是降冪，最近的比賽在最前面
func TestGameRepository_FindAll_SortByDateDescending(t *testing.T) {
	db := newTestDB(t)
	repo := NewGameRepository(db)

	seedGame(t, repo, "2026-01-10", "HK Rīga")
	seedGame(t, repo, "2026-03-05", "HK Liepāja")
	seedGame(t, repo, "2026-02-01", "HK Zemgale")

	games, err := repo.FindAll("date")
	require.NoError(t, err)
	require.Len(t, games, 3)
	assert.Equal(t, "2026-03-05", games[0].Date)
	assert.Equal(t, "2026-02-01", games[1].Date)
	assert.Equal(t, "2026-01-10", games[2].Date)
}

func TestGameRepository_FindAll_SortByOpponent(t *testing.T) {
	db := newTestDB(t)
	repo := NewGameRepository(db)

	seedGame(t, repo, "2026-01-10", "HK Rīga")
	seedGame(t, repo, "2026-03-05", "HK Liepāja")

	games, err := repo.FindAll("opponent")
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "HK Liepāja", games[0].Opponent)
}

// 未知排序鍵退回插入順序
func TestGameRepository_FindAll_UnknownSortKeyFallsBack(t *testing.T) {
	db := newTestDB(t)
	repo := NewGameRepository(db)

	seedGame(t, repo, "2026-03-05", "HK Liepāja")
	seedGame(t, repo, "2026-01-10", "HK Rīga")

	unsorted, err := repo.FindAll("")
	require.NoError(t, err)
	unknown, err := repo.FindAll("nosuchkey")
	require.NoError(t, err)

	assert.Equal(t, unsorted, unknown)
}

// 只列出日期在給定日期（含）之前的比賽
func TestGameRepository_FindPlayed(t *testing.T) {
	db := newTestDB(t)
	repo := NewGameRepository(db)

	seedGame(t, repo, "2026-01-10", "HK Rīga")
	seedGame(t, repo, "2026-06-15", "HK Zemgale")
	seedGame(t, repo, "2026-03-01", "HK Liepāja")

	games, err := repo.FindPlayed("2026-03-01")
	require.NoError(t, err)
	require.Len(t, games, 2)
	for _, g := range games {
		assert.LessOrEqual(t, g.Date, "2026-03-01")
	}
}

// 刪除比賽必須連同其所有統計記錄一起消失
func TestGameRepository_Delete_CascadesStats(t *testing.T) {
	db := newTestDB(t)
	playerRepo := NewPlayerRepository(db)
	gameRepo := NewGameRepository(db)
	statRepo := NewStatRepository(db)

	player := seedPlayer(t, playerRepo, "Jānis", 9, "Forward")
	target := seedGame(t, gameRepo, "2026-01-10", "HK Rīga")
	other := seedGame(t, gameRepo, "2026-02-01", "HK Zemgale")

	seedStat(t, statRepo, player.ID, target.ID, 1, 0, 0, 2)
	kept := seedStat(t, statRepo, player.ID, other.ID, 0, 1, 2, 4)

	require.NoError(t, gameRepo.Delete(target.ID))

	_, err := gameRepo.FindByID(target.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Stat{}).Where("game_id = ?", target.ID).Count(&count).Error)
	assert.Zero(t, count)

	survivor, err := statRepo.FindByID(kept.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, survivor.GameID)
}
