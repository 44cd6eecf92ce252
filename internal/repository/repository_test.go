package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"team_roster/internal/models"
	"team_roster/internal/storage"
)

// newTestDB 為每個測試建立一個獨立的記憶體 SQLite 資料庫
// DSN 用測試名稱區隔，測試之間不會互相污染
func newTestDB(t *testing.T) *storage.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := storage.NewSQLiteDB(dsn)
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Player{}, &models.Game{}, &models.Stat{})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// seedPlayer 建立一名球員並回傳
func seedPlayer(t *testing.T, repo PlayerRepository, name string, number int, position string) *models.Player {
	t.Helper()
	player := &models.Player{Name: name, Number: number, Position: position}
	require.NoError(t, repo.Create(player))
	return player
}

// seedGame 建立一場比賽並回傳
func seedGame(t *testing.T, repo GameRepository, date, opponent string) *models.Game {
	t.Helper()
	game := &models.Game{Date: date, Opponent: opponent}
	require.NoError(t, repo.Create(game))
	return game
}

// seedStat 建立一筆統計記錄並回傳
func seedStat(t *testing.T, repo StatRepository, playerID, gameID uint, goals, assists, pim, shots int) *models.Stat {
	t.Helper()
	stat := &models.Stat{
		PlayerID:       playerID,
		GameID:         gameID,
		Goals:          goals,
		Assists:        assists,
		PenaltyMinutes: pim,
		Shots:          shots,
	}
	require.NoError(t, repo.Create(stat))
	return stat
}
