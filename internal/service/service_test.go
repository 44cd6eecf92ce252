package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"team_roster/internal/models"
	"team_roster/internal/repository"
	"team_roster/internal/storage"
)

// newTestServices 建立一組連到獨立記憶體 SQLite 的 services
func newTestServices(t *testing.T) *Services {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := storage.NewSQLiteDB(dsn)
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Player{}, &models.Game{}, &models.Stat{})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewServices(repository.NewRepositories(db))
}
