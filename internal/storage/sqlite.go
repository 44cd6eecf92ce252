package storage

import (
	"fmt"

	moderncSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

// NewSQLiteDB 建立到 SQLite 檔案的連線（本機開發與測試使用）
// 使用 modernc 的純 Go 驅動，不需要 cgo
func NewSQLiteDB(path string) (*DB, error) {
	db, err := gorm.Open(moderncSqlite.New(moderncSqlite.Config{
		DSN:        path,
		DriverName: "sqlite",
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// 確保 SQLite 檢查外鍵
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}

	return &DB{DB: db}, nil
}
