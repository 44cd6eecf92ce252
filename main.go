package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"team_roster/internal/api"
	"team_roster/internal/models"
	"team_roster/internal/repository"
	"team_roster/internal/service"
	"team_roster/internal/storage"
	"team_roster/internal/utils"
	"team_roster/pkg/config"
)

func main() {
	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 設定 token 簽章密鑰
	utils.SetSecret(cfg.JWT.Secret)

	// 初始化資料庫連接
	// 部署環境用 PostgreSQL，本機開發可以切到 SQLite 檔案
	var db *storage.DB
	switch cfg.DB.Driver {
	case "postgres":
		db, err = storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
	default:
		db, err = storage.NewSQLiteDB(cfg.DB.Path)
	}
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	// 確保在程序結束時關閉數據庫連接
	defer db.Close()

	// 自動遷移資料庫結構
	if err := db.AutoMigrate(&models.User{}, &models.Player{}, &models.Game{}, &models.Stat{}); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	// 初始化 repositories 和 services
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos)

	// 建立預設管理員帳號（不存在時）
	if err := services.User.EnsureDefaultAdmin(); err != nil {
		log.Fatalf("Failed to seed default admin: %v", err)
	}

	// 設置 Gin 路由
	r := gin.Default()
	api.SetupRoutes(r, services)

	// 啟動伺服器
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
