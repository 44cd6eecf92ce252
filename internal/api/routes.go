package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"team_roster/internal/api/handlers"
	"team_roster/internal/auth"
	"team_roster/internal/middleware"
	"team_roster/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	authHandler := handlers.NewAuthHandler(services.User)
	playerHandler := handlers.NewPlayerHandler(services.Player)
	gameHandler := handlers.NewGameHandler(services.Game)
	statHandler := handlers.NewStatHandler(services.Stat)

	// API 路由群組
	api := r.Group("/api")

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 公開路由
	{
		// 用戶登入
		api.POST("/login", authHandler.Login)

		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})
	}

	// 需要驗證的路由
	// 每條路由各自宣告對應的操作，由權限表決定允許的角色
	authorized := api.Group("/")
	authorized.Use(middleware.AuthMiddleware())
	{
		// 球員名冊
		players := authorized.Group("/players")
		{
			players.GET("", middleware.RequireOperation(auth.OpPlayerList), playerHandler.ListPlayers)
			players.GET("/:id", middleware.RequireOperation(auth.OpPlayerList), playerHandler.GetPlayer)
			players.POST("", middleware.RequireOperation(auth.OpPlayerCreate), playerHandler.CreatePlayer)
			players.PUT("/:id", middleware.RequireOperation(auth.OpPlayerUpdate), playerHandler.UpdatePlayer)
			players.DELETE("/:id", middleware.RequireOperation(auth.OpPlayerDelete), playerHandler.DeletePlayer)
		}

		// 比賽記錄
		games := authorized.Group("/games")
		{
			games.GET("", middleware.RequireOperation(auth.OpGameList), gameHandler.ListGames)
			games.GET("/played", middleware.RequireOperation(auth.OpGameList), gameHandler.ListPlayedGames)
			games.GET("/:id", middleware.RequireOperation(auth.OpGameList), gameHandler.GetGame)
			games.POST("", middleware.RequireOperation(auth.OpGameCreate), gameHandler.CreateGame)
			games.PUT("/:id", middleware.RequireOperation(auth.OpGameUpdate), gameHandler.UpdateGame)
			games.DELETE("/:id", middleware.RequireOperation(auth.OpGameDelete), gameHandler.DeleteGame)
		}

		// 統計記錄
		stats := authorized.Group("/stats")
		{
			stats.GET("", middleware.RequireOperation(auth.OpStatList), statHandler.ListStats)
			stats.POST("", middleware.RequireOperation(auth.OpStatCreate), statHandler.CreateStat)
			stats.DELETE("/:id", middleware.RequireOperation(auth.OpStatDelete), statHandler.DeleteStat)
		}

		// 總覽報表
		authorized.GET("/reports", middleware.RequireOperation(auth.OpReport), statHandler.Report)

		// 個人資料
		authorized.GET("/profile", middleware.RequireOperation(auth.OpProfile), authHandler.GetProfile)
		authorized.PUT("/profile", middleware.RequireOperation(auth.OpProfile), authHandler.UpdateProfile)

		// 用戶管理（僅管理員）
		authorized.POST("/users", middleware.RequireOperation(auth.OpUserCreate), authHandler.CreateUser)
	}
}
