package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"team_roster/internal/service"
)

// GameHandler 處理與比賽記錄相關的請求
type GameHandler struct {
	gameService *service.GameService
}

// NewGameHandler 創建一個新的 GameHandler 實例
func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// GameInput 定義建立和更新比賽的請求結構
type GameInput struct {
	Date     string `json:"date" binding:"required"`
	Opponent string `json:"opponent" binding:"required"`
}

// ListGames 列出所有比賽，支援 ?sort= 查詢參數
func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := h.gameService.List(c.Query("sort"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// ListPlayedGames 列出已打完的比賽，供統計輸入表單使用
func (h *GameHandler) ListPlayedGames(c *gin.Context) {
	games, err := h.gameService.ListPlayed()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// GetGame 取得單一比賽
func (h *GameHandler) GetGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的比賽ID"})
		return
	}

	game, err := h.gameService.Get(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// CreateGame 建立新比賽
func (h *GameHandler) CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.Create(input.Date, input.Opponent)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, game)
}

// UpdateGame 更新比賽資料
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的比賽ID"})
		return
	}

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.gameService.Update(uint(id), input.Date, input.Opponent); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "比賽資料已更新"})
}

// DeleteGame 刪除比賽，連同其統計記錄
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的比賽ID"})
		return
	}

	if err := h.gameService.Delete(uint(id)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "比賽已刪除"})
}
