package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"team_roster/internal/service"
)

// PlayerHandler 處理與球員名冊相關的請求
type PlayerHandler struct {
	playerService *service.PlayerService
}

// NewPlayerHandler 創建一個新的 PlayerHandler 實例
func NewPlayerHandler(playerService *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// PlayerInput 定義建立和更新球員的請求結構
type PlayerInput struct {
	Name     string `json:"name" binding:"required"`
	Number   int    `json:"number"`
	Position string `json:"position" binding:"required"`
}

// ListPlayers 列出所有球員，支援 ?sort= 查詢參數
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	players, err := h.playerService.List(c.Query("sort"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, players)
}

// GetPlayer 取得單一球員
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的球員ID"})
		return
	}

	player, err := h.playerService.Get(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// CreatePlayer 建立新球員
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var input PlayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.Create(input.Name, input.Number, input.Position)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, player)
}

// UpdatePlayer 更新球員資料
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的球員ID"})
		return
	}

	var input PlayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.playerService.Update(uint(id), input.Name, input.Number, input.Position); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "球員資料已更新"})
}

// DeletePlayer 刪除球員，連同其統計記錄
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的球員ID"})
		return
	}

	if err := h.playerService.Delete(uint(id)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "球員已刪除"})
}
