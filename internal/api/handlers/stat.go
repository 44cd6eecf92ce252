package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"team_roster/internal/service"
)

// StatHandler 處理與統計記錄和總覽報表相關的請求
type StatHandler struct {
	statService *service.StatService
}

// NewStatHandler 創建一個新的 StatHandler 實例
func NewStatHandler(statService *service.StatService) *StatHandler {
	return &StatHandler{statService: statService}
}

// StatInput 定義建立統計記錄的請求結構
// 數值欄位沒帶就是 0
type StatInput struct {
	PlayerID       uint `json:"player_id" binding:"required"`
	GameID         uint `json:"game_id" binding:"required"`
	Goals          int  `json:"goals"`
	Assists        int  `json:"assists"`
	PenaltyMinutes int  `json:"penalty_minutes"`
	Shots          int  `json:"shots"`
}

// ListStats 列出統計記錄，支援 ?player_id= 和 ?game_id= 過濾參數
// 兩個參數各自可選，同時給定時取交集
func (h *StatHandler) ListStats(c *gin.Context) {
	playerID, err := parseOptionalID(c.Query("player_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的球員ID"})
		return
	}
	gameID, err := parseOptionalID(c.Query("game_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的比賽ID"})
		return
	}

	stats, err := h.statService.ListFiltered(playerID, gameID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CreateStat 建立新的統計記錄
func (h *StatHandler) CreateStat(c *gin.Context) {
	var input StatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stat, err := h.statService.Create(input.PlayerID, input.GameID,
		input.Goals, input.Assists, input.PenaltyMinutes, input.Shots)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stat)
}

// DeleteStat 刪除單筆統計記錄
func (h *StatHandler) DeleteStat(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的統計記錄ID"})
		return
	}

	if err := h.statService.Delete(uint(id)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "統計記錄已刪除"})
}

// Report 回傳每位球員的統計總和，支援 ?sort= 查詢參數
func (h *StatHandler) Report(c *gin.Context) {
	report, err := h.statService.Report(c.Query("sort"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// parseOptionalID 解析可選的 ID 查詢參數，空字串視為沒有過濾
func parseOptionalID(raw string) (uint, error) {
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
