package models

import (
	"time"
)

// Player 表示球隊名冊上的一名球員
type Player struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"not null" json:"name"`
	Number    int       `gorm:"not null" json:"number"`   // 球衣號碼
	Position  string    `gorm:"not null" json:"position"` // 場上位置
}

// Game 表示一場比賽
type Game struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Date      string    `gorm:"not null" json:"date"` // 比賽日期，格式 YYYY-MM-DD
	Opponent  string    `gorm:"not null" json:"opponent"`
}

// Stat 表示某球員在某場比賽中的統計數據
// 每筆記錄恰好關聯一名球員和一場比賽，數值欄位預設為 0
type Stat struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	PlayerID       uint      `gorm:"not null;index" json:"player_id"`
	GameID         uint      `gorm:"not null;index" json:"game_id"`
	Goals          int       `gorm:"default:0" json:"goals"`
	Assists        int       `gorm:"default:0" json:"assists"`
	PenaltyMinutes int       `gorm:"default:0" json:"penalty_minutes"`
	Shots          int       `gorm:"default:0" json:"shots"`
}

// StatWithContext 是統計記錄與球員、比賽資訊的聯合查詢結果
// 只是查詢投影，不對應資料表
type StatWithContext struct {
	ID             uint   `json:"id"`
	PlayerID       uint   `json:"player_id"`
	GameID         uint   `json:"game_id"`
	PlayerName     string `json:"player_name"`
	PlayerNumber   int    `json:"player_number"`
	PlayerPosition string `json:"player_position"`
	GameDate       string `json:"game_date"`
	GameOpponent   string `json:"game_opponent"`
	Goals          int    `json:"goals"`
	Assists        int    `json:"assists"`
	PenaltyMinutes int    `json:"penalty_minutes"`
	Shots          int    `json:"shots"`
}

// PlayerReport 是每位球員跨所有比賽的統計總和
// 沒有任何統計記錄的球員也會出現，總和皆為 0
type PlayerReport struct {
	PlayerID            uint   `json:"player_id"`
	PlayerName          string `json:"player_name"`
	PlayerNumber        int    `json:"player_number"`
	TotalGoals          int    `json:"total_goals"`
	TotalAssists        int    `json:"total_assists"`
	TotalPenaltyMinutes int    `json:"total_penalty_minutes"`
	TotalShots          int    `json:"total_shots"`
}
