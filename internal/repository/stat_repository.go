package repository

import (
	"errors"

	"gorm.io/gorm"

	"team_roster/internal/models"
	"team_roster/internal/storage"
)

type StatRepository interface {
	Create(stat *models.Stat) error
	FindByID(id uint) (*models.Stat, error)
	FindFiltered(playerID, gameID uint) ([]models.StatWithContext, error)
	Delete(id uint) error
	Report(sortKey string) ([]models.PlayerReport, error)
}

// reportSortColumns 是總覽報表允許的排序鍵白名單
// 排序一律降冪，數字大的排前面
var reportSortColumns = map[string]string{
	"goals":           "total_goals DESC",
	"assists":         "total_assists DESC",
	"penalty_minutes": "total_penalty_minutes DESC",
	"shots":           "total_shots DESC",
}

type statRepository struct {
	db *storage.DB
}

func NewStatRepository(db *storage.DB) StatRepository {
	return &statRepository{db: db}
}

func (r *statRepository) Create(stat *models.Stat) error {
	return r.db.Create(stat).Error
}

func (r *statRepository) FindByID(id uint) (*models.Stat, error) {
	var stat models.Stat
	err := r.db.First(&stat, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

// FindFiltered 查詢統計記錄，並聯出球員與比賽資訊
// playerID 和 gameID 都是可選的過濾條件（0 表示不過濾），同時給定時取交集
// 每個條件都是參數化的等值比較，過濾值不會被拼進 SQL 字串
func (r *statRepository) FindFiltered(playerID, gameID uint) ([]models.StatWithContext, error) {
	query := r.db.Table("stats").
		Select(`stats.id, stats.player_id, stats.game_id,
			players.name AS player_name, players.number AS player_number, players.position AS player_position,
			games.date AS game_date, games.opponent AS game_opponent,
			stats.goals, stats.assists, stats.penalty_minutes, stats.shots`).
		Joins("JOIN players ON players.id = stats.player_id").
		Joins("JOIN games ON games.id = stats.game_id")

	if playerID != 0 {
		query = query.Where("stats.player_id = ?", playerID)
	}
	if gameID != 0 {
		query = query.Where("stats.game_id = ?", gameID)
	}

	var rows []models.StatWithContext
	err := query.Order("stats.id ASC").Scan(&rows).Error
	return rows, err
}

func (r *statRepository) Delete(id uint) error {
	return r.db.Delete(&models.Stat{}, id).Error
}

// Report 計算每位球員跨所有比賽的統計總和
// LEFT JOIN 保證沒有統計記錄的球員也會出現，總和用 COALESCE 補成 0
func (r *statRepository) Report(sortKey string) ([]models.PlayerReport, error) {
	order := "players.id ASC" // 預設照球員建立順序
	if o, ok := reportSortColumns[sortKey]; ok {
		order = o
	}

	var rows []models.PlayerReport
	err := r.db.Table("players").
		Select(`players.id AS player_id, players.name AS player_name, players.number AS player_number,
			COALESCE(SUM(stats.goals), 0) AS total_goals,
			COALESCE(SUM(stats.assists), 0) AS total_assists,
			COALESCE(SUM(stats.penalty_minutes), 0) AS total_penalty_minutes,
			COALESCE(SUM(stats.shots), 0) AS total_shots`).
		Joins("LEFT JOIN stats ON stats.player_id = players.id").
		Group("players.id, players.name, players.number").
		Order(order).
		Scan(&rows).Error
	return rows, err
}
