package repository

import (
	"errors"

	"gorm.io/gorm"

	"team_roster/internal/models"
	"team_roster/internal/storage"
)

type PlayerRepository interface {
	Create(player *models.Player) error
	FindByID(id uint) (*models.Player, error)
	FindAll(sortKey string) ([]models.Player, error)
	Update(player *models.Player) error
	Delete(id uint) error
}

// playerSortColumns 是允許的排序鍵白名單
// 排序參數來自請求，不在白名單內的值一律退回自然順序，絕不拼進 SQL
var playerSortColumns = map[string]string{
	"name":     "name ASC",
	"number":   "number ASC",
	"position": "position ASC",
}

type playerRepository struct {
	db *storage.DB
}

func NewPlayerRepository(db *storage.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

func (r *playerRepository) FindByID(id uint) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// FindAll 查詢所有球員，可依白名單內的鍵排序
func (r *playerRepository) FindAll(sortKey string) ([]models.Player, error) {
	query := r.db.DB
	if order, ok := playerSortColumns[sortKey]; ok {
		query = query.Order(order)
	}

	var players []models.Player
	err := query.Find(&players).Error
	return players, err
}

func (r *playerRepository) Update(player *models.Player) error {
	return r.db.Save(player).Error
}

// Delete 刪除球員以及所有關聯的統計記錄
// 兩次刪除包在同一個交易裡，不允許出現孤兒統計記錄
func (r *playerRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("player_id = ?", id).Delete(&models.Stat{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Player{}, id).Error
	})
}
