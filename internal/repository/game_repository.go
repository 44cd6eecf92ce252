package repository

import (
	"errors"

	"gorm.io/gorm"

	"team_roster/internal/models"
	"team_roster/internal/storage"
)

type GameRepository interface {
	Create(game *models.Game) error
	FindByID(id uint) (*models.Game, error)
	FindAll(sortKey string) ([]models.Game, error)
	FindPlayed(today string) ([]models.Game, error)
	Update(game *models.Game) error
	Delete(id uint) error
}

// gameSortColumns 是允許的排序鍵白名單
// 日期用降冪排序，最近的比賽排在最前面
var gameSortColumns = map[string]string{
	"opponent": "opponent ASC",
	"date":     "date DESC",
}

type gameRepository struct {
	db *storage.DB
}

func NewGameRepository(db *storage.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(game *models.Game) error {
	return r.db.Create(game).Error
}

func (r *gameRepository) FindByID(id uint) (*models.Game, error) {
	var game models.Game
	err := r.db.First(&game, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// FindAll 查詢所有比賽，可依白名單內的鍵排序
func (r *gameRepository) FindAll(sortKey string) ([]models.Game, error) {
	query := r.db.DB
	if order, ok := gameSortColumns[sortKey]; ok {
		query = query.Order(order)
	}

	var games []models.Game
	err := query.Find(&games).Error
	return games, err
}

// FindPlayed 查詢日期在 today（含）之前的比賽
// 統計輸入表單只列出已經打完的比賽
func (r *gameRepository) FindPlayed(today string) ([]models.Game, error) {
	var games []models.Game
	err := r.db.Where("date <= ?", today).Find(&games).Error
	return games, err
}

func (r *gameRepository) Update(game *models.Game) error {
	return r.db.Save(game).Error
}

// Delete 刪除比賽以及所有關聯的統計記錄，包在同一個交易裡
func (r *gameRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", id).Delete(&models.Stat{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Game{}, id).Error
	})
}
