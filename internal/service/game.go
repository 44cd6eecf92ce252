package service

import (
	"fmt"
	"time"

	"team_roster/internal/models"
	"team_roster/internal/repository"
)

// GameService 負責比賽記錄的維護
type GameService struct {
	gameRepo repository.GameRepository
}

func NewGameService(gameRepo repository.GameRepository) *GameService {
	return &GameService{gameRepo: gameRepo}
}

func (s *GameService) List(sortKey string) ([]models.Game, error) {
	return s.gameRepo.FindAll(sortKey)
}

// ListPlayed 列出已經打完的比賽（日期在今天或之前）
func (s *GameService) ListPlayed() ([]models.Game, error) {
	today := time.Now().Format("2006-01-02")
	return s.gameRepo.FindPlayed(today)
}

func (s *GameService) Get(id uint) (*models.Game, error) {
	return s.gameRepo.FindByID(id)
}

func (s *GameService) Create(date, opponent string) (*models.Game, error) {
	if date == "" || opponent == "" {
		return nil, fmt.Errorf("%w: 日期和對手", models.ErrValidation)
	}

	game := models.Game{
		Date:     date,
		Opponent: opponent,
	}
	if err := s.gameRepo.Create(&game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *GameService) Update(id uint, date, opponent string) error {
	if date == "" || opponent == "" {
		return fmt.Errorf("%w: 日期和對手", models.ErrValidation)
	}

	game, err := s.gameRepo.FindByID(id)
	if err != nil {
		return err
	}

	game.Date = date
	game.Opponent = opponent
	return s.gameRepo.Update(game)
}

// Delete 刪除比賽，連同其所有統計記錄一起刪除
func (s *GameService) Delete(id uint) error {
	return s.gameRepo.Delete(id)
}
