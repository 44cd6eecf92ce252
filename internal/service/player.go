package service

import (
	"fmt"

	"team_roster/internal/models"
	"team_roster/internal/repository"
)

// PlayerService 負責球員名冊的維護
type PlayerService struct {
	playerRepo repository.PlayerRepository
}

func NewPlayerService(playerRepo repository.PlayerRepository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

func (s *PlayerService) List(sortKey string) ([]models.Player, error) {
	return s.playerRepo.FindAll(sortKey)
}

func (s *PlayerService) Get(id uint) (*models.Player, error) {
	return s.playerRepo.FindByID(id)
}

func (s *PlayerService) Create(name string, number int, position string) (*models.Player, error) {
	if name == "" || position == "" {
		return nil, fmt.Errorf("%w: 姓名和位置", models.ErrValidation)
	}

	player := models.Player{
		Name:     name,
		Number:   number,
		Position: position,
	}
	if err := s.playerRepo.Create(&player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *PlayerService) Update(id uint, name string, number int, position string) error {
	if name == "" || position == "" {
		return fmt.Errorf("%w: 姓名和位置", models.ErrValidation)
	}

	player, err := s.playerRepo.FindByID(id)
	if err != nil {
		return err
	}

	player.Name = name
	player.Number = number
	player.Position = position
	return s.playerRepo.Update(player)
}

// Delete 刪除球員，連同其所有統計記錄一起刪除
func (s *PlayerService) Delete(id uint) error {
	return s.playerRepo.Delete(id)
}
