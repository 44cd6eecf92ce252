package service

import (
	"team_roster/internal/models"
	"team_roster/internal/repository"
)

// StatService 負責單場比賽統計的維護與總覽報表
type StatService struct {
	statRepo   repository.StatRepository
	playerRepo repository.PlayerRepository
	gameRepo   repository.GameRepository
}

func NewStatService(statRepo repository.StatRepository, playerRepo repository.PlayerRepository, gameRepo repository.GameRepository) *StatService {
	return &StatService{
		statRepo:   statRepo,
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
	}
}

// ListFiltered 列出統計記錄，可分別依球員或比賽過濾，兩個條件同時給定時取交集
func (s *StatService) ListFiltered(playerID, gameID uint) ([]models.StatWithContext, error) {
	return s.statRepo.FindFiltered(playerID, gameID)
}

// Create 建立一筆統計記錄
// 先確認球員和比賽都存在才寫入，不依賴表單只列出合法選項
func (s *StatService) Create(playerID, gameID uint, goals, assists, penaltyMinutes, shots int) (*models.Stat, error) {
	if _, err := s.playerRepo.FindByID(playerID); err != nil {
		return nil, err
	}
	if _, err := s.gameRepo.FindByID(gameID); err != nil {
		return nil, err
	}

	stat := models.Stat{
		PlayerID:       playerID,
		GameID:         gameID,
		Goals:          goals,
		Assists:        assists,
		PenaltyMinutes: penaltyMinutes,
		Shots:          shots,
	}
	if err := s.statRepo.Create(&stat); err != nil {
		return nil, err
	}
	return &stat, nil
}

func (s *StatService) Delete(id uint) error {
	return s.statRepo.Delete(id)
}

// Report 計算每位球員的統計總和
func (s *StatService) Report(sortKey string) ([]models.PlayerReport, error) {
	return s.statRepo.Report(sortKey)
}
