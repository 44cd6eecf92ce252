package service

import (
	"team_roster/internal/repository"
)

type Services struct {
	User   *UserService
	Player *PlayerService
	Game   *GameService
	Stat   *StatService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		User:   NewUserService(repos.User),
		Player: NewPlayerService(repos.Player),
		Game:   NewGameService(repos.Game),
		Stat:   NewStatService(repos.Stat, repos.Player, repos.Game),
	}
}
