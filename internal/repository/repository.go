package repository

import "team_roster/internal/storage"

type Repositories struct {
	User   UserRepository
	Player PlayerRepository
	Game   GameRepository
	Stat   StatRepository
}

func NewRepositories(db *storage.DB) *Repositories {
	return &Repositories{
		User:   NewUserRepository(db),
		Player: NewPlayerRepository(db),
		Game:   NewGameRepository(db),
		Stat:   NewStatRepository(db),
	}
}
