package game

import (
	"slot_machine/internal/config"
	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"slot_machine/internal/service"
	"slot_machine/pkg/keylock"

	"go.uber.org/zap"
)

type serv struct {
	repo       repository.SessionRepository
	statsRepo  repository.StatsRepository
	drawer     service.SymbolDrawer
	locks      *keylock.KeyLock
	log        *zap.Logger
	stake      int
	maxRedraws int
}

// NewGameService - сервис спинов. locks общий с сервисом сессий,
// чтобы спин и cash out одной сессии не шли параллельно
func NewGameService(
	cfg config.GameConfig,
	repo repository.SessionRepository,
	statsRepo repository.StatsRepository,
	drawer service.SymbolDrawer,
	locks *keylock.KeyLock,
	log *zap.Logger,
) service.GameService {
	return &serv{
		repo:       repo,
		statsRepo:  statsRepo,
		drawer:     drawer,
		locks:      locks,
		log:        log.Named("game"),
		stake:      cfg.Stake(),
		maxRedraws: cfg.MaxRedraws(),
	}
}

// Stats - статистика RTP по всем спинам процесса
func (s *serv) Stats() model.RTPStats {
	return s.statsRepo.Stats()
}
