package service

import (
	"go.uber.org/zap"

	"time4swim/backend/config"
	"time4swim/backend/internal/repository"
	"time4swim/backend/internal/timer"
	"time4swim/backend/pkg/jwt"
	"time4swim/backend/pkg/redis"
)

// Service aggregates every service interface.
type Service struct {
	Auth    AuthService
	Club    ClubService
	Swimmer SwimmerService
	Event   EventService
	Heat    HeatService
	Timer   TimerService
	Result  ResultService
	Export  ExportService
}

// NewService wires the service layer. rdb may be nil: the server degrades to
// running without token blacklisting and lane notifications.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	timerStore timer.Store,
	logger *zap.Logger,
) *Service {
	resultSvc := NewResultService(repo, logger)
	return &Service{
		Auth:    NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Club:    NewClubService(repo, logger),
		Swimmer: NewSwimmerService(repo, logger),
		Event:   NewEventService(repo, logger),
		Heat:    NewHeatService(repo, rdb, logger),
		Timer:   NewTimerService(timerStore, logger),
		Result:  resultSvc,
		Export:  NewExportService(repo, resultSvc, logger),
	}
}
