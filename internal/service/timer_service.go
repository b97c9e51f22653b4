package service

import (
	"go.uber.org/zap"

	"time4swim/backend/internal/dto"
	"time4swim/backend/internal/timer"
)

// TimerService exposes the live competition clock. All four operations are
// pure in-memory state transitions; none touch the database, and the state
// does not survive a process restart (documented in internal/timer).
type TimerService interface {
	Start(eventID string, heatNumber int) *dto.TimerResponse
	Stop(eventID string, explicitElapsedMs *int64) *dto.TimerResponse
	Reset(eventID string) *dto.TimerResponse
	Query(eventID string) *dto.TimerResponse
}

type timerService struct {
	machine *timer.Machine
	logger  *zap.Logger
}

// NewTimerService creates a TimerService over the injected state store.
func NewTimerService(store timer.Store, logger *zap.Logger) TimerService {
	return &timerService{
		machine: timer.NewMachine(store, nil),
		logger:  logger,
	}
}

func (s *timerService) Start(eventID string, heatNumber int) *dto.TimerResponse {
	snap := s.machine.Start(eventID, heatNumber)
	s.logger.Info("timer started",
		zap.String("event_id", eventID),
		zap.Int("heat", heatNumber),
	)
	return toTimerResponse(snap)
}

func (s *timerService) Stop(eventID string, explicitElapsedMs *int64) *dto.TimerResponse {
	snap := s.machine.Stop(eventID, explicitElapsedMs)
	s.logger.Info("timer stopped",
		zap.String("event_id", eventID),
		zap.Int64("elapsed_ms", snap.ElapsedMs),
	)
	return toTimerResponse(snap)
}

func (s *timerService) Reset(eventID string) *dto.TimerResponse {
	snap := s.machine.Reset(eventID)
	s.logger.Info("timer reset", zap.String("event_id", eventID))
	return toTimerResponse(snap)
}

func (s *timerService) Query(eventID string) *dto.TimerResponse {
	return toTimerResponse(s.machine.Query(eventID))
}

func toTimerResponse(snap timer.Snapshot) *dto.TimerResponse {
	return &dto.TimerResponse{
		ElapsedMs:  snap.ElapsedMs,
		Running:    snap.Running,
		HeatNumber: snap.HeatNumber,
		ServerTime: snap.ServerTime.UnixMilli(),
	}
}
