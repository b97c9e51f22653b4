package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"time4swim/backend/internal/dto"
	"time4swim/backend/internal/model"
	"time4swim/backend/internal/repository"
	apperrors "time4swim/backend/pkg/errors"
	"time4swim/backend/pkg/redis"
)

var (
	ErrLaneNotFound          = errors.New("lane not found in this event")
	ErrLaneNumberTaken       = errors.New("duplicate lane number in heat")
	ErrCoachNotInClub        = errors.New("coach does not belong to the event's club")
	ErrSwimmerAlreadyEntered = errors.New("swimmer already holds a lane in this event")
	ErrLaneClosed            = errors.New("lane already has a final time")
	ErrHeatHasResults        = errors.New("heat already has recorded results")
	ErrEventFinished         = errors.New("event is finished")
)

// HeatService manages heats and lanes of an event. A heat is the set of lane
// rows sharing (event, heat number); there is no heat row of its own.
//
// Heat creation is deliberately asymmetric (firstHeatResetsConfiguration):
// configuring heat 1 wipes every lane of the event and starts a fresh
// configuration cycle, while heat 2 and up are strictly additive. Do not
// normalize the two paths; operator workflows depend on the reset.
type HeatService interface {
	CreateHeat(ctx context.Context, eventID string, req *dto.CreateHeatRequest, callerClubID, callerRole, callerID string) ([]dto.LaneResponse, error)
	AssignSwimmer(ctx context.Context, eventID, laneID, swimmerID string, callerClubID, callerRole, callerID string) (*dto.LaneResponse, error)
	RecordFinalTime(ctx context.Context, eventID, laneID string, elapsedMs int64, callerClubID, callerRole, callerID string) (*dto.LaneResponse, error)
	ListHeats(ctx context.Context, eventID string) ([]dto.HeatResponse, error)
}

type heatService struct {
	repo   *repository.Repository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewHeatService creates a HeatService. rdb may be nil; lane notifications
// are then skipped.
func NewHeatService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) HeatService {
	return &heatService{repo: repo, rdb: rdb, logger: logger}
}

// ────────────────────── CreateHeat ──────────────────────

func (s *heatService) CreateHeat(ctx context.Context, eventID string, req *dto.CreateHeatRequest, callerClubID, callerRole, callerID string) ([]dto.LaneResponse, error) {
	event, err := s.getOwnedEvent(ctx, eventID, callerClubID, callerRole)
	if err != nil {
		return nil, err
	}
	if event.Finished && callerRole != model.RoleAdmin {
		return nil, ErrEventFinished
	}

	// Lane numbers must be unique within the requested heat.
	seen := make(map[int]bool, len(req.Lanes))
	for _, slot := range req.Lanes {
		if seen[slot.LaneNumber] {
			return nil, ErrLaneNumberTaken
		}
		seen[slot.LaneNumber] = true
	}

	// Every supervising coach must be a coach (or operator) of the owning club.
	coachIDs := make([]string, 0, len(req.Lanes))
	for _, slot := range req.Lanes {
		coachIDs = append(coachIDs, slot.CoachID)
	}
	coaches, err := s.repo.User.ListByIDs(ctx, coachIDs)
	if err != nil {
		s.logger.Error("query coaches failed", zap.Error(err))
		return nil, err
	}
	coachByID := make(map[string]*model.User, len(coaches))
	for i := range coaches {
		coachByID[coaches[i].UserID] = &coaches[i]
	}
	for _, id := range coachIDs {
		coach, ok := coachByID[id]
		if !ok || coach.ClubID != event.ClubID {
			return nil, ErrCoachNotInClub
		}
	}

	if req.HeatNumber > 1 {
		existing, err := s.repo.Lane.ListByEventHeat(ctx, eventID, req.HeatNumber)
		if err != nil {
			s.logger.Error("query existing heat failed", zap.Error(err))
			return nil, err
		}
		for _, lane := range existing {
			if lane.Timed() {
				return nil, ErrHeatHasResults
			}
			if seen[lane.LaneNumber] {
				return nil, ErrLaneNumberTaken
			}
		}
	}

	lanes := make([]model.Lane, 0, len(req.Lanes))
	for _, slot := range req.Lanes {
		lane := model.Lane{
			EventID:    eventID,
			HeatNumber: req.HeatNumber,
			LaneNumber: slot.LaneNumber,
			CoachID:    slot.CoachID,
		}
		lane.CreatedBy = &callerID
		lane.UpdatedBy = &callerID
		lanes = append(lanes, lane)
	}

	// The clear (heat 1 only) and the bulk insert commit together or not at
	// all; a failed create must leave the lane set untouched.
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("begin transaction failed", zap.Error(err))
		return nil, apperrors.ErrTransientStore
	}
	defer func() {
		if r := recover(); r != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	if req.HeatNumber == 1 {
		// firstHeatResetsConfiguration: heat 1 starts a new configuration
		// cycle for the whole event.
		if err := txRepo.Lane.DeleteByEvent(ctx, eventID); err != nil {
			if tx != nil {
				tx.Rollback()
			}
			s.logger.Error("clear event lanes failed", zap.Error(err))
			return nil, apperrors.ErrTransientStore
		}
	}

	if err := txRepo.Lane.BatchCreate(ctx, lanes); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("create heat lanes failed", zap.Error(err))
		return nil, apperrors.ErrTransientStore
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("commit heat creation failed", zap.Error(err))
			return nil, apperrors.ErrTransientStore
		}
	}

	s.notifyLanesAssigned(ctx, eventID)

	result := make([]dto.LaneResponse, 0, len(lanes))
	for i := range lanes {
		result = append(result, s.toLaneResponse(&lanes[i]))
	}
	return result, nil
}

// ────────────────────── AssignSwimmer ──────────────────────

func (s *heatService) AssignSwimmer(ctx context.Context, eventID, laneID, swimmerID string, callerClubID, callerRole, callerID string) (*dto.LaneResponse, error) {
	event, err := s.getOwnedEvent(ctx, eventID, callerClubID, callerRole)
	if err != nil {
		return nil, err
	}
	if event.Finished && callerRole != model.RoleAdmin {
		return nil, ErrEventFinished
	}

	lane, err := s.getEventLane(ctx, eventID, laneID)
	if err != nil {
		return nil, err
	}

	// Idempotent: re-assigning the same swimmer to the same lane is a no-op.
	if lane.SwimmerID != nil && *lane.SwimmerID == swimmerID {
		resp := s.toLaneResponse(lane)
		return &resp, nil
	}

	if _, err := s.repo.Swimmer.GetByID(ctx, swimmerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSwimmerNotFound
		}
		s.logger.Error("query swimmer failed", zap.Error(err))
		return nil, err
	}

	// A swimmer races once per event, not once per heat.
	other, err := s.repo.Lane.GetByEventSwimmer(ctx, eventID, swimmerID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("query swimmer lane failed", zap.Error(err))
		return nil, err
	}
	if other != nil && other.LaneID != laneID {
		return nil, ErrSwimmerAlreadyEntered
	}

	lane.SwimmerID = &swimmerID
	lane.UpdatedBy = &callerID

	if err := s.repo.Lane.Update(ctx, lane); err != nil {
		s.logger.Error("assign swimmer failed", zap.String("lane_id", laneID), zap.Error(err))
		return nil, err
	}

	s.notifyLanesAssigned(ctx, eventID)

	resp := s.toLaneResponse(lane)
	return &resp, nil
}

// ────────────────────── RecordFinalTime ──────────────────────

func (s *heatService) RecordFinalTime(ctx context.Context, eventID, laneID string, elapsedMs int64, callerClubID, callerRole, callerID string) (*dto.LaneResponse, error) {
	event, err := s.getOwnedEvent(ctx, eventID, callerClubID, callerRole)
	if err != nil {
		return nil, err
	}
	if event.Finished && callerRole != model.RoleAdmin {
		return nil, ErrEventFinished
	}

	lane, err := s.getEventLane(ctx, eventID, laneID)
	if err != nil {
		return nil, err
	}

	// A recorded time closes the lane; only admin may correct it afterwards.
	if lane.Timed() && callerRole != model.RoleAdmin {
		return nil, ErrLaneClosed
	}

	lane.FinalTimeMs = &elapsedMs
	lane.UpdatedBy = &callerID

	if err := s.repo.Lane.Update(ctx, lane); err != nil {
		s.logger.Error("record final time failed", zap.String("lane_id", laneID), zap.Error(err))
		return nil, err
	}

	resp := s.toLaneResponse(lane)
	return &resp, nil
}

// ────────────────────── ListHeats ──────────────────────

func (s *heatService) ListHeats(ctx context.Context, eventID string) ([]dto.HeatResponse, error) {
	if _, err := s.repo.Event.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("query event failed", zap.Error(err))
		return nil, err
	}

	lanes, err := s.repo.Lane.ListByEvent(ctx, eventID)
	if err != nil {
		s.logger.Error("list lanes failed", zap.Error(err))
		return nil, err
	}

	// Lanes arrive ordered by (heat, lane); fold them into heats.
	heats := make([]dto.HeatResponse, 0)
	for i := range lanes {
		lane := &lanes[i]
		if len(heats) == 0 || heats[len(heats)-1].HeatNumber != lane.HeatNumber {
			heats = append(heats, dto.HeatResponse{
				HeatNumber: lane.HeatNumber,
				Lanes:      make([]dto.LaneResponse, 0, 8),
			})
		}
		last := &heats[len(heats)-1]
		last.Lanes = append(last.Lanes, s.toLaneResponse(lane))
	}

	return heats, nil
}

// ── internal helpers ──

func (s *heatService) getOwnedEvent(ctx context.Context, eventID, callerClubID, callerRole string) (*model.Event, error) {
	event, err := s.repo.Event.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("query event failed", zap.String("id", eventID), zap.Error(err))
		return nil, err
	}
	if callerRole != model.RoleAdmin && event.ClubID != callerClubID {
		return nil, ErrEventForbidden
	}
	return event, nil
}

func (s *heatService) getEventLane(ctx context.Context, eventID, laneID string) (*model.Lane, error) {
	lane, err := s.repo.Lane.GetByID(ctx, laneID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLaneNotFound
		}
		s.logger.Error("query lane failed", zap.String("id", laneID), zap.Error(err))
		return nil, err
	}
	if lane.EventID != eventID {
		return nil, ErrLaneNotFound
	}
	return lane, nil
}

// notifyLanesAssigned fires the best-effort refresh signal for coach-facing
// clients. Redis being down must never fail the write that triggered it.
func (s *heatService) notifyLanesAssigned(ctx context.Context, eventID string) {
	if s.rdb == nil {
		return
	}
	s.rdb.PublishLanesAssigned(ctx, eventID)
}

func (s *heatService) toLaneResponse(lane *model.Lane) dto.LaneResponse {
	resp := dto.LaneResponse{
		ID:          lane.LaneID,
		HeatNumber:  lane.HeatNumber,
		LaneNumber:  lane.LaneNumber,
		CoachID:     lane.CoachID,
		FinalTimeMs: lane.FinalTimeMs,
	}
	if lane.SwimmerID != nil {
		resp.SwimmerID = *lane.SwimmerID
	}
	if lane.Swimmer != nil {
		resp.SwimmerName = lane.Swimmer.Name
	}
	if lane.Coach != nil {
		resp.CoachName = lane.Coach.Name
	}
	return resp
}
