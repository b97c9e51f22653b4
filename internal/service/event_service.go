package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"time4swim/backend/internal/category"
	"time4swim/backend/internal/dto"
	"time4swim/backend/internal/model"
	"time4swim/backend/internal/repository"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrEventDateInvalid     = errors.New("event date invalid")
	ErrEventForbidden       = errors.New("event belongs to another club")
	ErrEventCategoryInvalid = errors.New("unknown category code")
)

// EventService is the event business interface. Mutations require the caller
// to be an operator of the owning club or an admin; handlers pass the
// authenticated (userID, role, clubID) triple down.
type EventService interface {
	Create(ctx context.Context, req *dto.CreateEventRequest, clubID, callerID string) (*dto.EventResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EventResponse, error)
	List(ctx context.Context, clubID string, page, pageSize int) ([]dto.EventResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateEventRequest, callerClubID, callerRole, callerID string) (*dto.EventResponse, error)
	Delete(ctx context.Context, id string, callerClubID, callerRole, callerID string) error
}

type eventService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEventService creates an EventService.
func NewEventService(repo *repository.Repository, logger *zap.Logger) EventService {
	return &eventService{repo: repo, logger: logger}
}

func (s *eventService) Create(ctx context.Context, req *dto.CreateEventRequest, clubID, callerID string) (*dto.EventResponse, error) {
	scheduledAt, err := time.Parse("2006-01-02", req.ScheduledAt)
	if err != nil {
		return nil, ErrEventDateInvalid
	}

	for _, code := range req.EligibleCategories {
		if !category.IsValidCode(code) {
			return nil, ErrEventCategoryInvalid
		}
	}

	internal := true
	if req.Internal != nil {
		internal = *req.Internal
	}

	event := &model.Event{
		Title:              req.Title,
		ScheduledAt:        scheduledAt,
		Location:           req.Location,
		EligibleCategories: model.StringArray(req.EligibleCategories),
		Internal:           internal,
		ClubID:             clubID,
	}
	event.CreatedBy = &callerID
	event.UpdatedBy = &callerID

	if err := s.repo.Event.Create(ctx, event); err != nil {
		s.logger.Error("create event failed", zap.Error(err))
		return nil, err
	}

	return s.toEventResponse(event), nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*dto.EventResponse, error) {
	event, err := s.repo.Event.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("query event failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toEventResponse(event), nil
}

func (s *eventService) List(ctx context.Context, clubID string, page, pageSize int) ([]dto.EventResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	events, total, err := s.repo.Event.List(ctx, clubID, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("list events failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		result = append(result, *s.toEventResponse(&events[i]))
	}

	return result, total, nil
}

func (s *eventService) Update(ctx context.Context, id string, req *dto.UpdateEventRequest, callerClubID, callerRole, callerID string) (*dto.EventResponse, error) {
	event, err := s.getOwned(ctx, id, callerClubID, callerRole)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.ScheduledAt != nil {
		scheduledAt, err := time.Parse("2006-01-02", *req.ScheduledAt)
		if err != nil {
			return nil, ErrEventDateInvalid
		}
		event.ScheduledAt = scheduledAt
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.EligibleCategories != nil {
		for _, code := range *req.EligibleCategories {
			if !category.IsValidCode(code) {
				return nil, ErrEventCategoryInvalid
			}
		}
		event.EligibleCategories = model.StringArray(*req.EligibleCategories)
	}
	if req.Internal != nil {
		event.Internal = *req.Internal
	}
	if req.Finished != nil {
		event.Finished = *req.Finished
	}
	event.UpdatedBy = &callerID

	if err := s.repo.Event.Update(ctx, event); err != nil {
		s.logger.Error("update event failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toEventResponse(event), nil
}

func (s *eventService) Delete(ctx context.Context, id string, callerClubID, callerRole, callerID string) error {
	if _, err := s.getOwned(ctx, id, callerClubID, callerRole); err != nil {
		return err
	}

	if err := s.repo.Event.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("delete event failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// getOwned loads an event and enforces club ownership. Admin bypasses the
// club check.
func (s *eventService) getOwned(ctx context.Context, id, callerClubID, callerRole string) (*model.Event, error) {
	event, err := s.repo.Event.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("query event failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if callerRole != model.RoleAdmin && event.ClubID != callerClubID {
		return nil, ErrEventForbidden
	}

	return event, nil
}

func (s *eventService) toEventResponse(event *model.Event) *dto.EventResponse {
	resp := &dto.EventResponse{
		ID:                 event.EventID,
		Title:              event.Title,
		ScheduledAt:        event.ScheduledAt.Format("2006-01-02"),
		Location:           event.Location,
		EligibleCategories: event.EligibleCategories,
		Internal:           event.Internal,
		Finished:           event.Finished,
		ClubID:             event.ClubID,
	}
	if event.Club != nil {
		resp.ClubName = event.Club.Name
	}
	return resp
}
