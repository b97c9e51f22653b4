package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"time4swim/backend/internal/dto"
	"time4swim/backend/internal/model"
	"time4swim/backend/internal/service"
	"time4swim/backend/pkg/response"
)

// EventHandler serves the event CRUD endpoints.
type EventHandler struct {
	eventSvc service.EventService
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

// ListEvents lists the caller's club events, paginated. Admin sees all clubs.
// GET /api/v1/events?page=&page_size=
func (h *EventHandler) ListEvents(c *gin.Context) {
	_, role, clubID, ok := mustGetCaller(c)
	if !ok {
		return
	}
	if role == model.RoleAdmin {
		clubID = "" // unscoped
	}
	page, pageSize := paging(c)

	events, total, err := h.eventSvc.List(c.Request.Context(), clubID, page, pageSize)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, events, total, page, pageSize)
}

// GetEvent returns one event.
// GET /api/v1/events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "event id required")
		return
	}

	event, err := h.eventSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleEventError(c, err)
		return
	}

	response.OK(c, event)
}

// CreateEvent schedules an event owned by the caller's club.
// POST /api/v1/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	callerID, _, clubID, ok := mustGetCaller(c)
	if !ok {
		return
	}

	event, err := h.eventSvc.Create(c.Request.Context(), &req, clubID, callerID)
	if err != nil {
		h.handleEventError(c, err)
		return
	}

	response.Created(c, event)
}

// UpdateEvent updates an event of the caller's club.
// PUT /api/v1/events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "event id required")
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	callerID, role, clubID, ok := mustGetCaller(c)
	if !ok {
		return
	}

	event, err := h.eventSvc.Update(c.Request.Context(), id, &req, clubID, role, callerID)
	if err != nil {
		h.handleEventError(c, err)
		return
	}

	response.OK(c, event)
}

// DeleteEvent soft-deletes an event; its lanes go with it.
// DELETE /api/v1/events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "event id required")
		return
	}

	callerID, role, clubID, ok := mustGetCaller(c)
	if !ok {
		return
	}

	if err := h.eventSvc.Delete(c.Request.Context(), id, clubID, role, callerID); err != nil {
		h.handleEventError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *EventHandler) handleEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		response.NotFound(c, 14001, "event not found")
	case errors.Is(err, service.ErrEventDateInvalid):
		response.BadRequest(c, 14002, "event date invalid, expected YYYY-MM-DD")
	case errors.Is(err, service.ErrEventCategoryInvalid):
		response.BadRequest(c, 14003, "unknown category code")
	case errors.Is(err, service.ErrEventForbidden):
		response.Forbidden(c, 14004, "event belongs to another club")
	default:
		response.InternalError(c)
	}
}
