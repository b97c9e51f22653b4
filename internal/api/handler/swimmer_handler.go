package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"time4swim/backend/internal/dto"
	"time4swim/backend/internal/service"
	"time4swim/backend/pkg/response"
)

// SwimmerHandler serves the swimmer endpoints.
type SwimmerHandler struct {
	swimmerSvc service.SwimmerService
}

// NewSwimmerHandler creates a SwimmerHandler.
func NewSwimmerHandler(swimmerSvc service.SwimmerService) *SwimmerHandler {
	return &SwimmerHandler{swimmerSvc: swimmerSvc}
}

// ListSwimmers lists the caller's club swimmers, paginated.
// GET /api/v1/swimmers?page=&page_size=
func (h *SwimmerHandler) ListSwimmers(c *gin.Context) {
	clubID, ok := MustGetClubID(c)
	if !ok {
		return
	}
	page, pageSize := paging(c)

	swimmers, total, err := h.swimmerSvc.ListByClub(c.Request.Context(), clubID, page, pageSize)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, swimmers, total, page, pageSize)
}

// GetSwimmer returns one swimmer.
// GET /api/v1/swimmers/:id
func (h *SwimmerHandler) GetSwimmer(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "swimmer id required")
		return
	}

	swimmer, err := h.swimmerSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleSwimmerError(c, err)
		return
	}

	response.OK(c, swimmer)
}

// CreateSwimmer registers a swimmer in the caller's club.
// POST /api/v1/swimmers
func (h *SwimmerHandler) CreateSwimmer(c *gin.Context) {
	var req dto.CreateSwimmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	callerID, _, clubID, ok := mustGetCaller(c)
	if !ok {
		return
	}

	swimmer, err := h.swimmerSvc.Create(c.Request.Context(), &req, clubID, callerID)
	if err != nil {
		h.handleSwimmerError(c, err)
		return
	}

	response.Created(c, swimmer)
}

// UpdateSwimmer updates a swimmer.
// PUT /api/v1/swimmers/:id
func (h *SwimmerHandler) UpdateSwimmer(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "swimmer id required")
		return
	}

	var req dto.UpdateSwimmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	swimmer, err := h.swimmerSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleSwimmerError(c, err)
		return
	}

	response.OK(c, swimmer)
}

// DeleteSwimmer soft-deletes a swimmer.
// DELETE /api/v1/swimmers/:id
func (h *SwimmerHandler) DeleteSwimmer(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "swimmer id required")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.swimmerSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleSwimmerError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *SwimmerHandler) handleSwimmerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSwimmerNotFound):
		response.NotFound(c, 13001, "swimmer not found")
	case errors.Is(err, service.ErrSwimmerDateInvalid):
		response.BadRequest(c, 13002, "birth date invalid, expected YYYY-MM-DD")
	default:
		response.InternalError(c)
	}
}

// paging reads ?page= and ?page_size= with sane defaults.
func paging(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
