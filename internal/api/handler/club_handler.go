package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"time4swim/backend/internal/dto"
	"time4swim/backend/internal/service"
	"time4swim/backend/pkg/response"
)

// ClubHandler serves the club endpoints.
type ClubHandler struct {
	clubSvc service.ClubService
}

// NewClubHandler creates a ClubHandler.
func NewClubHandler(clubSvc service.ClubService) *ClubHandler {
	return &ClubHandler{clubSvc: clubSvc}
}

// ListClubs lists every club.
// GET /api/v1/clubs
func (h *ClubHandler) ListClubs(c *gin.Context) {
	clubs, err := h.clubSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": clubs})
}

// GetClub returns one club.
// GET /api/v1/clubs/:id
func (h *ClubHandler) GetClub(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "club id required")
		return
	}

	club, err := h.clubSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleClubError(c, err)
		return
	}

	response.OK(c, club)
}

// CreateClub registers a club.
// POST /api/v1/clubs
func (h *ClubHandler) CreateClub(c *gin.Context) {
	var req dto.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	club, err := h.clubSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleClubError(c, err)
		return
	}

	response.Created(c, club)
}

// UpdateClub updates a club.
// PUT /api/v1/clubs/:id
func (h *ClubHandler) UpdateClub(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "club id required")
		return
	}

	var req dto.UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	club, err := h.clubSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleClubError(c, err)
		return
	}

	response.OK(c, club)
}

// DeleteClub soft-deletes a club.
// DELETE /api/v1/clubs/:id
func (h *ClubHandler) DeleteClub(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "club id required")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.clubSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleClubError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *ClubHandler) handleClubError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrClubNotFound):
		response.NotFound(c, 12001, "club not found")
	default:
		response.InternalError(c)
	}
}
