package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"time4swim/backend/internal/service"
	"time4swim/backend/pkg/response"
)

// ExportHandler streams generated documents.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportResults downloads the event's result boards as an Excel workbook.
// GET /api/v1/export/events/:id/results.xlsx
func (h *ExportHandler) ExportResults(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		response.BadRequest(c, 10001, "event id required")
		return
	}

	buf, filename, err := h.exportSvc.ExportResults(c.Request.Context(), eventID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// ExportCalendar downloads the caller's club event schedule as an iCalendar
// feed.
// GET /api/v1/export/calendar.ics
func (h *ExportHandler) ExportCalendar(c *gin.Context) {
	clubID, ok := MustGetClubID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportCalendar(c.Request.Context(), clubID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/calendar", buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		response.NotFound(c, 14001, "event not found")
	case errors.Is(err, service.ErrExportNoResults):
		response.NotFound(c, 16001, "event has no results to export")
	default:
		response.InternalError(c)
	}
}
