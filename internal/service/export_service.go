package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"time4swim/backend/internal/repository"
)

var ErrExportNoResults = errors.New("event has no results to export")

// ExportService renders event data into downloadable documents: result
// boards as an Excel workbook and the event schedule as an iCalendar feed.
// Both return a bytes.Buffer plus a suggested filename; handlers set the
// content headers and stream the buffer.
type ExportService interface {
	ExportResults(ctx context.Context, eventID string) (*bytes.Buffer, string, error)
	ExportCalendar(ctx context.Context, clubID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo    *repository.Repository
	results ResultService
	logger  *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, results ResultService, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, results: results, logger: logger}
}

// ────────────────────── ExportResults ──────────────────────
//
// One sheet per board, named after the category+gender label. Columns:
// position, swimmer, time, heat, lane. Times are rendered as seconds with
// millisecond precision.

func (s *exportService) ExportResults(ctx context.Context, eventID string) (*bytes.Buffer, string, error) {
	event, err := s.repo.Event.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrEventNotFound
		}
		s.logger.Error("query event failed", zap.Error(err))
		return nil, "", err
	}

	boards, err := s.results.ComputeResults(ctx, eventID)
	if err != nil {
		return nil, "", err
	}
	if len(boards) == 0 {
		return nil, "", ErrExportNoResults
	}

	f := excelize.NewFile()
	defer f.Close()

	headers := []string{"Position", "Swimmer", "Time", "Heat", "Lane"}

	for i, board := range boards {
		sheet := sheetName(board.Label, i)
		if i == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				s.logger.Error("create sheet failed", zap.String("sheet", sheet), zap.Error(err))
				return nil, "", err
			}
		}

		for col, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		for row, entry := range board.Entries {
			values := []interface{}{
				entry.Position,
				entry.SwimmerName,
				formatMillis(entry.TimeMs),
				entry.HeatNumber,
				entry.LaneNumber,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, v)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write xlsx failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("results_%s.xlsx", event.ScheduledAt.Format("2006-01-02"))
	return buf, filename, nil
}

// ────────────────────── ExportCalendar ──────────────────────

func (s *exportService) ExportCalendar(ctx context.Context, clubID string) (*bytes.Buffer, string, error) {
	events, err := s.repo.Event.ListUpcoming(ctx, clubID)
	if err != nil {
		s.logger.Error("list upcoming events failed", zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//time4swim//calendar//ES")

	for i := range events {
		event := &events[i]
		item := cal.AddEvent(event.EventID + "@time4swim")
		item.SetSummary(event.Title)
		item.SetAllDayStartAt(event.ScheduledAt)
		item.SetAllDayEndAt(event.ScheduledAt.AddDate(0, 0, 1))
		if event.Location != "" {
			item.SetLocation(event.Location)
		}
		item.SetDtStampTime(time.Now())
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, "time4swim_calendar.ics", nil
}

// sheetName keeps sheet titles inside Excel's 31-character limit and unique.
func sheetName(label string, index int) string {
	name := label
	if len(name) > 27 {
		name = name[:27]
	}
	return fmt.Sprintf("%s %d", name, index+1)
}

func formatMillis(ms int64) string {
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d.%03d", secs/60, secs%60, ms%1000)
}
