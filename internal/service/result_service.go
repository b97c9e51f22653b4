package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"time4swim/backend/internal/category"
	"time4swim/backend/internal/dto"
	"time4swim/backend/internal/model"
	"time4swim/backend/internal/repository"
	apperrors "time4swim/backend/pkg/errors"
)

// DefaultGenderWhenMissing is the legacy-data fallback applied when a swimmer
// row predates the gender column. It is a compatibility shim, not a domain
// rule; keep it visible here rather than buried in the bucketing loop.
const DefaultGenderWhenMissing = model.GenderMale

// ResultService computes the ranked result boards of an event. Boards are
// derived at read time from lanes and the category ladder; nothing is stored.
type ResultService interface {
	ComputeResults(ctx context.Context, eventID string) ([]dto.BoardResponse, error)
}

type resultService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewResultService creates a ResultService.
func NewResultService(repo *repository.Repository, logger *zap.Logger) ResultService {
	return &resultService{repo: repo, logger: logger}
}

func (s *resultService) ComputeResults(ctx context.Context, eventID string) ([]dto.BoardResponse, error) {
	event, err := s.repo.Event.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("query event failed", zap.String("id", eventID), zap.Error(err))
		return nil, err
	}

	lanes, err := s.repo.Lane.ListTimedByEvent(ctx, eventID)
	if err != nil {
		s.logger.Error("list timed lanes failed", zap.Error(err))
		return nil, apperrors.ErrTransientStore
	}

	competitionYear := event.CompetitionYear()

	// Bucket lanes by (category code, gender), preserving input order so
	// exact-tie ranking stays deterministic.
	type bucketKey struct {
		categoryCode string
		gender       string
	}
	buckets := make(map[bucketKey][]dto.ResultEntry)
	categories := make(map[string]category.Category)

	for i := range lanes {
		lane := &lanes[i]
		if lane.Swimmer == nil {
			// A time with no swimmer behind it cannot be ranked; skip the
			// lane, never abort the board computation.
			s.logger.Warn("timed lane has no resolvable swimmer, skipping",
				zap.String("event_id", eventID),
				zap.String("lane_id", lane.LaneID),
			)
			continue
		}

		cat := category.ClassifyBirthDate(lane.Swimmer.BirthDate, competitionYear)
		categories[cat.Code] = cat

		gender := lane.Swimmer.Gender
		if gender == "" {
			gender = DefaultGenderWhenMissing
		}

		key := bucketKey{categoryCode: cat.Code, gender: gender}
		buckets[key] = append(buckets[key], dto.ResultEntry{
			SwimmerID:   lane.Swimmer.SwimmerID,
			SwimmerName: lane.Swimmer.Name,
			TimeMs:      *lane.FinalTimeMs,
			HeatNumber:  lane.HeatNumber,
			LaneNumber:  lane.LaneNumber,
		})
	}

	// Fixed display order: youngest category first, males before females
	// within a category.
	keys := make([]bucketKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		ai, bi := category.OrderIndex(a.categoryCode), category.OrderIndex(b.categoryCode)
		if ai != bi {
			return ai < bi
		}
		return genderOrder(a.gender) < genderOrder(b.gender)
	})

	boards := make([]dto.BoardResponse, 0, len(keys))
	for _, key := range keys {
		entries := buckets[key]

		// Lower time is better; a stable sort keeps exact ties in input
		// order rather than reordering them nondeterministically.
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].TimeMs < entries[j].TimeMs
		})
		for i := range entries {
			entries[i].Position = i + 1
		}

		cat := categories[key.categoryCode]
		boards = append(boards, dto.BoardResponse{
			CategoryCode: key.categoryCode,
			CategoryName: cat.Name,
			Gender:       key.gender,
			Label:        boardLabel(cat.Name, key.gender),
			Entries:      entries,
		})
	}

	return boards, nil
}

func genderOrder(gender string) int {
	if gender == model.GenderFemale {
		return 1
	}
	return 0
}

func boardLabel(categoryName, gender string) string {
	if gender == model.GenderFemale {
		return categoryName + " Femenino"
	}
	return categoryName + " Masculino"
}
