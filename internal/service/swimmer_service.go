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
	ErrSwimmerNotFound    = errors.New("swimmer not found")
	ErrSwimmerDateInvalid = errors.New("swimmer birth date invalid")
)

// SwimmerService is the swimmer business interface. Swimmers always belong to
// the caller's club; cross-club reads are an admin affordance.
type SwimmerService interface {
	Create(ctx context.Context, req *dto.CreateSwimmerRequest, clubID, callerID string) (*dto.SwimmerResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SwimmerResponse, error)
	ListByClub(ctx context.Context, clubID string, page, pageSize int) ([]dto.SwimmerResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateSwimmerRequest, callerID string) (*dto.SwimmerResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type swimmerService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSwimmerService creates a SwimmerService.
func NewSwimmerService(repo *repository.Repository, logger *zap.Logger) SwimmerService {
	return &swimmerService{repo: repo, logger: logger}
}

func (s *swimmerService) Create(ctx context.Context, req *dto.CreateSwimmerRequest, clubID, callerID string) (*dto.SwimmerResponse, error) {
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, ErrSwimmerDateInvalid
	}

	swimmer := &model.Swimmer{
		Name:      req.Name,
		BirthDate: birthDate,
		Gender:    req.Gender,
		ClubID:    clubID,
	}
	swimmer.CreatedBy = &callerID
	swimmer.UpdatedBy = &callerID

	if err := s.repo.Swimmer.Create(ctx, swimmer); err != nil {
		s.logger.Error("create swimmer failed", zap.Error(err))
		return nil, err
	}

	return s.toSwimmerResponse(swimmer), nil
}

func (s *swimmerService) GetByID(ctx context.Context, id string) (*dto.SwimmerResponse, error) {
	swimmer, err := s.repo.Swimmer.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSwimmerNotFound
		}
		s.logger.Error("query swimmer failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toSwimmerResponse(swimmer), nil
}

func (s *swimmerService) ListByClub(ctx context.Context, clubID string, page, pageSize int) ([]dto.SwimmerResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	swimmers, total, err := s.repo.Swimmer.ListByClub(ctx, clubID, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("list swimmers failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.SwimmerResponse, 0, len(swimmers))
	for i := range swimmers {
		result = append(result, *s.toSwimmerResponse(&swimmers[i]))
	}

	return result, total, nil
}

func (s *swimmerService) Update(ctx context.Context, id string, req *dto.UpdateSwimmerRequest, callerID string) (*dto.SwimmerResponse, error) {
	swimmer, err := s.repo.Swimmer.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSwimmerNotFound
		}
		s.logger.Error("query swimmer failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		swimmer.Name = *req.Name
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return nil, ErrSwimmerDateInvalid
		}
		swimmer.BirthDate = birthDate
	}
	if req.Gender != nil {
		swimmer.Gender = *req.Gender
	}
	swimmer.UpdatedBy = &callerID

	if err := s.repo.Swimmer.Update(ctx, swimmer); err != nil {
		s.logger.Error("update swimmer failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toSwimmerResponse(swimmer), nil
}

func (s *swimmerService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.Swimmer.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSwimmerNotFound
		}
		s.logger.Error("query swimmer failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Swimmer.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("delete swimmer failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *swimmerService) toSwimmerResponse(swimmer *model.Swimmer) *dto.SwimmerResponse {
	return &dto.SwimmerResponse{
		ID:        swimmer.SwimmerID,
		Name:      swimmer.Name,
		BirthDate: swimmer.BirthDate.Format("2006-01-02"),
		Gender:    swimmer.Gender,
		ClubID:    swimmer.ClubID,
		Category:  category.ClassifyBirthDate(swimmer.BirthDate, 0).Code,
	}
}
