package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"time4swim/backend/internal/dto"
	"time4swim/backend/internal/model"
	"time4swim/backend/internal/repository"
)

var ErrClubNotFound = errors.New("club not found")

// ClubService is the club business interface.
type ClubService interface {
	Create(ctx context.Context, req *dto.CreateClubRequest, callerID string) (*dto.ClubResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ClubResponse, error)
	List(ctx context.Context) ([]dto.ClubResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateClubRequest, callerID string) (*dto.ClubResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type clubService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClubService creates a ClubService.
func NewClubService(repo *repository.Repository, logger *zap.Logger) ClubService {
	return &clubService{repo: repo, logger: logger}
}

func (s *clubService) Create(ctx context.Context, req *dto.CreateClubRequest, callerID string) (*dto.ClubResponse, error) {
	club := &model.Club{
		Name: req.Name,
		City: req.City,
	}
	club.CreatedBy = &callerID
	club.UpdatedBy = &callerID

	if err := s.repo.Club.Create(ctx, club); err != nil {
		s.logger.Error("create club failed", zap.Error(err))
		return nil, err
	}

	return s.toClubResponse(club), nil
}

func (s *clubService) GetByID(ctx context.Context, id string) (*dto.ClubResponse, error) {
	club, err := s.repo.Club.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClubNotFound
		}
		s.logger.Error("query club failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toClubResponse(club), nil
}

func (s *clubService) List(ctx context.Context) ([]dto.ClubResponse, error) {
	clubs, err := s.repo.Club.List(ctx)
	if err != nil {
		s.logger.Error("list clubs failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ClubResponse, 0, len(clubs))
	for i := range clubs {
		result = append(result, *s.toClubResponse(&clubs[i]))
	}

	return result, nil
}

func (s *clubService) Update(ctx context.Context, id string, req *dto.UpdateClubRequest, callerID string) (*dto.ClubResponse, error) {
	club, err := s.repo.Club.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClubNotFound
		}
		s.logger.Error("query club failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		club.Name = *req.Name
	}
	if req.City != nil {
		club.City = *req.City
	}
	club.UpdatedBy = &callerID

	if err := s.repo.Club.Update(ctx, club); err != nil {
		s.logger.Error("update club failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toClubResponse(club), nil
}

func (s *clubService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.Club.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClubNotFound
		}
		s.logger.Error("query club failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Club.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("delete club failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *clubService) toClubResponse(club *model.Club) *dto.ClubResponse {
	return &dto.ClubResponse{
		ID:   club.ClubID,
		Name: club.Name,
		City: club.City,
	}
}
