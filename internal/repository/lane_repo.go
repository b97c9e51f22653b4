package repository

import (
	"context"

	"gorm.io/gorm"

	"time4swim/backend/internal/model"
)

// LaneRepository is the lane data access interface. Heats are not rows of
// their own: a heat is the set of lanes sharing (event_id, heat_number).
type LaneRepository interface {
	BatchCreate(ctx context.Context, lanes []model.Lane) error
	GetByID(ctx context.Context, id string) (*model.Lane, error)
	ListByEvent(ctx context.Context, eventID string) ([]model.Lane, error)
	ListByEventHeat(ctx context.Context, eventID string, heatNumber int) ([]model.Lane, error)
	ListTimedByEvent(ctx context.Context, eventID string) ([]model.Lane, error)
	GetByEventSwimmer(ctx context.Context, eventID, swimmerID string) (*model.Lane, error)
	Update(ctx context.Context, lane *model.Lane) error
	DeleteByEvent(ctx context.Context, eventID string) error
}

type laneRepo struct {
	db *gorm.DB
}

// NewLaneRepo creates the GORM LaneRepository.
func NewLaneRepo(db *gorm.DB) LaneRepository {
	return &laneRepo{db: db}
}

func (r *laneRepo) BatchCreate(ctx context.Context, lanes []model.Lane) error {
	if len(lanes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&lanes).Error
}

func (r *laneRepo) GetByID(ctx context.Context, id string) (*model.Lane, error) {
	var lane model.Lane
	err := r.db.WithContext(ctx).
		Preload("Swimmer").
		Preload("Coach").
		Where("lane_id = ?", id).
		First(&lane).Error
	if err != nil {
		return nil, err
	}
	return &lane, nil
}

func (r *laneRepo) ListByEvent(ctx context.Context, eventID string) ([]model.Lane, error) {
	var lanes []model.Lane
	err := r.db.WithContext(ctx).
		Preload("Swimmer").
		Preload("Coach").
		Where("event_id = ?", eventID).
		Order("heat_number ASC, lane_number ASC").
		Find(&lanes).Error
	return lanes, err
}

func (r *laneRepo) ListByEventHeat(ctx context.Context, eventID string, heatNumber int) ([]model.Lane, error) {
	var lanes []model.Lane
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND heat_number = ?", eventID, heatNumber).
		Order("lane_number ASC").
		Find(&lanes).Error
	return lanes, err
}

func (r *laneRepo) ListTimedByEvent(ctx context.Context, eventID string) ([]model.Lane, error) {
	var lanes []model.Lane
	err := r.db.WithContext(ctx).
		Preload("Swimmer").
		Where("event_id = ? AND final_time_ms IS NOT NULL", eventID).
		Order("heat_number ASC, lane_number ASC").
		Find(&lanes).Error
	return lanes, err
}

func (r *laneRepo) GetByEventSwimmer(ctx context.Context, eventID, swimmerID string) (*model.Lane, error) {
	var lane model.Lane
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND swimmer_id = ?", eventID, swimmerID).
		First(&lane).Error
	if err != nil {
		return nil, err
	}
	return &lane, nil
}

func (r *laneRepo) Update(ctx context.Context, lane *model.Lane) error {
	return r.db.WithContext(ctx).Save(lane).Error
}

func (r *laneRepo) DeleteByEvent(ctx context.Context, eventID string) error {
	return r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Delete(&model.Lane{}).Error
}
