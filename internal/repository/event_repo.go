package repository

import (
	"context"

	"gorm.io/gorm"

	"time4swim/backend/internal/model"
)

// EventRepository is the event data access interface.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context, clubID string, offset, limit int) ([]model.Event, int64, error)
	ListUpcoming(ctx context.Context, clubID string) ([]model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type eventRepo struct {
	db *gorm.DB
}

// NewEventRepo creates the GORM EventRepository.
func NewEventRepo(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).
		Preload("Club").
		Where("event_id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) List(ctx context.Context, clubID string, offset, limit int) ([]model.Event, int64, error) {
	var events []model.Event
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Event{})
	if clubID != "" {
		db = db.Where("club_id = ?", clubID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(offset).Limit(limit).
		Order("scheduled_at DESC").
		Find(&events).Error
	return events, total, err
}

func (r *eventRepo) ListUpcoming(ctx context.Context, clubID string) ([]model.Event, error) {
	var events []model.Event
	db := r.db.WithContext(ctx).Where("scheduled_at >= CURRENT_DATE")
	if clubID != "" {
		db = db.Where("club_id = ?", clubID)
	}
	err := db.Order("scheduled_at ASC").Find(&events).Error
	return events, err
}

func (r *eventRepo) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// Delete soft-deletes the event. Lane rows cascade at the database level once
// the event row is purged; until then they are unreachable through the API.
func (r *eventRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Event{}).
		Where("event_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
