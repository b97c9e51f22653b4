package repository

import (
	"context"

	"gorm.io/gorm"

	"time4swim/backend/internal/model"
)

// SwimmerRepository is the swimmer data access interface.
type SwimmerRepository interface {
	Create(ctx context.Context, swimmer *model.Swimmer) error
	GetByID(ctx context.Context, id string) (*model.Swimmer, error)
	ListByClub(ctx context.Context, clubID string, offset, limit int) ([]model.Swimmer, int64, error)
	ListByIDs(ctx context.Context, ids []string) ([]model.Swimmer, error)
	Update(ctx context.Context, swimmer *model.Swimmer) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type swimmerRepo struct {
	db *gorm.DB
}

// NewSwimmerRepo creates the GORM SwimmerRepository.
func NewSwimmerRepo(db *gorm.DB) SwimmerRepository {
	return &swimmerRepo{db: db}
}

func (r *swimmerRepo) Create(ctx context.Context, swimmer *model.Swimmer) error {
	return r.db.WithContext(ctx).Create(swimmer).Error
}

func (r *swimmerRepo) GetByID(ctx context.Context, id string) (*model.Swimmer, error) {
	var swimmer model.Swimmer
	err := r.db.WithContext(ctx).
		Preload("Club").
		Where("swimmer_id = ?", id).
		First(&swimmer).Error
	if err != nil {
		return nil, err
	}
	return &swimmer, nil
}

func (r *swimmerRepo) ListByClub(ctx context.Context, clubID string, offset, limit int) ([]model.Swimmer, int64, error) {
	var swimmers []model.Swimmer
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Swimmer{}).Where("club_id = ?", clubID)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Offset(offset).Limit(limit).
		Order("name ASC").
		Find(&swimmers).Error
	return swimmers, total, err
}

func (r *swimmerRepo) ListByIDs(ctx context.Context, ids []string) ([]model.Swimmer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var swimmers []model.Swimmer
	err := r.db.WithContext(ctx).Where("swimmer_id IN ?", ids).Find(&swimmers).Error
	return swimmers, err
}

func (r *swimmerRepo) Update(ctx context.Context, swimmer *model.Swimmer) error {
	return r.db.WithContext(ctx).Save(swimmer).Error
}

func (r *swimmerRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Swimmer{}).
		Where("swimmer_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
