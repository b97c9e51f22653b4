package repository

import (
	"context"

	"gorm.io/gorm"

	"time4swim/backend/internal/model"
)

// ClubRepository is the club data access interface.
type ClubRepository interface {
	Create(ctx context.Context, club *model.Club) error
	GetByID(ctx context.Context, id string) (*model.Club, error)
	List(ctx context.Context) ([]model.Club, error)
	Update(ctx context.Context, club *model.Club) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type clubRepo struct {
	db *gorm.DB
}

// NewClubRepo creates the GORM ClubRepository.
func NewClubRepo(db *gorm.DB) ClubRepository {
	return &clubRepo{db: db}
}

func (r *clubRepo) Create(ctx context.Context, club *model.Club) error {
	return r.db.WithContext(ctx).Create(club).Error
}

func (r *clubRepo) GetByID(ctx context.Context, id string) (*model.Club, error) {
	var club model.Club
	err := r.db.WithContext(ctx).
		Where("club_id = ?", id).
		First(&club).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *clubRepo) List(ctx context.Context) ([]model.Club, error) {
	var clubs []model.Club
	err := r.db.WithContext(ctx).Order("name ASC").Find(&clubs).Error
	return clubs, err
}

func (r *clubRepo) Update(ctx context.Context, club *model.Club) error {
	return r.db.WithContext(ctx).Save(club).Error
}

func (r *clubRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Club{}).
		Where("club_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
