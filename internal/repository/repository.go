package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates every repository interface.
type Repository struct {
	User    UserRepository
	Club    ClubRepository
	Swimmer SwimmerRepository
	Event   EventRepository
	Lane    LaneRepository

	db *gorm.DB
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:    NewUserRepo(db),
		Club:    NewClubRepo(db),
		Swimmer: NewSwimmerRepo(db),
		Event:   NewEventRepo(db),
		Lane:    NewLaneRepo(db),
		db:      db,
	}
}

// BeginTx opens a database transaction. With no database attached (tests
// wire mock repositories into the aggregate directly) it returns a nil
// transaction; WithTx then falls back to the aggregate itself.
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.WithContext(ctx).Begin()
	return tx, tx.Error
}

// WithTx returns a Repository whose implementations run on the given
// transaction. Used where a multi-write operation must be all-or-nothing,
// e.g. heat creation.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}
