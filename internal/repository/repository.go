package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db         *sqlx.DB
	broadcast  BroadcastRepository
	recipient  RecipientRepository
	sequence   SequenceRepository
	enrollment EnrollmentRepository
	audience   AudienceRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:         db,
		broadcast:  NewBroadcastRepository(db),
		recipient:  NewRecipientRepository(db),
		sequence:   NewSequenceRepository(db),
		enrollment: NewEnrollmentRepository(db),
		audience:   NewAudienceRepository(db),
	}
}

func (r *repositoryImpl) Broadcast() BroadcastRepository {
	return r.broadcast
}

func (r *repositoryImpl) Recipient() RecipientRepository {
	return r.recipient
}

func (r *repositoryImpl) Sequence() SequenceRepository {
	return r.sequence
}

func (r *repositoryImpl) Enrollment() EnrollmentRepository {
	return r.enrollment
}

func (r *repositoryImpl) Audience() AudienceRepository {
	return r.audience
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
