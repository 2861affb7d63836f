package identity

import (
	"context"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, limit, offset int) ([]*User, int, error)
}

// StatsRepository aggregates record counts across the whole system for
// the admin dashboard.
type StatsRepository interface {
	Counts(ctx context.Context) (*DashboardCounts, error)
}
