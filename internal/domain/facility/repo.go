package facility

import (
	"context"

	"github.com/google/uuid"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*InventoryItem, error)
	List(ctx context.Context, limit, offset int) ([]*InventoryItem, int, error)
}

type EntryLogRepository interface {
	Create(ctx context.Context, log *EntryLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*EntryLog, error)
	List(ctx context.Context, limit, offset int) ([]*EntryLog, int, error)
}
