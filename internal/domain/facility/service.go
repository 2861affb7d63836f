package facility

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const defaultUnit = "pcs"

type Service struct {
	inventory InventoryRepository
	entryLogs EntryLogRepository
}

func NewService(inventory InventoryRepository, entryLogs EntryLogRepository) *Service {
	return &Service{inventory: inventory, entryLogs: entryLogs}
}

func (s *Service) CreateInventoryItem(ctx context.Context, item *InventoryItem) error {
	if item.Name == "" {
		return fmt.Errorf("name is required")
	}
	if item.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}
	if item.Unit == "" {
		item.Unit = defaultUnit
	}
	now := time.Now()
	if item.AddedDate.IsZero() {
		item.AddedDate = now
	}
	item.LastUpdated = now
	return s.inventory.Create(ctx, item)
}

func (s *Service) GetInventoryItem(ctx context.Context, id uuid.UUID) (*InventoryItem, error) {
	return s.inventory.GetByID(ctx, id)
}

func (s *Service) ListInventoryItems(ctx context.Context, limit, offset int) ([]*InventoryItem, int, error) {
	return s.inventory.List(ctx, limit, offset)
}

// CreateEntryLog stamps the entry time server side. A submitted time_in
// is discarded so the log reflects when the gate actually saw the person.
func (s *Service) CreateEntryLog(ctx context.Context, log *EntryLog) error {
	if log.PersonName == "" {
		return fmt.Errorf("person_name is required")
	}
	log.TimeIn = time.Now()
	if log.TimeOut != nil && log.TimeOut.Before(log.TimeIn) {
		return fmt.Errorf("time_out cannot be before time_in")
	}
	return s.entryLogs.Create(ctx, log)
}

func (s *Service) GetEntryLog(ctx context.Context, id uuid.UUID) (*EntryLog, error) {
	return s.entryLogs.GetByID(ctx, id)
}

func (s *Service) ListEntryLogs(ctx context.Context, limit, offset int) ([]*EntryLog, int, error) {
	return s.entryLogs.List(ctx, limit, offset)
}
