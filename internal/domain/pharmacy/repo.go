package pharmacy

import (
	"context"

	"github.com/google/uuid"
)

type MedicineRepository interface {
	Create(ctx context.Context, m *Medicine) error
	GetByID(ctx context.Context, id uuid.UUID) (*Medicine, error)
	Update(ctx context.Context, m *Medicine) error
	List(ctx context.Context, limit, offset int) ([]*Medicine, int, error)
}

type SaleRepository interface {
	Create(ctx context.Context, s *MedicineSale) error
	GetByID(ctx context.Context, id uuid.UUID) (*MedicineSale, error)
	List(ctx context.Context, limit, offset int) ([]*MedicineSale, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*MedicineSale, int, error)
}
