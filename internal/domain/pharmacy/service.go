package pharmacy

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lamasamir/hms/internal/platform/auth"
)

// PatientDirectory resolves a user account to its patient profile.
type PatientDirectory interface {
	PatientIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
}

type Service struct {
	medicines MedicineRepository
	sales     SaleRepository
	directory PatientDirectory
}

func NewService(medicines MedicineRepository, sales SaleRepository, dir PatientDirectory) *Service {
	return &Service{medicines: medicines, sales: sales, directory: dir}
}

func (s *Service) CreateMedicine(ctx context.Context, m *Medicine) error {
	if err := validateMedicine(m); err != nil {
		return err
	}
	return s.medicines.Create(ctx, m)
}

func (s *Service) UpdateMedicine(ctx context.Context, m *Medicine) error {
	if m.ID == uuid.Nil {
		return fmt.Errorf("id is required")
	}
	if err := validateMedicine(m); err != nil {
		return err
	}
	return s.medicines.Update(ctx, m)
}

func validateMedicine(m *Medicine) error {
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !m.Price.IsPositive() {
		return fmt.Errorf("price must be greater than zero")
	}
	if m.Stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}
	return nil
}

func (s *Service) GetMedicine(ctx context.Context, id uuid.UUID) (*Medicine, error) {
	return s.medicines.GetByID(ctx, id)
}

func (s *Service) ListMedicines(ctx context.Context, limit, offset int) ([]*Medicine, int, error) {
	return s.medicines.List(ctx, limit, offset)
}

// CreateSale records a dispensing event. A patient can only record sales
// against their own profile; the submitted patient_id is replaced with the
// one linked to their account. Stock is a catalog figure and is not
// decremented by sales.
func (s *Service) CreateSale(ctx context.Context, role auth.Role, userID uuid.UUID, sale *MedicineSale) error {
	if role == auth.RolePatient {
		patientID, err := s.directory.PatientIDForUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("no patient profile linked to this account: %w", err)
		}
		sale.PatientID = patientID
	}
	if sale.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if sale.MedicineID == uuid.Nil {
		return fmt.Errorf("medicine_id is required")
	}
	if sale.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	if _, err := s.medicines.GetByID(ctx, sale.MedicineID); err != nil {
		return fmt.Errorf("medicine not found: %w", err)
	}
	if sale.SaleDate.IsZero() {
		sale.SaleDate = time.Now()
	}
	if err := s.sales.Create(ctx, sale); err != nil {
		return err
	}
	return s.priceSale(ctx, sale)
}

// priceSale fills in the derived total for callers that hold a freshly
// inserted sale, since the insert path does not read the join.
func (s *Service) priceSale(ctx context.Context, sale *MedicineSale) error {
	m, err := s.medicines.GetByID(ctx, sale.MedicineID)
	if err != nil {
		return err
	}
	sale.TotalPrice = m.Price.Mul(decimal.NewFromInt(int64(sale.Quantity)))
	return nil
}

func (s *Service) GetSale(ctx context.Context, id uuid.UUID) (*MedicineSale, error) {
	return s.sales.GetByID(ctx, id)
}

func (s *Service) ListSales(ctx context.Context, limit, offset int) ([]*MedicineSale, int, error) {
	return s.sales.List(ctx, limit, offset)
}

func (s *Service) ListSalesByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*MedicineSale, int, error) {
	return s.sales.ListByPatient(ctx, patientID, limit, offset)
}
