package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	bills BillRepository
}

func NewService(bills BillRepository) *Service {
	return &Service{bills: bills}
}

// CreateBill builds a bill from the input. The total is always
// amount + tax - discount; nothing the client sends can override it.
func (s *Service) CreateBill(ctx context.Context, in *BillInput) (*Bill, error) {
	b, err := s.fromInput(in)
	if err != nil {
		return nil, err
	}
	if err := s.bills.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateBill replaces the bill's fields and recomputes the total from
// the submitted amount, tax and discount.
func (s *Service) UpdateBill(ctx context.Context, id uuid.UUID, in *BillInput) (*Bill, error) {
	existing, err := s.bills.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	b, err := s.fromInput(in)
	if err != nil {
		return nil, err
	}
	b.ID = existing.ID
	b.CreatedAt = existing.CreatedAt
	if err := s.bills.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) fromInput(in *BillInput) (*Bill, error) {
	if in.PatientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	if in.Amount.IsNegative() || in.Tax.IsNegative() || in.Discount.IsNegative() {
		return nil, fmt.Errorf("amount, tax and discount cannot be negative")
	}
	if in.PaymentMethod == "" || !validPaymentMethods[in.PaymentMethod] {
		return nil, fmt.Errorf("payment_method must be one of cash, card, esewa, fonepay")
	}
	status := in.PaymentStatus
	if status == "" {
		status = PaymentStatusPending
	}
	if !validPaymentStatuses[status] {
		return nil, fmt.Errorf("payment_status must be paid or pending")
	}
	paymentDate := time.Now()
	if in.PaymentDate != nil {
		paymentDate = *in.PaymentDate
	}
	return &Bill{
		PatientID:     in.PatientID,
		AppointmentID: in.AppointmentID,
		Description:   in.Description,
		Amount:        in.Amount,
		Tax:           in.Tax,
		Discount:      in.Discount,
		Total:         in.Amount.Add(in.Tax).Sub(in.Discount),
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: status,
		PaymentDate:   paymentDate,
	}, nil
}

func (s *Service) GetBill(ctx context.Context, id uuid.UUID) (*Bill, error) {
	return s.bills.GetByID(ctx, id)
}

func (s *Service) ListBills(ctx context.Context, limit, offset int) ([]*Bill, int, error) {
	return s.bills.List(ctx, limit, offset)
}

func (s *Service) ListBillsByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Bill, int, error) {
	return s.bills.ListByPatient(ctx, patientID, limit, offset)
}
