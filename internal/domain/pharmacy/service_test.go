package pharmacy

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lamasamir/hms/internal/platform/auth"
)

// -- Mock Repositories --

type mockMedicineRepo struct {
	items map[uuid.UUID]*Medicine
}

func newMockMedicineRepo() *mockMedicineRepo {
	return &mockMedicineRepo{items: make(map[uuid.UUID]*Medicine)}
}

func (m *mockMedicineRepo) Create(_ context.Context, med *Medicine) error {
	med.ID = uuid.New()
	med.CreatedAt = time.Now()
	cp := *med
	m.items[med.ID] = &cp
	return nil
}

func (m *mockMedicineRepo) GetByID(_ context.Context, id uuid.UUID) (*Medicine, error) {
	med, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	cp := *med
	return &cp, nil
}

func (m *mockMedicineRepo) Update(_ context.Context, med *Medicine) error {
	existing, ok := m.items[med.ID]
	if !ok {
		return fmt.Errorf("not found")
	}
	med.CreatedAt = existing.CreatedAt
	cp := *med
	m.items[med.ID] = &cp
	return nil
}

func (m *mockMedicineRepo) List(_ context.Context, limit, offset int) ([]*Medicine, int, error) {
	var result []*Medicine
	for _, med := range m.items {
		result = append(result, med)
	}
	return result, len(result), nil
}

// mockSaleRepo mirrors the SQL join by deriving the total from the
// medicine repo's current price on every read.
type mockSaleRepo struct {
	medicines *mockMedicineRepo
	items     map[uuid.UUID]*MedicineSale
}

func newMockSaleRepo(medicines *mockMedicineRepo) *mockSaleRepo {
	return &mockSaleRepo{medicines: medicines, items: make(map[uuid.UUID]*MedicineSale)}
}

func (m *mockSaleRepo) Create(_ context.Context, s *MedicineSale) error {
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	cp := *s
	cp.TotalPrice = decimal.Zero // never stored
	m.items[s.ID] = &cp
	return nil
}

func (m *mockSaleRepo) price(s MedicineSale) *MedicineSale {
	if med, ok := m.medicines.items[s.MedicineID]; ok {
		s.TotalPrice = med.Price.Mul(decimal.NewFromInt(int64(s.Quantity)))
	}
	return &s
}

func (m *mockSaleRepo) GetByID(_ context.Context, id uuid.UUID) (*MedicineSale, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return m.price(*s), nil
}

func (m *mockSaleRepo) List(_ context.Context, limit, offset int) ([]*MedicineSale, int, error) {
	var result []*MedicineSale
	for _, s := range m.items {
		result = append(result, m.price(*s))
	}
	return result, len(result), nil
}

func (m *mockSaleRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*MedicineSale, int, error) {
	var result []*MedicineSale
	for _, s := range m.items {
		if s.PatientID == patientID {
			result = append(result, m.price(*s))
		}
	}
	return result, len(result), nil
}

type mockPatientDirectory struct {
	patients map[uuid.UUID]uuid.UUID
}

func (m *mockPatientDirectory) PatientIDForUser(_ context.Context, userID uuid.UUID) (uuid.UUID, error) {
	id, ok := m.patients[userID]
	if !ok {
		return uuid.Nil, fmt.Errorf("no patient profile for user")
	}
	return id, nil
}

func newTestService() (*Service, *mockMedicineRepo, *mockPatientDirectory) {
	medicines := newMockMedicineRepo()
	dir := &mockPatientDirectory{patients: make(map[uuid.UUID]uuid.UUID)}
	return NewService(medicines, newMockSaleRepo(medicines), dir), medicines, dir
}

// -- Medicine Tests --

func TestCreateMedicine(t *testing.T) {
	svc, _, _ := newTestService()
	m := &Medicine{Name: "Paracetamol", Price: decimal.RequireFromString("2.50"), Stock: 100}
	if err := svc.CreateMedicine(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}
}

func TestCreateMedicine_Validation(t *testing.T) {
	svc, _, _ := newTestService()
	cases := []struct {
		name string
		m    Medicine
	}{
		{"missing name", Medicine{Price: decimal.RequireFromString("1.00")}},
		{"zero price", Medicine{Name: "X", Price: decimal.Zero}},
		{"negative price", Medicine{Name: "X", Price: decimal.RequireFromString("-1.00")}},
		{"negative stock", Medicine{Name: "X", Price: decimal.RequireFromString("1.00"), Stock: -1}},
	}
	for _, tc := range cases {
		m := tc.m
		if err := svc.CreateMedicine(context.Background(), &m); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestUpdateMedicine(t *testing.T) {
	svc, _, _ := newTestService()
	m := &Medicine{Name: "Paracetamol", Price: decimal.RequireFromString("2.50"), Stock: 100}
	if err := svc.CreateMedicine(context.Background(), m); err != nil {
		t.Fatalf("create: %v", err)
	}
	m.Price = decimal.RequireFromString("3.00")
	if err := svc.UpdateMedicine(context.Background(), m); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := svc.GetMedicine(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Price.Equal(decimal.RequireFromString("3.00")) {
		t.Errorf("expected price 3.00, got %s", got.Price)
	}
}

// -- Sale Tests --

func TestCreateSale_TotalDerivedFromCurrentPrice(t *testing.T) {
	svc, _, _ := newTestService()
	med := &Medicine{Name: "Paracetamol", Price: decimal.RequireFromString("2.50"), Stock: 100}
	if err := svc.CreateMedicine(context.Background(), med); err != nil {
		t.Fatalf("create medicine: %v", err)
	}

	sale := &MedicineSale{PatientID: uuid.New(), MedicineID: med.ID, Quantity: 4}
	if err := svc.CreateSale(context.Background(), auth.RoleAdmin, uuid.New(), sale); err != nil {
		t.Fatalf("create sale: %v", err)
	}
	if !sale.TotalPrice.Equal(decimal.RequireFromString("10.00")) {
		t.Fatalf("expected total 10.00, got %s", sale.TotalPrice)
	}

	// Repricing the medicine changes what every read of the sale reports.
	med.Price = decimal.RequireFromString("3.00")
	if err := svc.UpdateMedicine(context.Background(), med); err != nil {
		t.Fatalf("update medicine: %v", err)
	}
	got, err := svc.GetSale(context.Background(), sale.ID)
	if err != nil {
		t.Fatalf("get sale: %v", err)
	}
	if !got.TotalPrice.Equal(decimal.RequireFromString("12.00")) {
		t.Errorf("expected repriced total 12.00, got %s", got.TotalPrice)
	}
}

func TestCreateSale_PatientForcedToOwnProfile(t *testing.T) {
	svc, _, dir := newTestService()
	med := &Medicine{Name: "Ibuprofen", Price: decimal.RequireFromString("1.25"), Stock: 50}
	if err := svc.CreateMedicine(context.Background(), med); err != nil {
		t.Fatalf("create medicine: %v", err)
	}

	userID := uuid.New()
	ownProfile := uuid.New()
	dir.patients[userID] = ownProfile

	sale := &MedicineSale{PatientID: uuid.New(), MedicineID: med.ID, Quantity: 2}
	if err := svc.CreateSale(context.Background(), auth.RolePatient, userID, sale); err != nil {
		t.Fatalf("create sale: %v", err)
	}
	if sale.PatientID != ownProfile {
		t.Errorf("patient sale must use the requester's profile, got %s", sale.PatientID)
	}
}

func TestCreateSale_StockNotDecremented(t *testing.T) {
	svc, _, _ := newTestService()
	med := &Medicine{Name: "Aspirin", Price: decimal.RequireFromString("0.50"), Stock: 30}
	if err := svc.CreateMedicine(context.Background(), med); err != nil {
		t.Fatalf("create medicine: %v", err)
	}

	sale := &MedicineSale{PatientID: uuid.New(), MedicineID: med.ID, Quantity: 10}
	if err := svc.CreateSale(context.Background(), auth.RoleAdmin, uuid.New(), sale); err != nil {
		t.Fatalf("create sale: %v", err)
	}
	got, err := svc.GetMedicine(context.Background(), med.ID)
	if err != nil {
		t.Fatalf("get medicine: %v", err)
	}
	if got.Stock != 30 {
		t.Errorf("sales must not touch stock, got %d", got.Stock)
	}
}

func TestCreateSale_Validation(t *testing.T) {
	svc, _, _ := newTestService()
	med := &Medicine{Name: "X", Price: decimal.RequireFromString("1.00"), Stock: 1}
	if err := svc.CreateMedicine(context.Background(), med); err != nil {
		t.Fatalf("create medicine: %v", err)
	}

	cases := []struct {
		name string
		s    MedicineSale
	}{
		{"missing patient", MedicineSale{MedicineID: med.ID, Quantity: 1}},
		{"missing medicine", MedicineSale{PatientID: uuid.New(), Quantity: 1}},
		{"zero quantity", MedicineSale{PatientID: uuid.New(), MedicineID: med.ID}},
		{"unknown medicine", MedicineSale{PatientID: uuid.New(), MedicineID: uuid.New(), Quantity: 1}},
	}
	for _, tc := range cases {
		s := tc.s
		if err := svc.CreateSale(context.Background(), auth.RoleAdmin, uuid.New(), &s); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}
