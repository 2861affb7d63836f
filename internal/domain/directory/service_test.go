package directory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repositories --

type mockDepartmentRepo struct {
	items map[uuid.UUID]*Department
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{items: make(map[uuid.UUID]*Department)}
}

func (m *mockDepartmentRepo) Create(_ context.Context, d *Department) error {
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	m.items[d.ID] = d
	return nil
}

func (m *mockDepartmentRepo) GetByID(_ context.Context, id uuid.UUID) (*Department, error) {
	d, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return d, nil
}

func (m *mockDepartmentRepo) List(_ context.Context, limit, offset int) ([]*Department, int, error) {
	var result []*Department
	for _, d := range m.items {
		result = append(result, d)
	}
	return result, len(result), nil
}

type mockDoctorRepo struct {
	items map[uuid.UUID]*Doctor
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{items: make(map[uuid.UUID]*Doctor)}
}

func (m *mockDoctorRepo) Create(_ context.Context, d *Doctor) error {
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	m.items[d.ID] = d
	return nil
}

func (m *mockDoctorRepo) GetByID(_ context.Context, id uuid.UUID) (*Doctor, error) {
	d, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return d, nil
}

func (m *mockDoctorRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*Doctor, error) {
	for _, d := range m.items {
		if d.UserID == userID {
			return d, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockDoctorRepo) List(_ context.Context, limit, offset int) ([]*Doctor, int, error) {
	var result []*Doctor
	for _, d := range m.items {
		result = append(result, d)
	}
	return result, len(result), nil
}

type mockPatientRepo struct {
	items map[uuid.UUID]*Patient
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{items: make(map[uuid.UUID]*Patient)}
}

func (m *mockPatientRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	m.items[p.ID] = p
	return nil
}

func (m *mockPatientRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (m *mockPatientRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*Patient, error) {
	for _, p := range m.items {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockPatientRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	var result []*Patient
	for _, p := range m.items {
		result = append(result, p)
	}
	return result, len(result), nil
}

type mockSecurityStaffRepo struct {
	items map[uuid.UUID]*SecurityStaff
}

func newMockSecurityStaffRepo() *mockSecurityStaffRepo {
	return &mockSecurityStaffRepo{items: make(map[uuid.UUID]*SecurityStaff)}
}

func (m *mockSecurityStaffRepo) Create(_ context.Context, s *SecurityStaff) error {
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	m.items[s.ID] = s
	return nil
}

func (m *mockSecurityStaffRepo) GetByID(_ context.Context, id uuid.UUID) (*SecurityStaff, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return s, nil
}

func (m *mockSecurityStaffRepo) List(_ context.Context, limit, offset int) ([]*SecurityStaff, int, error) {
	var result []*SecurityStaff
	for _, s := range m.items {
		result = append(result, s)
	}
	return result, len(result), nil
}

func newTestService() *Service {
	return NewService(newMockDepartmentRepo(), newMockDoctorRepo(), newMockPatientRepo(), newMockSecurityStaffRepo())
}

// -- Tests --

func TestCreateDepartment(t *testing.T) {
	svc := newTestService()
	d := &Department{Name: "Cardiology", Description: "Heart care"}
	if err := svc.CreateDepartment(context.Background(), d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID == uuid.Nil {
		t.Error("expected generated id")
	}
}

func TestCreateDepartment_RequiresName(t *testing.T) {
	svc := newTestService()
	if err := svc.CreateDepartment(context.Background(), &Department{}); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestCreateDoctor_Validation(t *testing.T) {
	svc := newTestService()

	if err := svc.CreateDoctor(context.Background(), &Doctor{Specialization: "ENT"}); err == nil {
		t.Error("expected error for missing user_id")
	}
	if err := svc.CreateDoctor(context.Background(), &Doctor{UserID: uuid.New()}); err == nil {
		t.Error("expected error for missing specialization")
	}
	if err := svc.CreateDoctor(context.Background(), &Doctor{UserID: uuid.New(), Specialization: "ENT", ExperienceYears: -1}); err == nil {
		t.Error("expected error for negative experience")
	}
	if err := svc.CreateDoctor(context.Background(), &Doctor{UserID: uuid.New(), Specialization: "ENT", ExperienceYears: 5}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreatePatient_Validation(t *testing.T) {
	svc := newTestService()

	dob := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	if err := svc.CreatePatient(context.Background(), &Patient{DateOfBirth: dob}); err == nil {
		t.Error("expected error for missing user_id")
	}
	if err := svc.CreatePatient(context.Background(), &Patient{UserID: uuid.New()}); err == nil {
		t.Error("expected error for missing date_of_birth")
	}
	if err := svc.CreatePatient(context.Background(), &Patient{UserID: uuid.New(), DateOfBirth: dob}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreateSecurityStaff_Validation(t *testing.T) {
	svc := newTestService()

	if err := svc.CreateSecurityStaff(context.Background(), &SecurityStaff{AssignedGate: "A"}); err == nil {
		t.Error("expected error for missing user_id")
	}
	if err := svc.CreateSecurityStaff(context.Background(), &SecurityStaff{UserID: uuid.New()}); err == nil {
		t.Error("expected error for missing assigned_gate")
	}
	st := &SecurityStaff{UserID: uuid.New(), AssignedGate: "North Gate", ShiftStart: "06:00", ShiftEnd: "14:00"}
	if err := svc.CreateSecurityStaff(context.Background(), st); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPatientIDForUser(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()
	p := &Patient{UserID: userID, DateOfBirth: time.Date(1985, 1, 2, 0, 0, 0, 0, time.UTC)}
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("create patient: %v", err)
	}

	pid, err := svc.PatientIDForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pid != p.ID {
		t.Errorf("expected %s, got %s", p.ID, pid)
	}

	if _, err := svc.PatientIDForUser(context.Background(), uuid.New()); err == nil {
		t.Error("expected error for user without patient profile")
	}
}

func TestDoctorIDForUser(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()
	d := &Doctor{UserID: userID, Specialization: "Dermatology"}
	if err := svc.CreateDoctor(context.Background(), d); err != nil {
		t.Fatalf("create doctor: %v", err)
	}

	did, err := svc.DoctorIDForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if did != d.ID {
		t.Errorf("expected %s, got %s", d.ID, did)
	}
}
