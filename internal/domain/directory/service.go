package directory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	departments DepartmentRepository
	doctors     DoctorRepository
	patients    PatientRepository
	security    SecurityStaffRepository
}

func NewService(dep DepartmentRepository, doc DoctorRepository, pat PatientRepository, sec SecurityStaffRepository) *Service {
	return &Service{departments: dep, doctors: doc, patients: pat, security: sec}
}

// -- Department --

func (s *Service) CreateDepartment(ctx context.Context, d *Department) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.departments.Create(ctx, d)
}

func (s *Service) GetDepartment(ctx context.Context, id uuid.UUID) (*Department, error) {
	return s.departments.GetByID(ctx, id)
}

func (s *Service) ListDepartments(ctx context.Context, limit, offset int) ([]*Department, int, error) {
	return s.departments.List(ctx, limit, offset)
}

// -- Doctor --

func (s *Service) CreateDoctor(ctx context.Context, d *Doctor) error {
	if d.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	if d.Specialization == "" {
		return fmt.Errorf("specialization is required")
	}
	if d.ExperienceYears < 0 {
		return fmt.Errorf("experience_years cannot be negative")
	}
	return s.doctors.Create(ctx, d)
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.List(ctx, limit, offset)
}

// -- Patient --

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if p.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	if p.DateOfBirth.IsZero() {
		return fmt.Errorf("date_of_birth is required")
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, limit, offset)
}

// -- SecurityStaff --

func (s *Service) CreateSecurityStaff(ctx context.Context, st *SecurityStaff) error {
	if st.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	if st.AssignedGate == "" {
		return fmt.Errorf("assigned_gate is required")
	}
	return s.security.Create(ctx, st)
}

func (s *Service) GetSecurityStaff(ctx context.Context, id uuid.UUID) (*SecurityStaff, error) {
	return s.security.GetByID(ctx, id)
}

func (s *Service) ListSecurityStaff(ctx context.Context, limit, offset int) ([]*SecurityStaff, int, error) {
	return s.security.List(ctx, limit, offset)
}

// -- Profile lookups for other domains --

// PatientIDForUser resolves the patient profile owned by a user account.
func (s *Service) PatientIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	p, err := s.patients.GetByUserID(ctx, userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("no patient profile for user: %w", err)
	}
	return p.ID, nil
}

// DoctorIDForUser resolves the doctor profile owned by a user account.
func (s *Service) DoctorIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	d, err := s.doctors.GetByUserID(ctx, userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("no doctor profile for user: %w", err)
	}
	return d.ID, nil
}
