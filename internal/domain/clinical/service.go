package clinical

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lamasamir/hms/internal/platform/auth"
)

type Service struct {
	appointments AppointmentRepository
	labTests     LabTestRepository
	directory    ProfileDirectory
}

func NewService(appts AppointmentRepository, labs LabTestRepository, dir ProfileDirectory) *Service {
	return &Service{appointments: appts, labTests: labs, directory: dir}
}

// -- Appointment --

// BookAppointment records an appointment for the requesting patient.
// The patient reference always resolves from the requester's own
// profile; anything the client supplied for it is discarded.
func (s *Service) BookAppointment(ctx context.Context, userID uuid.UUID, a *Appointment) error {
	patientID, err := s.directory.PatientIDForUser(ctx, userID)
	if err != nil {
		return err
	}
	a.PatientID = patientID

	if a.DoctorID == uuid.Nil {
		return fmt.Errorf("doctor_id is required")
	}
	if a.AppointmentDate.IsZero() {
		return fmt.Errorf("appointment_date is required")
	}
	if a.TimeSlot == "" {
		return fmt.Errorf("time_slot is required")
	}
	if a.Status == "" {
		a.Status = AppointmentScheduled
	}
	if !validAppointmentStatuses[a.Status] {
		return fmt.Errorf("invalid appointment status: %s", a.Status)
	}
	return s.appointments.Create(ctx, a)
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// ListAppointmentsFor scopes the appointment list to the requester.
// Doctors see their own schedule, patients their own bookings, and
// every other role sees everything.
func (s *Service) ListAppointmentsFor(ctx context.Context, role auth.Role, userID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	switch role {
	case auth.RoleDoctor:
		doctorID, err := s.directory.DoctorIDForUser(ctx, userID)
		if err != nil {
			return nil, 0, err
		}
		return s.appointments.ListByDoctor(ctx, doctorID, limit, offset)
	case auth.RolePatient:
		patientID, err := s.directory.PatientIDForUser(ctx, userID)
		if err != nil {
			return nil, 0, err
		}
		return s.appointments.ListByPatient(ctx, patientID, limit, offset)
	default:
		return s.appointments.List(ctx, limit, offset)
	}
}

// -- LabTest --

// CreateLabTest records a lab test. The test date is stamped by the
// server; a client-supplied value is ignored.
func (s *Service) CreateLabTest(ctx context.Context, lt *LabTest) error {
	if lt.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if lt.TestName == "" {
		return fmt.Errorf("test_name is required")
	}
	lt.TestDate = time.Now()
	if lt.Status == "" {
		lt.Status = LabTestPending
	}
	if !validLabTestStatuses[lt.Status] {
		return fmt.Errorf("invalid lab test status: %s", lt.Status)
	}
	return s.labTests.Create(ctx, lt)
}

func (s *Service) GetLabTest(ctx context.Context, id uuid.UUID) (*LabTest, error) {
	return s.labTests.GetByID(ctx, id)
}

func (s *Service) ListLabTests(ctx context.Context, limit, offset int) ([]*LabTest, int, error) {
	return s.labTests.List(ctx, limit, offset)
}

func (s *Service) ListLabTestsByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*LabTest, int, error) {
	return s.labTests.ListByPatient(ctx, patientID, limit, offset)
}
