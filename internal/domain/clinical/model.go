package clinical

import (
	"time"

	"github.com/google/uuid"
)

// Appointment maps to the appointments table.
type Appointment struct {
	ID              uuid.UUID `db:"id" json:"id"`
	PatientID       uuid.UUID `db:"patient_id" json:"patient_id"`
	DoctorID        uuid.UUID `db:"doctor_id" json:"doctor_id"`
	AppointmentDate time.Time `db:"appointment_date" json:"appointment_date"`
	TimeSlot        string    `db:"time_slot" json:"time_slot"`
	Reason          string    `db:"reason" json:"reason"`
	Status          string    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// LabTest maps to the lab_tests table. TestDate is set by the server at
// creation and never changes afterwards.
type LabTest struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	PatientID  uuid.UUID  `db:"patient_id" json:"patient_id"`
	DoctorID   *uuid.UUID `db:"doctor_id" json:"doctor_id,omitempty"`
	TestName   string     `db:"test_name" json:"test_name"`
	TestDate   time.Time  `db:"test_date" json:"test_date"`
	Result     string     `db:"result" json:"result"`
	ReportFile string     `db:"report_file" json:"report_file"`
	Status     string     `db:"status" json:"status"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"

	LabTestPending   = "pending"
	LabTestCompleted = "completed"
	LabTestCancelled = "cancelled"
)

var validAppointmentStatuses = map[string]bool{
	AppointmentScheduled: true,
	AppointmentCompleted: true,
	AppointmentCancelled: true,
}

var validLabTestStatuses = map[string]bool{
	LabTestPending:   true,
	LabTestCompleted: true,
	LabTestCancelled: true,
}
