package directory

import (
	"time"

	"github.com/google/uuid"
)

// Department maps to the departments table.
type Department struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Doctor maps to the doctors table. Every doctor is backed by a user
// account holding the doctor role.
type Doctor struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	UserID          uuid.UUID  `db:"user_id" json:"user_id"`
	DepartmentID    *uuid.UUID `db:"department_id" json:"department_id,omitempty"`
	Specialization  string     `db:"specialization" json:"specialization"`
	Phone           string     `db:"phone" json:"phone"`
	Qualification   string     `db:"qualification" json:"qualification"`
	ExperienceYears int        `db:"experience_years" json:"experience_years"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

// Patient maps to the patients table. Every patient is backed by a user
// account holding the patient role.
type Patient struct {
	ID             uuid.UUID `db:"id" json:"id"`
	UserID         uuid.UUID `db:"user_id" json:"user_id"`
	DateOfBirth    time.Time `db:"date_of_birth" json:"date_of_birth"`
	Gender         string    `db:"gender" json:"gender"`
	Contact        string    `db:"contact" json:"contact"`
	Address        string    `db:"address" json:"address"`
	BloodGroup     string    `db:"blood_group" json:"blood_group"`
	MedicalHistory string    `db:"medical_history" json:"medical_history"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// SecurityStaff maps to the security_staff table. Shift boundaries are
// clock times in "HH:MM" form.
type SecurityStaff struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserID       uuid.UUID `db:"user_id" json:"user_id"`
	ShiftStart   string    `db:"shift_start" json:"shift_start"`
	ShiftEnd     string    `db:"shift_end" json:"shift_end"`
	Phone        string    `db:"phone" json:"phone"`
	AssignedGate string    `db:"assigned_gate" json:"assigned_gate"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
