package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
)

var validPaymentStatuses = map[string]bool{
	PaymentStatusPaid:    true,
	PaymentStatusPending: true,
}

var validPaymentMethods = map[string]bool{
	"cash":    true,
	"card":    true,
	"esewa":   true,
	"fonepay": true,
}

type Bill struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	PatientID     uuid.UUID       `db:"patient_id" json:"patient_id"`
	AppointmentID *uuid.UUID      `db:"appointment_id" json:"appointment_id,omitempty"`
	Description   string          `db:"description" json:"description,omitempty"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	Tax           decimal.Decimal `db:"tax" json:"tax"`
	Discount      decimal.Decimal `db:"discount" json:"discount"`
	Total         decimal.Decimal `db:"total" json:"total"`
	PaymentMethod string          `db:"payment_method" json:"payment_method"`
	PaymentStatus string          `db:"payment_status" json:"payment_status"`
	PaymentDate   time.Time       `db:"payment_date" json:"payment_date"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

// BillInput is the write shape. It deliberately carries no total field;
// the total is always recomputed from amount, tax and discount.
type BillInput struct {
	PatientID     uuid.UUID       `json:"patient_id"`
	AppointmentID *uuid.UUID      `json:"appointment_id"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Tax           decimal.Decimal `json:"tax"`
	Discount      decimal.Decimal `json:"discount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	PaymentDate   *time.Time      `json:"payment_date"`
}
