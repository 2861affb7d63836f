package pharmacy

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Medicine is a catalog entry. Price is the current unit price; sale
// totals are derived from it at read time rather than stored.
type Medicine struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	Name         string          `db:"name" json:"name"`
	Description  string          `db:"description" json:"description,omitempty"`
	Manufacturer string          `db:"manufacturer" json:"manufacturer,omitempty"`
	Price        decimal.Decimal `db:"price" json:"price"`
	ExpiryDate   *time.Time      `db:"expiry_date" json:"expiry_date,omitempty"`
	Stock        int             `db:"stock" json:"stock"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// MedicineSale records a dispensing event. TotalPrice is computed as
// quantity times the medicine's current price whenever the sale is read.
type MedicineSale struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	PatientID  uuid.UUID       `db:"patient_id" json:"patient_id"`
	MedicineID uuid.UUID       `db:"medicine_id" json:"medicine_id"`
	Quantity   int             `db:"quantity" json:"quantity"`
	SaleDate   time.Time       `db:"sale_date" json:"sale_date"`
	TotalPrice decimal.Decimal `db:"total_price" json:"total_price"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}
