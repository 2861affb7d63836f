package facility

import (
	"time"

	"github.com/google/uuid"
)

type InventoryItem struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Category    string     `db:"category" json:"category,omitempty"`
	Quantity    int        `db:"quantity" json:"quantity"`
	Unit        string     `db:"unit" json:"unit"`
	AddedDate   time.Time  `db:"added_date" json:"added_date"`
	LastUpdated time.Time  `db:"last_updated" json:"last_updated"`
	ExpiryDate  *time.Time `db:"expiry_date" json:"expiry_date,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// EntryLog records a visitor passing a gate. TimeIn is stamped by the
// server and TimeOut stays open until the visitor leaves.
type EntryLog struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	PersonName string     `db:"person_name" json:"person_name"`
	Purpose    string     `db:"purpose" json:"purpose,omitempty"`
	TimeIn     time.Time  `db:"time_in" json:"time_in"`
	TimeOut    *time.Time `db:"time_out" json:"time_out,omitempty"`
	HandledBy  *uuid.UUID `db:"handled_by" json:"handled_by,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}
