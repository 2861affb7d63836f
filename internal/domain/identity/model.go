package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/lamasamir/hms/internal/platform/auth"
)

// User maps to the users table. The password hash never leaves the API.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         auth.Role `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// RegisterInput is the public registration payload.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse carries a signed bearer token alongside the user it
// authenticates.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// DashboardCounts backs the admin dashboard.
type DashboardCounts struct {
	Patients       int `json:"patients"`
	Doctors        int `json:"doctors"`
	Appointments   int `json:"appointments"`
	LabTests       int `json:"lab_tests"`
	Medicines      int `json:"medicines"`
	InventoryItems int `json:"inventory_items"`
	Bills          int `json:"bills"`
}
