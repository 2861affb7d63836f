package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lamasamir/hms/internal/platform/auth"
)

var (
	// ErrAdminRegistration is returned when public registration asks
	// for the admin role. Admin accounts are only minted by an
	// existing admin.
	ErrAdminRegistration = errors.New("you cannot choose the admin role")

	// ErrInvalidCredentials deliberately does not distinguish between
	// an unknown username and a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Service struct {
	users   UserRepository
	stats   StatsRepository
	signer  *auth.TokenSigner
	revoked *auth.TokenRevocationStore
}

func NewService(users UserRepository, stats StatsRepository, signer *auth.TokenSigner, revoked *auth.TokenRevocationStore) *Service {
	return &Service{users: users, stats: stats, signer: signer, revoked: revoked}
}

// Register creates a user from a public registration and signs them in.
// Requests for the admin role are rejected before anything persists.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResponse, error) {
	role, err := auth.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	if role == auth.RoleAdmin {
		return nil, ErrAdminRegistration
	}
	return s.createUserWithToken(ctx, in, role)
}

// CreateAdmin creates a user whose role is forced to admin regardless of
// the submitted role. Callers gate this on the admin role.
func (s *Service) CreateAdmin(ctx context.Context, in RegisterInput) (*User, error) {
	resp, err := s.createUserWithToken(ctx, in, auth.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (s *Service) createUserWithToken(ctx context.Context, in RegisterInput, role auth.Role) (*AuthResponse, error) {
	if in.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, _, err := s.signer.Issue(u.ID, u.Username, u.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: u}, nil
}

// Login verifies credentials and issues a bearer token. All failure
// modes collapse into ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	u, err := s.users.GetByUsername(ctx, creds.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	ok, err := auth.VerifyPassword(u.PasswordHash, creds.Password)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	token, _, err := s.signer.Issue(u.ID, u.Username, u.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: u}, nil
}

// Logout revokes the presented token by its JTI. The token stays dead
// until it would have expired anyway.
func (s *Service) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ID == "" {
		return fmt.Errorf("no token to revoke")
	}
	// Tokens without an exp claim are held for a day rather than
	// dereferencing a nil expiry.
	expiresAt := time.Now().Add(24 * time.Hour)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	s.revoked.Revoke(claims.ID, claims.Subject, expiresAt)
	return nil
}

// Dashboard returns the requesting user's own record.
func (s *Service) Dashboard(ctx context.Context, userID uuid.UUID) (*User, error) {
	return s.users.GetByID(ctx, userID)
}

// AdminDashboard returns system-wide entity counts.
func (s *Service) AdminDashboard(ctx context.Context) (*DashboardCounts, error) {
	return s.stats.Counts(ctx)
}

// GetUser returns a user by ID.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.users.GetByID(ctx, id)
}

// ListUsers pages through all user accounts.
func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]*User, int, error) {
	return s.users.List(ctx, limit, offset)
}
