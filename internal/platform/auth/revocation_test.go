package auth

import (
	"testing"
	"time"
)

func TestRevocationStore_RevokeAndCheck(t *testing.T) {
	s := NewTokenRevocationStore()
	defer s.Close()

	if s.IsRevoked("jti-1") {
		t.Error("fresh store should not report revoked")
	}
	s.Revoke("jti-1", "user-1", time.Now().Add(time.Hour))
	if !s.IsRevoked("jti-1") {
		t.Error("jti-1 should be revoked")
	}
	if s.IsRevoked("jti-2") {
		t.Error("jti-2 should not be revoked")
	}
	if s.Count() != 1 {
		t.Errorf("expected 1 entry, got %d", s.Count())
	}
}

func TestRevocationStore_CleanupRemovesExpired(t *testing.T) {
	s := NewTokenRevocationStore()
	defer s.Close()

	s.Revoke("old", "user-1", time.Now().Add(-time.Minute))
	s.Revoke("live", "user-1", time.Now().Add(time.Hour))

	s.cleanup()

	if s.IsRevoked("old") {
		t.Error("expired entry should have been cleaned up")
	}
	if !s.IsRevoked("live") {
		t.Error("live entry should survive cleanup")
	}
}

func TestRevocationStore_CloseTwice(t *testing.T) {
	s := NewTokenRevocationStore()
	s.Close()
	s.Close() // must not panic
}
