package services

import (
	"testing"

	"railbook/internal/domain"
	"railbook/internal/storage"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	return &UserService{Store: storage.NewFileUserStore(t.TempDir())}
}

func TestSignupAndAuthenticate(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.Signup("Alice", "s3cret")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.ID == "" {
		t.Fatal("signup must assign an id")
	}
	if user.PasswordHash == "s3cret" {
		t.Fatal("password must not be stored in plain text")
	}

	got, ok, err := svc.Authenticate("alice", "s3cret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if !ok {
		t.Fatal("valid credentials rejected (username match is case-insensitive)")
	}
	if got.ID != user.ID {
		t.Fatalf("authenticated wrong user: %+v", got)
	}

	if _, ok, _ := svc.Authenticate("alice", "wrong"); ok {
		t.Fatal("wrong password accepted")
	}
	if _, ok, _ := svc.Authenticate("bob", "s3cret"); ok {
		t.Fatal("unknown user accepted")
	}
}

func TestSignupDuplicateUsernameCaseInsensitive(t *testing.T) {
	svc := newUserService(t)

	if _, err := svc.Signup("Alice", "x"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := svc.Signup("ALICE", "y"); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestSignupValidation(t *testing.T) {
	svc := newUserService(t)

	if _, err := svc.Signup("  ", "x"); !domain.IsValidation(err) {
		t.Fatalf("blank username: expected validation error, got %v", err)
	}
	if _, err := svc.Signup("bob", ""); !domain.IsValidation(err) {
		t.Fatalf("blank password: expected validation error, got %v", err)
	}
}
