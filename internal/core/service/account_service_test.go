package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/Hezi12/hotel-management-system-sub001/internal/core/domain"
)

type stubAccountRepo struct {
	accounts  map[string]*domain.Account
	nextID    int
	insertErr error
	findErr   error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Insert(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	// Mirrors the unique index: the repository is the final duplicate guard.
	if _, exists := r.accounts[account.Email]; exists {
		return nil, domain.ErrAccountExists
	}
	r.nextID++
	stored := cloneAccount(account)
	stored.ID = fmt.Sprintf("acct_%d", r.nextID)
	r.accounts[stored.Email] = stored
	return cloneAccount(stored), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	account, ok := r.accounts[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(account), nil
}

func validCandidate() domain.NewAccount {
	return domain.NewAccount{
		Email:     "a@b.com",
		FirstName: "A",
		LastName:  "B",
		Password:  "abcdef",
	}
}

func TestAccountService_Create_HashesPassword(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo())

	created, err := svc.Create(context.Background(), validCandidate())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
	if created.PasswordHash == "abcdef" {
		t.Fatalf("plaintext stored instead of hash")
	}

	found, err := svc.FindByEmail(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("FindByEmail returned error: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte("abcdef")); err != nil {
		t.Fatalf("stored hash does not verify original password: %v", err)
	}
}

func TestAccountService_Create_DefaultsRoleToEmployee(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo())

	created, err := svc.Create(context.Background(), validCandidate())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Role != domain.RoleEmployee {
		t.Fatalf("expected role %q, got %q", domain.RoleEmployee, created.Role)
	}
}

func TestAccountService_Create_RejectsUnknownRole(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo())

	candidate := validCandidate()
	candidate.Role = domain.Role("owner")

	var verr *domain.ValidationError
	if _, err := svc.Create(context.Background(), candidate); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAccountService_Create_Duplicate(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo)

	if _, err := svc.Create(context.Background(), validCandidate()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	second := validCandidate()
	second.FirstName = "Other"
	if _, err := svc.Create(context.Background(), second); !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
	if len(repo.accounts) != 1 {
		t.Fatalf("expected 1 stored account, got %d", len(repo.accounts))
	}
}

func TestAccountService_Create_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.NewAccount)
	}{
		{"missing email", func(c *domain.NewAccount) { c.Email = "" }},
		{"malformed email", func(c *domain.NewAccount) { c.Email = "not-an-address" }},
		{"missing first name", func(c *domain.NewAccount) { c.FirstName = "" }},
		{"missing last name", func(c *domain.NewAccount) { c.LastName = "" }},
		{"missing password", func(c *domain.NewAccount) { c.Password = "" }},
		{"password too short", func(c *domain.NewAccount) { c.Password = "abcde" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewAccountService(newStubAccountRepo())
			candidate := validCandidate()
			tc.mutate(&candidate)

			var verr *domain.ValidationError
			if _, err := svc.Create(context.Background(), candidate); !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestAccountService_Create_AcceptsMinimumPasswordLength(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo())

	candidate := validCandidate()
	candidate.Password = "123456"
	if _, err := svc.Create(context.Background(), candidate); err != nil {
		t.Fatalf("6-char password should be accepted, got %v", err)
	}
}

func TestAccountService_EmailNormalization(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo())

	candidate := validCandidate()
	candidate.Email = "  Reception@Hotel.COM "
	created, err := svc.Create(context.Background(), candidate)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Email != "reception@hotel.com" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}

	if _, err := svc.FindByEmail(context.Background(), "RECEPTION@hotel.com"); err != nil {
		t.Fatalf("lookup with different casing failed: %v", err)
	}
}

func TestAccountService_Create_PropagatesStorageError(t *testing.T) {
	repo := newStubAccountRepo()
	repo.findErr = domain.ErrStorageUnavailable
	svc := NewAccountService(repo)

	if _, err := svc.Create(context.Background(), validCandidate()); !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}
