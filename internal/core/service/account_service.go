package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/Hezi12/hotel-management-system-sub001/internal/core/domain"
	"github.com/Hezi12/hotel-management-system-sub001/internal/core/ports"
)

const minPasswordLength = 6

var validate = validator.New()

// AccountService is the credential store. It validates candidates, hashes the
// plaintext secret exactly once at write time, and delegates persistence to
// the repository. The repository's unique email key is the final arbiter
// against duplicate creation; the pre-check here only produces a friendlier
// error on the common path.
type AccountService struct {
	repo     ports.AccountRepository
	hashCost int
}

func NewAccountService(repo ports.AccountRepository) *AccountService {
	return &AccountService{repo: repo, hashCost: bcrypt.DefaultCost}
}

// NormalizeEmail applies the store's email key policy: case-insensitive,
// surrounding whitespace ignored. Create and FindByEmail both go through it
// so creation and lookup can never disagree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AccountService) Create(ctx context.Context, candidate domain.NewAccount) (*domain.Account, error) {
	candidate.Email = NormalizeEmail(candidate.Email)

	if err := validateCandidate(candidate); err != nil {
		return nil, err
	}

	role := candidate.Role
	if role == "" {
		role = domain.RoleEmployee
	}
	if !role.Valid() {
		return nil, &domain.ValidationError{Field: "role", Reason: "must be admin, reception or employee"}
	}

	// Fast path for a clean conflict message. The unique index on email
	// still backstops concurrent creates racing past this check.
	existing, err := s.repo.FindByEmail(ctx, candidate.Email)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAccountExists
	}

	// The only place plaintext is ever hashed. Account carries just the
	// digest from here on, so later persistence cannot re-hash it.
	hash, err := bcrypt.GenerateFromPassword([]byte(candidate.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		Email:        candidate.Email,
		FirstName:    candidate.FirstName,
		LastName:     candidate.LastName,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	return s.repo.Insert(ctx, account)
}

func (s *AccountService) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return s.repo.FindByEmail(ctx, NormalizeEmail(email))
}

func validateCandidate(c domain.NewAccount) error {
	if c.Email == "" {
		return &domain.ValidationError{Field: "email", Reason: "is required"}
	}
	if err := validate.Var(c.Email, "email"); err != nil {
		return &domain.ValidationError{Field: "email", Reason: "must be a valid address"}
	}
	if c.FirstName == "" {
		return &domain.ValidationError{Field: "firstName", Reason: "is required"}
	}
	if c.LastName == "" {
		return &domain.ValidationError{Field: "lastName", Reason: "is required"}
	}
	if c.Password == "" {
		return &domain.ValidationError{Field: "password", Reason: "is required"}
	}
	if len(c.Password) < minPasswordLength {
		return &domain.ValidationError{Field: "password", Reason: fmt.Sprintf("must be at least %d characters", minPasswordLength)}
	}
	return nil
}
