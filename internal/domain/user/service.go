package user

import (
	"context"
	"strings"

	"github.com/dijana-z/organize-me/internal/auth"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type RegisterInput struct {
	Email     string
	Password  string
	Name      string
	Household string
}

type UpdateInput struct {
	Email    *string
	Name     *string
	Password *string
}

// Register creates a regular account. An empty password triggers random
// generation; the account then cannot log in until the password is reset.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	return s.register(ctx, input, false)
}

// RegisterSuperuser creates an account with the staff and superuser flags
// set.
func (s *Service) RegisterSuperuser(ctx context.Context, input RegisterInput) (*User, error) {
	return s.register(ctx, input, true)
}

func (s *Service) register(ctx context.Context, input RegisterInput, elevated bool) (*User, error) {
	email, err := NormalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	password := input.Password
	if password == "" {
		password, err = auth.GeneratePassword()
		if err != nil {
			return nil, err
		}
	} else if len(password) < auth.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	result := User{
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		IsActive:     true,
		IsStaff:      elevated,
		IsSuperuser:  elevated,
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		taken, err := tx.EmailTaken(ctx, email, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}

		if household := strings.TrimSpace(input.Household); household != "" {
			householdID, err := tx.GetOrCreateHousehold(ctx, household)
			if err != nil {
				return err
			}
			result.HouseholdID = &householdID
		}

		return tx.Create(ctx, &result)
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Authenticate never reveals whether the email exists, the password is
// wrong, or the account is inactive.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if password == "" {
		return nil, ErrInvalidCredentials
	}

	found, err := s.repo.GetByEmail(ctx, normalized)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !found.IsActive {
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPassword(found.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return found, nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByEmail(ctx, normalized)
}

// Update applies a partial update of email, name and password to the given
// account.
func (s *Service) Update(ctx context.Context, id uint, input UpdateInput) (*User, error) {
	var result User
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		found, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.Email != nil {
			email, err := NormalizeEmail(*input.Email)
			if err != nil {
				return err
			}
			if email != found.Email {
				taken, err := tx.EmailTaken(ctx, email, id)
				if err != nil {
					return err
				}
				if taken {
					return ErrEmailTaken
				}
			}
			found.Email = email
		}

		if input.Name != nil {
			found.Name = strings.TrimSpace(*input.Name)
		}

		if input.Password != nil {
			if len(*input.Password) < auth.MinPasswordLength {
				return ErrPasswordTooShort
			}
			hash, err := auth.HashPassword(*input.Password)
			if err != nil {
				return err
			}
			found.PasswordHash = hash
		}

		if err := tx.Update(ctx, found); err != nil {
			return err
		}

		result = *found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
