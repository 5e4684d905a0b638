package grocery

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name     string
	Quantity int
}

type UpdateInput struct {
	Name     *string
	Quantity *int
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	return name, nil
}

func (s *Service) List(ctx context.Context, householdID uint) ([]Grocery, error) {
	return s.repo.ListByHousehold(ctx, householdID)
}

func (s *Service) Get(ctx context.Context, householdID, id uint) (*Grocery, error) {
	return s.repo.GetByID(ctx, householdID, id)
}

// Create makes a grocery owned by the given household. The household always
// comes from the authenticated caller, never from client input.
func (s *Service) Create(ctx context.Context, householdID uint, input CreateInput) (*Grocery, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	if input.Quantity < 0 {
		return nil, ErrQuantityNegative
	}

	result := Grocery{
		Name:        name,
		Quantity:    input.Quantity,
		HouseholdID: householdID,
	}
	if err := s.repo.Create(ctx, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Update changes any subset of name and quantity. Ownership is validated
// before mutating; the owning household itself cannot be reassigned here.
func (s *Service) Update(ctx context.Context, householdID, id uint, input UpdateInput) (*Grocery, error) {
	var result Grocery
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		found, err := tx.GetByID(ctx, householdID, id)
		if err != nil {
			return err
		}

		if input.Name != nil {
			name, err := validateName(*input.Name)
			if err != nil {
				return err
			}
			found.Name = name
		}
		if input.Quantity != nil {
			if *input.Quantity < 0 {
				return ErrQuantityNegative
			}
			found.Quantity = *input.Quantity
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

// Delete is not idempotent: deleting an id that is already gone reports
// ErrGroceryNotFound.
func (s *Service) Delete(ctx context.Context, householdID, id uint) error {
	deleted, err := s.repo.Delete(ctx, householdID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrGroceryNotFound
	}
	return nil
}

// ListView projects the household's membership collection for one of the
// two lists.
func (s *Service) ListView(ctx context.Context, householdID uint, list List) ([]Grocery, error) {
	if !list.Valid() {
		return nil, ErrUnknownList
	}
	return s.repo.ListMembers(ctx, householdID, list)
}

// CreateInList creates the grocery under the caller's household and files it
// into the given list in one transaction. A failed membership insert rolls
// back the creation so no orphan grocery survives.
func (s *Service) CreateInList(ctx context.Context, householdID uint, list List, input CreateInput) (*Grocery, error) {
	if !list.Valid() {
		return nil, ErrUnknownList
	}

	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	if input.Quantity < 0 {
		return nil, ErrQuantityNegative
	}

	result := Grocery{
		Name:        name,
		Quantity:    input.Quantity,
		HouseholdID: householdID,
	}
	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.Create(ctx, &result); err != nil {
			return err
		}
		return tx.AddToList(ctx, householdID, result.ID, list)
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
