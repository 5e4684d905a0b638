package household

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

// ListForCaller returns the caller's household as a single-element list, or
// an empty list when the caller is not linked to one. Households outside the
// caller's scope are never returned.
func (s *Service) ListForCaller(ctx context.Context, callerHouseholdID *uint) ([]Household, error) {
	if callerHouseholdID == nil {
		return []Household{}, nil
	}

	found, err := s.repo.GetByID(ctx, *callerHouseholdID)
	if err != nil {
		return nil, err
	}

	return []Household{*found}, nil
}

// Get resolves an id within the caller's scope. An id belonging to another
// household is indistinguishable from a missing one.
func (s *Service) Get(ctx context.Context, callerHouseholdID *uint, id uint) (*Household, error) {
	if callerHouseholdID == nil || *callerHouseholdID != id {
		return nil, ErrHouseholdNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Create makes a new household and links the caller to it when they are not
// in one yet, in a single transaction.
func (s *Service) Create(ctx context.Context, callerID uint, callerHouseholdID *uint, name string) (*Household, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	var result Household
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		taken, err := tx.NameTaken(ctx, name)
		if err != nil {
			return err
		}
		if taken {
			return ErrNameTaken
		}

		result = Household{Name: name}
		if err := tx.Create(ctx, &result); err != nil {
			return err
		}

		if callerHouseholdID == nil {
			return tx.LinkUser(ctx, callerID, result.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *Service) Rename(ctx context.Context, callerHouseholdID *uint, id uint, name string) (*Household, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if callerHouseholdID == nil || *callerHouseholdID != id {
		return nil, ErrHouseholdNotFound
	}

	var result Household
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		found, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if name != found.Name {
			taken, err := tx.NameTaken(ctx, name)
			if err != nil {
				return err
			}
			if taken {
				return ErrNameTaken
			}
			if err := tx.UpdateName(ctx, id, name); err != nil {
				return err
			}
		}

		result = *found
		result.Name = name
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Delete removes the caller's household. Groceries cascade away and members
// are detached at the schema level.
func (s *Service) Delete(ctx context.Context, callerHouseholdID *uint, id uint) error {
	if callerHouseholdID == nil || *callerHouseholdID != id {
		return ErrHouseholdNotFound
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrHouseholdNotFound
	}
	return nil
}
