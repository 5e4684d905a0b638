package grocery

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	ListByHousehold(ctx context.Context, householdID uint) ([]Grocery, error)
	GetByID(ctx context.Context, householdID, id uint) (*Grocery, error)
	Create(ctx context.Context, grocery *Grocery) error
	Update(ctx context.Context, grocery *Grocery) error
	Delete(ctx context.Context, householdID, id uint) (bool, error)
	// ListMembers returns the household's items in the given list,
	// deduplicated and ordered by name descending.
	ListMembers(ctx context.Context, householdID uint, list List) ([]Grocery, error)
	AddToList(ctx context.Context, householdID, groceryID uint, list List) error
}
