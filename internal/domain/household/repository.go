package household

import "context"

// Repository owns the households table and the user->household link, the
// same way the household owns its members.
type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	GetByID(ctx context.Context, id uint) (*Household, error)
	Create(ctx context.Context, household *Household) error
	NameTaken(ctx context.Context, name string) (bool, error)
	UpdateName(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) (bool, error)
	LinkUser(ctx context.Context, userID, householdID uint) error
}
