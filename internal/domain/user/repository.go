package user

import "context"

// Repository also resolves households by name because account creation
// links the new user to a get-or-create'd household in the same
// transaction.
type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
	GetOrCreateHousehold(ctx context.Context, name string) (uint, error)
}
