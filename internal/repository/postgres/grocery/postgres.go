package grocery

import (
	"context"
	"errors"

	domain "github.com/dijana-z/organize-me/internal/domain/grocery"
	"gorm.io/gorm"
)

// The two membership collections live in separate join tables, mirroring
// the legacy schema.
const (
	groceryListTable  = "household_grocery_lists"
	shoppingListTable = "household_shopping_lists"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(domain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) ListByHousehold(ctx context.Context, householdID uint) ([]domain.Grocery, error) {
	var items []domain.Grocery
	if err := r.db.WithContext(ctx).
		Where("household_id = ?", householdID).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, householdID, id uint) (*domain.Grocery, error) {
	var item domain.Grocery
	if err := r.db.WithContext(ctx).
		Where("household_id = ? AND id = ?", householdID, id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroceryNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) Create(ctx context.Context, grocery *domain.Grocery) error {
	return r.db.WithContext(ctx).Create(grocery).Error
}

func (r *PostgresRepository) Update(ctx context.Context, grocery *domain.Grocery) error {
	return r.db.WithContext(ctx).
		Model(&domain.Grocery{}).
		Where("id = ? AND household_id = ?", grocery.ID, grocery.HouseholdID).
		Updates(map[string]interface{}{
			"name":     grocery.Name,
			"quantity": grocery.Quantity,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, householdID, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Grocery{}, "household_id = ? AND id = ?", householdID, id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ListMembers(ctx context.Context, householdID uint, list domain.List) ([]domain.Grocery, error) {
	table, err := listTable(list)
	if err != nil {
		return nil, err
	}

	var items []domain.Grocery
	if err := r.db.WithContext(ctx).
		Model(&domain.Grocery{}).
		Distinct("groceries.*").
		Joins("join "+table+" on "+table+".grocery_id = groceries.id").
		Where(table+".household_id = ?", householdID).
		Order("groceries.name desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) AddToList(ctx context.Context, householdID, groceryID uint, list domain.List) error {
	table, err := listTable(list)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Exec("INSERT INTO "+table+" (household_id, grocery_id) VALUES (?, ?) ON CONFLICT DO NOTHING", householdID, groceryID).
		Error
}

func listTable(list domain.List) (string, error) {
	switch list {
	case domain.GroceryList:
		return groceryListTable, nil
	case domain.ShoppingList:
		return shoppingListTable, nil
	default:
		return "", domain.ErrUnknownList
	}
}
