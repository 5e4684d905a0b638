package household

import (
	"context"
	"errors"

	domain "github.com/dijana-z/organize-me/internal/domain/household"
	userdomain "github.com/dijana-z/organize-me/internal/domain/user"
	"gorm.io/gorm"
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

func (r *PostgresRepository) GetByID(ctx context.Context, id uint) (*domain.Household, error) {
	var household domain.Household
	if err := r.db.WithContext(ctx).First(&household, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHouseholdNotFound
		}
		return nil, err
	}
	return &household, nil
}

func (r *PostgresRepository) Create(ctx context.Context, household *domain.Household) error {
	return r.db.WithContext(ctx).Create(household).Error
}

func (r *PostgresRepository) NameTaken(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Household{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) UpdateName(ctx context.Context, id uint, name string) error {
	return r.db.WithContext(ctx).Model(&domain.Household{}).Where("id = ?", id).Update("name", name).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Household{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) LinkUser(ctx context.Context, userID, householdID uint) error {
	return r.db.WithContext(ctx).
		Model(&userdomain.User{}).
		Where("id = ?", userID).
		Update("household_id", householdID).Error
}
