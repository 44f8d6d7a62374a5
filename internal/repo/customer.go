package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pos-system/internal/models"
)

func (r *GormRepo) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.DB.WithContext(ctx).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// InsertCustomerIfAbsent resolves a customer by phone, inserting a new
// row only when no customer with that phone exists. Existing rows are
// returned untouched.
func (r *GormRepo) InsertCustomerIfAbsent(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone"}},
			DoNothing: true,
		}).
		Create(customer).Error; err != nil {
		return nil, err
	}

	var existing models.Customer
	if err := r.DB.WithContext(ctx).
		Where("phone = ?", customer.Phone).
		First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}
