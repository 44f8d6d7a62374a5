package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pos-system/internal/models"
)

func (r *GormRepo) GetAddress(ctx context.Context, id uint) (*models.Address, error) {
	var address models.Address
	if err := r.DB.WithContext(ctx).First(&address, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

// InsertAddressIfAbsent inserts the address unless a row with the same
// name already exists, then returns the surviving row. The unique index
// on address_name plus ON CONFLICT DO NOTHING keeps concurrent resolution
// of the same name from producing duplicates.
func (r *GormRepo) InsertAddressIfAbsent(ctx context.Context, address *models.Address) (*models.Address, error) {
	if err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address_name"}},
			DoNothing: true,
		}).
		Create(address).Error; err != nil {
		return nil, err
	}

	var existing models.Address
	if err := r.DB.WithContext(ctx).
		Where("address_name = ?", address.AddressName).
		First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}
