package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pos-system/internal/models"
)

func (r *GormRepo) CreateExpense(ctx context.Context, expense *models.Expense) error {
	return r.DB.WithContext(ctx).Create(expense).Error
}

func (r *GormRepo) GetExpense(ctx context.Context, id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := r.DB.WithContext(ctx).First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (r *GormRepo) ListExpenses(ctx context.Context, from, to string) ([]models.Expense, error) {
	q := r.DB.WithContext(ctx).Model(&models.Expense{})
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date <= ?", to)
	}

	var expenses []models.Expense
	if err := q.Order("date DESC, id DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *GormRepo) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	return r.DB.WithContext(ctx).Save(expense).Error
}

func (r *GormRepo) DeleteExpense(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&models.Expense{}, id)
	return res.RowsAffected, res.Error
}

func (r *GormRepo) ExpenseTotal(ctx context.Context, from, to string) (float64, error) {
	q := r.DB.WithContext(ctx).Model(&models.Expense{})
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date <= ?", to)
	}

	var total float64
	if err := q.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
