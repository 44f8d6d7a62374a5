package service

import (
	"context"
	"fmt"
	"time"

	"pos-system/internal/models"
	"pos-system/internal/repo"
	"pos-system/internal/validation"
)

type ExpenseService struct {
	Repo *repo.GormRepo
}

func (s *ExpenseService) validate(expense *models.Expense) error {
	if expense.Name == "" {
		return fmt.Errorf("%w: expense name must not be empty", ErrValidation)
	}
	if res := validation.ValidateExpenseAmount(expense.Amount); !res.Successful {
		return fmt.Errorf("%w: %s", ErrValidation, res.Message)
	}
	if _, err := time.Parse("2006-01-02", expense.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	return nil
}

func (s *ExpenseService) Create(ctx context.Context, expense *models.Expense) error {
	if err := s.validate(expense); err != nil {
		return err
	}
	return s.Repo.CreateExpense(ctx, expense)
}

func (s *ExpenseService) Get(ctx context.Context, id uint) (*models.Expense, error) {
	expense, err := s.Repo.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, fmt.Errorf("%w: expense %d", ErrNotFound, id)
	}
	return expense, nil
}

func (s *ExpenseService) List(ctx context.Context, from, to string) ([]models.Expense, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.Repo.ListExpenses(ctx, from, to)
}

func (s *ExpenseService) Update(ctx context.Context, expense *models.Expense) error {
	if err := s.validate(expense); err != nil {
		return err
	}
	existing, err := s.Repo.GetExpense(ctx, expense.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: expense %d", ErrNotFound, expense.ID)
	}
	return s.Repo.UpdateExpense(ctx, expense)
}

func (s *ExpenseService) Delete(ctx context.Context, id uint) error {
	rows, err := s.Repo.DeleteExpense(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: expense %d", ErrNotFound, id)
	}
	return nil
}
