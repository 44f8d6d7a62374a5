package service

import (
	"context"

	"pos-system/internal/repo"
)

type ExpenseReport struct {
	From  string  `json:"from,omitempty"`
	To    string  `json:"to,omitempty"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

type ReportService struct {
	Repo *repo.GormRepo
}

// OrderReport groups placed orders by day with item and revenue totals.
func (s *ReportService) OrderReport(ctx context.Context, from, to string) ([]repo.OrderDayRow, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.Repo.OrdersByDay(ctx, from, to)
}

func (s *ReportService) ExpenseReport(ctx context.Context, from, to string) (*ExpenseReport, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	expenses, err := s.Repo.ListExpenses(ctx, from, to)
	if err != nil {
		return nil, err
	}
	total, err := s.Repo.ExpenseTotal(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &ExpenseReport{From: from, To: to, Count: len(expenses), Total: total}, nil
}
