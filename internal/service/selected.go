package service

import (
	"context"
	"fmt"
	"sync"

	"pos-system/internal/models"
	"pos-system/internal/repo"
)

// SelectedService owns the singleton "currently selected order" pointer.
// Every writer goes through its transitions; nothing else touches the
// selected row. The mutex serializes read-then-repoint sequences.
type SelectedService struct {
	Repo *repo.GormRepo

	mu sync.Mutex
}

// OnOrderCreated makes a freshly created order the active selection.
func (s *SelectedService) OnOrderCreated(ctx context.Context, orderID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Repo.SetSelected(ctx, orderID)
}

// OnOrdersDeleted repoints at the newest remaining Processing order, or
// clears the pointer when none remain.
func (s *SelectedService) OnOrdersDeleted(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repoint(ctx)
}

// Reconcile repairs the pointer after a status transition: a pointer at
// a Placed or missing order is reassigned, and an unset pointer
// self-heals onto the newest Processing order.
func (s *SelectedService) Reconcile(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected, err := s.Repo.GetSelected(ctx)
	if err != nil {
		return err
	}
	if selected != nil {
		order, err := s.Repo.GetCartOrder(ctx, selected.CartOrderID)
		if err != nil {
			return err
		}
		if order != nil && order.Status == models.OrderStatusProcessing {
			return nil
		}
	}
	return s.repoint(ctx)
}

// Select points at a specific Processing order.
func (s *SelectedService) Select(ctx context.Context, orderID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.Repo.GetCartOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}
	if order.Status != models.OrderStatusProcessing {
		return fmt.Errorf("%w: order %d is already placed", ErrConflict, orderID)
	}
	return s.Repo.SetSelected(ctx, orderID)
}

// Current returns the selected order id, reporting false when unset.
func (s *SelectedService) Current(ctx context.Context) (uint, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected, err := s.Repo.GetSelected(ctx)
	if err != nil {
		return 0, false, err
	}
	if selected == nil {
		return 0, false, nil
	}
	return selected.CartOrderID, true, nil
}

func (s *SelectedService) repoint(ctx context.Context) error {
	newest, err := s.Repo.NewestProcessingCartOrder(ctx)
	if err != nil {
		return err
	}
	if newest == nil {
		return s.Repo.ClearSelected(ctx)
	}
	return s.Repo.SetSelected(ctx, newest.ID)
}
