package service

import (
	"context"
	"fmt"

	"pos-system/internal/logging"
	"pos-system/internal/models"
	"pos-system/internal/repo"
	"pos-system/internal/validation"
)

// MenuIndexer mirrors menu writes into the search index. Index failures
// never fail the write; they are logged and the row stays authoritative.
type MenuIndexer interface {
	IndexMenuItem(ctx context.Context, item models.MenuItem) error
	DeleteMenuItem(ctx context.Context, id uint) error
}

type MenuService struct {
	Repo    *repo.GormRepo
	Indexer MenuIndexer
	Hub     *Hub
}

func (s *MenuService) validate(item *models.MenuItem) error {
	if item.Name == "" {
		return fmt.Errorf("%w: menu item name must not be empty", ErrValidation)
	}
	if res := validation.ValidatePrice(item.Price); !res.Successful {
		return fmt.Errorf("%w: %s", ErrValidation, res.Message)
	}
	return nil
}

func (s *MenuService) Create(ctx context.Context, item *models.MenuItem) error {
	if err := s.validate(item); err != nil {
		return err
	}
	if err := s.Repo.CreateMenuItem(ctx, item); err != nil {
		return err
	}
	s.index(ctx, *item)
	return nil
}

func (s *MenuService) Get(ctx context.Context, id uint) (*models.MenuItem, error) {
	item, err := s.Repo.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item %d", ErrNotFound, id)
	}
	return item, nil
}

func (s *MenuService) List(ctx context.Context, offset, limit int) ([]models.MenuItem, int64, error) {
	return s.Repo.ListMenuItems(ctx, offset, limit)
}

// Update rewrites the full row. Price changes affect derived order
// totals, so watchers get a fresh snapshot.
func (s *MenuService) Update(ctx context.Context, item *models.MenuItem) error {
	if err := s.validate(item); err != nil {
		return err
	}
	existing, err := s.Repo.GetMenuItem(ctx, item.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: menu item %d", ErrNotFound, item.ID)
	}
	if err := s.Repo.UpdateMenuItem(ctx, item); err != nil {
		return err
	}
	s.index(ctx, *item)
	s.Hub.Notify()
	return nil
}

func (s *MenuService) Delete(ctx context.Context, id uint) error {
	rows, err := s.Repo.DeleteMenuItem(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: menu item %d", ErrNotFound, id)
	}
	if s.Indexer != nil {
		if err := s.Indexer.DeleteMenuItem(ctx, id); err != nil {
			logging.FromContext(ctx).Error("menu index delete failed", "menu_item_id", id, "error", err)
		}
	}
	s.Hub.Notify()
	return nil
}

func (s *MenuService) index(ctx context.Context, item models.MenuItem) {
	if s.Indexer == nil {
		return
	}
	if err := s.Indexer.IndexMenuItem(ctx, item); err != nil {
		logging.FromContext(ctx).Error("menu index failed", "menu_item_id", item.ID, "error", err)
	}
}
