package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"pos-system/internal/logging"
	"pos-system/internal/models"
	"pos-system/internal/repo"
	"pos-system/internal/validation"
)

// OrderView is the denormalized order the UI consumes: the stored row
// joined with its resolved customer and address plus derived cart totals.
type OrderView struct {
	ID               uint               `json:"id"`
	OrderType        models.OrderType   `json:"order_type"`
	Status           models.OrderStatus `json:"status"`
	DoesChargesApply bool               `json:"does_charges_apply"`
	Customer         models.Customer    `json:"customer"`
	Address          models.Address     `json:"address"`
	TotalQuantity    uint               `json:"total_quantity"`
	TotalPrice       float64            `json:"total_price"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

type CreateOrderRequest struct {
	OrderType        models.OrderType
	DoesChargesApply bool
	Customer         *models.Customer
	Address          *models.Address
}

type OrderService struct {
	Repo     *repo.GormRepo
	Selected *SelectedService
	Hub      *Hub
}

// ResolveOrCreateAddress returns the id of the address with the given
// name, inserting it first when absent. Existing rows are never
// overwritten, so resolution is idempotent.
func (s *OrderService) ResolveOrCreateAddress(ctx context.Context, candidate models.Address) (uint, error) {
	if res := validation.ValidateAddressName(candidate.AddressName); !res.Successful {
		return 0, fmt.Errorf("%w: %s", ErrValidation, res.Message)
	}
	if res := validation.ValidateAddressShortName(candidate.ShortName); !res.Successful {
		return 0, fmt.Errorf("%w: %s", ErrValidation, res.Message)
	}

	address, err := s.Repo.InsertAddressIfAbsent(ctx, &models.Address{
		AddressName: candidate.AddressName,
		ShortName:   candidate.ShortName,
	})
	if err != nil {
		return 0, err
	}
	return address.ID, nil
}

// ResolveOrCreateCustomer resolves by phone, the customer natural key.
func (s *OrderService) ResolveOrCreateCustomer(ctx context.Context, candidate models.Customer) (uint, error) {
	if res := validation.ValidateCustomerPhone(candidate.Phone); !res.Successful {
		return 0, fmt.Errorf("%w: %s", ErrValidation, res.Message)
	}

	customer, err := s.Repo.InsertCustomerIfAbsent(ctx, &models.Customer{
		Phone: candidate.Phone,
		Name:  candidate.Name,
		Email: candidate.Email,
	})
	if err != nil {
		return 0, err
	}
	return customer.ID, nil
}

// CreateOrder starts a new order. Dine-out orders resolve their customer
// and address first; dine-in orders keep both references NULL. The new
// order always becomes the active selection.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderView, error) {
	if req.OrderType != models.OrderTypeDineIn && req.OrderType != models.OrderTypeDineOut {
		return nil, fmt.Errorf("%w: unknown order type %q", ErrValidation, req.OrderType)
	}

	var customerID, addressID *uint
	if req.OrderType == models.OrderTypeDineOut {
		if req.Customer != nil {
			id, err := s.ResolveOrCreateCustomer(ctx, *req.Customer)
			if err != nil {
				return nil, err
			}
			customerID = &id
		}
		if req.Address != nil {
			id, err := s.ResolveOrCreateAddress(ctx, *req.Address)
			if err != nil {
				return nil, err
			}
			addressID = &id
		}
		if res := validation.ValidateResolvedID(customerID, "customer"); !res.Successful {
			return nil, fmt.Errorf("%w: %s", ErrValidation, res.Message)
		}
		if res := validation.ValidateResolvedID(addressID, "address"); !res.Successful {
			return nil, fmt.Errorf("%w: %s", ErrValidation, res.Message)
		}
	}

	order := models.CartOrder{
		OrderType:        req.OrderType,
		Status:           models.OrderStatusProcessing,
		DoesChargesApply: req.DoesChargesApply,
		CustomerID:       customerID,
		AddressID:        addressID,
	}
	if err := s.Repo.CreateCartOrder(ctx, &order); err != nil {
		return nil, err
	}

	if err := s.Selected.OnOrderCreated(ctx, order.ID); err != nil {
		logging.FromContext(ctx).Error("selected pointer update failed", "order_id", order.ID, "error", err)
		return nil, errors.New("unable to create order")
	}
	s.Hub.Notify()

	return s.GetOrder(ctx, order.ID)
}

// GetOrder returns the assembled view, or ErrNotFound.
func (s *OrderService) GetOrder(ctx context.Context, id uint) (*OrderView, error) {
	order, err := s.Repo.GetCartOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
	}
	view, err := s.assemble(ctx, *order)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ListOrders returns all orders, filtered by a case-insensitive
// substring over customer phone, customer name, address name and order
// id. The unfiltered snapshot is cached on the hub for the watchers.
func (s *OrderService) ListOrders(ctx context.Context, search string) ([]OrderView, error) {
	views, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return views, nil
	}

	filtered := make([]OrderView, 0, len(views))
	for _, v := range views {
		if matchesSearch(v, search) {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

func (s *OrderService) ListProcessingOrders(ctx context.Context) ([]OrderView, error) {
	orders, err := s.Repo.ListProcessingCartOrders(ctx)
	if err != nil {
		return nil, err
	}
	return s.assembleAll(ctx, orders)
}

// WatchOrders pushes a full replacement snapshot on every mutation until
// ctx is cancelled. A slow consumer only ever sees the latest snapshot;
// intermediate ones are dropped.
func (s *OrderService) WatchOrders(ctx context.Context, search string) <-chan []OrderView {
	return s.watch(ctx, func(ctx context.Context) ([]OrderView, error) {
		return s.ListOrders(ctx, search)
	})
}

func (s *OrderService) WatchProcessingOrders(ctx context.Context) <-chan []OrderView {
	return s.watch(ctx, s.ListProcessingOrders)
}

// PlaceOrder transitions Processing -> Placed, requiring a non-empty
// cart, then reconciles the selected pointer.
func (s *OrderService) PlaceOrder(ctx context.Context, id uint) (*OrderView, error) {
	count, err := s.Repo.CountCartItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: cannot place an empty order", ErrValidation)
	}

	rows, err := s.Repo.PlaceCartOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		order, err := s.Repo.GetCartOrder(ctx, id)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: order %d is already placed", ErrConflict, id)
	}

	if err := s.Selected.Reconcile(ctx); err != nil {
		logging.FromContext(ctx).Error("selected pointer reconcile failed", "order_id", id, "error", err)
		return nil, errors.New("unable to place order")
	}
	s.Hub.Notify()

	return s.GetOrder(ctx, id)
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	rows, err := s.Repo.DeleteCartOrder(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: order %d", ErrNotFound, id)
	}

	if err := s.Selected.OnOrdersDeleted(ctx); err != nil {
		logging.FromContext(ctx).Error("selected pointer reconcile failed", "order_id", id, "error", err)
		return errors.New("unable to delete order")
	}
	s.Hub.Notify()
	return nil
}

// DeleteOrders removes the given orders and reports how many went away.
func (s *OrderService) DeleteOrders(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: no order ids given", ErrValidation)
	}

	rows, err := s.Repo.DeleteCartOrders(ctx, ids)
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, fmt.Errorf("%w: no matching orders", ErrNotFound)
	}

	if err := s.Selected.OnOrdersDeleted(ctx); err != nil {
		logging.FromContext(ctx).Error("selected pointer reconcile failed", "error", err)
		return 0, errors.New("unable to delete orders")
	}
	s.Hub.Notify()
	return rows, nil
}

func (s *OrderService) SelectOrder(ctx context.Context, id uint) error {
	if err := s.Selected.Select(ctx, id); err != nil {
		return err
	}
	s.Hub.Notify()
	return nil
}

func (s *OrderService) GetSelectedOrder(ctx context.Context) (*OrderView, error) {
	id, ok, err := s.Selected.Current(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: no order selected", ErrNotFound)
	}
	return s.GetOrder(ctx, id)
}

func (s *OrderService) listAll(ctx context.Context) ([]OrderView, error) {
	if views, ok := s.Hub.cached(); ok {
		return views, nil
	}

	gen := s.Hub.generation()
	orders, err := s.Repo.ListCartOrders(ctx)
	if err != nil {
		return nil, err
	}
	views, err := s.assembleAll(ctx, orders)
	if err != nil {
		return nil, err
	}
	s.Hub.store(views, gen)
	return views, nil
}

func (s *OrderService) assembleAll(ctx context.Context, orders []models.CartOrder) ([]OrderView, error) {
	views := make([]OrderView, len(orders))
	g, gctx := errgroup.WithContext(ctx)
	for i, order := range orders {
		i, order := i, order
		g.Go(func() error {
			view, err := s.assemble(gctx, order)
			if err != nil {
				return err
			}
			views[i] = view
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

// assemble joins an order row with its address, customer and cart
// totals. The three lookups are independent and run as sibling tasks;
// all must finish before the view is returned. A missing address or
// customer row degrades to the zero value instead of failing, and
// dine-in orders skip the lookups entirely.
func (s *OrderService) assemble(ctx context.Context, order models.CartOrder) (OrderView, error) {
	view := OrderView{
		ID:               order.ID,
		OrderType:        order.OrderType,
		Status:           order.Status,
		DoesChargesApply: order.DoesChargesApply,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}

	g, gctx := errgroup.WithContext(ctx)
	if order.OrderType != models.OrderTypeDineIn {
		if order.AddressID != nil {
			id := *order.AddressID
			g.Go(func() error {
				address, err := s.Repo.GetAddress(gctx, id)
				if err != nil {
					return err
				}
				if address != nil {
					view.Address = *address
				}
				return nil
			})
		}
		if order.CustomerID != nil {
			id := *order.CustomerID
			g.Go(func() error {
				customer, err := s.Repo.GetCustomer(gctx, id)
				if err != nil {
					return err
				}
				if customer != nil {
					view.Customer = *customer
				}
				return nil
			})
		}
	}
	g.Go(func() error {
		quantity, total, err := s.Repo.CartOrderTotals(gctx, order.ID)
		if err != nil {
			return err
		}
		view.TotalQuantity = quantity
		view.TotalPrice = total
		return nil
	})

	if err := g.Wait(); err != nil {
		return OrderView{}, err
	}
	return view, nil
}

func (s *OrderService) watch(ctx context.Context, list func(context.Context) ([]OrderView, error)) <-chan []OrderView {
	out := make(chan []OrderView, 1)
	id, wake := s.Hub.subscribe()

	go func() {
		defer close(out)
		defer s.Hub.unsubscribe(id)

		for {
			views, err := list(ctx)
			if err == nil {
				// latest wins: replace an unread snapshot
				select {
				case <-out:
				default:
				}
				select {
				case out <- views:
				default:
				}
			} else if ctx.Err() == nil {
				logging.FromContext(ctx).Error("order watch refresh failed", "error", err)
			}

			select {
			case <-ctx.Done():
				return
			case <-wake:
			}
		}
	}()

	return out
}

func matchesSearch(v OrderView, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(v.Customer.Phone), needle) ||
		strings.Contains(strings.ToLower(v.Customer.Name), needle) ||
		strings.Contains(strings.ToLower(v.Address.AddressName), needle) ||
		strings.Contains(strconv.FormatUint(uint64(v.ID), 10), needle)
}
