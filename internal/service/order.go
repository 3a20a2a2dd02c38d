package service

import (
	"context"
	"fmt"

	"pos-backend/internal/common/logger"
	"pos-backend/internal/domain"
	"pos-backend/internal/repository"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type OrderServiceInterface interface {
	Create(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error)
	SetStatus(ctx context.Context, id int64, status string) error
	ListLive(ctx context.Context, limit, offset int) ([]domain.Order, int, error)
}

type OrderService struct {
	orders repository.OrderRepositoryInterface
	bc     Broadcaster
	mc     *menuCache
	codes  *CodeSource
	lg     *logger.Logger
}

func NewOrderService(orders repository.OrderRepositoryInterface, bc Broadcaster, mc *menuCache, codes *CodeSource, lg *logger.Logger) OrderServiceInterface {
	return &OrderService{orders: orders, bc: bc, mc: mc, codes: codes, lg: lg}
}

func (s *OrderService) Create(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	// 1. Reject malformed input before touching the store.
	if len(req.Items) == 0 {
		return domain.Order{}, &domain.ValidationError{Field: "items", Reason: "at least one item is required"}
	}
	if req.TableNumber < 0 {
		return domain.Order{}, &domain.ValidationError{Field: "table_number", Reason: "must not be negative"}
	}
	for _, it := range req.Items {
		if it.ID <= 0 {
			return domain.Order{}, &domain.ValidationError{Field: "items", Reason: "menu item id is required"}
		}
		if it.Quantity < 1 {
			return domain.Order{}, &domain.ValidationError{Field: "items", Reason: fmt.Sprintf("quantity for item %d must be at least 1", it.ID)}
		}
	}

	lines := make([]domain.OrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, domain.OrderLine{MenuItemID: it.ID, Quantity: it.Quantity})
	}

	// 2. Order row + line items + reservation, one unit of work. A code
	// collision gets one fresh code before surfacing as a conflict.
	order := domain.Order{
		Code:         s.codes.OrderCode(),
		CustomerName: req.CustomerName,
		TableNumber:  req.TableNumber,
		Status:       domain.StatusWaiting,
		Items:        lines,
	}
	err := s.orders.CreateOrder(ctx, &order)
	if repository.IsUniqueViolation(err) {
		order.Code = s.codes.OrderCode()
		if err = s.orders.CreateOrder(ctx, &order); repository.IsUniqueViolation(err) {
			return domain.Order{}, &domain.ConflictError{Code: order.Code}
		}
	}
	if err != nil {
		return domain.Order{}, err
	}

	// 3. Committed; let every observer know.
	s.bc.Broadcast(domain.UpdateAll(fmt.Sprintf("New order for Table %d!", order.TableNumber)))
	s.mc.invalidate(ctx)
	s.lg.Info("order_created", map[string]any{
		"order_uid": order.Code, "table": order.TableNumber, "items": len(order.Items),
	})
	return order, nil
}

func (s *OrderService) SetStatus(ctx context.Context, id int64, status string) error {
	if status == "" {
		return &domain.ValidationError{Field: "status", Reason: "must not be empty"}
	}
	// Deliberately permissive: no transition graph is enforced, any status
	// value is written as-is. Terminal states only matter to the live filter.
	if err := s.orders.SetStatus(ctx, id, status); err != nil {
		return err
	}
	s.bc.Broadcast(domain.UpdateAll(fmt.Sprintf("Order status changed to %s", status)))
	s.lg.Info("order_status_changed", map[string]any{"order_id": id, "status": status})
	return nil
}

func (s *OrderService) ListLive(ctx context.Context, limit, offset int) ([]domain.Order, int, error) {
	limit, offset = clampPage(limit, offset)
	return s.orders.ListLive(ctx, limit, offset)
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
