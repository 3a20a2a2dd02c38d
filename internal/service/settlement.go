package service

import (
	"context"
	"fmt"

	"pos-backend/internal/common/logger"
	"pos-backend/internal/domain"
	"pos-backend/internal/repository"
)

type SettlementServiceInterface interface {
	Settle(ctx context.Context, req domain.SettleRequest) (string, error)
	History(ctx context.Context, limit, offset int) ([]domain.Transaction, int, error)
}

type SettlementService struct {
	orders       repository.OrderRepositoryInterface
	transactions repository.TransactionRepositoryInterface
	bc           Broadcaster
	mc           *menuCache
	codes        *CodeSource
	lg           *logger.Logger
}

func NewSettlementService(orders repository.OrderRepositoryInterface, transactions repository.TransactionRepositoryInterface,
	bc Broadcaster, mc *menuCache, codes *CodeSource, lg *logger.Logger) SettlementServiceInterface {
	return &SettlementService{orders: orders, transactions: transactions, bc: bc, mc: mc, codes: codes, lg: lg}
}

// Settle converts an order into its immutable ledger entry. The cart is
// recorded as supplied, including price_at_sale; it is not reconciled against
// the order's stored line items, so a divergent cart settles as sent. That is
// the documented contract, hazardous as it is.
func (s *SettlementService) Settle(ctx context.Context, req domain.SettleRequest) (string, error) {
	if req.OrderID <= 0 {
		return "", &domain.ValidationError{Field: "order_id", Reason: "is required"}
	}
	if len(req.Cart) == 0 {
		return "", &domain.ValidationError{Field: "cart", Reason: "at least one item is required"}
	}
	for _, it := range req.Cart {
		if it.ID <= 0 {
			return "", &domain.ValidationError{Field: "cart", Reason: "menu item id is required"}
		}
		if it.Quantity < 1 {
			return "", &domain.ValidationError{Field: "cart", Reason: fmt.Sprintf("quantity for item %d must be at least 1", it.ID)}
		}
		if it.Price < 0 {
			return "", &domain.ValidationError{Field: "cart", Reason: fmt.Sprintf("price for item %d must not be negative", it.ID)}
		}
	}
	if req.Subtotal < 0 || req.Tax < 0 || req.Total < 0 {
		return "", &domain.ValidationError{Field: "totals", Reason: "subtotal, tax, and total must not be negative"}
	}

	// 1. The order must exist before any write begins.
	order, err := s.orders.GetOrder(ctx, req.OrderID)
	if err != nil {
		return "", err
	}

	lines := make([]domain.TransactionLine, 0, len(req.Cart))
	for _, it := range req.Cart {
		lines = append(lines, domain.TransactionLine{
			MenuItemID:  it.ID,
			Quantity:    it.Quantity,
			PriceAtSale: it.Price,
		})
	}

	// 2. Ledger entry + snapshots + sold counters + order completion, one
	// unit of work. Retry a colliding code once with a fresh one.
	t := domain.Transaction{
		Code:         s.codes.TransactionCode(),
		OrderCode:    order.Code,
		CustomerName: req.CustomerName,
		TableNumber:  req.TableNumber,
		Subtotal:     req.Subtotal,
		Tax:          req.Tax,
		Total:        req.Total,
		Items:        lines,
	}
	err = s.transactions.Settle(ctx, &t, order.ID)
	if repository.IsUniqueViolation(err) {
		t.Code = s.codes.TransactionCode()
		if err = s.transactions.Settle(ctx, &t, order.ID); repository.IsUniqueViolation(err) {
			return "", &domain.ConflictError{Code: t.Code}
		}
	}
	if err != nil {
		return "", err
	}

	s.bc.Broadcast(domain.UpdateAll(fmt.Sprintf("Bill for Table %d settled.", req.TableNumber)))
	s.mc.invalidate(ctx)
	s.lg.Info("order_settled", map[string]any{
		"transaction_uid": t.Code, "order_uid": order.Code, "total": t.Total,
	})
	return t.Code, nil
}

func (s *SettlementService) History(ctx context.Context, limit, offset int) ([]domain.Transaction, int, error) {
	limit, offset = clampPage(limit, offset)
	return s.transactions.ListHistory(ctx, limit, offset)
}
