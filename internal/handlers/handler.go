// Package handlers wires the POS services to their HTTP surface.
package handlers

import (
	"net/http"

	"pos-backend/internal/common/logger"
	"pos-backend/internal/service"
)

type Handler struct {
	Menu          *MenuHandler
	Orders        *OrderHandler
	Transactions  *TransactionHandler
	Notifications *NotificationHandler
	ws            http.Handler
}

// New builds the handler set. ws serves the observer handshake endpoint.
func New(s *service.Service, ws http.Handler, lg *logger.Logger) *Handler {
	return &Handler{
		Menu:          NewMenuHandler(s.Menu, lg),
		Orders:        NewOrderHandler(s.Orders, lg),
		Transactions:  NewTransactionHandler(s.Settlement, lg),
		Notifications: NewNotificationHandler(s.Notifications, lg),
		ws:            ws,
	}
}
