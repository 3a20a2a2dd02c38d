package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const requestTimeout = 30 * time.Second

func Router(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		// Bounded units of work: a request past the deadline has its context
		// canceled and rolls back. /ws stays outside, observers are long-lived.
		r.Use(middleware.Timeout(requestTimeout))

		r.Get("/menu", h.Menu.List)
		r.Post("/menu", h.Menu.Create)
		r.Put("/menu/{id}", h.Menu.Update)
		r.Delete("/menu/{id}", h.Menu.Delete)
		r.Get("/categories", h.Menu.Categories)

		r.Post("/orders", h.Orders.Create)
		r.Put("/orders/{id}/status", h.Orders.SetStatus)
		r.Get("/live-orders", h.Orders.ListLive)

		r.Post("/transactions", h.Transactions.Settle)
		r.Get("/history", h.Transactions.History)

		r.Get("/notifications", h.Notifications.List)
		r.Post("/notifications", h.Notifications.Post)
	})

	r.Handle("/ws", h.ws)
	return r
}
