package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pos-backend/internal/common/logger"
	"pos-backend/internal/domain"
	"pos-backend/internal/service"
)

type OrderHandler struct {
	service service.OrderServiceInterface
	lg      *logger.Logger
}

func NewOrderHandler(s service.OrderServiceInterface, lg *logger.Logger) *OrderHandler {
	return &OrderHandler{service: s, lg: lg}
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON")
		return
	}
	order, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.lg.Error("order_create_failed", err, map[string]any{"table": req.TableNumber})
		writeDomainError(w, err)
		return
	}
	writeData(w, http.StatusCreated, order)
}

func (h *OrderHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid_id", "order id must be an integer")
		return
	}
	var req domain.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON")
		return
	}
	if err := h.service.SetStatus(r.Context(), id, req.Status); err != nil {
		h.lg.Error("order_status_failed", err, map[string]any{"order_id": id})
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Status updated."})
}

func (h *OrderHandler) ListLive(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	orders, total, err := h.service.ListLive(r.Context(), limit, offset)
	if err != nil {
		h.lg.Error("live_orders_failed", err, nil)
		writeDomainError(w, err)
		return
	}
	writePage(w, orders, total)
}
