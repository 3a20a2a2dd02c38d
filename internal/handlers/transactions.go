package handlers

import (
	"encoding/json"
	"net/http"

	"pos-backend/internal/common/logger"
	"pos-backend/internal/domain"
	"pos-backend/internal/service"
)

type TransactionHandler struct {
	service service.SettlementServiceInterface
	lg      *logger.Logger
}

func NewTransactionHandler(s service.SettlementServiceInterface, lg *logger.Logger) *TransactionHandler {
	return &TransactionHandler{service: s, lg: lg}
}

func (h *TransactionHandler) Settle(w http.ResponseWriter, r *http.Request) {
	var req domain.SettleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON")
		return
	}
	code, err := h.service.Settle(r.Context(), req)
	if err != nil {
		h.lg.Error("settlement_failed", err, map[string]any{"order_id": req.OrderID})
		writeDomainError(w, err)
		return
	}
	writeData(w, http.StatusCreated, domain.SettleResponse{TransactionCode: code})
}

func (h *TransactionHandler) History(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	txs, total, err := h.service.History(r.Context(), limit, offset)
	if err != nil {
		h.lg.Error("history_failed", err, nil)
		writeDomainError(w, err)
		return
	}
	writePage(w, txs, total)
}
