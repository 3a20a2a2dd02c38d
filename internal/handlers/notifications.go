package handlers

import (
	"encoding/json"
	"net/http"

	"pos-backend/internal/common/logger"
	"pos-backend/internal/domain"
	"pos-backend/internal/service"
)

type NotificationHandler struct {
	service service.NotificationServiceInterface
	lg      *logger.Logger
}

func NewNotificationHandler(s service.NotificationServiceInterface, lg *logger.Logger) *NotificationHandler {
	return &NotificationHandler{service: s, lg: lg}
}

func (h *NotificationHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req domain.NotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON")
		return
	}
	n, err := h.service.Post(r.Context(), req)
	if err != nil {
		h.lg.Error("notification_post_failed", err, nil)
		writeDomainError(w, err)
		return
	}
	writeData(w, http.StatusCreated, n)
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	items, total, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		h.lg.Error("notification_list_failed", err, nil)
		writeDomainError(w, err)
		return
	}
	writePage(w, items, total)
}
