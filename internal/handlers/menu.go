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

type MenuHandler struct {
	service service.MenuServiceInterface
	lg      *logger.Logger
}

func NewMenuHandler(s service.MenuServiceInterface, lg *logger.Logger) *MenuHandler {
	return &MenuHandler{service: s, lg: lg}
}

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListMenu(r.Context())
	if err != nil {
		h.lg.Error("menu_list_failed", err, nil)
		writeDomainError(w, err)
		return
	}
	writeData(w, http.StatusOK, items)
}

func (h *MenuHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.lg.Error("categories_failed", err, nil)
		writeDomainError(w, err)
		return
	}
	writeData(w, http.StatusOK, cats)
}

func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON")
		return
	}
	item, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.lg.Error("menu_create_failed", err, nil)
		writeDomainError(w, err)
		return
	}
	writeData(w, http.StatusCreated, item)
}

func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid_id", "menu item id must be an integer")
		return
	}
	var req domain.MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON")
		return
	}
	if err := h.service.Update(r.Context(), id, req); err != nil {
		h.lg.Error("menu_update_failed", err, map[string]any{"id": id})
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Menu item updated successfully."})
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid_id", "menu item id must be an integer")
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.lg.Error("menu_delete_failed", err, map[string]any{"id": id})
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Menu item deleted successfully."})
}
