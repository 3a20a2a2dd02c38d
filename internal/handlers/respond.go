package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"pos-backend/internal/domain"
)

// writeJSON sends v with the given status.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeData wraps a payload in the {"data": ...} envelope the display
// clients expect.
func writeData(w http.ResponseWriter, code int, v any) {
	writeJSON(w, code, map[string]any{"data": v})
}

// writePage is writeData plus the total-count side channel for paginated
// listings.
func writePage(w http.ResponseWriter, v any, total int) {
	writeJSON(w, http.StatusOK, map[string]any{"data": v, "total": total})
}

// writeProblem emits a simplified problem+json error body.
func writeProblem(w http.ResponseWriter, code int, typ, detail string) {
	writeJSON(w, code, map[string]any{
		"type":   typ,
		"title":  http.StatusText(code),
		"status": code,
		"detail": detail,
	})
}

// writeDomainError maps the error taxonomy onto HTTP statuses. Store
// diagnostics stay out of response bodies.
func writeDomainError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeProblem(w, http.StatusBadRequest, "validation_error", ve.Error())
		return
	}
	var ise *domain.InsufficientStockError
	if errors.As(err, &ise) {
		writeJSON(w, http.StatusConflict, map[string]any{
			"type":      "insufficient_stock",
			"title":     http.StatusText(http.StatusConflict),
			"status":    http.StatusConflict,
			"detail":    ise.Error(),
			"item_id":   ise.ItemID,
			"requested": ise.Requested,
			"available": ise.Available,
		})
		return
	}
	if errors.Is(err, domain.ErrOrderNotFound) {
		writeProblem(w, http.StatusNotFound, "order_not_found", "order not found")
		return
	}
	if errors.Is(err, domain.ErrMenuItemNotFound) {
		writeProblem(w, http.StatusNotFound, "menu_item_not_found", "menu item not found")
		return
	}
	var ce *domain.ConflictError
	if errors.As(err, &ce) {
		writeProblem(w, http.StatusConflict, "code_conflict", "generated code collided, retry the request")
		return
	}
	writeProblem(w, http.StatusInternalServerError, "internal_error", "internal error")
}

func atoiDefault(s string, d int) int {
	if s == "" {
		return d
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return d
	}
	return n
}

func pageParams(r *http.Request) (limit, offset int) {
	limit = atoiDefault(r.URL.Query().Get("limit"), 50)
	offset = atoiDefault(r.URL.Query().Get("offset"), 0)
	return limit, offset
}
