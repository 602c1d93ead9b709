package handlers

import (
	"net/http"
)

type HealthResponse struct {
	Status string `json:"status"`
}

// HealthHandler - GET /health: проверка соединения с БД
func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, HealthResponse{Status: "ok"}, http.StatusOK)
}
