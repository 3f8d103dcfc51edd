package handlers

import (
	"net/http"
)

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.DB != nil {
		if err := h.DB.HealthCheck(); err != nil {
			WriteError(w, "База данных недоступна", http.StatusServiceUnavailable)
			return
		}
	}

	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
