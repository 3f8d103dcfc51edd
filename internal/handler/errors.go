package handlers

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// RedirectResponse - JSON-аналог flash-сообщения с редиректом
type RedirectResponse struct {
	Message  string `json:"message"`
	Category string `json:"category"`
	Location string `json:"location"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteRedirect отвечает 303 See Other с Location и телом-сообщением.
// category повторяет категории flash-уведомлений: success, warning, danger.
func WriteRedirect(w http.ResponseWriter, location, message, category string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusSeeOther)
	json.NewEncoder(w).Encode(RedirectResponse{
		Message:  message,
		Category: category,
		Location: location,
	})
}
