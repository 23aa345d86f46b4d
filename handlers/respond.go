package handlers

import (
	"encoding/json"
	"net/http"

	"watchdeck/models"
)

func respondOK(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusOK, models.OK(data))
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, models.Fail(msg))
}

func respondJSON(w http.ResponseWriter, status int, body models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
