package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/service"
)

type EntryHandler struct {
	entries *service.EntryService
	log     *logger.Logger
}

func NewEntryHandler(entries *service.EntryService) *EntryHandler {
	return &EntryHandler{
		entries: entries,
		log:     logger.New("entry-handler"),
	}
}

func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.GetUserID(r.Context())

	entry, err := h.entries.Create(r.Context(), userID, &req)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidInput) {
			h.log.Error("entry create failed: %v", err)
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	entries, err := h.entries.List(r.Context(), userID)
	if err != nil {
		h.log.Error("entry list failed: %v", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, models.ListEntriesResponse{
		Entries: entries,
		Total:   len(entries),
	})
}

// HandleItem dispatches GET/PUT/DELETE for /entries/{id}.
func (h *EntryHandler) HandleItem(w http.ResponseWriter, r *http.Request) {
	entryID := strings.TrimPrefix(r.URL.Path, "/entries/")
	if entryID == "" || strings.Contains(entryID, "/") {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, entryID)
	case http.MethodPut:
		h.update(w, r, entryID)
	case http.MethodDelete:
		h.delete(w, r, entryID)
	default:
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *EntryHandler) get(w http.ResponseWriter, r *http.Request, entryID string) {
	userID := middleware.GetUserID(r.Context())

	entry, err := h.entries.Get(r.Context(), userID, entryID)
	if err != nil {
		if !errors.Is(err, service.ErrEntryNotFound) {
			h.log.Error("entry get failed: %v", err)
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entry)
}

func (h *EntryHandler) update(w http.ResponseWriter, r *http.Request, entryID string) {
	var req models.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.GetUserID(r.Context())

	entry, err := h.entries.Update(r.Context(), userID, entryID, &req)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidInput) && !errors.Is(err, service.ErrEntryNotFound) {
			h.log.Error("entry update failed: %v", err)
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entry)
}

func (h *EntryHandler) delete(w http.ResponseWriter, r *http.Request, entryID string) {
	userID := middleware.GetUserID(r.Context())

	if err := h.entries.Delete(r.Context(), userID, entryID); err != nil {
		if !errors.Is(err, service.ErrEntryNotFound) {
			h.log.Error("entry delete failed: %v", err)
		}
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
