package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/restaurant-platform/menu-service/internal/models"
	"github.com/restaurant-platform/menu-service/internal/repository"
	"github.com/restaurant-platform/menu-service/internal/service"
)

var (
	errEmptyBody     = errors.New("request body required")
	errMalformedBody = errors.New("malformed request body")
)

// MenuHandler handles menu-related HTTP requests
type MenuHandler struct {
	service *service.MenuService
	log     *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(service *service.MenuService, log *slog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log,
	}
}

// ListMenuItems handles GET /api/menu
// Returns all menu items in insertion order
func (h *MenuHandler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		h.log.Error("failed to list menu items", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, items, h.log)
}

// GetMenuItem handles GET /api/menu/{menuItemId}
// Returns a single menu item, or 404 when the id is absent or non-numeric
func (h *MenuHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.menuItemID(r)
	if !ok {
		WriteError(w, http.StatusNotFound, "Menu item not found", h.log)
		return
	}

	item, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err, id)
		return
	}

	WriteJSON(w, http.StatusOK, item, h.log)
}

// CreateMenuItem handles POST /api/menu
func (h *MenuHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	input, err := h.readInput(r)
	if err != nil {
		h.writeBodyError(w, err)
		return
	}

	item, err := h.service.CreateItem(r.Context(), *input)
	if err != nil {
		h.writeServiceError(w, err, 0)
		return
	}

	WriteJSON(w, http.StatusCreated, item, h.log)
	h.log.Info("menu item created", "id", item.ID, "name", item.Name)
}

// UpdateMenuItem handles PUT /api/menu/{menuItemId}
// An unknown id reports not found before the payload is validated
func (h *MenuHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.menuItemID(r)
	if !ok {
		WriteError(w, http.StatusNotFound, "Menu item not found", h.log)
		return
	}

	input, err := h.readInput(r)
	if err != nil {
		h.writeBodyError(w, err)
		return
	}

	item, err := h.service.UpdateItem(r.Context(), id, *input)
	if err != nil {
		h.writeServiceError(w, err, id)
		return
	}

	WriteJSON(w, http.StatusOK, item, h.log)
	h.log.Info("menu item updated", "id", item.ID, "name", item.Name)
}

// DeleteMenuItem handles DELETE /api/menu/{menuItemId}
func (h *MenuHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.menuItemID(r)
	if !ok {
		WriteError(w, http.StatusNotFound, "Menu item not found", h.log)
		return
	}

	item, err := h.service.DeleteItem(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err, id)
		return
	}

	response := map[string]interface{}{
		"message":  "Menu item deleted successfully",
		"menuItem": item,
	}
	WriteJSON(w, http.StatusOK, response, h.log)
	h.log.Info("menu item deleted", "id", id)
}

// menuItemID parses the path id. A non-numeric id matches no item.
func (h *MenuHandler) menuItemID(r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "menuItemId")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.log.Warn("non-numeric menu item id", "id", raw)
		return 0, false
	}
	return id, true
}

// readInput reads and decodes a create/update payload. An empty body and
// an empty JSON object are both rejected as missing, matching the API
// contract; anything undecodable is rejected as malformed.
func (h *MenuHandler) readInput(r *http.Request) (*models.MenuItemInput, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errMalformedBody
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errEmptyBody
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, errMalformedBody
	}
	if len(fields) == 0 {
		return nil, errEmptyBody
	}

	var input models.MenuItemInput
	if err := json.Unmarshal(body, &input); err != nil {
		return nil, errMalformedBody
	}
	return &input, nil
}

// writeBodyError maps body reading failures to 400 responses
func (h *MenuHandler) writeBodyError(w http.ResponseWriter, err error) {
	if errors.Is(err, errEmptyBody) {
		WriteError(w, http.StatusBadRequest, "Request body required", h.log)
		return
	}
	WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
}

// writeServiceError maps service errors to HTTP status codes
func (h *MenuHandler) writeServiceError(w http.ResponseWriter, err error, id int64) {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, repository.ErrMenuItemNotFound):
		h.log.Info("menu item not found", "id", id)
		WriteError(w, http.StatusNotFound, "Menu item not found", h.log)
	case errors.As(err, &verr):
		h.log.Info("menu item validation failed", "messages", verr.Messages)
		WriteValidationError(w, verr.Messages, h.log)
	default:
		h.log.Error("menu operation failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
