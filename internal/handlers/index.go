package handlers

import (
	"log/slog"
	"net/http"
)

// IndexHandler serves the API root with a short endpoint directory
type IndexHandler struct {
	logger *slog.Logger
}

// NewIndexHandler creates a new index handler
func NewIndexHandler(logger *slog.Logger) *IndexHandler {
	return &IndexHandler{
		logger: logger,
	}
}

// IndexResponse represents the API root response
type IndexResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// ServeHTTP handles GET /
func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := IndexResponse{
		Message: "Welcome to the Restaurant Menu API",
		Endpoints: map[string]string{
			"GET /api/menu":        "List all menu items",
			"GET /api/menu/:id":    "Get a menu item by id",
			"POST /api/menu":       "Create a menu item",
			"PUT /api/menu/:id":    "Update a menu item",
			"DELETE /api/menu/:id": "Delete a menu item",
		},
	}

	WriteJSON(w, http.StatusOK, response, h.logger)
}
