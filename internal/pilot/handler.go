package pilot

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PilotHandler handles HTTP requests for the pilot roster.
type PilotHandler struct {
	repo *PilotRepository
}

// NewPilotHandler creates a new PilotHandler.
func NewPilotHandler(repo *PilotRepository) *PilotHandler {
	return &PilotHandler{repo: repo}
}

// List returns the roster for the public site.
func (h *PilotHandler) List(c echo.Context) error {
	pilots, err := h.repo.FindAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch pilots"})
	}
	return c.JSON(http.StatusOK, pilots)
}

// Add inserts a roster entry from the dashboard.
func (h *PilotHandler) Add(c echo.Context) error {
	var req PilotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.Name == "" || req.Position == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name and position are required"})
	}

	p := &Pilot{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Position:  req.Position,
		PhotoURL:  req.PhotoURL,
		Order:     req.Order,
		CreatedAt: time.Now(),
	}
	if err := h.repo.CreatePilot(context.Background(), p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save pilot"})
	}
	return c.JSON(http.StatusCreated, p)
}

// Update replaces the editable fields of a roster entry.
func (h *PilotHandler) Update(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid pilot id"})
	}
	var req PilotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.repo.UpdatePilot(context.Background(), id, req); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Pilot updated successfully"})
}

// Delete removes a roster entry.
func (h *PilotHandler) Delete(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid pilot id"})
	}
	if err := h.repo.DeletePilot(context.Background(), id); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Pilot deleted successfully"})
}
