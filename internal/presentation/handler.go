package presentation

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PresentationHandler handles HTTP requests for presentation requests.
type PresentationHandler struct {
	service *PresentationService
}

// NewPresentationHandler creates a new PresentationHandler.
func NewPresentationHandler(service *PresentationService) *PresentationHandler {
	return &PresentationHandler{service: service}
}

// Request accepts a public demonstration request.
func (h *PresentationHandler) Request(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.City == "" || req.Email == "" || req.Date.IsZero() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "City, email and date are required"})
	}

	p, err := h.service.RequestPresentation(context.Background(), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save presentation request"})
	}
	return c.JSON(http.StatusCreated, p)
}

// Upcoming lists approved future presentations for the public site.
func (h *PresentationHandler) Upcoming(c echo.Context) error {
	presentations, err := h.service.ListUpcoming(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch presentations"})
	}
	return c.JSON(http.StatusOK, presentations)
}

// List returns every presentation request for the dashboard.
func (h *PresentationHandler) List(c echo.Context) error {
	presentations, err := h.service.ListPresentations(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch presentations"})
	}
	return c.JSON(http.StatusOK, presentations)
}

// Create inserts a presentation from the dashboard.
func (h *PresentationHandler) Create(c echo.Context) error {
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	p, err := h.service.CreatePresentation(context.Background(), req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

// UpdateStatus transitions a presentation's status.
func (h *PresentationHandler) UpdateStatus(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid presentation id"})
	}
	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := h.service.UpdateStatus(context.Background(), id, req.Status); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Status updated successfully"})
}

// Update replaces the editable fields of a presentation.
func (h *PresentationHandler) Update(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid presentation id"})
	}
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := h.service.UpdatePresentation(context.Background(), id, req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Presentation updated successfully"})
}

// Delete removes a presentation request.
func (h *PresentationHandler) Delete(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid presentation id"})
	}
	if err := h.service.DeletePresentation(context.Background(), id); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Presentation deleted successfully"})
}
