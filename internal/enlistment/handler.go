package enlistment

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EnlistmentHandler handles HTTP requests for enlistment applications.
type EnlistmentHandler struct {
	service *EnlistmentService
}

// NewEnlistmentHandler creates a new EnlistmentHandler.
func NewEnlistmentHandler(service *EnlistmentService) *EnlistmentHandler {
	return &EnlistmentHandler{service: service}
}

// Enlist accepts a public join-us application.
func (h *EnlistmentHandler) Enlist(c echo.Context) error {
	var req EnlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.DiscordNick == "" ||
		req.Motivation == "" || req.Age == "" || req.FivemFlight == "" ||
		req.KnowsSquadron == "" || len(req.Shifts) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Por favor, preencha todos os campos obrigatórios"})
	}

	e, err := h.service.Enlist(context.Background(), req, c.RealIP())
	if err != nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, e)
}

// List returns every application for the dashboard.
func (h *EnlistmentHandler) List(c echo.Context) error {
	enlistments, err := h.service.ListEnlistments(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch enlistments"})
	}
	return c.JSON(http.StatusOK, enlistments)
}

// UpdateStatus transitions an application's status.
func (h *EnlistmentHandler) UpdateStatus(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid enlistment id"})
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

// Delete removes an application.
func (h *EnlistmentHandler) Delete(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid enlistment id"})
	}
	if err := h.service.DeleteEnlistment(context.Background(), id); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Enlistment deleted successfully"})
}
