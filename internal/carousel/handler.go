package carousel

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CarouselHandler handles HTTP requests for the home page carousel.
type CarouselHandler struct {
	repo *CarouselRepository
}

// NewCarouselHandler creates a new CarouselHandler.
func NewCarouselHandler(repo *CarouselRepository) *CarouselHandler {
	return &CarouselHandler{repo: repo}
}

// List returns every carousel image for the public site.
func (h *CarouselHandler) List(c echo.Context) error {
	images, err := h.repo.FindAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch carousel images"})
	}
	return c.JSON(http.StatusOK, images)
}

// Add inserts a carousel image from the dashboard.
func (h *CarouselHandler) Add(c echo.Context) error {
	var req AddImageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Image URL is required"})
	}

	img := &Image{
		ID:          primitive.NewObjectID(),
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
		CreatedAt:   time.Now(),
	}
	if err := h.repo.CreateImage(context.Background(), img); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save carousel image"})
	}
	return c.JSON(http.StatusCreated, img)
}

// Reorder moves an image to a new display position.
func (h *CarouselHandler) Reorder(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid image id"})
	}
	var req ReorderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.repo.UpdateOrder(context.Background(), id, req.Order); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Carousel image reordered successfully"})
}

// Delete removes a carousel image.
func (h *CarouselHandler) Delete(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid image id"})
	}
	if err := h.repo.DeleteImage(context.Background(), id); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Carousel image deleted successfully"})
}
