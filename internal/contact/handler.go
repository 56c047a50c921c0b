package contact

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"EsquadrilhaSite/internal/discord"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notifier is the notification side channel used after a successful write.
type Notifier interface {
	Send(ctx context.Context, event discord.Event, channel discord.Channel) bool
}

// ContactHandler handles HTTP requests for the contact form.
type ContactHandler struct {
	repo     *ContactRepository
	notifier Notifier
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(repo *ContactRepository, notifier Notifier) *ContactHandler {
	return &ContactHandler{repo: repo, notifier: notifier}
}

// Submit accepts a public contact message and announces it on Discord.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.Name == "" || req.Email == "" || req.Body == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name, email and message are required"})
	}

	m := &Message{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}
	if err := h.repo.CreateMessage(context.Background(), m); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save message"})
	}

	event := discord.Event{
		ID:          m.ID.Hex(),
		Kind:        discord.KindGeneric,
		Title:       "📬 Nova Mensagem de Contato",
		Email:       m.Email,
		Date:        m.CreatedAt,
		Description: fmt.Sprintf("De: %s\nAssunto: %s\n%s", m.Name, m.Subject, m.Body),
		Status:      "new",
		CreatedAt:   m.CreatedAt,
	}
	if !h.notifier.Send(context.Background(), event, discord.ChannelDefault) {
		log.Printf("Failed to deliver Discord notification for contact message %s", m.ID.Hex())
	}

	return c.JSON(http.StatusCreated, map[string]string{"message": "Mensagem enviada com sucesso"})
}

// List returns every contact message for the dashboard.
func (h *ContactHandler) List(c echo.Context) error {
	messages, err := h.repo.FindAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch messages"})
	}
	return c.JSON(http.StatusOK, messages)
}
