package presentation

import (
	"context"
	"errors"
	"log"
	"time"

	"EsquadrilhaSite/internal/discord"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notifier is the notification side channel used after a successful write.
type Notifier interface {
	Send(ctx context.Context, event discord.Event, channel discord.Channel) bool
}

// PresentationService coordinates presentation persistence and Discord
// notifications. The notification is a side channel: its failure never
// fails the triggering write.
type PresentationService struct {
	repo     *PresentationRepository
	notifier Notifier
}

func NewPresentationService(repo *PresentationRepository, notifier Notifier) *PresentationService {
	return &PresentationService{repo: repo, notifier: notifier}
}

// RequestPresentation persists a public demonstration request and announces
// it on the default Discord channel.
func (s *PresentationService) RequestPresentation(ctx context.Context, req CreateRequest) (*Presentation, error) {
	p := &Presentation{
		ID:          primitive.NewObjectID(),
		City:        req.City,
		Email:       req.Email,
		Date:        req.Date,
		Time:        req.Time,
		Description: req.Description,
		DiscordID:   req.DiscordID,
		Status:      StatusPending,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.CreatePresentation(ctx, p); err != nil {
		return nil, err
	}

	s.notify(ctx, p, "🆕 Nova Solicitação de Demonstração", discord.KindPresentationCreated)
	return p, nil
}

// ListPresentations returns every request for the dashboard.
func (s *PresentationService) ListPresentations(ctx context.Context) ([]*Presentation, error) {
	return s.repo.FindAll(ctx)
}

// ListUpcoming returns approved future presentations for the public site.
func (s *PresentationService) ListUpcoming(ctx context.Context) ([]*Presentation, error) {
	return s.repo.FindUpcomingApproved(ctx)
}

// UpdateStatus transitions a presentation and announces the new status.
func (s *PresentationService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if !ValidStatus(status) {
		return errors.New("invalid presentation status")
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return errors.New("presentation not found")
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	p.Status = status
	s.notify(ctx, p, StatusTitle(status), discord.KindPresentationStatus)
	return nil
}

// UpdatePresentation replaces the editable fields and announces the change.
func (s *PresentationService) UpdatePresentation(ctx context.Context, id primitive.ObjectID, req UpdateRequest) error {
	if !ValidStatus(req.Status) {
		return errors.New("invalid presentation status")
	}
	if err := s.repo.UpdatePresentation(ctx, id, req); err != nil {
		return err
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil || p == nil {
		log.Println("Could not load presentation for notification:", err)
		return nil
	}
	s.notify(ctx, p, "📋 Apresentação Atualizada", discord.KindPresentationStatus)
	return nil
}

// CreatePresentation inserts a presentation from the dashboard.
func (s *PresentationService) CreatePresentation(ctx context.Context, req UpdateRequest) (*Presentation, error) {
	if !ValidStatus(req.Status) {
		return nil, errors.New("invalid presentation status")
	}
	p := &Presentation{
		ID:          primitive.NewObjectID(),
		City:        req.City,
		Email:       req.Email,
		Date:        req.Date,
		Time:        req.Time,
		Description: req.Description,
		Status:      req.Status,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.CreatePresentation(ctx, p); err != nil {
		return nil, err
	}

	s.notify(ctx, p, "", discord.KindPresentationCreated)
	return p, nil
}

// DeletePresentation removes a request.
func (s *PresentationService) DeletePresentation(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeletePresentation(ctx, id)
}

func (s *PresentationService) notify(ctx context.Context, p *Presentation, title, kind string) {
	event := discord.Event{
		ID:          p.ID.Hex(),
		Kind:        kind,
		Title:       title,
		City:        p.City,
		Email:       p.Email,
		Date:        p.Date,
		Time:        p.Time,
		Description: p.Description,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		DiscordID:   p.DiscordID,
	}
	if !s.notifier.Send(ctx, event, discord.ChannelDefault) {
		log.Printf("Failed to deliver Discord notification for presentation %s", p.ID.Hex())
	}
}
