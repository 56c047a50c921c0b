package enlistment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"EsquadrilhaSite/internal/discord"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notifier is the notification side channel used after a successful write.
type Notifier interface {
	Send(ctx context.Context, event discord.Event, channel discord.Channel) bool
}

// EnlistmentService coordinates enlistment persistence and Discord
// notifications.
type EnlistmentService struct {
	repo     *EnlistmentRepository
	notifier Notifier
}

func NewEnlistmentService(repo *EnlistmentRepository, notifier Notifier) *EnlistmentService {
	return &EnlistmentService{repo: repo, notifier: notifier}
}

// ChannelForStatus selects the Discord channel announcing a status change.
// Approvals and rejections go to their dedicated channels; everything else
// goes to the default one.
func ChannelForStatus(status string) discord.Channel {
	switch status {
	case StatusApproved:
		return discord.ChannelApproved
	case StatusRejected:
		return discord.ChannelRejected
	default:
		return discord.ChannelDefault
	}
}

// Enlist persists a public application after rejecting duplicates by email
// and by submitter IP, then announces it on the default channel.
func (s *EnlistmentService) Enlist(ctx context.Context, req EnlistRequest, userIP string) (*Enlistment, error) {
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New("Este e-mail já foi utilizado em uma solicitação anterior")
	}

	if userIP != "" {
		exists, err := s.repo.ExistsByIP(ctx, userIP)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errors.New("Já existe uma solicitação enviada deste dispositivo")
		}
	}

	e := &Enlistment{
		ID:                primitive.NewObjectID(),
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		DiscordNick:       req.DiscordNick,
		Motivation:        req.Motivation,
		AviationKnowledge: req.AviationKnowledge,
		Age:               req.Age,
		FivemFlight:       req.FivemFlight,
		KnowsSquadron:     req.KnowsSquadron,
		Shifts:            req.Shifts,
		UserIP:            userIP,
		Status:            StatusPending,
		CreatedAt:         time.Now(),
	}
	if err := s.repo.CreateEnlistment(ctx, e); err != nil {
		return nil, err
	}

	event := discord.Event{
		ID:          e.ID.Hex(),
		Kind:        discord.KindEnlistmentCreated,
		Title:       "🛩️ Nova Solicitação de Alistamento",
		Email:       e.Email,
		Date:        time.Now(),
		Description: fullDescription(e),
		Status:      StatusText(e.Status),
		CreatedAt:   e.CreatedAt,
		DiscordID:   e.DiscordNick,
	}
	if !s.notifier.Send(ctx, event, discord.ChannelDefault) {
		log.Printf("Failed to deliver Discord notification for enlistment %s", e.ID.Hex())
	}
	return e, nil
}

// ListEnlistments returns every application for the dashboard.
func (s *EnlistmentService) ListEnlistments(ctx context.Context) ([]*Enlistment, error) {
	return s.repo.FindAll(ctx)
}

// UpdateStatus transitions an application and announces the change on the
// channel matching the new status.
func (s *EnlistmentService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if !ValidStatus(status) {
		return errors.New("invalid enlistment status")
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return errors.New("enlistment not found")
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	e.Status = status
	s.notifyStatusChange(ctx, e)
	return nil
}

// DeleteEnlistment removes an application.
func (s *EnlistmentService) DeleteEnlistment(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeleteEnlistment(ctx, id)
}

func (s *EnlistmentService) notifyStatusChange(ctx context.Context, e *Enlistment) {
	channel := ChannelForStatus(e.Status)
	name := strings.TrimSpace(e.FirstName + " " + e.LastName)

	event := discord.Event{
		ID:        e.ID.Hex(),
		Kind:      discord.KindEnlistmentStatus,
		Status:    StatusText(e.Status),
		Date:      time.Now(),
		CreatedAt: time.Now(),
		DiscordID: e.DiscordNick,
	}
	switch channel {
	case discord.ChannelApproved:
		event.Title = name
		event.Description = "Motivo: " + orNotInformed(e.Motivation)
	case discord.ChannelRejected:
		event.Title = name
	default:
		event.Title = fmt.Sprintf("Alistamento %s - %s", StatusText(e.Status), name)
		event.Description = fullDescription(e)
	}

	if !s.notifier.Send(ctx, event, channel) {
		log.Printf("Failed to deliver Discord notification for enlistment %s", e.ID.Hex())
	}
}

func fullDescription(e *Enlistment) string {
	return fmt.Sprintf(
		"Nome: %s %s\nEmail: %s\nIdade: %s\nMotivo: %s\nConhecimento: %s\nVoo FIVEM: %s\nConhece Esquadrilha: %s\nTurno: %s",
		e.FirstName, e.LastName, e.Email, e.Age, e.Motivation,
		e.AviationKnowledge, e.FivemFlight, e.KnowsSquadron,
		strings.Join(e.Shifts, ", "),
	)
}

func orNotInformed(value string) string {
	if value == "" {
		return "Não informado"
	}
	return value
}
