package enlistment

import (
	"testing"

	"EsquadrilhaSite/internal/discord"

	"github.com/stretchr/testify/assert"
)

func TestChannelForStatus(t *testing.T) {
	assert.Equal(t, discord.ChannelApproved, ChannelForStatus(StatusApproved))
	assert.Equal(t, discord.ChannelRejected, ChannelForStatus(StatusRejected))
	assert.Equal(t, discord.ChannelDefault, ChannelForStatus(StatusPending))
	assert.Equal(t, discord.ChannelDefault, ChannelForStatus(StatusInProgress))
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Pendente", StatusText(StatusPending))
	assert.Equal(t, "Em análise", StatusText(StatusInProgress))
	assert.Equal(t, "Aprovado", StatusText(StatusApproved))
	assert.Equal(t, "Reprovado", StatusText(StatusRejected))
	assert.Equal(t, "unknown", StatusText("unknown"))
}

func TestFullDescription(t *testing.T) {
	e := &Enlistment{
		FirstName:         "João",
		LastName:          "Silva",
		Email:             "joao@example.com",
		Age:               "21",
		Motivation:        "Voar em formação",
		AviationKnowledge: "Básico",
		FivemFlight:       "Sim",
		KnowsSquadron:     "Sim",
		Shifts:            []string{"noite", "tarde"},
	}

	desc := fullDescription(e)
	assert.Contains(t, desc, "Nome: João Silva")
	assert.Contains(t, desc, "Email: joao@example.com")
	assert.Contains(t, desc, "Turno: noite, tarde")
}
