package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullEvent() Event {
	return Event{
		ID:          "abc123",
		Title:       "João Silva",
		City:        "São Paulo",
		Email:       "a@b.com",
		Date:        time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		Time:        "20:00",
		Description: "Show especial",
		Status:      "Aprovado",
		CreatedAt:   time.Now(),
	}
}

func fieldNames(embed Embed) []string {
	names := make([]string, 0, len(embed.Fields))
	for _, f := range embed.Fields {
		names = append(names, f.Name)
	}
	return names
}

func TestBuildEmbedApprovedFieldSubset(t *testing.T) {
	embed := BuildEmbed(fullEvent(), ChannelApproved)

	assert.Equal(t, colorApproved, embed.Color)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, []string{"👤 Nome", "📝 Descrição"}, fieldNames(embed))
	assert.Equal(t, "João Silva", embed.Fields[0].Value)
	assert.Equal(t, "Show especial", embed.Fields[1].Value)
	// city/date/time/email must not leak into the approved channel
	for _, f := range embed.Fields {
		assert.NotContains(t, f.Value, "São Paulo")
		assert.NotContains(t, f.Value, "a@b.com")
	}
}

func TestBuildEmbedRejectedFieldSubset(t *testing.T) {
	embed := BuildEmbed(fullEvent(), ChannelRejected)

	assert.Equal(t, colorRejected, embed.Color)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "Status", embed.Fields[0].Name)
	assert.Equal(t, "Aprovado", embed.Fields[0].Value)
}

func TestBuildEmbedDefaultFields(t *testing.T) {
	embed := BuildEmbed(fullEvent(), ChannelDefault)

	assert.Equal(t, colorDefault, embed.Color)
	assert.Equal(t, "João Silva", embed.Title)
	require.Len(t, embed.Fields, 5)
	assert.Equal(t, []string{"📍 Cidade", "📅 Data", "⏰ Horário", "📧 Email", "📝 Descrição"}, fieldNames(embed))
	assert.Equal(t, "São Paulo", embed.Fields[0].Value)
	assert.Equal(t, "15/05/2024", embed.Fields[1].Value)
	assert.Equal(t, "20:00", embed.Fields[2].Value)
	assert.Equal(t, footerText, embed.Footer.Text)

	_, err := time.Parse(time.RFC3339, embed.Timestamp)
	assert.NoError(t, err, "embed timestamp must be ISO-8601")
}

func TestBuildEmbedPlaceholders(t *testing.T) {
	event := fullEvent()
	event.City = ""
	event.Time = ""
	event.Email = ""
	event.Description = ""

	embed := BuildEmbed(event, ChannelDefault)

	require.Len(t, embed.Fields, 5)
	assert.Equal(t, placeholderCity, embed.Fields[0].Value)
	assert.Equal(t, placeholderTime, embed.Fields[2].Value)
	assert.Equal(t, placeholderEmail, embed.Fields[3].Value)
	assert.Equal(t, placeholderDescription, embed.Fields[4].Value)
}

func TestBuildEmbedDefaultTitleFallback(t *testing.T) {
	event := fullEvent()
	event.Title = ""

	embed := BuildEmbed(event, ChannelDefault)
	assert.Equal(t, "🛩️ Nova Solicitação de Apresentação", embed.Title)
}
