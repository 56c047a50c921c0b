package discord

import "time"

// Embed colors per channel.
const (
	colorDefault  = 3447003  // blue
	colorApproved = 5025616  // green
	colorRejected = 15073536 // red
)

const footerText = "Esquadrilha da Fumaça - FiveM"

// Placeholders rendered when an optional field is absent.
const (
	placeholderCity        = "Não informada"
	placeholderTime        = "Não informado"
	placeholderEmail       = "Não informado"
	placeholderName        = "Nome não informado"
	placeholderStatus      = "Status não informado"
	placeholderDescription = "Sem descrição"
)

// BuildEmbed renders an event into a Discord embed for the given channel.
// The embed timestamp is the formatting time, not the event time: it tells
// the reader when the chat message was generated.
func BuildEmbed(event Event, channel Channel) Embed {
	switch channel {
	case ChannelApproved:
		return Embed{
			Title: "✅ Alistamento aprovado",
			Color: colorApproved,
			Fields: []EmbedField{
				{Name: "👤 Nome", Value: orElse(event.Title, placeholderName)},
				{Name: "📝 Descrição", Value: orElse(event.Description, placeholderDescription)},
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Footer:    EmbedFooter{Text: footerText},
		}
	case ChannelRejected:
		return Embed{
			Title: "❌ Alistamento reprovado",
			Color: colorRejected,
			Fields: []EmbedField{
				{Name: "Status", Value: orElse(event.Status, placeholderStatus)},
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Footer:    EmbedFooter{Text: footerText},
		}
	default:
		return Embed{
			Title: orElse(event.Title, "🛩️ Nova Solicitação de Apresentação"),
			Color: colorDefault,
			Fields: []EmbedField{
				{Name: "📍 Cidade", Value: orElse(event.City, placeholderCity), Inline: true},
				{Name: "📅 Data", Value: event.Date.Format("02/01/2006"), Inline: true},
				{Name: "⏰ Horário", Value: orElse(event.Time, placeholderTime), Inline: true},
				{Name: "📧 Email", Value: orElse(event.Email, placeholderEmail), Inline: true},
				{Name: "📝 Descrição", Value: orElse(event.Description, placeholderDescription)},
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Footer:    EmbedFooter{Text: footerText},
		}
	}
}

func orElse(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
