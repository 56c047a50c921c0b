package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTitle(t *testing.T) {
	assert.Equal(t, "✅ Apresentação Aprovada", StatusTitle(StatusApproved))
	assert.Equal(t, "❌ Apresentação Rejeitada", StatusTitle(StatusRejected))
	assert.Equal(t, "🔄 Apresentação Reagendada", StatusTitle(StatusRescheduled))
	assert.Equal(t, "🚫 Apresentação Cancelada", StatusTitle(StatusCanceled))
	assert.Equal(t, "🔔 Status da Apresentação Atualizado", StatusTitle(StatusPending))
}

func TestValidStatus(t *testing.T) {
	for _, status := range []string{StatusPending, StatusApproved, StatusRejected, StatusRescheduled, StatusCanceled} {
		assert.True(t, ValidStatus(status))
	}
	assert.False(t, ValidStatus("archived"))
	assert.False(t, ValidStatus(""))
}
