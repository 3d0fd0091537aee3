package keyboard

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_GridSplitsRows(t *testing.T) {
	buttons := make([]models.InlineKeyboardButton, 0, 9)
	for i := 0; i < 9; i++ {
		buttons = append(buttons, Noop("x"))
	}

	kb := NewBuilder().Grid(buttons, 7).Build()

	require.Len(t, kb.InlineKeyboard, 2)
	assert.Len(t, kb.InlineKeyboard[0], 7)
	assert.Len(t, kb.InlineKeyboard[1], 2)
}

func TestBuilder_SkipsEmptyRows(t *testing.T) {
	b := NewBuilder().Row().AddRows([][]models.InlineKeyboardButton{{}, {Noop("a")}})

	assert.Equal(t, 1, b.Rows())
}

func TestPeriodPagination(t *testing.T) {
	row := PeriodPagination("Junho de 2024", "cal_month:2024-05", "cal_month:2024-07")

	require.Len(t, row, 3)
	assert.Equal(t, "cal_month:2024-05", row[0].CallbackData)
	assert.Equal(t, NoopData, row[1].CallbackData)
	assert.Equal(t, "cal_month:2024-07", row[2].CallbackData)
}
