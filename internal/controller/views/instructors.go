package views

import (
	"fmt"
	"html"
	"math"
	"strings"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/studio_admin/internal/schedule"
	"github.com/go-telegram/bot/models"
)

// BuildInstructorScreen формирует сводку по инструкторам за месяц
func BuildInstructorScreen(month time.Time, summaries []*schedule.InstructorSummary, search string, order schedule.SummaryOrder) (string, *models.InlineKeyboardMarkup) {
	var text strings.Builder
	fmt.Fprintf(&text, "👥 <b>Instrutores · %s</b>\n", formatting.FormatMonthTitle(month))
	if search != "" {
		fmt.Fprintf(&text, "🔎 Filtro: «%s»\n", html.EscapeString(search))
	}
	text.WriteByte('\n')

	if len(summaries) == 0 {
		text.WriteString("Nenhum agendamento encontrado.")
	}
	blocks := make([]string, len(summaries))
	for i, s := range summaries {
		blocks[i] = InstructorBlock(s)
	}
	text.WriteString(strings.Join(blocks, "\n\n"))

	sortButton := keyboard.Button("💰 Ordenar por receita", CbInstructorSort+string(schedule.SortByRevenue))
	if order == schedule.SortByRevenue {
		sortButton = keyboard.Button("🔤 Ordenar por nome", CbInstructorSort+string(schedule.SortByName))
	}

	searchRow := []models.InlineKeyboardButton{keyboard.Button("🔎 Buscar", CbSearch)}
	if search != "" {
		searchRow = append(searchRow, keyboard.Button("✖️ Limpar busca", CbClearSearch))
	}

	b := keyboard.NewBuilder().
		AddPagination(formatting.FormatMonthTitle(month), CbMonth+month.AddDate(0, -1, 0).Format(MonthKeyLayout), CbMonth+month.AddDate(0, 1, 0).Format(MonthKeyLayout)).
		Row(sortButton).
		Row(searchRow...)

	return text.String(), footer(b, schedule.ViewInstructor).Build()
}

// InstructorBlock блок одного инструктора
func InstructorBlock(s *schedule.InstructorSummary) string {
	rate := int(math.Round(s.ConfirmationRate() * 100))
	return fmt.Sprintf(
		"👤 <b>%s</b>\n"+
			"   📋 %d %s · ✅ %d/%d %s (%d%%)\n"+
			"   💰 %s · ⏱ %s",
		html.EscapeString(s.InstructorName),
		s.TotalAppointments, formatting.PluralizeAppointments(s.TotalAppointments),
		s.ConfirmedCount, s.TotalAppointments, formatting.PluralizeConfirmed(s.ConfirmedCount), rate,
		formatting.FormatPrice(s.TotalRevenue),
		formatting.FormatHoursMinutes(s.Hours(), s.RemainderMinutes()),
	)
}
