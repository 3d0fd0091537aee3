package formatting

// PluralizeAppointments agendamento / agendamentos
func PluralizeAppointments(count int) string {
	if count == 1 {
		return "agendamento"
	}
	return "agendamentos"
}

// PluralizeDays dia / dias
func PluralizeDays(count int) string {
	if count == 1 {
		return "dia"
	}
	return "dias"
}

// PluralizeConfirmed confirmado / confirmados
func PluralizeConfirmed(count int) string {
	if count == 1 {
		return "confirmado"
	}
	return "confirmados"
}
