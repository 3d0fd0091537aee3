package common

import (
	"context"
	"errors"

	"github.com/Freeeeeet/studio_admin/internal/repository/base"
	"github.com/Freeeeeet/studio_admin/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
)

const sessionExpiredMessage = "🔒 Sessão expirada. Use /login para entrar novamente."

func knownMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, base.ErrUnauthorized), errors.Is(err, service.ErrSessionExpired):
		return sessionExpiredMessage, true
	case errors.Is(err, service.ErrAppointmentNotFound), errors.Is(err, base.ErrNotFound):
		return "❌ Agendamento não encontrado. Atualize a agenda.", true
	case errors.Is(err, service.ErrNoSnapshot):
		return "❌ Agenda não carregada. Use /calendar", true
	case errors.Is(err, service.ErrUnknownStatus):
		return "❌ Status desconhecido", true
	case errors.Is(err, ErrNoMessage):
		return "❌ Erro ao processar a mensagem", true
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Formato de dados inválido", true
	case errors.Is(err, context.DeadlineExceeded):
		return "⌛ A API demorou para responder. Tente novamente.", true
	}
	return "", false
}

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	if msg, ok := knownMessage(err); ok {
		return msg
	}
	return "❌ Ocorreu um erro. Tente novamente."
}

// FetchErrorMessage сообщение для ошибок загрузки расписания
func FetchErrorMessage(err error) string {
	if msg, ok := knownMessage(err); ok {
		return msg
	}
	return "❌ Não foi possível carregar a agenda."
}

// SessionExpiredMessage текст для закрытой сессии API
func SessionExpiredMessage() string {
	return sessionExpiredMessage
}
