package handlers

import (
	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/callbacktypes"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	deps   *callbacktypes.Handler
	admins map[int64]struct{}
	logger *zap.Logger
}

// NewHandlers создаёт новый обработчик команд. Пустой список admins
// пропускает все чаты.
func NewHandlers(deps *callbacktypes.Handler, admins []int64, logger *zap.Logger) *Handlers {
	set := make(map[int64]struct{}, len(admins))
	for _, id := range admins {
		set[id] = struct{}{}
	}
	if len(set) == 0 {
		logger.Warn("ADMIN_CHAT_IDS is empty, every chat is allowed")
	}

	return &Handlers{
		deps:   deps,
		admins: set,
		logger: logger,
	}
}

func (h *Handlers) isAdmin(chatID int64) bool {
	if len(h.admins) == 0 {
		return true
	}
	_, ok := h.admins[chatID]
	return ok
}
