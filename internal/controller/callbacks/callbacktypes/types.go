package callbacktypes

import (
	"time"

	"github.com/Freeeeeet/studio_admin/internal/controller/state"
	"github.com/Freeeeeet/studio_admin/internal/service"
	"go.uber.org/zap"
)

// Handler содержит общие зависимости для всех callback handlers и команд
type Handler struct {
	Schedules    *service.ScheduleService
	Auth         *service.AuthService
	StateManager *state.Manager
	Logger       *zap.Logger
	Now          func() time.Time
}
