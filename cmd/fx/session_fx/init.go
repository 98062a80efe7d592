package session_fx

import (
	"go.uber.org/fx"

	"archtrip/internal/api/controllers"
	"archtrip/internal/services"
)

var Module = fx.Provide(
	ProvideSessionService,
	ProvideSessionController)

func ProvideSessionService() services.SessionServiceInterface {
	return services.NewSessionService()
}

func ProvideSessionController(
	sessionService services.SessionServiceInterface,
	historyService services.HistoryServiceInterface,
) *controllers.SessionController {
	return controllers.NewSessionController(sessionService, historyService)
}
