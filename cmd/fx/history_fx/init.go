package history_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"archtrip/internal/api/controllers"
	"archtrip/internal/repositories"
	"archtrip/internal/services"
)

var Module = fx.Provide(
	ProvideHistoryRepository,
	ProvideHistoryService,
	ProvideHistoryController)

func ProvideHistoryRepository(db *gorm.DB) repositories.HistoryRepository {
	return repositories.NewHistoryRepository(db)
}

func ProvideHistoryService(repo repositories.HistoryRepository) services.HistoryServiceInterface {
	return services.NewHistoryService(repo)
}

func ProvideHistoryController(historyService services.HistoryServiceInterface) *controllers.HistoryController {
	return controllers.NewHistoryController(historyService)
}
