package itinerariesfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"dasilari/internal/repositories"
	"dasilari/internal/services"
	"dasilari/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryRepo, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	userRepo repositories.UserRepository,
	destinationRepo repositories.DestinationRepository,
	itineraryRepo repositories.ItineraryRepository,
	aiClient utils.TextGenClientInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(userRepo, destinationRepo, itineraryRepo, aiClient)
}
