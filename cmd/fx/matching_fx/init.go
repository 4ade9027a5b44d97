package matchingfx

import (
	"go.uber.org/fx"

	"dasilari/internal/repositories"
	"dasilari/internal/services"
)

var Module = fx.Provide(
	provideMatchingService)

func provideMatchingService(
	userRepo repositories.UserRepository,
	destinationRepo repositories.DestinationRepository,
	itineraryRepo repositories.ItineraryRepository,
) services.MatchingServiceInterface {
	return services.NewMatchingService(userRepo, destinationRepo, itineraryRepo)
}
