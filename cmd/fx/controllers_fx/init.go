package controllersfx

import (
	"go.uber.org/fx"

	"dasilari/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewUsersController),
	fx.Provide(controllers.NewDestinationsController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewItinerariesController),
	fx.Provide(controllers.NewMatchingController))
