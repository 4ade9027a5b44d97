package chatfx

import (
	"go.uber.org/fx"

	"dasilari/internal/repositories"
	"dasilari/internal/services"
	"dasilari/pkg/utils"
)

var Module = fx.Provide(
	provideChatService)

func provideChatService(
	userRepo repositories.UserRepository,
	destinationRepo repositories.DestinationRepository,
	aiClient utils.TextGenClientInterface,
) services.ChatServiceInterface {
	return services.NewChatService(userRepo, destinationRepo, aiClient)
}
