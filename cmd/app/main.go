package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"dasilari/cmd/fx/ai_fx"
	"dasilari/cmd/fx/chat_fx"
	"dasilari/cmd/fx/controllers_fx"
	"dasilari/cmd/fx/db_fx"
	"dasilari/cmd/fx/destinations_fx"
	"dasilari/cmd/fx/itineraries_fx"
	"dasilari/cmd/fx/matching_fx"
	"dasilari/cmd/fx/users_fx"
	"dasilari/internal/api/controllers"
	"dasilari/pkg/middleware"
	"dasilari/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		dbfx.Module,
		aifx.Module,
		usersfx.Module,
		destinationsfx.Module,
		itinerariesfx.Module,
		matchingfx.Module,
		chatfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	usersController *controllers.UsersController,
	destinationsController *controllers.DestinationsController,
	chatController *controllers.ChatController,
	itinerariesController *controllers.ItinerariesController,
	matchingController *controllers.MatchingController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, usersController, destinationsController, chatController, itinerariesController, matchingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	usersController *controllers.UsersController,
	destinationsController *controllers.DestinationsController,
	chatController *controllers.ChatController,
	itinerariesController *controllers.ItinerariesController,
	matchingController *controllers.MatchingController) {

	r.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": "healthy"}, "Service is up")
	})

	api := r.Group("/api")

	api.POST("/survey", usersController.SubmitSurvey)
	api.GET("/users/:userId", usersController.GetProfile)

	destinationsGroup := api.Group("/destinations")
	destinationsGroup.GET("", destinationsController.ListDestinations)
	destinationsGroup.GET("/photo-spots", destinationsController.GetPhotoSpots)
	destinationsGroup.GET("/:id", destinationsController.GetDestinationById)
	destinationsGroup.POST("/seed", destinationsController.SeedDestinations)

	api.POST("/chat", chatController.Chat)

	itinerariesGroup := api.Group("/itineraries")
	itinerariesGroup.POST("/generate", itinerariesController.GenerateItinerary)
	itinerariesGroup.GET("/:userId", itinerariesController.GetUserItineraries)
	itinerariesGroup.DELETE("/:itineraryId", itinerariesController.DeleteItinerary)

	matchingGroup := api.Group("/matching")
	matchingGroup.GET("/travelers", matchingController.FindTravelers)
	matchingGroup.POST("/group-itinerary", matchingController.SuggestGroupItinerary)
}
