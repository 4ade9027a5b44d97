package services

import (
	"context"
	"fmt"
	"log"

	"dasilari/internal/models/db_models"
	"dasilari/internal/models/response_models"
	"dasilari/internal/repositories"
	"dasilari/pkg/utils"
)

type DestinationServiceInterface interface {
	GetByID(ctx context.Context, id int) (*response_models.Destination, error)
	List(ctx context.Context, filter repositories.DestinationFilter) ([]response_models.Destination, error)
	PhotoSpots(ctx context.Context) (*response_models.PhotoSpotsResponse, error)
	Seed(ctx context.Context) (*response_models.SeedResponse, error)
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
}

func NewDestinationService(destinationRepo repositories.DestinationRepository) DestinationServiceInterface {
	return &DestinationService{destinationRepo: destinationRepo}
}

func toDestinationResponse(destination db_models.Destination) response_models.Destination {
	return response_models.Destination{
		ID:            destination.ID,
		Name:          destination.Name,
		Location:      destination.Location,
		Category:      destination.Category,
		PhotoSpot:     destination.PhotoSpot,
		EstimatedCost: destination.EstimatedCost,
		EstimatedTime: destination.EstimatedTime,
		Description:   destination.Description,
	}
}

func (d *DestinationService) GetByID(ctx context.Context, id int) (*response_models.Destination, error) {
	destination, err := d.destinationRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching destination %d: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if destination == nil {
		return nil, utils.ErrDestinationNotFound
	}

	resp := toDestinationResponse(*destination)
	return &resp, nil
}

func (d *DestinationService) List(ctx context.Context, filter repositories.DestinationFilter) ([]response_models.Destination, error) {
	destinations, err := d.destinationRepo.List(ctx, filter)
	if err != nil {
		log.Printf("Error listing destinations: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.Destination, 0, len(destinations))
	for _, destination := range destinations {
		responses = append(responses, toDestinationResponse(destination))
	}
	return responses, nil
}

// photogenicFeatures explains what makes each curated spot photo-worthy.
var photogenicFeatures = map[string]string{
	"Hồ Xuân Hương":                        "Serene lake reflections, swan boats, and pine trees create picture-perfect scenes",
	"Lang Biang Mountain":                  "Panoramic mountain views, misty peaks, and sweeping valley vistas",
	"Thung Lũng Tình Yêu (Valley of Love)": "Colorful flower gardens, romantic scenery, and artistic installations",
	"The Florest":                          "European-style architecture, vibrant flower arrangements, and Instagram-worthy café aesthetics",
	"God Valley (Thung Lũng Vàng)":         "Golden grass fields, dramatic lighting at sunset, untouched natural beauty",
	"Crazy House (Hằng Nga Villa)":         "Surreal architecture, whimsical designs, unique angles and structures",
	"Datanla Waterfall":                    "Cascading water, lush greenery, and dramatic natural formations",
	"Trúc Lâm Zen Monastery":               "Peaceful temple architecture, Tuyền Lâm Lake views, cable car perspectives",
	"Da Lat Railway Station":               "French colonial charm, vintage trains, historic architectural details",
	"Bảo Đại Summer Palace":                "Art Deco elegance, historical ambiance, manicured gardens",
	"XQ Historical Village":                "Stunning silk embroidery art, traditional Vietnamese craftsmanship displays",
	"Linh Phước Pagoda":                    "Colorful mosaic details, 49-meter dragon sculpture, intricate glass work",
	"Da Lat Flower Gardens":                "Vibrant flower displays, seasonal blooms, creative topiary designs",
	"Mê Linh Coffee Garden":                "Scenic coffee plantations, mountain backdrop, terraced landscapes",
	"Elephant Falls":                       "Powerful cascades, natural rock formations, jungle surroundings",
	"Pongour Waterfall":                    "Seven-tiered falls, wide cascades, best during rainy season",
	"Ana Mandara Villas":                   "Colonial French architecture, elegant villa exteriors, luxury aesthetics",
	"Clay Tunnel (Hầm Đất Sét)":            "Quirky clay sculptures, creative art installations, unique textures",
}

var photographyTips = map[string][]string{
	"Hồ Xuân Hương":                        {"Visit at sunrise for misty lake shots", "Capture swan boats for romantic compositions"},
	"Lang Biang Mountain":                  {"Use wide-angle lens for panoramic views", "Morning fog creates dramatic atmosphere"},
	"Thung Lũng Tình Yêu (Valley of Love)": {"Afternoon light enhances flower colors", "Use props and installations creatively"},
	"The Florest":                          {"Soft natural lighting ideal for portraits", "Focus on floral details and architecture"},
	"God Valley (Thung Lũng Vàng)":         {"Golden hour is essential", "Bring wide-angle lens for landscape shots"},
	"Crazy House (Hằng Nga Villa)":         {"Explore different angles and levels", "Early morning avoids crowds"},
	"Datanla Waterfall":                    {"Use slow shutter for silky water effect", "Bring waterproof protection"},
	"Linh Phước Pagoda":                    {"Capture mosaic details up close", "Colorful dragon sculpture is main feature"},
}

var generalPhotoTips = []string{
	"Best lighting: Early morning (6-8 AM) or golden hour (4-6 PM)",
	"Da Lat weather can change quickly - bring protective gear for your camera",
	"Respect local customs and ask permission before photographing people",
	"Many spots get crowded during holidays - visit on weekdays for better shots",
}

func (d *DestinationService) PhotoSpots(ctx context.Context) (*response_models.PhotoSpotsResponse, error) {
	photoSpot := true
	destinations, err := d.destinationRepo.List(ctx, repositories.DestinationFilter{PhotoSpot: &photoSpot})
	if err != nil {
		log.Printf("Error listing photo spots: %v", err)
		return nil, utils.ErrDatabaseError
	}

	spots := make([]response_models.PhotoSpot, 0, len(destinations))
	for _, destination := range destinations {
		features, ok := photogenicFeatures[destination.Name]
		if !ok {
			features = "Beautiful scenery perfect for photography and creating lasting memories"
		}

		tips, ok := photographyTips[destination.Name]
		if !ok {
			tips = []string{
				fmt.Sprintf("Great for %s destination photography", destination.Category),
				"Arrive early to avoid crowds",
			}
		}

		spots = append(spots, response_models.PhotoSpot{
			ID:                 destination.ID,
			Name:               destination.Name,
			Location:           destination.Location,
			Category:           destination.Category,
			EstimatedCost:      destination.EstimatedCost,
			EstimatedTime:      destination.EstimatedTime,
			Description:        destination.Description,
			PhotogenicFeatures: features,
			PhotographyTips:    tips,
		})
	}

	return &response_models.PhotoSpotsResponse{
		TotalPhotoSpots: len(spots),
		PhotoSpots:      spots,
		GeneralTips:     generalPhotoTips,
	}, nil
}

// Seed loads the curated catalog once; a non-empty table is a conflict.
func (d *DestinationService) Seed(ctx context.Context) (*response_models.SeedResponse, error) {
	count, err := d.destinationRepo.Count(ctx)
	if err != nil {
		log.Printf("Error counting destinations: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if count > 0 {
		return nil, utils.ErrAlreadySeeded
	}

	destinations := make([]db_models.Destination, len(seedDestinations))
	copy(destinations, seedDestinations)

	if err := d.destinationRepo.CreateBatch(ctx, destinations); err != nil {
		log.Printf("Error seeding destinations: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SeedResponse{
		Message: "Successfully seeded 20 Da Lat destinations",
		Count:   len(destinations),
	}, nil
}
