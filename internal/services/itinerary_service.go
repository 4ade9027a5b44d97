package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"

	"dasilari/internal/models/db_models"
	"dasilari/internal/models/request_models"
	"dasilari/internal/models/response_models"
	"dasilari/internal/repositories"
	"dasilari/pkg/utils"
)

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, request request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error)
	ListByUser(ctx context.Context, userID int, visitDate string) (*response_models.UserItinerariesResponse, error)
	Delete(ctx context.Context, id int) error
}

type ItineraryService struct {
	userRepo        repositories.UserRepository
	destinationRepo repositories.DestinationRepository
	itineraryRepo   repositories.ItineraryRepository
	aiClient        utils.TextGenClientInterface
}

func NewItineraryService(
	userRepo repositories.UserRepository,
	destinationRepo repositories.DestinationRepository,
	itineraryRepo repositories.ItineraryRepository,
	aiClient utils.TextGenClientInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		userRepo:        userRepo,
		destinationRepo: destinationRepo,
		itineraryRepo:   itineraryRepo,
		aiClient:        aiClient,
	}
}

func toDestinationSummary(destination db_models.Destination) utils.DestinationSummary {
	summary := utils.DestinationSummary{
		ID:          destination.ID,
		Name:        destination.Name,
		Location:    destination.Location,
		Category:    destination.Category,
		PhotoSpot:   destination.PhotoSpot,
		Description: destination.Description,
	}
	if destination.EstimatedCost != nil {
		summary.EstimatedCost = *destination.EstimatedCost
	}
	if destination.EstimatedTime != nil {
		summary.EstimatedTime = *destination.EstimatedTime
	}
	return summary
}

// Generate builds a day plan over the selected destinations, persists one
// itinerary row per scheduled stop and flips the user's has_itinerary flag.
// When the AI collaborator fails, a deterministic basic schedule is used
// instead so the endpoint still produces a plan.
func (s *ItineraryService) Generate(ctx context.Context, request request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error) {
	user, err := s.userRepo.GetByID(ctx, request.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	destinations, err := s.destinationRepo.ListByIDs(ctx, request.DestinationIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(destinations) != len(request.DestinationIDs) {
		log.Printf("Generate itinerary: %d of %d destinations found", len(destinations), len(request.DestinationIDs))
		return nil, utils.ErrDestinationNotFound
	}

	profile := utils.TravelProfile{
		PersonalityType: user.PersonalityType,
		TravelStyle:     user.TravelStyle,
		TransportType:   user.TransportType,
		HasItinerary:    user.HasItinerary,
	}

	summaries := make([]utils.DestinationSummary, 0, len(destinations))
	for _, destination := range destinations {
		summaries = append(summaries, toDestinationSummary(destination))
	}

	plan, err := s.aiClient.GenerateDayPlan(ctx, profile, summaries)
	if err != nil {
		log.Printf("AI plan generation failed, using basic schedule: %v", err)
		plan = basicDayPlan(destinations)
	}

	destinationsByName := make(map[string]db_models.Destination, len(destinations))
	for _, destination := range destinations {
		destinationsByName[destination.Name] = destination
	}

	var rows []*db_models.Itinerary
	var schedule []response_models.ScheduleItem
	for _, stop := range plan.Schedule {
		destination, ok := destinationsByName[stop.Destination]
		if !ok {
			continue
		}

		rows = append(rows, &db_models.Itinerary{
			UserID:        request.UserID,
			DestinationID: destination.ID,
			VisitDate:     request.VisitDate,
			TimeSlot:      stop.TimeSlot,
			EmotionTag:    request.Emotion,
		})
		schedule = append(schedule, response_models.ScheduleItem{
			DestinationID:   destination.ID,
			DestinationName: destination.Name,
			TimeSlot:        stop.TimeSlot,
			TimeRange:       stop.TimeRange,
			Activity:        stop.Activity,
			Duration:        stop.Duration,
			Cost:            stop.Cost,
			Directions:      stop.Directions,
			Tips:            stop.Tips,
		})
	}

	if err := s.itineraryRepo.CreateBatch(ctx, rows); err != nil {
		log.Printf("Error saving itinerary rows: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if err := s.userRepo.SetHasItinerary(ctx, request.UserID, true); err != nil {
		log.Printf("Error updating has_itinerary for user %d: %v", request.UserID, err)
		return nil, utils.ErrDatabaseError
	}

	meals := make([]response_models.MealSuggestion, 0, len(plan.MealSuggestions))
	for _, meal := range plan.MealSuggestions {
		meals = append(meals, response_models.MealSuggestion{
			Time:          meal.Time,
			Suggestion:    meal.Suggestion,
			EstimatedCost: meal.EstimatedCost,
		})
	}

	return &response_models.GenerateItineraryResponse{
		Message:    "Itinerary generated and saved successfully",
		UserID:     request.UserID,
		VisitDate:  request.VisitDate,
		EmotionTag: request.Emotion,
		Itinerary: response_models.GeneratedItinerary{
			Title:              plan.Title,
			TotalEstimatedCost: plan.TotalEstimatedCost,
			TotalDuration:      plan.TotalDuration,
			Schedule:           schedule,
			MealSuggestions:    meals,
		},
		DestinationsCount: len(schedule),
	}, nil
}

// basicDayPlan is the AI-free fallback: one stop per time slot over the first
// three destinations.
func basicDayPlan(destinations []db_models.Destination) *utils.PlannedItinerary {
	slots := []string{db_models.TimeSlotMorning, db_models.TimeSlotAfternoon, db_models.TimeSlotEvening}

	plan := &utils.PlannedItinerary{
		Title:           "Your Da Lat Day Trip",
		TotalDuration:   "8 hours",
		MealSuggestions: []utils.PlannedMeal{},
	}

	for idx, destination := range destinations {
		if idx >= len(slots) {
			break
		}

		cost := 0.0
		if destination.EstimatedCost != nil {
			cost = *destination.EstimatedCost
		}
		minutes := 90
		if destination.EstimatedTime != nil {
			minutes = *destination.EstimatedTime
		}

		plan.TotalEstimatedCost += cost
		plan.Schedule = append(plan.Schedule, utils.PlannedStop{
			TimeSlot:    slots[idx],
			Destination: destination.Name,
			Activity:    fmt.Sprintf("Visit %s", destination.Name),
			Duration:    fmt.Sprintf("%d minutes", minutes),
			Cost:        cost,
			Directions:  fmt.Sprintf("Located at %s", destination.Location),
			Tips:        "Enjoy the experience!",
		})
	}

	return plan
}

// ListByUser returns the user's saved itineraries grouped by visit date
// (newest first), each day laid out morning to evening with cost and time
// totals.
func (s *ItineraryService) ListByUser(ctx context.Context, userID int, visitDate string) (*response_models.UserItinerariesResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	entries, err := s.itineraryRepo.Filter(ctx, repositories.ItineraryFilter{UserID: userID, VisitDate: visitDate})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	days := make(map[string]*response_models.DayItinerary)
	var dateOrder []string

	for _, entry := range entries {
		destination, err := s.destinationRepo.GetByID(ctx, entry.DestinationID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if destination == nil {
			continue
		}

		day, ok := days[entry.VisitDate]
		if !ok {
			day = &response_models.DayItinerary{
				VisitDate:  entry.VisitDate,
				EmotionTag: entry.EmotionTag,
				CreatedAt:  utils.FormatRFC3339VN(entry.CreatedAt),
			}
			days[entry.VisitDate] = day
			dateOrder = append(dateOrder, entry.VisitDate)
		}

		day.Destinations = append(day.Destinations, response_models.ItineraryDestination{
			ItineraryID: entry.ID,
			Destination: toDestinationResponse(*destination),
			TimeSlot:    entry.TimeSlot,
		})
		if destination.EstimatedCost != nil {
			day.TotalCost += *destination.EstimatedCost
		}
		if destination.EstimatedTime != nil {
			day.TotalTime += *destination.EstimatedTime
		}
	}

	// Newest day first; "2006-01-02" strings sort chronologically.
	sort.Sort(sort.Reverse(sort.StringSlice(dateOrder)))

	itineraries := make([]response_models.DayItinerary, 0, len(dateOrder))
	totalCost := 0.0
	totalDestinations := 0
	for _, date := range dateOrder {
		day := days[date]
		sort.SliceStable(day.Destinations, func(i, j int) bool {
			return db_models.SlotOrder(day.Destinations[i].TimeSlot) < db_models.SlotOrder(day.Destinations[j].TimeSlot)
		})
		totalCost += day.TotalCost
		totalDestinations += len(day.Destinations)
		itineraries = append(itineraries, *day)
	}

	summary := response_models.ItinerarySummary{
		TotalItineraries:  len(itineraries),
		TotalDestinations: totalDestinations,
		TotalCost:         math.Round(totalCost*100) / 100,
	}
	if len(itineraries) > 0 {
		summary.AverageCostPerDay = math.Round(totalCost/float64(len(itineraries))*100) / 100
	}

	return &response_models.UserItinerariesResponse{
		UserID:   userID,
		UserName: user.Name,
		UserPreferences: &response_models.UserPreferences{
			PersonalityType: user.PersonalityType,
			TravelStyle:     user.TravelStyle,
			TransportType:   user.TransportType,
		},
		Itineraries: itineraries,
		Summary:     summary,
	}, nil
}

func (s *ItineraryService) Delete(ctx context.Context, id int) error {
	existing, err := s.itineraryRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrItineraryNotFound
	}

	if err := s.itineraryRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting itinerary %d: %v", id, err)
		return utils.ErrDatabaseError
	}

	return nil
}
