package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dasilari/internal/models/db_models"
	"dasilari/internal/models/request_models"
	"dasilari/pkg/utils"
)

func TestGenerateUsesAIPlan(t *testing.T) {
	users := newFakeUserRepo(db_models.User{
		Name:            "An",
		PersonalityType: db_models.PersonalityExtrovert,
		TravelStyle:     db_models.TravelStyleGroup,
		TransportType:   "motorbike",
	})
	destinations := newFakeDestinationRepo(
		db_models.Destination{Name: "Hồ Xuân Hương", Location: "Center of Da Lat", EstimatedCost: floatPtr(0), EstimatedTime: intPtr(90)},
		db_models.Destination{Name: "Datanla Waterfall", Location: "5km south of Da Lat", EstimatedCost: floatPtr(50000), EstimatedTime: intPtr(120)},
	)
	itineraries := newFakeItineraryRepo()
	ai := &fakeTextGenClient{
		plan: &utils.PlannedItinerary{
			Title:              "Lakes and Falls",
			TotalEstimatedCost: 50000,
			TotalDuration:      "6 hours",
			Schedule: []utils.PlannedStop{
				{TimeSlot: db_models.TimeSlotMorning, TimeRange: "08:00 - 09:30", Destination: "Hồ Xuân Hương", Activity: "Lakeside walk", Duration: "90 minutes"},
				{TimeSlot: db_models.TimeSlotAfternoon, TimeRange: "13:00 - 15:00", Destination: "Datanla Waterfall", Activity: "Alpine coaster", Duration: "120 minutes", Cost: 50000},
			},
			MealSuggestions: []utils.PlannedMeal{{Time: "12:00", Suggestion: "Bánh căn near the lake", EstimatedCost: 40000}},
		},
	}

	service := NewItineraryService(users, destinations, itineraries, ai)

	result, err := service.Generate(context.Background(), request_models.GenerateItineraryRequest{
		UserID:         1,
		Emotion:        "happy",
		DestinationIDs: []int{1, 2},
		VisitDate:      "2026-09-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "Lakes and Falls", result.Itinerary.Title)
	assert.Equal(t, 2, result.DestinationsCount)
	require.Len(t, result.Itinerary.Schedule, 2)
	assert.Equal(t, 1, result.Itinerary.Schedule[0].DestinationID)
	assert.Equal(t, "Lakeside walk", result.Itinerary.Schedule[0].Activity)
	require.Len(t, result.Itinerary.MealSuggestions, 1)

	// Every stop is persisted and the profile flag flips.
	require.Len(t, itineraries.entries, 2)
	assert.Equal(t, "happy", itineraries.entries[0].EmotionTag)
	assert.Equal(t, "2026-09-01", itineraries.entries[0].VisitDate)
	user, _ := users.GetByID(context.Background(), 1)
	assert.True(t, user.HasItinerary)
}

func TestGenerateFallsBackWhenAIFails(t *testing.T) {
	users := newFakeUserRepo(db_models.User{Name: "An", PersonalityType: db_models.PersonalityIntrovert})
	destinations := newFakeDestinationRepo(
		db_models.Destination{Name: "Trúc Lâm Zen Monastery", Location: "Phường 3, Da Lat", EstimatedCost: floatPtr(0), EstimatedTime: intPtr(90)},
		db_models.Destination{Name: "Mê Linh Coffee Garden", Location: "1A Bùi Thị Xuân, Da Lat", EstimatedCost: floatPtr(80000), EstimatedTime: intPtr(90)},
	)
	itineraries := newFakeItineraryRepo()
	ai := &fakeTextGenClient{planErr: errors.New("quota exceeded")}

	service := NewItineraryService(users, destinations, itineraries, ai)

	result, err := service.Generate(context.Background(), request_models.GenerateItineraryRequest{
		UserID:         1,
		DestinationIDs: []int{1, 2},
		VisitDate:      "2026-09-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "Your Da Lat Day Trip", result.Itinerary.Title)
	assert.Equal(t, 80000.0, result.Itinerary.TotalEstimatedCost)
	require.Len(t, result.Itinerary.Schedule, 2)
	assert.Equal(t, db_models.TimeSlotMorning, result.Itinerary.Schedule[0].TimeSlot)
	assert.Equal(t, db_models.TimeSlotAfternoon, result.Itinerary.Schedule[1].TimeSlot)
	assert.Equal(t, "Visit Trúc Lâm Zen Monastery", result.Itinerary.Schedule[0].Activity)
	require.Len(t, itineraries.entries, 2)
}

func TestGenerateUnknownUser(t *testing.T) {
	service := NewItineraryService(newFakeUserRepo(), newFakeDestinationRepo(), newFakeItineraryRepo(), &fakeTextGenClient{})

	_, err := service.Generate(context.Background(), request_models.GenerateItineraryRequest{
		UserID:         42,
		DestinationIDs: []int{1},
		VisitDate:      "2026-09-01",
	})
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestGenerateMissingDestination(t *testing.T) {
	users := newFakeUserRepo(db_models.User{Name: "An"})
	destinations := newFakeDestinationRepo(db_models.Destination{Name: "Hồ Xuân Hương"})

	service := NewItineraryService(users, destinations, newFakeItineraryRepo(), &fakeTextGenClient{})

	_, err := service.Generate(context.Background(), request_models.GenerateItineraryRequest{
		UserID:         1,
		DestinationIDs: []int{1, 99},
		VisitDate:      "2026-09-01",
	})
	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)
}

func TestListByUserGroupsByDate(t *testing.T) {
	users := newFakeUserRepo(db_models.User{
		Name:            "An",
		PersonalityType: db_models.PersonalityIntrovert,
		TravelStyle:     db_models.TravelStyleSolo,
		TransportType:   "bicycle",
	})
	destinations := newFakeDestinationRepo(
		db_models.Destination{Name: "Hồ Xuân Hương", EstimatedCost: floatPtr(0), EstimatedTime: intPtr(90)},
		db_models.Destination{Name: "Datanla Waterfall", EstimatedCost: floatPtr(50000), EstimatedTime: intPtr(120)},
		db_models.Destination{Name: "Da Lat Night Market", EstimatedCost: floatPtr(100000), EstimatedTime: intPtr(120)},
	)
	// Day two stored first and with the evening entry ahead of the morning
	// one, so grouping and ordering both have to work.
	itineraries := newFakeItineraryRepo(
		db_models.Itinerary{UserID: 1, DestinationID: 3, VisitDate: "2026-09-02", TimeSlot: db_models.TimeSlotEvening},
		db_models.Itinerary{UserID: 1, DestinationID: 1, VisitDate: "2026-09-02", TimeSlot: db_models.TimeSlotMorning},
		db_models.Itinerary{UserID: 1, DestinationID: 2, VisitDate: "2026-09-01", TimeSlot: db_models.TimeSlotAfternoon},
	)

	service := NewItineraryService(users, destinations, itineraries, &fakeTextGenClient{})

	result, err := service.ListByUser(context.Background(), 1, "")
	require.NoError(t, err)

	assert.Equal(t, "An", result.UserName)
	require.Len(t, result.Itineraries, 2)

	newest := result.Itineraries[0]
	assert.Equal(t, "2026-09-02", newest.VisitDate)
	require.Len(t, newest.Destinations, 2)
	assert.Equal(t, db_models.TimeSlotMorning, newest.Destinations[0].TimeSlot)
	assert.Equal(t, db_models.TimeSlotEvening, newest.Destinations[1].TimeSlot)
	assert.Equal(t, 100000.0, newest.TotalCost)
	assert.Equal(t, 210, newest.TotalTime)

	assert.Equal(t, "2026-09-01", result.Itineraries[1].VisitDate)

	assert.Equal(t, 2, result.Summary.TotalItineraries)
	assert.Equal(t, 3, result.Summary.TotalDestinations)
	assert.Equal(t, 150000.0, result.Summary.TotalCost)
	assert.Equal(t, 75000.0, result.Summary.AverageCostPerDay)
}

func TestListByUserDateFilter(t *testing.T) {
	users := newFakeUserRepo(db_models.User{Name: "An"})
	destinations := newFakeDestinationRepo(db_models.Destination{Name: "Hồ Xuân Hương", EstimatedCost: floatPtr(0)})
	itineraries := newFakeItineraryRepo(
		db_models.Itinerary{UserID: 1, DestinationID: 1, VisitDate: "2026-09-01", TimeSlot: db_models.TimeSlotMorning},
		db_models.Itinerary{UserID: 1, DestinationID: 1, VisitDate: "2026-09-02", TimeSlot: db_models.TimeSlotMorning},
	)

	service := NewItineraryService(users, destinations, itineraries, &fakeTextGenClient{})

	result, err := service.ListByUser(context.Background(), 1, "2026-09-01")
	require.NoError(t, err)
	require.Len(t, result.Itineraries, 1)
	assert.Equal(t, "2026-09-01", result.Itineraries[0].VisitDate)
}

func TestDeleteItinerary(t *testing.T) {
	itineraries := newFakeItineraryRepo(
		db_models.Itinerary{UserID: 1, DestinationID: 1, VisitDate: "2026-09-01", TimeSlot: db_models.TimeSlotMorning},
	)
	service := NewItineraryService(newFakeUserRepo(), newFakeDestinationRepo(), itineraries, &fakeTextGenClient{})

	require.NoError(t, service.Delete(context.Background(), 1))
	assert.Empty(t, itineraries.entries)

	assert.ErrorIs(t, service.Delete(context.Background(), 1), utils.ErrItineraryNotFound)
}
