package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"

	"dasilari/internal/models/db_models"
	"dasilari/internal/models/response_models"
	"dasilari/internal/repositories"
	"dasilari/pkg/utils"
)

type MatchingServiceInterface interface {
	FindMatchingTravelers(ctx context.Context, userID, destinationID int, timeSlot, visitDate string) ([]response_models.MatchingTraveler, error)
	SuggestGroupItinerary(ctx context.Context, userIDs []int, targetDate string) (*response_models.GroupItinerary, error)
}

type MatchingService struct {
	userRepo        repositories.UserRepository
	destinationRepo repositories.DestinationRepository
	itineraryRepo   repositories.ItineraryRepository
}

func NewMatchingService(
	userRepo repositories.UserRepository,
	destinationRepo repositories.DestinationRepository,
	itineraryRepo repositories.ItineraryRepository,
) MatchingServiceInterface {
	return &MatchingService{
		userRepo:        userRepo,
		destinationRepo: destinationRepo,
		itineraryRepo:   itineraryRepo,
	}
}

// Compatibility weights. Exact attribute equality only, no partial credit.
const (
	personalityWeight  = 30
	travelStyleWeight  = 40
	transportWeight    = 20
	hasItineraryWeight = 10
)

// PairwiseCompatibility scores two users on attribute equality and maps the
// score to a level plus human-readable match reasons. Pure and deterministic.
func PairwiseCompatibility(a, b db_models.User) (float64, string, []string) {
	var score float64
	var reasons []string

	if a.PersonalityType == b.PersonalityType {
		score += personalityWeight
		reasons = append(reasons, fmt.Sprintf("Both are %ss", a.PersonalityType))
	}
	if a.TravelStyle == b.TravelStyle {
		score += travelStyleWeight
		reasons = append(reasons, fmt.Sprintf("Both prefer %s travel", a.TravelStyle))
	}
	if a.TransportType == b.TransportType {
		score += transportWeight
		reasons = append(reasons, fmt.Sprintf("Both use %s", a.TransportType))
	}
	if a.HasItinerary == b.HasItinerary {
		score += hasItineraryWeight
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Visiting same destination at same time")
	}

	return score, compatibilityLevel(score), reasons
}

func compatibilityLevel(score float64) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Moderate"
	default:
		return "Low"
	}
}

// FindMatchingTravelers lists travelers heading to the same destination in the
// same time slot (and optionally the same date), sorted by descending
// compatibility with the requesting user. An unknown requester yields an empty
// list rather than an error.
func (m *MatchingService) FindMatchingTravelers(ctx context.Context, userID, destinationID int, timeSlot, visitDate string) ([]response_models.MatchingTraveler, error) {
	currentUser, err := m.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.Printf("Error fetching user %d: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}
	if currentUser == nil {
		return []response_models.MatchingTraveler{}, nil
	}

	entries, err := m.itineraryRepo.Filter(ctx, repositories.ItineraryFilter{DestinationID: destinationID})
	if err != nil {
		log.Printf("Error filtering itineraries: %v", err)
		return nil, utils.ErrDatabaseError
	}

	travelers := make([]response_models.MatchingTraveler, 0, len(entries))
	for _, entry := range entries {
		if entry.UserID == userID || entry.TimeSlot != timeSlot {
			continue
		}
		if visitDate != "" && entry.VisitDate != visitDate {
			continue
		}

		buddy, err := m.userRepo.GetByID(ctx, entry.UserID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		destination, err := m.destinationRepo.GetByID(ctx, entry.DestinationID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if buddy == nil || destination == nil {
			continue
		}

		score, level, reasons := PairwiseCompatibility(*currentUser, *buddy)

		travelers = append(travelers, response_models.MatchingTraveler{
			UserID:          buddy.ID,
			Name:            buddy.Name,
			PersonalityType: buddy.PersonalityType,
			TravelStyle:     buddy.TravelStyle,
			TransportType:   buddy.TransportType,
			Destination: response_models.DestinationBrief{
				ID:       destination.ID,
				Name:     destination.Name,
				Location: destination.Location,
			},
			VisitDate:          entry.VisitDate,
			TimeSlot:           entry.TimeSlot,
			EmotionTag:         entry.EmotionTag,
			CompatibilityScore: score,
			CompatibilityLevel: level,
			MatchReasons:       reasons,
		})
	}

	// Stable: equal scores keep discovery order.
	sort.SliceStable(travelers, func(i, j int) bool {
		return travelers[i].CompatibilityScore > travelers[j].CompatibilityScore
	})

	return travelers, nil
}

// slotVote is one itinerary entry's contribution to a destination bucket.
type slotVote struct {
	userName   string
	emotionTag string
}

// destBuckets keeps per-destination votes in first-seen order so the
// most-voted pick is deterministic when counts tie.
type destBuckets struct {
	order  []int
	byDest map[int]*response_models.Destination
	votes  map[int][]slotVote
}

func newDestBuckets() *destBuckets {
	return &destBuckets{
		byDest: make(map[int]*response_models.Destination),
		votes:  make(map[int][]slotVote),
	}
}

func (b *destBuckets) add(destination response_models.Destination, vote slotVote) {
	if _, seen := b.byDest[destination.ID]; !seen {
		b.order = append(b.order, destination.ID)
		b.byDest[destination.ID] = &destination
	}
	b.votes[destination.ID] = append(b.votes[destination.ID], vote)
}

// mostVoted returns the destination id with the highest vote count; ties go to
// the first destination encountered.
func (b *destBuckets) mostVoted() (int, int) {
	bestID, bestVotes := 0, 0
	for _, destID := range b.order {
		if count := len(b.votes[destID]); count > bestVotes {
			bestID, bestVotes = destID, count
		}
	}
	return bestID, bestVotes
}

var groupTimeSlots = []string{
	db_models.TimeSlotMorning,
	db_models.TimeSlotAfternoon,
	db_models.TimeSlotEvening,
}

// SuggestGroupItinerary builds a shared day plan for a traveler group:
// per-slot majority destinations become group activities, divergent slots
// become split options, plus group compatibility, meeting points and a
// closing recommendation.
//
// The group-size check and the 50% agreement threshold both use the raw
// requested id count, before unknown ids are dropped. Changing either breaks
// the error reporting and agreement percentages downstream clients rely on.
func (m *MatchingService) SuggestGroupItinerary(ctx context.Context, userIDs []int, targetDate string) (*response_models.GroupItinerary, error) {
	requestedCount := len(userIDs)
	if requestedCount < 2 {
		return &response_models.GroupItinerary{
			Error:     "At least 2 users required for group itinerary",
			GroupSize: requestedCount,
		}, nil
	}

	var users []db_models.User
	usersByID := make(map[int]db_models.User)
	for _, id := range userIDs {
		user, err := m.userRepo.GetByID(ctx, id)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if user == nil {
			continue
		}
		users = append(users, *user)
		usersByID[user.ID] = *user
	}

	slotBuckets := make(map[string]*destBuckets, len(groupTimeSlots))
	for _, slot := range groupTimeSlots {
		slotBuckets[slot] = newDestBuckets()
	}

	for _, id := range userIDs {
		entries, err := m.itineraryRepo.Filter(ctx, repositories.ItineraryFilter{UserID: id, VisitDate: targetDate})
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		for _, entry := range entries {
			buckets, ok := slotBuckets[entry.TimeSlot]
			if !ok {
				continue
			}
			destination, err := m.destinationRepo.GetByID(ctx, entry.DestinationID)
			if err != nil {
				return nil, utils.ErrDatabaseError
			}
			if destination == nil {
				continue
			}

			userName := "Unknown"
			if user, ok := usersByID[entry.UserID]; ok {
				userName = user.Name
			}

			buckets.add(toDestinationResponse(*destination), slotVote{
				userName:   userName,
				emotionTag: entry.EmotionTag,
			})
		}
	}

	var groupSchedule []response_models.GroupActivity
	var splitOptions []response_models.SplitActivity

	for _, slot := range groupTimeSlots {
		buckets := slotBuckets[slot]
		if len(buckets.order) == 0 {
			continue
		}

		winnerID, winnerVotes := buckets.mostVoted()

		if float64(winnerVotes) >= float64(requestedCount)*0.5 {
			votes := buckets.votes[winnerID]
			participants := make([]string, 0, len(votes))
			for _, vote := range votes {
				participants = append(participants, vote.userName)
			}

			groupSchedule = append(groupSchedule, response_models.GroupActivity{
				TimeSlot:         slot,
				Type:             "group_activity",
				Destination:      *buckets.byDest[winnerID],
				Participants:     participants,
				ParticipantCount: winnerVotes,
				AgreementLevel:   fmt.Sprintf("%d%%", int(float64(winnerVotes)/float64(requestedCount)*100)),
			})
			continue
		}

		split := response_models.SplitActivity{
			TimeSlot: slot,
			Type:     "split_activity",
			Reason:   "Group has different preferences for this time slot",
		}
		for _, destID := range buckets.order {
			votes := buckets.votes[destID]
			interested := make([]string, 0, len(votes))
			for _, vote := range votes {
				interested = append(interested, vote.userName)
			}
			split.Options = append(split.Options, response_models.SplitOption{
				Destination:     *buckets.byDest[destID],
				InterestedUsers: interested,
				UserCount:       len(votes),
			})
		}
		sort.SliceStable(split.Options, func(i, j int) bool {
			return split.Options[i].UserCount > split.Options[j].UserCount
		})
		splitOptions = append(splitOptions, split)
	}

	participants := make([]response_models.GroupParticipant, 0, len(users))
	for _, user := range users {
		participants = append(participants, response_models.GroupParticipant{
			ID:              user.ID,
			Name:            user.Name,
			PersonalityType: user.PersonalityType,
			TravelStyle:     user.TravelStyle,
		})
	}

	return &response_models.GroupItinerary{
		Date:               targetDate,
		GroupSize:          requestedCount,
		Participants:       participants,
		GroupCompatibility: groupCompatibility(users),
		GroupSchedule:      groupSchedule,
		SplitOptions:       splitOptions,
		MeetingSuggestions: meetingSuggestions(groupSchedule),
		Summary: &response_models.GroupSummary{
			CommonActivities: len(groupSchedule),
			SplitActivities:  len(splitOptions),
			Recommendation:   groupRecommendation(len(groupSchedule), len(splitOptions)),
		},
	}, nil
}

// orderedCounts tallies values while remembering first-seen key order, so the
// dominant key is deterministic when counts tie.
func orderedCounts(values []string) ([]string, map[string]int) {
	var order []string
	counts := make(map[string]int)
	for _, value := range values {
		if _, seen := counts[value]; !seen {
			order = append(order, value)
		}
		counts[value]++
	}
	return order, counts
}

// groupCompatibility measures how homogeneous a group is: the share of the
// dominant personality type, scaled to 0-100 with one decimal.
func groupCompatibility(users []db_models.User) *response_models.GroupCompatibility {
	if len(users) < 2 {
		return &response_models.GroupCompatibility{Score: 0, Level: "N/A"}
	}

	personalities := make([]string, 0, len(users))
	travelStyles := make([]string, 0, len(users))
	for _, user := range users {
		personalities = append(personalities, user.PersonalityType)
		travelStyles = append(travelStyles, user.TravelStyle)
	}

	personalityOrder, personalityCounts := orderedCounts(personalities)
	_, travelStyleCounts := orderedCounts(travelStyles)

	dominant, dominantCount := "", 0
	for _, personality := range personalityOrder {
		if personalityCounts[personality] > dominantCount {
			dominant, dominantCount = personality, personalityCounts[personality]
		}
	}

	homogeneity := math.Round(float64(dominantCount)/float64(len(users))*100*10) / 10

	level, difficulty := "Diverse", "Challenging"
	switch {
	case homogeneity >= 70:
		level, difficulty = "High", "Easy"
	case homogeneity >= 50:
		level, difficulty = "Medium", "Moderate"
	}

	return &response_models.GroupCompatibility{
		Score:                  homogeneity,
		Level:                  level,
		DominantPersonality:    dominant,
		PersonalityMix:         personalityCounts,
		TravelStyleMix:         travelStyleCounts,
		CoordinationDifficulty: difficulty,
	}
}

// meetingSuggestions proposes the first scheduled destination as a start-of-day
// meeting point and always falls back to the central lake landmark.
func meetingSuggestions(schedule []response_models.GroupActivity) []response_models.MeetingSuggestion {
	var suggestions []response_models.MeetingSuggestion

	if len(schedule) > 0 {
		suggestions = append(suggestions, response_models.MeetingSuggestion{
			Time:     "Start of day",
			Location: schedule[0].Destination.Name,
			Reason:   "Meet at first destination to begin the day together",
		})
	}

	suggestions = append(suggestions, response_models.MeetingSuggestion{
		Time:     "Flexible",
		Location: "Hồ Xuân Hương",
		Reason:   "Central location, easy to find, good landmark",
	})

	return suggestions
}

// groupRecommendation picks one of four fixed messages; the first matching
// branch wins.
func groupRecommendation(commonCount, splitCount int) string {
	switch {
	case commonCount >= 2 && splitCount == 0:
		return "Great itinerary! Your group has strong agreement on destinations. This will be a smooth trip."
	case commonCount >= 1 && splitCount <= 1:
		return "Good itinerary with mostly aligned preferences. Consider the split option based on energy levels."
	case splitCount > commonCount:
		return "Your group has diverse preferences. Consider splitting up during some time slots and regrouping for meals or evening activities."
	default:
		return "Mixed preferences detected. Communication and flexibility will make this trip enjoyable for everyone."
	}
}
