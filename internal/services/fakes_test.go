package services

import (
	"context"
	"errors"

	"dasilari/internal/models/db_models"
	"dasilari/internal/repositories"
	"dasilari/pkg/utils"
)

// In-memory repository fakes shared by the service tests. IDs are assigned in
// insertion order, mirroring the serial columns they stand in for.

type fakeUserRepo struct {
	users  map[int]db_models.User
	nextID int
	err    error
}

var _ repositories.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...db_models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[int]db_models.User), nextID: 1}
	for _, user := range users {
		if user.ID == 0 {
			user.ID = repo.nextID
		}
		repo.users[user.ID] = user
		if user.ID >= repo.nextID {
			repo.nextID = user.ID + 1
		}
	}
	return repo
}

func (f *fakeUserRepo) Create(_ context.Context, user *db_models.User) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = *user
	return user.ID, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int) (*db_models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUserRepo) SetHasItinerary(_ context.Context, id int, hasItinerary bool) error {
	if f.err != nil {
		return f.err
	}
	user, ok := f.users[id]
	if !ok {
		return errors.New("user not found")
	}
	user.HasItinerary = hasItinerary
	f.users[id] = user
	return nil
}

type fakeDestinationRepo struct {
	destinations []db_models.Destination
	err          error
}

var _ repositories.DestinationRepository = (*fakeDestinationRepo)(nil)

func newFakeDestinationRepo(destinations ...db_models.Destination) *fakeDestinationRepo {
	repo := &fakeDestinationRepo{}
	repo.destinations = append(repo.destinations, destinations...)
	for i := range repo.destinations {
		if repo.destinations[i].ID == 0 {
			repo.destinations[i].ID = i + 1
		}
	}
	return repo
}

func (f *fakeDestinationRepo) GetByID(_ context.Context, id int) (*db_models.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, destination := range f.destinations {
		if destination.ID == id {
			d := destination
			return &d, nil
		}
	}
	return nil, nil
}

func (f *fakeDestinationRepo) List(_ context.Context, filter repositories.DestinationFilter) ([]db_models.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Destination
	for _, destination := range f.destinations {
		if filter.Category != "" && destination.Category != filter.Category {
			continue
		}
		if filter.PhotoSpot != nil && destination.PhotoSpot != *filter.PhotoSpot {
			continue
		}
		if filter.MaxCost != nil && (destination.EstimatedCost == nil || *destination.EstimatedCost > *filter.MaxCost) {
			continue
		}
		out = append(out, destination)
	}
	return out, nil
}

func (f *fakeDestinationRepo) ListByIDs(_ context.Context, ids []int) ([]db_models.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []db_models.Destination
	for _, destination := range f.destinations {
		if wanted[destination.ID] {
			out = append(out, destination)
		}
	}
	return out, nil
}

func (f *fakeDestinationRepo) Count(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.destinations)), nil
}

func (f *fakeDestinationRepo) CreateBatch(_ context.Context, destinations []db_models.Destination) error {
	if f.err != nil {
		return f.err
	}
	for _, destination := range destinations {
		destination.ID = len(f.destinations) + 1
		f.destinations = append(f.destinations, destination)
	}
	return nil
}

type fakeItineraryRepo struct {
	entries []db_models.Itinerary
	nextID  int
	err     error
}

var _ repositories.ItineraryRepository = (*fakeItineraryRepo)(nil)

func newFakeItineraryRepo(entries ...db_models.Itinerary) *fakeItineraryRepo {
	repo := &fakeItineraryRepo{nextID: 1}
	for _, entry := range entries {
		if entry.ID == 0 {
			entry.ID = repo.nextID
		}
		repo.entries = append(repo.entries, entry)
		if entry.ID >= repo.nextID {
			repo.nextID = entry.ID + 1
		}
	}
	return repo
}

func (f *fakeItineraryRepo) Create(_ context.Context, itinerary *db_models.Itinerary) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	itinerary.ID = f.nextID
	f.nextID++
	f.entries = append(f.entries, *itinerary)
	return itinerary.ID, nil
}

func (f *fakeItineraryRepo) CreateBatch(_ context.Context, itineraries []*db_models.Itinerary) error {
	if f.err != nil {
		return f.err
	}
	for _, itinerary := range itineraries {
		itinerary.ID = f.nextID
		f.nextID++
		f.entries = append(f.entries, *itinerary)
	}
	return nil
}

func (f *fakeItineraryRepo) GetByID(_ context.Context, id int) (*db_models.Itinerary, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, entry := range f.entries {
		if entry.ID == id {
			e := entry
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeItineraryRepo) Filter(_ context.Context, filter repositories.ItineraryFilter) ([]db_models.Itinerary, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Itinerary
	for _, entry := range f.entries {
		if filter.UserID != 0 && entry.UserID != filter.UserID {
			continue
		}
		if filter.DestinationID != 0 && entry.DestinationID != filter.DestinationID {
			continue
		}
		if filter.VisitDate != "" && entry.VisitDate != filter.VisitDate {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func (f *fakeItineraryRepo) Delete(_ context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	for i, entry := range f.entries {
		if entry.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeTextGenClient lets each test script the AI collaborator.
type fakeTextGenClient struct {
	reply      string
	replyErr   error
	suggestion *utils.EmotionSuggestionResult
	suggestErr error
	plan       *utils.PlannedItinerary
	planErr    error
}

var _ utils.TextGenClientInterface = (*fakeTextGenClient)(nil)

func (f *fakeTextGenClient) ChatReply(_ context.Context, _ string, _ *utils.TravelProfile) (string, error) {
	return f.reply, f.replyErr
}

func (f *fakeTextGenClient) SuggestByEmotion(_ context.Context, _ string, _ []utils.DestinationSummary) (*utils.EmotionSuggestionResult, error) {
	return f.suggestion, f.suggestErr
}

func (f *fakeTextGenClient) GenerateDayPlan(_ context.Context, _ utils.TravelProfile, _ []utils.DestinationSummary) (*utils.PlannedItinerary, error) {
	return f.plan, f.planErr
}
