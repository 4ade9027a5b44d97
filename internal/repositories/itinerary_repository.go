package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dasilari/internal/models/db_models"
)

// ItineraryFilter narrows itinerary listings. Zero-valued fields are ignored.
type ItineraryFilter struct {
	UserID        int
	DestinationID int
	VisitDate     string
}

type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *db_models.Itinerary) (int, error)
	CreateBatch(ctx context.Context, itineraries []*db_models.Itinerary) error
	GetByID(ctx context.Context, id int) (*db_models.Itinerary, error)
	Filter(ctx context.Context, filter ItineraryFilter) ([]db_models.Itinerary, error)
	Delete(ctx context.Context, id int) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Create(ctx context.Context, itinerary *db_models.Itinerary) (int, error) {
	if err := r.db.WithContext(ctx).Create(itinerary).Error; err != nil {
		return 0, err
	}
	return itinerary.ID, nil
}

func (r *itineraryRepository) CreateBatch(ctx context.Context, itineraries []*db_models.Itinerary) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, itinerary := range itineraries {
			if err := tx.Create(itinerary).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *itineraryRepository) GetByID(ctx context.Context, id int) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).First(&itinerary, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

// Filter returns entries ordered by id so discovery order stays stable across
// calls; the matching logic depends on that for its tie-breaking.
func (r *itineraryRepository) Filter(ctx context.Context, filter ItineraryFilter) ([]db_models.Itinerary, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Itinerary{}).Order("id")

	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.DestinationID != 0 {
		query = query.Where("destination_id = ?", filter.DestinationID)
	}
	if filter.VisitDate != "" {
		query = query.Where("visit_date = ?", filter.VisitDate)
	}

	var itineraries []db_models.Itinerary
	if err := query.Find(&itineraries).Error; err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) Delete(ctx context.Context, id int) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Itinerary{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
