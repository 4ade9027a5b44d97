package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dasilari/internal/models/db_models"
)

// DestinationFilter narrows catalog listings. Nil fields are ignored.
type DestinationFilter struct {
	Category  string
	PhotoSpot *bool
	MaxCost   *float64
}

type DestinationRepository interface {
	GetByID(ctx context.Context, id int) (*db_models.Destination, error)
	List(ctx context.Context, filter DestinationFilter) ([]db_models.Destination, error)
	ListByIDs(ctx context.Context, ids []int) ([]db_models.Destination, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, destinations []db_models.Destination) error
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) GetByID(ctx context.Context, id int) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).First(&destination, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (r *destinationRepository) List(ctx context.Context, filter DestinationFilter) ([]db_models.Destination, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Destination{}).Order("id")

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.PhotoSpot != nil {
		query = query.Where("photo_spot = ?", *filter.PhotoSpot)
	}
	if filter.MaxCost != nil {
		query = query.Where("estimated_cost <= ?", *filter.MaxCost)
	}

	var destinations []db_models.Destination
	if err := query.Find(&destinations).Error; err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) ListByIDs(ctx context.Context, ids []int) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id").
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&db_models.Destination{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *destinationRepository) CreateBatch(ctx context.Context, destinations []db_models.Destination) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&destinations).Error
	})
}
