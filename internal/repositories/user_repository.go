package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dasilari/internal/models/db_models"
)

type UserRepository interface {
	Create(ctx context.Context, user *db_models.User) (int, error)
	GetByID(ctx context.Context, id int) (*db_models.User, error)
	SetHasItinerary(ctx context.Context, id int, hasItinerary bool) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *db_models.User) (int, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return 0, err
	}
	return user.ID, nil
}

// GetByID returns nil, nil when no row matches so callers can decide whether
// a missing user is an error or a soft miss.
func (r *userRepository) GetByID(ctx context.Context, id int) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) SetHasItinerary(ctx context.Context, id int, hasItinerary bool) error {
	return r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Update("has_itinerary", hasItinerary).Error
}
