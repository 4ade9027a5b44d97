package db_models

import "time"

// Survey enum values. Stored as plain strings, validated at the binding layer.
const (
	PersonalityExtrovert = "extrovert"
	PersonalityIntrovert = "introvert"

	TravelStyleGroup = "group"
	TravelStyleSolo  = "solo"
)

type User struct {
	ID              int    `gorm:"primaryKey;autoIncrement"`
	Name            string `gorm:"not null"`
	PersonalityType string `gorm:"not null"`
	TravelStyle     string `gorm:"not null"`
	TransportType   string `gorm:"not null"`
	HasItinerary    bool   `gorm:"default:false"`
	CreatedAt       time.Time
}
