package db_models

const (
	CategoryLocal  = "local"
	CategoryFamous = "famous"
)

// Destination is seeded reference data, never mutated after the seed run.
// Cost and time are nullable so "unknown" stays distinguishable from zero.
type Destination struct {
	ID            int    `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"not null"`
	Location      string `gorm:"not null"`
	Category      string `gorm:"not null"`
	PhotoSpot     bool   `gorm:"default:false"`
	EstimatedCost *float64
	EstimatedTime *int
	Description   string `gorm:"type:text"`
}
