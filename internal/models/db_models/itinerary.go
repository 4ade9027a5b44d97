package db_models

import "time"

const (
	TimeSlotMorning   = "morning"
	TimeSlotAfternoon = "afternoon"
	TimeSlotEvening   = "evening"
)

// Itinerary rows reference a user and a destination for one time slot of a
// visit day. VisitDate is kept as a plain "2006-01-02" string so day-level
// equality never runs into timezone trouble. Multiple rows may share the same
// (user, date, time_slot); the catalog deliberately does not enforce slot
// uniqueness.
type Itinerary struct {
	ID            int    `gorm:"primaryKey;autoIncrement"`
	UserID        int    `gorm:"not null;index"`
	DestinationID int    `gorm:"not null;index"`
	VisitDate     string `gorm:"not null;index"`
	TimeSlot      string `gorm:"not null"`
	EmotionTag    string
	CreatedAt     time.Time

	User        User        `gorm:"foreignKey:UserID"`
	Destination Destination `gorm:"foreignKey:DestinationID"`
}

// SlotOrder gives the sort key used when laying out a day. Unknown slots sort
// first rather than failing.
func SlotOrder(slot string) int {
	switch slot {
	case TimeSlotMorning:
		return 1
	case TimeSlotAfternoon:
		return 2
	case TimeSlotEvening:
		return 3
	default:
		return 0
	}
}
