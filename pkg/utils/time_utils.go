package utils

import "time"

// Vietnam time location (ICT, +07:00)
var vnLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Ho_Chi_Minh"); err == nil {
		return loc
	}
	return time.FixedZone("ICT", 7*3600)
}()

const VisitDateLayout = "2006-01-02"

// ParseVisitDate validates a calendar-date string as used by itineraries.
func ParseVisitDate(s string) (time.Time, error) {
	return time.ParseInLocation(VisitDateLayout, s, vnLoc)
}

func FormatVisitDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(vnLoc).Format(VisitDateLayout)
}

func FormatRFC3339VN(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(vnLoc).Format(time.RFC3339)
}
