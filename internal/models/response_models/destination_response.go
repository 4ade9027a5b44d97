package response_models

type Destination struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Category      string   `json:"category"`
	PhotoSpot     bool     `json:"photo_spot"`
	EstimatedCost *float64 `json:"estimated_cost"`
	EstimatedTime *int     `json:"estimated_time"`
	Description   string   `json:"description"`
}

// DestinationBrief is the trimmed form embedded in matching results.
type DestinationBrief struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type PhotoSpot struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	Location           string   `json:"location"`
	Category           string   `json:"category"`
	EstimatedCost      *float64 `json:"estimated_cost"`
	EstimatedTime      *int     `json:"estimated_time"`
	Description        string   `json:"description"`
	PhotogenicFeatures string   `json:"photogenic_features"`
	PhotographyTips    []string `json:"photography_tips"`
}

type PhotoSpotsResponse struct {
	TotalPhotoSpots int         `json:"total_photo_spots"`
	PhotoSpots      []PhotoSpot `json:"photo_spots"`
	GeneralTips     []string    `json:"general_tips"`
}

type SeedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
