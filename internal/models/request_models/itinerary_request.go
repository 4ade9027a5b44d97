package request_models

type GenerateItineraryRequest struct {
	UserID int `json:"user_id" binding:"required,gt=0"`
	// Optional mood tag carried onto every saved row.
	Emotion        string `json:"emotion"`
	DestinationIDs []int  `json:"destination_ids" binding:"required,min=1"`
	// Calendar date, "2006-01-02".
	VisitDate string `json:"visit_date" binding:"required,datetime=2006-01-02"`
}
