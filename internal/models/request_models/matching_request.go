package request_models

type GroupItineraryRequest struct {
	UserIDs    []int  `json:"user_ids" binding:"required"`
	TargetDate string `json:"target_date" binding:"required,datetime=2006-01-02"`
}
