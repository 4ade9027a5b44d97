package request_models

type ChatRequest struct {
	Message string `json:"message" binding:"required,min=1"`
	UserID  int    `json:"user_id" binding:"required,gt=0"`
}
