package models

// LoginRequest asks the backend for a bearer token
type LoginRequest struct {
	UserID string `json:"user_id"`
}

// TokenResponse carries the bearer token returned by /api/auth/login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// LogResponse acknowledges a saved workout log
type LogResponse struct {
	LogID   string `json:"log_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// PlanGenerationRequest asks the trainer service to generate a plan for a week
type PlanGenerationRequest struct {
	WeekNumber int `json:"week_number"`
}

// PlanGenerationResponse acknowledges a plan generation request
type PlanGenerationResponse struct {
	PlanID  string `json:"plan_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// FeedbackCreate submits free-text weekly feedback
type FeedbackCreate struct {
	WeekNumber   int    `json:"week_number"`
	FeedbackText string `json:"feedback_text"`
}

// FeedbackResponse acknowledges submitted feedback
type FeedbackResponse struct {
	FeedbackID string `json:"feedback_id"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}
