package dtos

// ----------------------
// Requests
// ----------------------

type CreateSegnalazioneRequest struct {
	CondominioID int    `json:"condominio_id" validate:"required,gt=0"`
	Title        string `json:"title" validate:"required,min=1,max=200"`
	Description  string `json:"description" validate:"required,min=1"`
	Priority     string `json:"priority" validate:"required,oneof=low medium high"`
}

type UpdateSegnalazioneRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Status      *string `json:"status" validate:"omitempty,oneof=open in_progress resolved"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// ----------------------
// Responses
// ----------------------

type AnalyzeSegnalazioneResponse struct {
	ID         int    `json:"id"`
	AIAnalysis string `json:"ai_analysis"`
}
