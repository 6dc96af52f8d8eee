package dtos

// ----------------------
// Requests
// ----------------------

type CreateComunicazioneRequest struct {
	CondominioID int    `json:"condominio_id" validate:"required,gt=0"`
	Title        string `json:"title" validate:"required,min=1,max=200"`
	Content      string `json:"content" validate:"required,min=1"`
}

type UpdateComunicazioneRequest struct {
	CondominioID *int    `json:"condominio_id" validate:"omitempty,gt=0"`
	Title        *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content      *string `json:"content" validate:"omitempty,min=1"`
}

type DraftComunicazioneRequest struct {
	Topic string `json:"topic" validate:"required,min=1,max=500"`
	Tone  string `json:"tone" validate:"required,oneof=formal friendly urgent"`
}

// ----------------------
// Responses
// ----------------------

type DraftComunicazioneResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type SendComunicazioneResponse struct {
	Sent   int    `json:"sent"`
	Failed int    `json:"failed"`
	SentAt string `json:"sent_at"`
}
