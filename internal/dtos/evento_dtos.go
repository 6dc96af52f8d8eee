package dtos

// ----------------------
// Requests
// ----------------------

type CreateEventoRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=200"`
	Description  string `json:"description" validate:"omitempty"`
	StartsAt     string `json:"starts_at" validate:"required"`
	EndsAt       string `json:"ends_at" validate:"omitempty"`
	Category     string `json:"category" validate:"required,oneof=assembly maintenance deadline other"`
	CondominioID *int   `json:"condominio_id" validate:"omitempty,gt=0"`
}

type UpdateEventoRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description" validate:"omitempty"`
	StartsAt     *string `json:"starts_at" validate:"omitempty"`
	EndsAt       *string `json:"ends_at" validate:"omitempty"`
	Category     *string `json:"category" validate:"omitempty,oneof=assembly maintenance deadline other"`
	CondominioID *int    `json:"condominio_id" validate:"omitempty,gt=0"`

	ClearCondominio bool `json:"clear_condominio"`
}
