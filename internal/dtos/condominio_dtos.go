package dtos

// ----------------------
// Requests
// ----------------------

type CreateCondominioRequest struct {
	Nome          string `json:"nome" validate:"required,min=1,max=200"`
	Indirizzo     string `json:"indirizzo" validate:"required,min=1,max=300"`
	City          string `json:"city" validate:"required,min=1,max=100"`
	Email         string `json:"email" validate:"omitempty,email"`
	CodiceFiscale string `json:"codice_fiscale" validate:"required,min=1,max=50"`
	UnitsCount    int    `json:"units_count" validate:"gte=0"`
}

type UpdateCondominioRequest struct {
	Nome          *string `json:"nome" validate:"omitempty,min=1,max=200"`
	Indirizzo     *string `json:"indirizzo" validate:"omitempty,min=1,max=300"`
	City          *string `json:"city" validate:"omitempty,min=1,max=100"`
	Email         *string `json:"email" validate:"omitempty,email"`
	CodiceFiscale *string `json:"codice_fiscale" validate:"omitempty,min=1,max=50"`
	UnitsCount    *int    `json:"units_count" validate:"omitempty,gte=0"`
}
