package dtos

// ----------------------
// Requests
// ----------------------

type CreateAnagraficaRequest struct {
	Nome          string `json:"nome" validate:"required,min=1,max=200"`
	Email         string `json:"email" validate:"required,email"`
	Telefono      string `json:"telefono" validate:"omitempty,max=30"`
	CodiceFiscale string `json:"codice_fiscale" validate:"required,min=1,max=50"`
	Role          string `json:"role" validate:"required,oneof=owner tenant"`
}

type UpdateAnagraficaRequest struct {
	Nome          *string `json:"nome" validate:"omitempty,min=1,max=200"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Telefono      *string `json:"telefono" validate:"omitempty,max=30"`
	CodiceFiscale *string `json:"codice_fiscale" validate:"omitempty,min=1,max=50"`
	Role          *string `json:"role" validate:"omitempty,oneof=owner tenant"`
}
