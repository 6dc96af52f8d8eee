package dtos

// ----------------------
// Requests
// ----------------------

// UploadDocumentoRequest carries the payload inline as base64 text.
// The decoded size is capped server-side.
type UploadDocumentoRequest struct {
	Nome     string `json:"nome" validate:"required,min=1,max=200"`
	Category string `json:"category" validate:"required,oneof=contract notice minutes other"`
	FileName string `json:"file_name" validate:"required,min=1,max=255"`
	Content  string `json:"content" validate:"required,base64"`
}

type UpdateDocumentoRequest struct {
	Nome     *string `json:"nome" validate:"omitempty,min=1,max=200"`
	Category *string `json:"category" validate:"omitempty,oneof=contract notice minutes other"`
}
