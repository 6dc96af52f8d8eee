package dtos

// ----------------------
// Requests
// ----------------------

type CreateImmobileRequest struct {
	CondominioID int     `json:"condominio_id" validate:"required,gt=0"`
	Nome         string  `json:"nome" validate:"required,min=1,max=100"`
	Piano        string  `json:"piano" validate:"omitempty,max=20"`
	Superficie   float64 `json:"superficie" validate:"required,gt=0"`
	OwnerID      *int    `json:"owner_id" validate:"omitempty,gt=0"`
	TenantID     *int    `json:"tenant_id" validate:"omitempty,gt=0"`
}

type UpdateImmobileRequest struct {
	CondominioID *int     `json:"condominio_id" validate:"omitempty,gt=0"`
	Nome         *string  `json:"nome" validate:"omitempty,min=1,max=100"`
	Piano        *string  `json:"piano" validate:"omitempty,max=20"`
	Superficie   *float64 `json:"superficie" validate:"omitempty,gt=0"`
	OwnerID      *int     `json:"owner_id" validate:"omitempty,gt=0"`
	TenantID     *int     `json:"tenant_id" validate:"omitempty,gt=0"`

	// Explicit clears: the optional references can be detached without
	// touching the rest of the record.
	ClearOwner  bool `json:"clear_owner"`
	ClearTenant bool `json:"clear_tenant"`
}
