package models

// User is the transient authenticated principal produced by the auth
// gate. It is never persisted; the admin identity is synthesized from
// config and non-admin identities are derived from an Anagrafica row.
type User struct {
	ID    int    `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Condominio is a managed building.
type Condominio struct {
	ID            int    `json:"id"`
	Nome          string `json:"nome"`
	Indirizzo     string `json:"indirizzo"`
	City          string `json:"city"`
	Email         string `json:"email"`
	CodiceFiscale string `json:"codice_fiscale"`
	UnitsCount    int    `json:"units_count"`
}

// Anagrafica is a person registered with the administration. The email
// doubles as the login identifier and the codice fiscale as the login
// secret for non-staff sessions.
type Anagrafica struct {
	ID            int        `json:"id"`
	Nome          string     `json:"nome"`
	Email         string     `json:"email"`
	Telefono      string     `json:"telefono"`
	CodiceFiscale string     `json:"codice_fiscale"`
	Role          PersonRole `json:"role"`
}

// Immobile is a unit inside a Condominio.
type Immobile struct {
	ID           int     `json:"id"`
	CondominioID int     `json:"condominio_id"`
	Nome         string  `json:"nome"`
	Piano        string  `json:"piano"`
	Superficie   float64 `json:"superficie"`
	OwnerID      *int    `json:"owner_id,omitempty"`
	TenantID     *int    `json:"tenant_id,omitempty"`
}

// Segnalazione is a maintenance ticket. AIAnalysis is recomputed on
// demand and mutable.
type Segnalazione struct {
	ID           int            `json:"id"`
	CondominioID int            `json:"condominio_id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Status       TicketStatus   `json:"status"`
	Priority     TicketPriority `json:"priority"`
	CreatedAt    string         `json:"created_at"`
	AIAnalysis   string         `json:"ai_analysis,omitempty"`
}

// Comunicazione is an announcement to the residents. SentAt is empty
// until delivery.
type Comunicazione struct {
	ID           int    `json:"id"`
	CondominioID int    `json:"condominio_id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	SentAt       string `json:"sent_at,omitempty"`
}

// Documento stores the payload inline as base64 text; SizeBytes is the
// decoded size and is capped at acceptance time.
type Documento struct {
	ID         int         `json:"id"`
	Nome       string      `json:"nome"`
	Category   DocCategory `json:"category"`
	FileName   string      `json:"file_name"`
	Content    string      `json:"content"`
	SizeBytes  int         `json:"size_bytes"`
	UploadedAt string      `json:"uploaded_at"`
}

// Evento is a calendar entry; a nil CondominioID means it applies to
// every building.
type Evento struct {
	ID           int           `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	StartsAt     string        `json:"starts_at"`
	EndsAt       string        `json:"ends_at,omitempty"`
	Category     EventCategory `json:"category"`
	CondominioID *int          `json:"condominio_id,omitempty"`
}
