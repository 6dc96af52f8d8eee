package routes

const (
	// Health
	Health = "/health"

	// Auth
	AuthLogin   = "/api/v1/auth/login"
	AuthMe      = "/api/v1/auth/me"
	Permissions = "/api/v1/permissions"

	// Condomini
	CondominiBase   = "/api/v1/condomini"
	CondominiByID   = "/api/v1/condomini/{id}"
	CondominiExport = "/api/v1/condomini/export"
	CondominiImport = "/api/v1/condomini/import"

	// Anagrafiche
	AnagraficheBase   = "/api/v1/anagrafiche"
	AnagraficheByID   = "/api/v1/anagrafiche/{id}"
	AnagraficheExport = "/api/v1/anagrafiche/export"
	AnagraficheImport = "/api/v1/anagrafiche/import"

	// Immobili
	ImmobiliBase = "/api/v1/immobili"
	ImmobiliByID = "/api/v1/immobili/{id}"

	// Segnalazioni
	SegnalazioniBase    = "/api/v1/segnalazioni"
	SegnalazioniByID    = "/api/v1/segnalazioni/{id}"
	SegnalazioniAnalyze = "/api/v1/segnalazioni/{id}/analyze"

	// Comunicazioni
	ComunicazioniBase  = "/api/v1/comunicazioni"
	ComunicazioniByID  = "/api/v1/comunicazioni/{id}"
	ComunicazioniDraft = "/api/v1/comunicazioni/draft"
	ComunicazioniSend  = "/api/v1/comunicazioni/{id}/send"

	// Documenti
	DocumentiBase = "/api/v1/documenti"
	DocumentiByID = "/api/v1/documenti/{id}"

	// Eventi
	EventiBase = "/api/v1/eventi"
	EventiByID = "/api/v1/eventi/{id}"
)
