package main

import (
	"context"
	"net/http"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/baleight/AmministrazioneCondomini/internal/app"
	"github.com/baleight/AmministrazioneCondomini/internal/config"
	"github.com/baleight/AmministrazioneCondomini/internal/controllers"
	"github.com/baleight/AmministrazioneCondomini/internal/middleware"
	"github.com/baleight/AmministrazioneCondomini/internal/repositories"
	"github.com/baleight/AmministrazioneCondomini/internal/routes"
	"github.com/baleight/AmministrazioneCondomini/internal/services"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize kondo-server:", err)
	}
	defer application.Close()

	condRepo := repositories.NewCondominioRepository(application.Store)
	anagRepo := repositories.NewAnagraficaRepository(application.Store)
	immRepo := repositories.NewImmobileRepository(application.Store)
	segRepo := repositories.NewSegnalazioneRepository(application.Store)
	comRepo := repositories.NewComunicazioneRepository(application.Store)
	docRepo := repositories.NewDocumentoRepository(application.Store)
	evRepo := repositories.NewEventoRepository(application.Store)

	aiService := services.NewAIService(cfg.OpenAIAPIKey)
	mailer := services.NewMailer(cfg.SendGridAPIKey, config.AppName, cfg.SendGridFromEmail, cfg.SendGridSandbox)

	authService := services.NewAuthService(cfg, anagRepo)
	condService := services.NewCondominioService(condRepo)
	anagService := services.NewAnagraficaService(anagRepo)
	immService := services.NewImmobileService(immRepo, condRepo, anagRepo)
	segService := services.NewSegnalazioneService(segRepo, condRepo, aiService)
	comService := services.NewComunicazioneService(comRepo, condRepo, anagRepo, aiService, mailer)
	docService := services.NewDocumentoService(docRepo)
	evService := services.NewEventoService(evRepo, condRepo)
	reminderService := services.NewReminderService(evRepo, condRepo, mailer, cfg.AdminName, cfg.AdminEmail)

	if cfg.SeedDemoData {
		if err := app.SeedDemoData(
			context.Background(),
			condRepo, anagRepo, immRepo, segRepo, evRepo,
		); err != nil {
			utils.Logger.WithError(err).Fatal("Failed to seed demo data")
		}
	}

	healthController := controllers.NewHealthController(config.AppName)
	authController := controllers.NewAuthController(authService)
	condController := controllers.NewCondominiController(condService)
	anagController := controllers.NewAnagraficheController(anagService)
	immController := controllers.NewImmobiliController(immService)
	segController := controllers.NewSegnalazioniController(segService)
	comController := controllers.NewComunicazioniController(comService)
	docController := controllers.NewDocumentiController(docService)
	evController := controllers.NewEventiController(evService)

	router := mux.NewRouter()

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.AuthLogin, authController.LoginHandler).Methods(http.MethodPost)

	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.RSAPublicKey))

	secured.HandleFunc(routes.AuthMe, authController.MeHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Permissions, authController.PermissionsHandler).Methods(http.MethodGet)

	// Reads gated by view access, mutations by per-entity actions.
	view := func(v services.View, h http.HandlerFunc) http.Handler {
		return middleware.RequireView(v)(h)
	}
	action := func(a services.Action, e services.Entity, h http.HandlerFunc) http.Handler {
		return middleware.RequireAction(a, e)(h)
	}

	// Condomini
	secured.Handle(routes.CondominiBase, view(services.ViewBuildings, condController.ListHandler)).Methods(http.MethodGet)
	secured.Handle(routes.CondominiExport, view(services.ViewBuildings, condController.ExportCSVHandler)).Methods(http.MethodGet)
	secured.Handle(routes.CondominiImport, action(services.ActionCreate, services.EntityCondominio, condController.ImportCSVHandler)).Methods(http.MethodPost)
	secured.Handle(routes.CondominiBase, action(services.ActionCreate, services.EntityCondominio, condController.CreateHandler)).Methods(http.MethodPost)
	secured.Handle(routes.CondominiByID, action(services.ActionEdit, services.EntityCondominio, condController.UpdateHandler)).Methods(http.MethodPatch)
	secured.Handle(routes.CondominiByID, action(services.ActionDelete, services.EntityCondominio, condController.DeleteHandler)).Methods(http.MethodDelete)

	// Anagrafiche
	secured.Handle(routes.AnagraficheBase, view(services.ViewPeople, anagController.ListHandler)).Methods(http.MethodGet)
	secured.Handle(routes.AnagraficheExport, view(services.ViewPeople, anagController.ExportCSVHandler)).Methods(http.MethodGet)
	secured.Handle(routes.AnagraficheImport, action(services.ActionCreate, services.EntityAnagrafica, anagController.ImportCSVHandler)).Methods(http.MethodPost)
	secured.Handle(routes.AnagraficheBase, action(services.ActionCreate, services.EntityAnagrafica, anagController.CreateHandler)).Methods(http.MethodPost)
	secured.Handle(routes.AnagraficheByID, action(services.ActionEdit, services.EntityAnagrafica, anagController.UpdateHandler)).Methods(http.MethodPatch)
	secured.Handle(routes.AnagraficheByID, action(services.ActionDelete, services.EntityAnagrafica, anagController.DeleteHandler)).Methods(http.MethodDelete)

	// Immobili
	secured.Handle(routes.ImmobiliBase, view(services.ViewUnits, immController.ListHandler)).Methods(http.MethodGet)
	secured.Handle(routes.ImmobiliBase, action(services.ActionCreate, services.EntityImmobile, immController.CreateHandler)).Methods(http.MethodPost)
	secured.Handle(routes.ImmobiliByID, action(services.ActionEdit, services.EntityImmobile, immController.UpdateHandler)).Methods(http.MethodPatch)
	secured.Handle(routes.ImmobiliByID, action(services.ActionDelete, services.EntityImmobile, immController.DeleteHandler)).Methods(http.MethodDelete)

	// Segnalazioni
	secured.Handle(routes.SegnalazioniBase, view(services.ViewTickets, segController.ListHandler)).Methods(http.MethodGet)
	secured.Handle(routes.SegnalazioniBase, action(services.ActionCreate, services.EntitySegnalazione, segController.CreateHandler)).Methods(http.MethodPost)
	secured.Handle(routes.SegnalazioniByID, action(services.ActionEdit, services.EntitySegnalazione, segController.UpdateHandler)).Methods(http.MethodPatch)
	secured.Handle(routes.SegnalazioniByID, action(services.ActionDelete, services.EntitySegnalazione, segController.DeleteHandler)).Methods(http.MethodDelete)
	secured.Handle(routes.SegnalazioniAnalyze, action(services.ActionEdit, services.EntitySegnalazione, segController.AnalyzeHandler)).Methods(http.MethodPost)

	// Comunicazioni
	secured.Handle(routes.ComunicazioniBase, view(services.ViewCommunications, comController.ListHandler)).Methods(http.MethodGet)
	secured.Handle(routes.ComunicazioniDraft, action(services.ActionCreate, services.EntityComunicazione, comController.DraftHandler)).Methods(http.MethodPost)
	secured.Handle(routes.ComunicazioniBase, action(services.ActionCreate, services.EntityComunicazione, comController.CreateHandler)).Methods(http.MethodPost)
	secured.Handle(routes.ComunicazioniByID, action(services.ActionEdit, services.EntityComunicazione, comController.UpdateHandler)).Methods(http.MethodPatch)
	secured.Handle(routes.ComunicazioniByID, action(services.ActionDelete, services.EntityComunicazione, comController.DeleteHandler)).Methods(http.MethodDelete)
	secured.Handle(routes.ComunicazioniSend, action(services.ActionEdit, services.EntityComunicazione, comController.SendHandler)).Methods(http.MethodPost)

	// Documenti
	secured.Handle(routes.DocumentiBase, view(services.ViewDocuments, docController.ListHandler)).Methods(http.MethodGet)
	secured.Handle(routes.DocumentiBase, action(services.ActionCreate, services.EntityDocumento, docController.UploadHandler)).Methods(http.MethodPost)
	secured.Handle(routes.DocumentiByID, action(services.ActionEdit, services.EntityDocumento, docController.UpdateHandler)).Methods(http.MethodPatch)
	secured.Handle(routes.DocumentiByID, action(services.ActionDelete, services.EntityDocumento, docController.DeleteHandler)).Methods(http.MethodDelete)

	// Eventi
	secured.Handle(routes.EventiBase, view(services.ViewAgenda, evController.ListHandler)).Methods(http.MethodGet)
	secured.Handle(routes.EventiBase, action(services.ActionCreate, services.EntityEvento, evController.CreateHandler)).Methods(http.MethodPost)
	secured.Handle(routes.EventiByID, action(services.ActionEdit, services.EntityEvento, evController.UpdateHandler)).Methods(http.MethodPatch)
	secured.Handle(routes.EventiByID, action(services.ActionDelete, services.EntityEvento, evController.DeleteHandler)).Methods(http.MethodDelete)

	c := cron.New()
	_, digestErr := c.AddFunc("0 7 * * *", func() {
		if e := reminderService.RunDailyDigest(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Daily agenda digest failed")
		}
	})
	if digestErr != nil {
		utils.Logger.WithError(digestErr).Fatal("Failed to schedule daily agenda digest cron")
	}
	c.Start()

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("kondo-server failed to start:", err)
	}
}
