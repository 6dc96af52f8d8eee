package app

import (
	"context"
	"fmt"
	"time"

	"github.com/baleight/AmministrazioneCondomini/internal/models"
	"github.com/baleight/AmministrazioneCondomini/internal/repositories"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

const seedCondominioCF = "97531086420"

/*
SeedDemoData populates an empty backend with a small demo dataset so the
frontend has something to show on first boot. The sentinel is the demo
condominio's codice fiscale: if any condominio carries it the whole
seeding pass is skipped.
*/
func SeedDemoData(
	ctx context.Context,
	condRepo repositories.CondominioRepository,
	anagRepo repositories.AnagraficaRepository,
	immRepo repositories.ImmobileRepository,
	segRepo repositories.SegnalazioneRepository,
	evRepo repositories.EventoRepository,
) error {
	existing, err := condRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("check existing seed data: %w", err)
	}
	for _, c := range existing {
		if c.CodiceFiscale == seedCondominioCF {
			utils.Logger.Info("Seed data already present; skipping seeding.")
			return nil
		}
	}

	cond, err := condRepo.Create(ctx, &models.Condominio{
		Nome:          "Condominio Aurora",
		Indirizzo:     "Via Roma 12",
		City:          "Milano",
		Email:         "aurora@kondo.it",
		CodiceFiscale: seedCondominioCF,
		UnitsCount:    8,
	})
	if err != nil {
		return fmt.Errorf("seed condominio: %w", err)
	}
	utils.Logger.Infof("Seeded condominio '%s' (id=%d).", cond.Nome, cond.ID)

	people := []models.Anagrafica{
		{Nome: "Mario Rossi", Email: "mario.rossi@example.com", Telefono: "+390212345678", CodiceFiscale: "RSSMRA80A01F205X", Role: models.PersonOwner},
		{Nome: "Giulia Bianchi", Email: "giulia.bianchi@example.com", Telefono: "+390287654321", CodiceFiscale: "BNCGLI85B42F205Y", Role: models.PersonTenant},
	}
	ids := make([]int, 0, len(people))
	for i := range people {
		created, err := anagRepo.Create(ctx, &people[i])
		if err != nil {
			return fmt.Errorf("seed anagrafica '%s': %w", people[i].Nome, err)
		}
		ids = append(ids, created.ID)
	}
	utils.Logger.Infof("Seeded %d anagrafiche.", len(ids))

	units := []models.Immobile{
		{CondominioID: cond.ID, Nome: "Appartamento 1A", Piano: "1", Superficie: 85.5, OwnerID: &ids[0]},
		{CondominioID: cond.ID, Nome: "Appartamento 2B", Piano: "2", Superficie: 62.0, OwnerID: &ids[0], TenantID: &ids[1]},
	}
	for i := range units {
		if _, err := immRepo.Create(ctx, &units[i]); err != nil {
			return fmt.Errorf("seed immobile '%s': %w", units[i].Nome, err)
		}
	}
	utils.Logger.Infof("Seeded %d immobili.", len(units))

	if _, err := segRepo.Create(ctx, &models.Segnalazione{
		CondominioID: cond.ID,
		Title:        "Perdita d'acqua in garage",
		Description:  "Infiltrazione visibile sul soffitto del box 3 dopo le piogge.",
		Status:       models.TicketOpen,
		Priority:     models.PriorityMedium,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		return fmt.Errorf("seed segnalazione: %w", err)
	}

	assembly := time.Now().UTC().AddDate(0, 0, 14).Truncate(time.Hour)
	if _, err := evRepo.Create(ctx, &models.Evento{
		Title:        "Assemblea ordinaria",
		Description:  "Approvazione bilancio e nomina revisore.",
		StartsAt:     assembly.Format(time.RFC3339),
		EndsAt:       assembly.Add(2 * time.Hour).Format(time.RFC3339),
		Category:     models.EventAssembly,
		CondominioID: &cond.ID,
	}); err != nil {
		return fmt.Errorf("seed evento: %w", err)
	}

	utils.Logger.Info("Demo data seeding completed.")
	return nil
}
