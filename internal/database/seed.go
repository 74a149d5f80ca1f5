package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"biodex/internal/database/repository"
	"biodex/internal/species"
)

// DefaultProfileID returns the deterministic id of the profile a fresh
// install edits as, matching the seeded "demo" profile so the starter
// catalog is editable out of the box.
func DefaultProfileID() string {
	return ProfileID("demo")
}

// ProfileID derives a stable profile id from a handle.
func ProfileID(handle string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("profile:"+handle)).String()
}

// SeedDefaults ensures baseline profiles and a starter catalog exist for
// new databases. It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	profiles := repository.NewProfileRepo(db)
	for _, p := range []species.Profile{
		{ID: ProfileID("demo"), Handle: "demo", DisplayName: "Field Biologist"},
		{ID: ProfileID("curator"), Handle: "curator", DisplayName: "Collection Curator"},
	} {
		if err := profiles.Upsert(ctx, p); err != nil {
			return err
		}
	}

	spRepo := repository.NewSpeciesRepo(db)
	existing, err := spRepo.List(ctx, repository.SpeciesFilters{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	// the starter catalog lands whole or not at all
	return WithTx(db, func(tx *sql.Tx) error {
		txRepo := repository.NewSpeciesRepo(tx)
		for _, sp := range starterCatalog() {
			if err := txRepo.Insert(ctx, sp); err != nil {
				return err
			}
		}
		return nil
	})
}

func starterCatalog() []species.Species {
	demo := ProfileID("demo")
	curator := ProfileID("curator")
	return []species.Species{
		seedSpecies("Cavia porcellus", "Guinea pig", species.KingdomAnimalia, 300000,
			"https://upload.wikimedia.org/wikipedia/commons/3/30/George_the_amazing_guinea_pig.jpg",
			"Domesticated rodent of the genus Cavia, kept worldwide as a companion animal.",
			demo),
		seedSpecies("Sequoia sempervirens", "Coast redwood", species.KingdomPlantae, 0,
			"",
			"The sole living species of the genus Sequoia; the tallest living trees on Earth.",
			demo),
		seedSpecies("Amanita muscaria", "Fly agaric", species.KingdomFungi, 0,
			"",
			"Iconic red-and-white mushroom, widely distributed across the northern hemisphere.",
			curator),
		seedSpecies("Paramecium caudatum", "", species.KingdomProtista, 0,
			"",
			"Unicellular ciliate common in freshwater environments.",
			curator),
		seedSpecies("Halobacterium salinarum", "", species.KingdomArchaea, 0,
			"",
			"Extremely halophilic archaeon found in salted fish, hypersaline lakes, and salterns.",
			curator),
		seedSpecies("Escherichia coli", "", species.KingdomBacteria, 0,
			"",
			"Gram-negative bacterium commonly found in the lower intestine of warm-blooded organisms.",
			curator),
	}
}

func seedSpecies(scientific, common string, kingdom species.Kingdom, population int64, imageURL, description, authorID string) species.Species {
	sp := species.Species{
		// Seed ids derive from the scientific name so reseeding never duplicates rows.
		ID:             uuid.NewSHA1(uuid.NameSpaceOID, []byte("species:"+scientific)).String(),
		ScientificName: scientific,
		Kingdom:        kingdom,
		AuthorID:       authorID,
	}
	if common != "" {
		sp.CommonName = &common
	}
	if population > 0 {
		sp.TotalPopulation = &population
	}
	if imageURL != "" {
		sp.ImageURL = &imageURL
	}
	if description != "" {
		sp.Description = &description
	}
	return sp
}
