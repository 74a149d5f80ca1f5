// Package species holds the catalog's record types and the validation
// rules that turn raw form input into a storable record.
package species

import "time"

// Species is a catalog record. Optional fields are nil when absent; they
// are never the empty string, so "no value" and "empty value" cannot be
// confused.
type Species struct {
	ID              string
	ScientificName  string
	CommonName      *string
	Kingdom         Kingdom
	TotalPopulation *int64
	ImageURL        *string
	Description     *string
	AuthorID        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Profile identifies a catalog user. AuthorID on a species row references
// a profile.
type Profile struct {
	ID          string
	Handle      string
	DisplayName string
	CreatedAt   time.Time
}

// Patch is a full replacement of the mutable fields of a species row.
// ID and AuthorID are not patchable.
type Patch struct {
	ScientificName  string
	CommonName      *string
	Kingdom         Kingdom
	TotalPopulation *int64
	ImageURL        *string
	Description     *string
}

// Apply overwrites the mutable fields of sp with the patch values.
func (p Patch) Apply(sp *Species) {
	sp.ScientificName = p.ScientificName
	sp.CommonName = p.CommonName
	sp.Kingdom = p.Kingdom
	sp.TotalPopulation = p.TotalPopulation
	sp.ImageURL = p.ImageURL
	sp.Description = p.Description
}
