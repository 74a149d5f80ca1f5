// Package repository provides thin data-access types over *sql.DB.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"biodex/internal/species"
)

// SpeciesFilters defines list filters.
type SpeciesFilters struct {
	Kingdom  species.Kingdom // empty = all kingdoms
	AuthorID string
	Search   string // substring match on scientific or common name
}

// DBTX is the query surface shared by *sql.DB and *sql.Tx, so repos work
// both standalone and inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// SpeciesRepo handles species rows.
type SpeciesRepo struct {
	db DBTX
}

func NewSpeciesRepo(db DBTX) *SpeciesRepo { return &SpeciesRepo{db: db} }

const speciesColumns = `id, scientific_name, common_name, kingdom, total_population, image_url, description, author_id, created_at, updated_at`

func (r *SpeciesRepo) Insert(ctx context.Context, sp species.Species) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO species(
	 id, scientific_name, common_name, kingdom, total_population, image_url, description,
	 author_id, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`,
		sp.ID, sp.ScientificName, sp.CommonName, string(sp.Kingdom), sp.TotalPopulation,
		sp.ImageURL, sp.Description, sp.AuthorID)
	return err
}

// Update fully replaces the mutable fields of the identified row. Applying
// the same patch twice leaves the row in the same state, so a manual retry
// after a reported failure is always safe.
func (r *SpeciesRepo) Update(ctx context.Context, id string, p species.Patch) error {
	res, err := r.db.ExecContext(ctx, `
	UPDATE species
	SET scientific_name = ?, common_name = ?, kingdom = ?, total_population = ?,
	    image_url = ?, description = ?, updated_at = CURRENT_TIMESTAMP
	WHERE id = ?`,
		p.ScientificName, p.CommonName, string(p.Kingdom), p.TotalPopulation,
		p.ImageURL, p.Description, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("species %s not found", id)
	}
	return nil
}

func (r *SpeciesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM species WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("species %s not found", id)
	}
	return nil
}

func (r *SpeciesRepo) Get(ctx context.Context, id string) (*species.Species, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+speciesColumns+` FROM species WHERE id = ?`, id)
	sp, err := scanSpecies(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

func (r *SpeciesRepo) List(ctx context.Context, f SpeciesFilters) ([]species.Species, error) {
	var where []string
	var args []interface{}

	if f.Kingdom != "" {
		where = append(where, "kingdom = ?")
		args = append(args, string(f.Kingdom))
	}
	if f.AuthorID != "" {
		where = append(where, "author_id = ?")
		args = append(args, f.AuthorID)
	}
	if f.Search != "" {
		where = append(where, "(scientific_name LIKE ? OR common_name LIKE ?)")
		args = append(args, "%"+f.Search+"%", "%"+f.Search+"%")
	}

	query := "SELECT " + speciesColumns + " FROM species"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY scientific_name COLLATE NOCASE ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []species.Species
	for rows.Next() {
		sp, err := scanSpecies(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSpecies(rs rowScanner) (species.Species, error) {
	var sp species.Species
	var kingdom string
	var commonName, imageURL, description sql.NullString
	var population sql.NullInt64
	err := rs.Scan(&sp.ID, &sp.ScientificName, &commonName, &kingdom, &population,
		&imageURL, &description, &sp.AuthorID, &sp.CreatedAt, &sp.UpdatedAt)
	if err != nil {
		return species.Species{}, err
	}
	sp.Kingdom = species.Kingdom(kingdom)
	if commonName.Valid {
		sp.CommonName = &commonName.String
	}
	if population.Valid {
		sp.TotalPopulation = &population.Int64
	}
	if imageURL.Valid {
		sp.ImageURL = &imageURL.String
	}
	if description.Valid {
		sp.Description = &description.String
	}
	return sp, nil
}
