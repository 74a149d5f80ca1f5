package repository

import (
	"context"
	"database/sql"

	"biodex/internal/species"
)

// ProfileRepo handles profile rows.
type ProfileRepo struct {
	db DBTX
}

func NewProfileRepo(db DBTX) *ProfileRepo { return &ProfileRepo{db: db} }

func (r *ProfileRepo) Upsert(ctx context.Context, p species.Profile) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO profiles(id, handle, display_name, created_at)
	VALUES(?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET handle = excluded.handle, display_name = excluded.display_name
	`, p.ID, p.Handle, p.DisplayName)
	return err
}

func (r *ProfileRepo) Get(ctx context.Context, id string) (*species.Profile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, handle, display_name, created_at FROM profiles WHERE id = ?`, id)
	var p species.Profile
	err := row.Scan(&p.ID, &p.Handle, &p.DisplayName, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepo) List(ctx context.Context) ([]species.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, handle, display_name, created_at FROM profiles ORDER BY handle`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []species.Profile
	for rows.Next() {
		var p species.Profile
		if err := rows.Scan(&p.ID, &p.Handle, &p.DisplayName, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
