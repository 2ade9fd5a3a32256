package cart

import (
	"context"
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetBySession(ctx context.Context, sessionID string) (Cart, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, user_id, session_id, items, total, created_at, updated_at
        FROM carts WHERE session_id = $1`, sessionID)

	var (
		c      Cart
		userID sql.NullString
		items  []byte
	)
	err := row.Scan(&c.ID, &userID, &c.SessionID, &items, &c.Total, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return Cart{}, ErrNotFound
	}
	if err != nil {
		return Cart{}, err
	}
	if userID.Valid {
		c.UserID = &userID.String
	}
	if err := json.Unmarshal(items, &c.Items); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, c Cart) error {
	items, err := json.Marshal(c.Items)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO carts (id, user_id, session_id, items, total, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (session_id) DO UPDATE
        SET items = EXCLUDED.items, total = EXCLUDED.total, updated_at = EXCLUDED.updated_at`,
		c.ID, c.UserID, c.SessionID, items, c.Total, c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *PostgresRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE session_id = $1`, sessionID)
	return err
}
