package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"github.com/darlingboutique/boutique-backend/internal/payment"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const orderColumns = `id, order_number, user_id, session_id, items, total, payment_method, phone_number, status, created_at, updated_at`

func (r *PostgresRepository) Insert(ctx context.Context, ord Order) error {
	items, err := json.Marshal(ord.Items)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO orders (`+orderColumns+`)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		ord.ID, ord.Number, ord.UserID, ord.SessionID, items, ord.Total,
		string(ord.PaymentMethod), ord.PhoneNumber, string(ord.Status), ord.CreatedAt, ord.UpdatedAt)
	return err
}

func (r *PostgresRepository) Replace(ctx context.Context, id string, ord Order) error {
	items, err := json.Marshal(ord.Items)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `UPDATE orders
        SET order_number=$2, user_id=$3, session_id=$4, items=$5, total=$6,
            payment_method=$7, phone_number=$8, status=$9, created_at=$10, updated_at=$11
        WHERE id=$1`,
		id, ord.Number, ord.UserID, ord.SessionID, items, ord.Total,
		string(ord.PaymentMethod), ord.PhoneNumber, string(ord.Status), ord.CreatedAt, ord.UpdatedAt)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	ord, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	return ord, err
}

func (r *PostgresRepository) Find(ctx context.Context, f Filter) ([]Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	var (
		conds []string
		args  []any
	)
	if f.SessionID != "" {
		args = append(args, f.SessionID)
		conds = append(conds, fmt.Sprintf("session_id = $%d", len(args)))
	}
	if f.UserID != "" {
		args = append(args, f.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			statuses = append(statuses, string(s))
		}
		args = append(args, pq.Array(statuses))
		conds = append(conds, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (Order, error) {
	var (
		ord               Order
		userID, sessionID sql.NullString
		items             []byte
		method, status    string
	)
	if err := s.Scan(&ord.ID, &ord.Number, &userID, &sessionID, &items, &ord.Total,
		&method, &ord.PhoneNumber, &status, &ord.CreatedAt, &ord.UpdatedAt); err != nil {
		return Order{}, err
	}
	if userID.Valid {
		ord.UserID = &userID.String
	}
	if sessionID.Valid {
		ord.SessionID = &sessionID.String
	}
	if err := json.Unmarshal(items, &ord.Items); err != nil {
		return Order{}, err
	}
	ord.PaymentMethod = payment.Method(method)
	ord.Status = Status(status)
	return ord, nil
}
