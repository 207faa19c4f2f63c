package repository

import (
	"context"
)

// WalletTransactionRepo handles wallet history rows.
type WalletTransactionRepo struct {
	db DBTX
}

func NewWalletTransactionRepo(db DBTX) *WalletTransactionRepo {
	return &WalletTransactionRepo{db: db}
}

func (r *WalletTransactionRepo) Insert(ctx context.Context, t WalletTransaction) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO wallet_transactions(id, title, amount_idr, direction, category, occurred)
	VALUES(?, ?, ?, ?, ?, ?);
	`, t.ID, t.Title, t.AmountIDR, t.Direction, t.Category, t.Occurred)
	return err
}

// List returns wallet history newest-first. Direction "" means no
// filter; "IN" and "OUT" restrict accordingly.
func (r *WalletTransactionRepo) List(ctx context.Context, direction string) ([]WalletTransaction, error) {
	q := `SELECT id, title, amount_idr, direction, category, occurred FROM wallet_transactions`
	var args []interface{}
	if direction != "" {
		q += ` WHERE direction = ?`
		args = append(args, direction)
	}
	q += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WalletTransaction
	for rows.Next() {
		var t WalletTransaction
		if err := rows.Scan(&t.ID, &t.Title, &t.AmountIDR, &t.Direction, &t.Category, &t.Occurred); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *WalletTransactionRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM wallet_transactions`).Scan(&n)
	return n, err
}
