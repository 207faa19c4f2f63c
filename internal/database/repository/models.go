package repository

import (
	"context"
	"database/sql"
)

// DBTX is the query surface shared by *sql.DB and *sql.Tx, so the repos
// work both standalone and inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Product represents a marketplace catalog row.
type Product struct {
	ID         string
	Name       string
	PriceIDR   int64
	Category   string
	MerchantID string
	Rating     float64
	Stock      int
}

// WalletTransaction represents a wallet history row. Direction is
// "IN" or "OUT"; Occurred keeps the display form ("Hari ini, 10:20").
type WalletTransaction struct {
	ID        string
	Title     string
	AmountIDR int64
	Direction string
	Category  string
	Occurred  string
}

// DirectoryUser represents a platform account row as the admin sees it.
type DirectoryUser struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	RoleLabel string
	Status    string
	Joined    string
}
