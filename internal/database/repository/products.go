package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ProductRepo handles marketplace catalog rows.
type ProductRepo struct {
	db DBTX
}

func NewProductRepo(db DBTX) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Upsert(ctx context.Context, p Product) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO products(id, name, price_idr, category, merchant_id, rating, stock)
	VALUES(?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name, price_idr=excluded.price_idr, category=excluded.category,
	 merchant_id=excluded.merchant_id, rating=excluded.rating, stock=excluded.stock;
	`, p.ID, p.Name, p.PriceIDR, p.Category, p.MerchantID, p.Rating, p.Stock)
	return err
}

// List returns products, optionally filtered by category. Category
// "Semua" (or empty) means no filter.
func (r *ProductRepo) List(ctx context.Context, category string) ([]Product, error) {
	q := `SELECT id, name, price_idr, category, merchant_id, rating, stock FROM products`
	var args []interface{}
	if category != "" && category != "Semua" && category != "All" {
		q += ` WHERE category = ?`
		args = append(args, category)
	}
	q += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Search matches products by name, tolerating small typos.
func (r *ProductRepo) Search(ctx context.Context, query string) ([]Product, error) {
	all, err := r.List(ctx, "")
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}

	var out []Product
	for _, p := range all {
		if matchProduct(p.Name, q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func matchProduct(name, query string) bool {
	lower := strings.ToLower(name)
	if strings.Contains(lower, query) {
		return true
	}
	allow := len(query) / 3
	if allow < 1 {
		allow = 1
	}
	for _, word := range strings.Fields(lower) {
		if levenshtein.ComputeDistance(word, query) <= allow {
			return true
		}
	}
	return false
}

func scanProducts(rows *sql.Rows) ([]Product, error) {
	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceIDR, &p.Category, &p.MerchantID, &p.Rating, &p.Stock); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
