package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/nusahq/nusapp/internal/database/repository"
)

// SeedDefaults ensures baseline catalog rows exist for new databases.
// It is idempotent and safe to run on every startup. Each group is
// written in one transaction so a failed startup never leaves a
// half-seeded table behind.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	if err := seedProducts(ctx, db); err != nil {
		return err
	}
	if err := seedWalletHistory(ctx, db); err != nil {
		return err
	}
	return seedDirectory(ctx, db)
}

func seedProducts(ctx context.Context, db *sql.DB) error {
	existing, err := repository.NewProductRepo(db).List(ctx, "")
	if err == nil && len(existing) > 0 {
		return nil
	}
	defaults := []repository.Product{
		{ID: "1", Name: "Original Burger", PriceIDR: 35000, Category: "Food", MerchantID: "m1", Rating: 4.8, Stock: 50},
		{ID: "2", Name: "Iced Coffee Latte", PriceIDR: 22000, Category: "Drink", MerchantID: "m1", Rating: 4.5, Stock: 100},
		{ID: "3", Name: "Nasi Goreng Spesial", PriceIDR: 28000, Category: "Food", MerchantID: "m2", Rating: 4.9, Stock: 30},
		{ID: "4", Name: "Fresh Avocado Juice", PriceIDR: 18000, Category: "Drink", MerchantID: "m2", Rating: 4.7, Stock: 40},
		{ID: "5", Name: "Smartphone Case", PriceIDR: 45000, Category: "Elektronik", MerchantID: "m3", Rating: 4.3, Stock: 15},
		{ID: "6", Name: "Wireless Earbuds", PriceIDR: 250000, Category: "Elektronik", MerchantID: "m3", Rating: 4.6, Stock: 8},
	}
	return WithTx(db, func(tx *sql.Tx) error {
		repo := repository.NewProductRepo(tx)
		for _, p := range defaults {
			if err := repo.Upsert(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})
}

func seedWalletHistory(ctx context.Context, db *sql.DB) error {
	n, err := repository.NewWalletTransactionRepo(db).Count(ctx)
	if err == nil && n > 0 {
		return nil
	}
	defaults := []repository.WalletTransaction{
		{Title: "Top Up via BCA", AmountIDR: 500000, Direction: "IN", Category: "Top Up", Occurred: "Hari ini, 10:20"},
		{Title: "Pembayaran Ojeg", AmountIDR: 12000, Direction: "OUT", Category: "Transportasi", Occurred: "Hari ini, 08:45"},
		{Title: "Makan Siang - Bakso Solo", AmountIDR: 25000, Direction: "OUT", Category: "Makanan", Occurred: "Kemarin, 13:15"},
		{Title: "Transfer ke Budi", AmountIDR: 150000, Direction: "OUT", Category: "Transfer", Occurred: "12 Mei 2024"},
		{Title: "Refund Pembatalan Order", AmountIDR: 45000, Direction: "IN", Category: "Refund", Occurred: "10 Mei 2024"},
	}
	return WithTx(db, func(tx *sql.Tx) error {
		repo := repository.NewWalletTransactionRepo(tx)
		for _, t := range defaults {
			t.ID = uuid.NewString()
			if err := repo.Insert(ctx, t); err != nil {
				return err
			}
		}
		return nil
	})
}

func seedDirectory(ctx context.Context, db *sql.DB) error {
	existing, err := repository.NewDirectoryUserRepo(db).List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}
	defaults := []repository.DirectoryUser{
		{ID: "U101", Name: "Budi Santoso", Email: "budi@mail.com", Phone: "08123456789", RoleLabel: "Pelanggan", Status: "Aktif", Joined: "12 Jan 2024"},
		{ID: "D502", Name: "Agus Salim", Email: "agus.salim@nusa.app", Phone: "08556677889", RoleLabel: "Driver", Status: "Aktif", Joined: "05 Feb 2024"},
		{ID: "M303", Name: "Kopi Kenangan", Email: "admin@kopikenangan.com", Phone: "021998877", RoleLabel: "Merchant", Status: "Aktif", Joined: "20 Feb 2024"},
		{ID: "U104", Name: "Siti Aminah", Email: "siti@mail.com", Phone: "08129988776", RoleLabel: "Pelanggan", Status: "Ditangguhkan", Joined: "01 Mar 2024"},
		{ID: "D505", Name: "Rudi Tabuti", Email: "rudi@nusa.app", Phone: "08771122334", RoleLabel: "Driver", Status: "Aktif", Joined: "15 Mar 2024"},
	}
	return WithTx(db, func(tx *sql.Tx) error {
		repo := repository.NewDirectoryUserRepo(tx)
		for _, u := range defaults {
			if err := repo.Upsert(ctx, u); err != nil {
				return err
			}
		}
		return nil
	})
}
