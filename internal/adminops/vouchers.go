package adminops

import (
	"strings"

	"github.com/google/uuid"

	"github.com/nusahq/nusapp/internal/session"
)

// Voucher is one promo code.
type Voucher struct {
	ID       string
	Code     string
	Discount string
	Expiry   string
	Usage    int
	Active   bool
}

// VoucherBook manages promo vouchers, newest first.
type VoucherBook struct {
	vouchers []Voucher
}

// SeedVouchers are the vouchers the settings panel starts with.
func SeedVouchers() []Voucher {
	return []Voucher{
		{ID: "v1", Code: "NUSAHEMAT50", Discount: "50%", Usage: 120, Active: true, Expiry: "31 Des 2024"},
		{ID: "v2", Code: "MAKANGRATIS", Discount: "Rp 20.000", Usage: 450, Active: true, Expiry: "15 Jan 2025"},
		{ID: "v3", Code: "WEEKENDSERU", Discount: "15%", Usage: 85, Active: false, Expiry: "01 Feb 2025"},
	}
}

func NewVoucherBook(seed []Voucher) *VoucherBook {
	b := &VoucherBook{}
	b.vouchers = append(b.vouchers, seed...)
	return b
}

// All returns a copy, newest first.
func (b *VoucherBook) All() []Voucher {
	return append([]Voucher(nil), b.vouchers...)
}

// Add creates a voucher. Code and discount are required; a blank expiry
// means the voucher never lapses.
func (b *VoucherBook) Add(code, discount, expiry string) (Voucher, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	discount = strings.TrimSpace(discount)
	if code == "" || discount == "" {
		return Voucher{}, false
	}
	if strings.TrimSpace(expiry) == "" {
		expiry = "Seterusnya"
	}
	v := Voucher{
		ID:       uuid.NewString(),
		Code:     code,
		Discount: discount,
		Expiry:   expiry,
		Active:   true,
	}
	b.vouchers = append([]Voucher{v}, b.vouchers...)
	return v, true
}

// Toggle flips a voucher between active and inactive.
func (b *VoucherBook) Toggle(id string) bool {
	for i := range b.vouchers {
		if b.vouchers[i].ID == id {
			b.vouchers[i].Active = !b.vouchers[i].Active
			return true
		}
	}
	return false
}

// Delete removes a voucher permanently; unconfirmed calls commit nothing.
func (b *VoucherBook) Delete(id string, confirmed bool) session.Decision {
	for i := range b.vouchers {
		if b.vouchers[i].ID == id {
			if !confirmed {
				return session.ConfirmationRequired
			}
			b.vouchers = append(b.vouchers[:i], b.vouchers[i+1:]...)
			return session.Done
		}
	}
	return session.Ignored
}
