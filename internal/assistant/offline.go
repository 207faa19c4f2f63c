package assistant

import (
	"context"
	"strings"
)

// OfflineAssistant is a keyless, keyword-driven stand-in so the chat
// surface keeps working without provider credentials. It never fails.
type OfflineAssistant struct{}

func NewOfflineAssistant() *OfflineAssistant { return &OfflineAssistant{} }

var cannedReplies = []struct {
	keywords []string
	reply    string
}{
	{
		keywords: []string{"ojeg", "motor", "ride", "antar"},
		reply:    "Untuk pesan Ojeg, buka Beranda lalu pilih layanan Ojeg, masukkan tujuan Anda dan konfirmasi armadanya.",
	},
	{
		keywords: []string{"mobil"},
		reply:    "Layanan Mobil tersedia dari Beranda. Masukkan tujuan, pilih Nusa Mobil atau Nusa XL, lalu pesan.",
	},
	{
		keywords: []string{"saldo", "topup", "top up", "isi"},
		reply:    "Isi saldo NusaPay lewat menu Dompet: pilih Isi Saldo, masukkan nominal, dan konfirmasi. Saldo masuk setelah transaksi diproses.",
	},
	{
		keywords: []string{"transfer", "kirim uang"},
		reply:    "Transfer saldo lewat menu Dompet: pilih Transfer, isi nomor tujuan dan nominal, lalu konfirmasi.",
	},
	{
		keywords: []string{"kirim", "paket", "logistik", "barang"},
		reply:    "Kirim barang lewat layanan Kirim atau Logistik di Beranda: isi alamat, detail paket, lalu pilih armadanya.",
	},
	{
		keywords: []string{"makan", "food", "belanja"},
		reply:    "Untuk makanan dan belanja, buka tab Belanja dan jelajahi produk dari mitra toko kami.",
	},
}

// Reply picks the best canned answer; unmatched questions get a generic
// pointer to the service list.
func (OfflineAssistant) Reply(_ context.Context, query string) (string, error) {
	q := strings.ToLower(query)
	for _, c := range cannedReplies {
		for _, k := range c.keywords {
			if strings.Contains(q, k) {
				return c.reply, nil
			}
		}
	}
	return "Saya siap membantu seputar layanan NusaApp: Ojeg (motor), Mobil, Makanan, Belanja, dan Saldo. Layanan mana yang ingin Anda ketahui?", nil
}
