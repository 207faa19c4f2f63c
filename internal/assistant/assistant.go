// Package assistant is the NusaBot chat helper. It is a sibling feature
// of the app, fully decoupled from session and navigation state: free
// text in, free text out, a fixed fallback string on failure.
package assistant

import "context"

// Assistant answers a single free-text question.
type Assistant interface {
	Reply(ctx context.Context, query string) (string, error)
}

// Fallback is shown whenever a provider fails; the chat surface never
// exposes raw errors.
const Fallback = "Terputus dari NusaBot. Silakan periksa koneksi Anda."

const systemPrompt = "Anda adalah NusaBot, asisten virtual yang ramah untuk NusaApp " +
	"(super app seperti Gojek/Grab di Indonesia). Jawablah dengan singkat, jelas, dan " +
	"membantu dalam Bahasa Indonesia. Jika pengguna bertanya tentang layanan, sebutkan " +
	"Ojeg (motor), Mobil, Makanan, Belanja, dan Saldo. Gunakan gaya bahasa yang " +
	"profesional dan sopan."

// ReplyOrFallback runs a query and swallows failures into the fallback
// message.
func ReplyOrFallback(ctx context.Context, a Assistant, query string) string {
	out, err := a.Reply(ctx, query)
	if err != nil || out == "" {
		return Fallback
	}
	return out
}
