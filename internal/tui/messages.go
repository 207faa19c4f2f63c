package tui

import "github.com/nusahq/nusapp/internal/database/repository"

// applyMsg carries a state mutation scheduled from a timer onto the
// update loop, so settlement callbacks never race the model.
type applyMsg struct {
	fn func()
}

type productsMsg []repository.Product

type walletHistoryMsg []repository.WalletTransaction

type botReplyMsg struct {
	text string
}

type statusMsg string

type errMsg struct{ error }
