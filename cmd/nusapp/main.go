package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nusahq/nusapp/internal/adminops"
	"github.com/nusahq/nusapp/internal/assistant"
	"github.com/nusahq/nusapp/internal/config"
	"github.com/nusahq/nusapp/internal/database"
	"github.com/nusahq/nusapp/internal/database/repository"
	"github.com/nusahq/nusapp/internal/navigation"
	"github.com/nusahq/nusapp/internal/session"
	"github.com/nusahq/nusapp/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	repos := tui.Repos{
		Products: repository.NewProductRepo(db),
		Wallet:   repository.NewWalletTransactionRepo(db),
		Users:    repository.NewDirectoryUserRepo(db),
	}

	directory, err := loadDirectory(ctx, repos.Users)
	if err != nil {
		log.Fatalf("load directory: %v", err)
	}

	var nav navigation.Navigator
	ctrl := session.NewController(nav)
	sched := tui.NewDispatchScheduler()

	deps := tui.Deps{
		Controller: ctrl,
		Navigator:  nav,
		Scheduler:  sched,
		Bot:        pickAssistant(cfg),
		Directory:  directory,
	}

	app := tui.New(ctx, cfg, repos, deps)
	p := tea.NewProgram(app, tea.WithAltScreen())
	sched.Bind(func(msg tea.Msg) { p.Send(msg) })

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "nusapp: %v\n", err)
		os.Exit(1)
	}
}

func loadDirectory(ctx context.Context, repo *repository.DirectoryUserRepo) (*adminops.Directory, error) {
	rows, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	accounts := make([]adminops.Account, 0, len(rows))
	for _, r := range rows {
		accounts = append(accounts, adminops.Account{
			ID:        r.ID,
			Name:      r.Name,
			Email:     r.Email,
			Phone:     r.Phone,
			RoleLabel: r.RoleLabel,
			Status:    adminops.AccountStatus(r.Status),
			Joined:    r.Joined,
		})
	}
	return adminops.NewDirectory(accounts), nil
}

// pickAssistant wires NusaBot to OpenAI when a key is available and
// falls back to the offline responder otherwise.
func pickAssistant(cfg config.Config) assistant.Assistant {
	if cfg.Assistant.Provider == "openai" {
		if key := config.ResolveAPIKey(cfg); key != "" {
			return assistant.NewOpenAIAssistant(key, cfg.Assistant.Model)
		}
		log.Printf("warn: assistant provider openai selected but no API key; using offline responder")
	}
	return assistant.NewOfflineAssistant()
}
