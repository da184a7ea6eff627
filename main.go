package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"zaykaa/bot"
	"zaykaa/config"
	"zaykaa/db"
	"zaykaa/handlers"
	"zaykaa/services"
	"zaykaa/storage"

	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	// Check for migrate subcommand
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		runMigrate(cfg)
		return
	}

	if err := db.Init(cfg.DB); err != nil {
		fmt.Fprintln(os.Stderr, "db:", err)
		os.Exit(1)
	}
	defer db.Close()

	// Optional auto-migration (useful in production and for fresh DBs).
	// Set AUTO_MIGRATE=1 (or "true") to enable.
	if v := strings.TrimSpace(os.Getenv("AUTO_MIGRATE")); v == "1" || strings.EqualFold(v, "true") {
		if err := applyMigrations(context.Background(), false); err != nil {
			fmt.Fprintln(os.Stderr, "migrate:", err)
			os.Exit(1)
		}
	}

	ctx := context.Background()

	catalog := services.NewCatalogStore(cfg.Menu.RemoteURL, cfg.Menu.FetchTimeout, storage.NewPostgresMirror(db.Pool))
	catalog.Load(ctx)
	defer catalog.Close()

	syncer := services.NewSyncer(catalog, cfg.Menu.SyncInterval)
	go syncer.Start(ctx)
	defer syncer.Stop()

	gate := services.ServiceWindow{OpenHour: cfg.Window.OpenHour, CloseHour: cfg.Window.CloseHour}
	ledger := services.NewCartLedger(storage.NewPostgresCarts(db.Pool), gate)
	editor := services.NewAdminEditor(catalog)

	var notifier *bot.Notifier
	if cfg.Telegram.Token != "" {
		notifier, err = bot.NewNotifier(cfg.Telegram.Token, cfg.Telegram.OrderChatID)
		if err != nil {
			fmt.Fprintln(os.Stderr, "bot:", err)
			os.Exit(1)
		}
		fmt.Println("Order notifier started.")
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/menu", handlers.MenuHandler(catalog))
	mux.HandleFunc("GET /api/menu/stats", handlers.MenuStatsHandler(catalog))
	mux.HandleFunc("POST /api/menu/refresh", handlers.MenuRefreshHandler(syncer))

	mux.HandleFunc("GET /api/cart/{user}", handlers.CartHandler(ledger))
	mux.HandleFunc("POST /api/cart/{user}/items", handlers.AddCartItemHandler(ledger, catalog))
	mux.HandleFunc("PUT /api/cart/{user}/items/{id}", handlers.SetCartQuantityHandler(ledger))
	mux.HandleFunc("DELETE /api/cart/{user}/items/{id}", handlers.RemoveCartItemHandler(ledger))
	mux.HandleFunc("DELETE /api/cart/{user}", handlers.ClearCartHandler(ledger))
	mux.HandleFunc("POST /api/cart/{user}/checkout", handlers.CheckoutHandler(ledger, notifier, cfg.Order.WhatsAppPhone))

	admin := http.NewServeMux()
	admin.HandleFunc("POST /api/admin/menu", handlers.AddMenuItemHandler(editor))
	admin.HandleFunc("PATCH /api/admin/menu/{id}", handlers.UpdateMenuItemHandler(editor))
	admin.HandleFunc("POST /api/admin/menu/{id}/delete", handlers.ProposeDeleteHandler(editor))
	admin.HandleFunc("POST /api/admin/menu/delete/{token}/confirm", handlers.ConfirmDeleteHandler(editor))
	admin.HandleFunc("POST /api/admin/menu/delete/{token}/decline", handlers.DeclineDeleteHandler(editor))
	admin.HandleFunc("POST /api/admin/menu/reset", handlers.ResetMenuHandler(editor))
	mux.Handle("/api/admin/", handlers.RequireAdmin(cfg.Admin.Token, admin))

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.HTTP.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "X-Admin-Token", "Authorization"},
		AllowCredentials: true,
	})
	handler := c.Handler(mux)

	log.Printf("Server starting on port %s", cfg.HTTP.Port)
	if err := http.ListenAndServe(":"+cfg.HTTP.Port, handler); err != nil {
		log.Fatal("Server failed:", err)
	}
}

func runMigrate(cfg *config.Config) {
	if err := db.Init(cfg.DB); err != nil {
		fmt.Fprintln(os.Stderr, "db:", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := applyMigrations(context.Background(), true); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}
