package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       DBConfig
	HTTP     HTTPConfig
	Menu     MenuConfig
	Order    OrderConfig
	Telegram TelegramConfig
	Admin    AdminConfig
	Window   WindowConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

type HTTPConfig struct {
	Port           string
	AllowedOrigins []string
}

type MenuConfig struct {
	RemoteURL    string
	SyncInterval time.Duration
	FetchTimeout time.Duration
}

type OrderConfig struct {
	WhatsAppPhone string // international format without '+', e.g. 918500157859
}

type TelegramConfig struct {
	Token       string
	OrderChatID int64 // operator chat that receives checkout invoices
}

type AdminConfig struct {
	Token string // shared secret for the admin API
}

type WindowConfig struct {
	OpenHour  int // ordering window, local hours [Open, Close)
	CloseHour int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	syncSec, _ := strconv.Atoi(getEnv("MENU_SYNC_INTERVAL_SECONDS", "30"))
	fetchSec, _ := strconv.Atoi(getEnv("MENU_FETCH_TIMEOUT_SECONDS", "10"))
	chatID, _ := strconv.ParseInt(getEnv("ORDER_CHAT_ID", "0"), 10, 64)
	openHour, _ := strconv.Atoi(getEnv("ORDER_OPEN_HOUR", "0"))
	closeHour, _ := strconv.Atoi(getEnv("ORDER_CLOSE_HOUR", "24"))

	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "zaykaa"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: []string{getEnv("ALLOWED_ORIGIN", "http://localhost:5173")},
		},
		Menu: MenuConfig{
			RemoteURL:    getEnv("MENU_DATA_URL", ""),
			SyncInterval: time.Duration(syncSec) * time.Second,
			FetchTimeout: time.Duration(fetchSec) * time.Second,
		},
		Order: OrderConfig{
			WhatsAppPhone: getEnv("WHATSAPP_PHONE", ""),
		},
		Telegram: TelegramConfig{
			Token:       getEnv("TOKEN", ""),
			OrderChatID: chatID,
		},
		Admin: AdminConfig{
			Token: getEnv("ADMIN_TOKEN", ""),
		},
		Window: WindowConfig{
			OpenHour:  openHour,
			CloseHour: closeHour,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
