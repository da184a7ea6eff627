package db

import (
	"context"
	"fmt"

	"zaykaa/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

var Pool *pgxpool.Pool

func Init(cfg config.DBConfig) error {
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.SSLMode,
	)
	var err error
	Pool, err = pgxpool.New(context.Background(), connStr)
	return err
}

func Close() {
	if Pool != nil {
		Pool.Close()
	}
}
