package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/meguinhazeromiseria/scraper-mega/internal/config"
	"github.com/meguinhazeromiseria/scraper-mega/internal/storage"
	"github.com/meguinhazeromiseria/scraper-mega/internal/taxonomy"
)

func loadRegistry() (*taxonomy.Registry, error) {
	reg, err := taxonomy.Load(config.ExpandPath(viper.GetString("taxonomy.path")))
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}
	return reg, nil
}

func databasePath() (string, error) {
	if path := viper.GetString("database.path"); path != "" {
		return config.ExpandPath(path), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".local", "share", "mega")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return filepath.Join(dir, "mega.db"), nil
}

func openStorage(reg *taxonomy.Registry) (*storage.SQLiteStorage, error) {
	dbPath, err := databasePath()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(dbPath, reg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return store, nil
}
