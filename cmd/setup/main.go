package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/clanfrenzy/frenzybot/internal/catalog"
	"github.com/clanfrenzy/frenzybot/internal/config"
	"github.com/clanfrenzy/frenzybot/internal/database"
	"github.com/clanfrenzy/frenzybot/internal/database/migrations"
	"github.com/clanfrenzy/frenzybot/internal/database/postgres"
	"github.com/clanfrenzy/frenzybot/internal/domain"
)

// Setup prepares a fresh deployment: creates the database when missing, runs
// the goose migrations, then seeds team catalogs from JSON config files.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	ctx := context.Background()

	if err := ensureDatabase(ctx, cfg); err != nil {
		log.Fatalf("Database creation failed: %v", err)
	}

	if err := runMigrations(cfg); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	if err := seedCatalogs(ctx, cfg); err != nil {
		log.Fatalf("Catalog seeding failed: %v", err)
	}

	fmt.Println("Setup completed successfully.")
}

// ensureDatabase creates the target database if it does not exist, connecting
// through the default postgres database.
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	adminConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)

	conn, err := pgx.Connect(ctx, adminConnString)
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := conn.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", cfg.DBName)); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	fmt.Println("Database created successfully.")
	return nil
}

// runMigrations applies the embedded goose migrations.
func runMigrations(cfg *config.Config) error {
	db, err := sql.Open("pgx", cfg.GetDBConnString())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	fmt.Println("Running migrations...")
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	fmt.Println("Migrations completed successfully.")
	return nil
}

// seedCatalogs loads every team catalog JSON from the seed directory and
// upserts it. Teams that already have a catalog are skipped so reruns never
// clobber live competition state.
func seedCatalogs(ctx context.Context, cfg *config.Config) error {
	entries, err := os.ReadDir(config.ConfigPathCatalogSeedDir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("No seed directory %s, skipping catalog seeding.\n", config.ConfigPathCatalogSeedDir)
			return nil
		}
		return fmt.Errorf("failed to read seed directory: %w", err)
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return fmt.Errorf("failed to create pool: %w", err)
	}
	defer pool.Close()

	repo := postgres.NewCatalogRepository(pool)
	existing, err := repo.ListTeams(ctx)
	if err != nil {
		return fmt.Errorf("failed to list existing teams: %w", err)
	}
	seeded := make(map[string]bool, len(existing))
	for _, team := range existing {
		seeded[team] = true
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") || entry.Name() == "schema.json" {
			continue
		}

		path := filepath.Join(config.ConfigPathCatalogSeedDir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		var c domain.Catalog
		if err := json.Unmarshal(raw, &c); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if err := catalog.Validate(&c); err != nil {
			return fmt.Errorf("invalid catalog %s: %w", path, err)
		}

		if seeded[c.Team] {
			fmt.Printf("Catalog for %s already present, skipping %s.\n", c.Team, entry.Name())
			continue
		}

		if err := repo.SaveCatalog(ctx, c.Team, &c); err != nil {
			return fmt.Errorf("failed to save catalog for %s: %w", c.Team, err)
		}
		fmt.Printf("Seeded catalog for %s from %s.\n", c.Team, entry.Name())
	}

	return nil
}
