package database

import (
	"fmt"
	"log"
)

type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Ordered migration list. Applied versions are tracked in schema_migrations,
// append new entries only - never edit an applied one.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_recipes",
		SQL: `
			CREATE TABLE IF NOT EXISTS recipes (
				recipe_id VARCHAR(36) PRIMARY KEY,
				title TEXT NOT NULL,
				description TEXT NOT NULL,
				cook_time TEXT NOT NULL DEFAULT '',
				servings TEXT NOT NULL DEFAULT '',
				ingredients TEXT NOT NULL DEFAULT '',
				instructions TEXT NOT NULL DEFAULT '',
				image_url TEXT NOT NULL DEFAULT '',
				status VARCHAR(16) NOT NULL DEFAULT 'pending',
				submitter_name TEXT NOT NULL DEFAULT '',
				submitter_email TEXT NOT NULL DEFAULT '',
				submitter_notes TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		Version: 2,
		Name:    "create_family_stories",
		SQL: `
			CREATE TABLE IF NOT EXISTS family_stories (
				story_id VARCHAR(36) PRIMARY KEY,
				title TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				video_url TEXT NOT NULL,
				status VARCHAR(16) NOT NULL DEFAULT 'draft',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		Version: 3,
		Name:    "index_status_created_at",
		SQL: `
			CREATE INDEX IF NOT EXISTS idx_recipes_status_created_at
				ON recipes (status, created_at DESC);
			CREATE INDEX IF NOT EXISTS idx_family_stories_status_created_at
				ON family_stories (status, created_at DESC)
		`,
	},
}

// Migrate applies every migration version that is not yet recorded in
// schema_migrations. Runs once at startup, before the server accepts traffic.
func (db *DB) Migrate() error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INT PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("ошибка при создании таблицы schema_migrations: %w", err)
	}

	var current int
	err = db.Get(&current, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`)
	if err != nil {
		return fmt.Errorf("ошибка при чтении версии схемы: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		log.Printf("Применяем миграцию %d (%s)", m.Version, m.Name)

		tx, err := db.Beginx()
		if err != nil {
			return fmt.Errorf("ошибка при старте транзакции миграции %d: %w", m.Version, err)
		}

		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("ошибка при выполнении миграции %d: %w", m.Version, err)
		}

		if _, err := tx.Exec(`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`,
			m.Version, m.Name); err != nil {
			tx.Rollback()
			return fmt.Errorf("ошибка при записи миграции %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("ошибка при коммите миграции %d: %w", m.Version, err)
		}
	}

	log.Println("Миграции успешно применены")
	return nil
}
