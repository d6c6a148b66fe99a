package database

import (
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"familycookbook/internal/config"
)

type DB struct {
	*sqlx.DB
}

// ConnectDB opens the pool with a bounded retry loop and applies the
// schema migrations before anyone gets to use the connection.
func ConnectDB(cfg *config.Config) (*DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.DbHOST,
		cfg.DB.DbPORT,
		cfg.DB.DbUSER,
		cfg.DB.DbPASSWORD,
		cfg.DB.DbNAME,
		cfg.DB.DbSSLMODE,
	)

	log.Printf("Подключаемся к БД: host=%s, dbname=%s", cfg.DB.DbHOST, cfg.DB.DbNAME)

	var db *sqlx.DB
	var err error

	attempts := cfg.DB.ConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err = sqlx.Connect("postgres", connStr)
		if err == nil {
			break
		}
		if attempt == attempts {
			return nil, fmt.Errorf("не удалось подключиться к БД после %d попыток: %w", attempts, err)
		}
		log.Printf("Database connection failed (attempt %d/%d): %v. Retrying in %s.",
			attempt, attempts, err, cfg.DB.ConnectDelay)
		time.Sleep(cfg.DB.ConnectDelay)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	dbStruct := DB{db}

	if err := dbStruct.Migrate(); err != nil {
		return nil, fmt.Errorf("ошибка при применении миграций: %w", err)
	}

	if err := dbStruct.HealthCheck(); err != nil {
		return nil, fmt.Errorf("проверка БД не пройдена: %w", err)
	}

	log.Println("Успешное подключение к PostgreSQL")
	return &dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

func (db *DB) HealthCheck() error {
	if db == nil {
		return fmt.Errorf("подключение к БД не инициализировано")
	}

	return db.Ping()
}
