// Package dbutils Хелпер-обёртка для выполнения запросов на базе sqlx и для функций подключения к БД (pgx).
package dbutils

import (
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Драйвер pgx поверх database/sql.
	"github.com/jmoiron/sqlx"
)

const connMaxLifetime = 30 * time.Minute

// NewDBConnect Открывает пул соединений с Postgres и проверяет его пингом.
// Пул принадлежит вызывающей стороне и передаётся хранилищам явно.
func NewDBConnect(connString string, maxOpenConns, maxIdleConns int) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", connString)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	return db, nil
}
