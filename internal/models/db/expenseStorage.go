package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/klim4ka-cmyk/expense-bot/internal/helpers/dbutils"
	"github.com/klim4ka-cmyk/expense-bot/internal/models/bottypes"
)

type expenseReportRecordDB struct {
	Category string  `db:"category"`
	Total    float64 `db:"total"`
}

type expenseRecordDB struct {
	UserID   int64   `db:"user_id"`
	Amount   float64 `db:"amount"`
	Category string  `db:"category"`
}

// ExpenseStorage Хранилище записей о тратах. Записи неизменяемы: только
// вставка и чтение, никаких update/delete.
type ExpenseStorage struct {
	db *sqlx.DB
}

func NewExpenseStorage(db *sqlx.DB) *ExpenseStorage {
	return &ExpenseStorage{db: db}
}

// CreateTableExpenses Создаёт таблицу трат, если её ещё нет. Вызывается при
// каждом старте процесса.
func (storage *ExpenseStorage) CreateTableExpenses(ctx context.Context) error {
	const sqlString = `
		CREATE TABLE IF NOT EXISTS expenses (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL,
			amount NUMERIC(12,2) NOT NULL,
			category TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`

	if _, err := dbutils.Exec(ctx, storage.db, sqlString); err != nil {
		return err
	}
	return nil
}

// InsertExpense Добавляет одну запись о трате. Время создания проставляет БД.
func (storage *ExpenseStorage) InsertExpense(ctx context.Context, userID int64, amount float64, category string) error {
	const sqlString = `
		INSERT INTO expenses (user_id, amount, category)
		VALUES (:user_id, :amount, :category);`

	rec := expenseRecordDB{
		UserID:   userID,
		Amount:   amount,
		Category: category,
	}

	if _, err := dbutils.NamedExec(ctx, storage.db, sqlString, rec); err != nil {
		return err
	}
	return nil
}

// GetStatsReport Суммы трат пользователя по категориям за период [start, end]
// в порядке убывания, плюс общий итог. Итог равен нулю, если записей нет.
func (storage *ExpenseStorage) GetStatsReport(ctx context.Context, userID int64, start, end time.Time) ([]bottypes.ExpenseReportRecord, float64, error) {
	const sqlReport = `
		SELECT category, SUM(amount)::numeric(12,2) AS total
		FROM expenses
		WHERE user_id = $1 AND created_at >= $2 AND created_at <= $3
		GROUP BY category
		ORDER BY total DESC;`

	const sqlGrandTotal = `
		SELECT COALESCE(SUM(amount), 0)::numeric(12,2) AS grand_total
		FROM expenses
		WHERE user_id = $1 AND created_at >= $2 AND created_at <= $3;`

	var rows []expenseReportRecordDB
	if err := dbutils.Select(ctx, storage.db, &rows, sqlReport, userID, start, end); err != nil {
		return nil, 0, err
	}

	var grandTotal float64
	if err := dbutils.Get(ctx, storage.db, &grandTotal, sqlGrandTotal, userID, start, end); err != nil {
		return nil, 0, err
	}

	records := make([]bottypes.ExpenseReportRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, bottypes.ExpenseReportRecord{
			Category: row.Category,
			Sum:      row.Total,
		})
	}
	return records, grandTotal, nil
}
