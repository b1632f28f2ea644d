package bottypes

import "time"

// Тип для записей о тратах.
type ExpenseRecord struct {
	UserID    int64
	Amount    float64
	Category  string
	CreatedAt time.Time
}

// Тип для записей отчета.
type ExpenseReportRecord struct {
	Category string  // Категория.
	Sum      float64 // Сумма расходов по категории.
}
