package messages

import (
	"math"
	"strconv"
	"strings"
)

// DefaultCategory Категория по умолчанию, когда в сообщении указана только сумма.
const DefaultCategory = "прочее"

// ParseExpense Разбирает строку вида "<сумма> [категория [уточнение]]".
// Сумма — десятичное число, запятая-разделитель приводится к точке. Категория
// может состоять из двух слов (например "еда кафе") и приводится к нижнему
// регистру. Если разобрать сумму не удалось, отклоняется вся строка.
func ParseExpense(text string) (amount float64, category string, ok bool) {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return 0, "", false
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(parts[0], ",", "."), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, "", false
	}

	category = DefaultCategory
	if len(parts) > 1 {
		category = parts[1]
	}
	if len(parts) > 2 {
		category += " " + strings.Join(parts[2:], " ")
	}

	return amount, strings.ToLower(category), true
}
