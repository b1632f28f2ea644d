package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseExpense(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		amount   float64
		category string
	}{
		{"сумма и категория", "200 продукты", 200, "продукты"},
		{"дробная сумма с точкой", "15.5 кофе", 15.5, "кофе"},
		{"дробная сумма с запятой", "15,5 кофе", 15.5, "кофе"},
		{"только сумма", "200", 200, DefaultCategory},
		{"категория из двух слов", "15 кофе late", 15, "кофе late"},
		{"категория приводится к нижнему регистру", "50 Транспорт", 50, "транспорт"},
		{"латиница в верхнем регистре", "7 Food Cafe", 7, "food cafe"},
		{"пробелы по краям", "  300 такси  ", 300, "такси"},
		{"хвост из нескольких слов", "10 еда кафе у дома", 10, "еда кафе у дома"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amount, category, ok := ParseExpense(tc.text)
			assert.True(t, ok)
			assert.Equal(t, tc.amount, amount)
			assert.Equal(t, tc.category, category)
		})
	}
}

func TestParseExpenseRejects(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"пустая строка", ""},
		{"одни пробелы", "   "},
		{"не число в начале", "abc food"},
		{"число не первым токеном", "кофе 15"},
		{"NaN не принимается", "NaN кофе"},
		{"бесконечность не принимается", "Inf кофе"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, ok := ParseExpense(tc.text)
			assert.False(t, ok)
		})
	}
}
