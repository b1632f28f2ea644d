package messages

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/klim4ka-cmyk/expense-bot/internal/helpers/timeutils"
	"github.com/klim4ka-cmyk/expense-bot/internal/models/bottypes"
)

// Тексты ответов бота.
const (
	txtStart = "Привет! Я трекер расходов 💸\n\n" +
		"Добавляй расходы сообщениями:\n" +
		"Например: 200 продукты\n" +
		"или: 15 кофе\n\n" +
		"Команды:\n" +
		"/stats — статистика за месяц\n" +
		"/stats день — за сегодня\n" +
		"/stats неделя — за неделю\n" +
		"/help — справка"
	txtHelp = "Формат добавления: '<сумма> <категория>'\n" +
		"Примеры:\n" +
		"— 200 продукты\n" +
		"— 50 транспорт\n\n" +
		"Команды:\n" +
		"/stats [день|неделя] — показать статистику\n" +
		"/start — начать"
	txtUnknownCommand = "К сожалению, данная команда мне неизвестна. Для начала работы введите /start"
	txtExpenseFormat  = "Формат: '<сумма> <категория>'. Например: 150 кофе"
	txtExpenseAdded   = "Добавлено: %.2f — %s"
	txtNoExpenses     = "За период «%s» расходов нет."
	txtStatsHeader    = "📊 Статистика за %s:"
	txtStatsLine      = "- %s: %.2f руб."
	txtStatsTotal     = "\nИтого: %.2f руб."
	txtStorageError   = "Не получилось сохранить данные. Попробуйте ещё раз позже."
)

// MessagesSender Интерфейс для отправки ответов пользователю.
type MessagesSender interface {
	SendMessage(userID int64, text string) error
}

// ExpenseStorage Интерфейс хранилища записей о тратах.
type ExpenseStorage interface {
	InsertExpense(ctx context.Context, userID int64, amount float64, category string) error
	GetStatsReport(ctx context.Context, userID int64, start, end time.Time) ([]bottypes.ExpenseReportRecord, float64, error)
}

// Model Модель бота (контекст, клиент, хранилище).
type Model struct {
	ctx      context.Context
	tgClient MessagesSender
	storage  ExpenseStorage
}

func New(ctx context.Context, tgClient MessagesSender, storage ExpenseStorage) *Model {
	return &Model{
		ctx:      ctx,
		tgClient: tgClient,
		storage:  storage,
	}
}

func (m *Model) GetCtx() context.Context {
	return m.ctx
}

func (m *Model) SetCtx(ctx context.Context) {
	m.ctx = ctx
}

// Message Входящее сообщение после разбора транспортом.
type Message struct {
	Text      string
	UserID    int64
	IsCommand bool
	Command   string // Имя команды без "/".
	Arguments string // Аргументы команды одной строкой.
}

// IncomingMessage Маршрутизация входящего сообщения: команды /start, /help,
// /stats, любой другой текст — попытка записать трату.
func (m *Model) IncomingMessage(msg Message) error {
	switch {
	case msg.IsCommand && msg.Command == "start":
		return m.tgClient.SendMessage(msg.UserID, txtStart)
	case msg.IsCommand && msg.Command == "help":
		return m.tgClient.SendMessage(msg.UserID, txtHelp)
	case msg.IsCommand && msg.Command == "stats":
		return m.sendStatsReport(msg)
	case msg.IsCommand:
		return m.tgClient.SendMessage(msg.UserID, txtUnknownCommand)
	default:
		return m.addExpense(msg)
	}
}

// Запись траты из произвольного текста. Нераспознанный формат — не ошибка,
// пользователю уходит подсказка. Ошибка хранилища отдаётся наверх, а
// пользователь получает общий ответ о сбое.
func (m *Model) addExpense(msg Message) error {
	amount, category, ok := ParseExpense(msg.Text)
	if !ok {
		return m.tgClient.SendMessage(msg.UserID, txtExpenseFormat)
	}

	if err := m.storage.InsertExpense(m.ctx, msg.UserID, amount, category); err != nil {
		return errors.Join(err, m.tgClient.SendMessage(msg.UserID, txtStorageError))
	}

	return m.tgClient.SendMessage(msg.UserID, fmt.Sprintf(txtExpenseAdded, amount, category))
}

// Отчёт по тратам за период из аргумента команды /stats.
func (m *Model) sendStatsReport(msg Message) error {
	// Момент "сейчас" фиксируется один раз, чтобы начало и конец периода
	// считались от одной точки.
	now := time.Now().UTC()
	start, end := timeutils.PeriodBounds(msg.Arguments, now)

	records, grandTotal, err := m.storage.GetStatsReport(m.ctx, msg.UserID, start, end)
	if err != nil {
		return errors.Join(err, m.tgClient.SendMessage(msg.UserID, txtStorageError))
	}

	periodName := timeutils.PeriodName(msg.Arguments)
	if len(records) == 0 {
		return m.tgClient.SendMessage(msg.UserID, fmt.Sprintf(txtNoExpenses, periodName))
	}

	lines := make([]string, 0, len(records)+2)
	lines = append(lines, fmt.Sprintf(txtStatsHeader, periodName))
	for _, rec := range records {
		lines = append(lines, fmt.Sprintf(txtStatsLine, rec.Category, rec.Sum))
	}
	lines = append(lines, fmt.Sprintf(txtStatsTotal, grandTotal))

	return m.tgClient.SendMessage(msg.UserID, strings.Join(lines, "\n"))
}
