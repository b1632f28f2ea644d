package tg

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/klim4ka-cmyk/expense-bot/internal/logger"
	"github.com/klim4ka-cmyk/expense-bot/internal/models/messages"
)

type HandlerFunc func(tgUpdate tgbotapi.Update, c *Client, msgModel *messages.Model)

func (f HandlerFunc) RunFunc(tgUpdate tgbotapi.Update, c *Client, msgModel *messages.Model) {
	f(tgUpdate, c, msgModel)
}

type Client struct {
	client                *tgbotapi.BotAPI
	updateTimeout         int
	handlerProcessingFunc HandlerFunc // Функция обработки входящих сообщений.
}

type TokenGetter interface {
	Token() string
}

func New(tokenGetter TokenGetter, updateTimeout int, handlerProcessingFunc HandlerFunc) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(tokenGetter.Token())
	if err != nil {
		return nil, fmt.Errorf("error NewBotAPI: %w", err)
	}

	return &Client{
		client:                client,
		updateTimeout:         updateTimeout,
		handlerProcessingFunc: handlerProcessingFunc,
	}, nil
}

func (c *Client) SendMessage(userID int64, text string) error {
	msg := tgbotapi.NewMessage(userID, text)
	_, err := c.client.Send(msg)
	if err != nil {
		return fmt.Errorf("error sending message client.Send: %w", err)
	}
	return nil
}

// ListenUpdates Цикл long polling: каждое обновление уходит в цепочку
// обработчиков (метрики, трейсинг, обработка сообщения).
func (c *Client) ListenUpdates(msgModel *messages.Model) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = c.updateTimeout

	updates := c.client.GetUpdatesChan(u)
	logger.Info("Start listening for messages", "bot", c.client.Self.UserName)

	for update := range updates {
		c.handlerProcessingFunc.RunFunc(update, c, msgModel)
	}
}

// ProcessingMessages Разбор обновления и передача сообщения модели.
// Обновления без текстового сообщения пропускаются.
func ProcessingMessages(tgUpdate tgbotapi.Update, c *Client, msgModel *messages.Model) {
	if tgUpdate.Message == nil || tgUpdate.Message.From == nil {
		return
	}

	msg := messages.Message{
		Text:      tgUpdate.Message.Text,
		UserID:    tgUpdate.Message.From.ID,
		IsCommand: tgUpdate.Message.IsCommand(),
	}
	if msg.IsCommand {
		msg.Command = tgUpdate.Message.Command()
		msg.Arguments = tgUpdate.Message.CommandArguments()
	}

	logger.Info("Processing message", "userID", msg.UserID, "isCommand", msg.IsCommand)

	if err := msgModel.IncomingMessage(msg); err != nil {
		logger.Error("Error processing message", "err", err, "userID", msg.UserID)
	}
}
