package main

import (
	"context"

	"github.com/klim4ka-cmyk/expense-bot/internal/clients/tg"
	"github.com/klim4ka-cmyk/expense-bot/internal/config"
	"github.com/klim4ka-cmyk/expense-bot/internal/helpers/dbutils"
	"github.com/klim4ka-cmyk/expense-bot/internal/logger"
	"github.com/klim4ka-cmyk/expense-bot/internal/metrics"
	"github.com/klim4ka-cmyk/expense-bot/internal/models/db"
	"github.com/klim4ka-cmyk/expense-bot/internal/models/messages"
	"github.com/klim4ka-cmyk/expense-bot/internal/tracing"
)

func main() {
	logger.Info("Application start")

	ctx := context.Background()

	cfg, err := config.New()
	if err != nil {
		logger.Fatal("Error to get config", "err", err)
	}
	settings := cfg.GetConfig()

	dbConn, err := dbutils.NewDBConnect(cfg.ConnectionStringDB(), settings.DBMaxOpenConns, settings.DBMaxIdleConns)
	if err != nil {
		logger.Fatal("Error to connect database", "err", err)
	}
	defer dbConn.Close()

	expenseStorage := db.NewExpenseStorage(dbConn)
	if err := expenseStorage.CreateTableExpenses(ctx); err != nil {
		logger.Fatal("Error to init database schema", "err", err)
	}

	tgClient, err := tg.New(cfg, settings.UpdateTimeout,
		metrics.MetricsMiddleware(tracing.TracingMiddleware(tg.ProcessingMessages)))
	if err != nil {
		logger.Fatal("Error to create telegram client", "err", err)
	}

	msgModel := messages.New(ctx, tgClient, expenseStorage)

	metrics.StartListener(settings.MetricsAddress)

	tgClient.ListenUpdates(msgModel)

	logger.Info("Application stop")
}
