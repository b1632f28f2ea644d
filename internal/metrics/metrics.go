package metrics

import (
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/klim4ka-cmyk/expense-bot/internal/clients/tg"
	"github.com/klim4ka-cmyk/expense-bot/internal/logger"
	"github.com/klim4ka-cmyk/expense-bot/internal/models/messages"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики.
var (
	InFlightMessages = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "tg",
		Subsystem: "messages",
		Name:      "in_flight_total", // Количество сообщений в обработке.
	})
	SummaryResponseTime = promauto.NewSummary(prometheus.SummaryOpts{
		Namespace: "tg",
		Subsystem: "messages",
		Name:      "summary_response_time_seconds", // Время обработки сообщений.
		Objectives: map[float64]float64{
			0.5:  0.1,
			0.9:  0.01,
			0.99: 0.001,
		},
	})
	HistogramResponseTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tg",
			Subsystem: "messages",
			Name:      "histogram_response_time_seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"cmd"},
	)
)

// Известные команды для метки cmd; произвольный текст учитывается как "expense".
var commandLabels = map[string]bool{
	"start": true,
	"help":  true,
	"stats": true,
}

// StartListener Публикация метрик по HTTP (эндпоинт /metrics).
func StartListener(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info("Start metrics service", "addr", addr)
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error("Metrics public error", "err", err)
		}
	}()
}

// MetricsMiddleware Функция сбора метрик обработки сообщения.
func MetricsMiddleware(next tg.HandlerFunc) tg.HandlerFunc {
	return tg.HandlerFunc(func(tgUpdate tgbotapi.Update, c *tg.Client, msgModel *messages.Model) {
		InFlightMessages.Inc()
		startTime := time.Now()

		next.RunFunc(tgUpdate, c, msgModel)

		duration := time.Since(startTime)
		InFlightMessages.Dec()

		// Сохранение метрик продолжительности обработки.
		SummaryResponseTime.Observe(duration.Seconds())
		HistogramResponseTime.WithLabelValues(commandLabel(tgUpdate)).Observe(duration.Seconds())
	})
}

// Определение команды для метки в метрике.
func commandLabel(tgUpdate tgbotapi.Update) string {
	if tgUpdate.Message == nil {
		return "none"
	}
	if !tgUpdate.Message.IsCommand() {
		return "expense"
	}
	if cmd := tgUpdate.Message.Command(); commandLabels[cmd] {
		return cmd
	}
	return "unknown"
}
