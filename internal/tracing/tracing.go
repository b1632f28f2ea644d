package tracing

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/klim4ka-cmyk/expense-bot/internal/clients/tg"
	"github.com/klim4ka-cmyk/expense-bot/internal/logger"
	"github.com/klim4ka-cmyk/expense-bot/internal/models/messages"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

var tracer trace.Tracer

func init() {
	// Инициализация OpenTelemetry (OTLP) — адрес коллектора задаётся
	// стандартной переменной OTEL_EXPORTER_OTLP_ENDPOINT.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		logger.Fatal("Failed to create OTLP exporter", "err", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("expense-bot"),
		)),
	)

	otel.SetTracerProvider(tp)
	tracer = otel.Tracer("expense-bot")
}

// TracingMiddleware Спан на обработку одного сообщения; контекст спана
// прокидывается в модель и дальше в хранилище.
func TracingMiddleware(next tg.HandlerFunc) tg.HandlerFunc {
	return tg.HandlerFunc(func(tgUpdate tgbotapi.Update, c *tg.Client, msgModel *messages.Model) {
		if tgUpdate.Message == nil {
			next.RunFunc(tgUpdate, c, msgModel)
			return
		}

		ctx, span := tracer.Start(msgModel.GetCtx(), "ProcessingMessages")
		defer span.End()

		span.SetAttributes(
			attribute.String("chat.id", fmt.Sprintf("%d", tgUpdate.Message.Chat.ID)),
			attribute.String("message.id", fmt.Sprintf("%d", tgUpdate.Message.MessageID)),
		)

		logger.Debug("start span trace", "traceId", span.SpanContext().TraceID().String())

		msgModel.SetCtx(ctx)
		next.RunFunc(tgUpdate, c, msgModel)
	})
}
