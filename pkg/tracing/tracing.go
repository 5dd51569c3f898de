package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	stdout "go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Init настраивает глобальный TracerProvider с выводом спанов в stdout.
// Возвращает функцию остановки, которую нужно вызвать при завершении.
// При enabled=false настраивается только пропагатор, спаны не экспортируются.
func Init(enabled, prettyPrint bool) (func(context.Context) error, error) {
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	if !enabled {
		return func(context.Context) error { return nil }, nil
	}

	var opts []stdout.Option
	if prettyPrint {
		opts = append(opts, stdout.WithPrettyPrint())
	}

	exporter, err := stdout.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create stdout trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
