package otel

import (
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/Alturino/audiophile/internal/constants"
)

var Tracer = otel.Tracer(
	"cart",
	trace.WithInstrumentationAttributes(semconv.ServiceNameKey.String(constants.AppStorefrontService)),
)
