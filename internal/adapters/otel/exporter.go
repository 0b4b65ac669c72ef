package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/slipscope/internal/ports"
)

const (
	serviceName    = "slipscope"
	serviceVersion = "1.0.0"
)

// Exporter exports run metrics to an OTEL Collector.
type Exporter struct {
	provider     *sdkmetric.MeterProvider
	meter        metric.Meter
	gamesTotal   metric.Int64Counter
	winsTotal    metric.Int64Counter
	skippedTotal metric.Int64Counter
	cacheHits    metric.Int64Counter
	newlyCached  metric.Int64Counter
	durationHist metric.Float64Histogram
	runsTotal    metric.Int64Counter
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	gamesTotal, err := meter.Int64Counter(
		"slipscope_run_games_total",
		metric.WithDescription("Qualifying games analyzed per run"),
		metric.WithUnit("{game}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating games counter: %w", err)
	}

	winsTotal, err := meter.Int64Counter(
		"slipscope_run_wins_total",
		metric.WithDescription("Wins counted per run"),
		metric.WithUnit("{game}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating wins counter: %w", err)
	}

	skippedTotal, err := meter.Int64Counter(
		"slipscope_run_skipped_files_total",
		metric.WithDescription("Files skipped per run"),
		metric.WithUnit("{file}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating skipped counter: %w", err)
	}

	cacheHits, err := meter.Int64Counter(
		"slipscope_run_cache_hits_total",
		metric.WithDescription("Replay decode results served from cache"),
		metric.WithUnit("{file}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cache hits counter: %w", err)
	}

	newlyCached, err := meter.Int64Counter(
		"slipscope_run_newly_cached_total",
		metric.WithDescription("Replay files decoded and cached this run"),
		metric.WithUnit("{file}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating newly cached counter: %w", err)
	}

	durationHist, err := meter.Float64Histogram(
		"slipscope_run_duration_seconds",
		metric.WithDescription("Wall-clock duration of analysis runs"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	runsTotal, err := meter.Int64Counter(
		"slipscope_runs_total",
		metric.WithDescription("Total number of analysis runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating runs counter: %w", err)
	}

	return &Exporter{
		provider:     provider,
		meter:        meter,
		gamesTotal:   gamesTotal,
		winsTotal:    winsTotal,
		skippedTotal: skippedTotal,
		cacheHits:    cacheHits,
		newlyCached:  newlyCached,
		durationHist: durationHist,
		runsTotal:    runsTotal,
	}, nil
}

// ExportRunMetrics exports enriched metrics for a completed analysis run.
func (e *Exporter) ExportRunMetrics(ctx context.Context, m *ports.RunMetrics) error {
	attrs := []attribute.KeyValue{
		attribute.String("run_id", m.RunID),
		attribute.String("folder", m.Folder),
		attribute.Bool("cancelled", m.Cancelled),
	}
	opt := metric.WithAttributes(attrs...)

	e.gamesTotal.Add(ctx, m.TotalGames, opt)
	e.winsTotal.Add(ctx, m.TotalWins, opt)
	e.skippedTotal.Add(ctx, m.SkippedFiles, opt)
	e.cacheHits.Add(ctx, m.CacheHits, opt)
	e.newlyCached.Add(ctx, m.NewlyCached, opt)
	e.durationHist.Record(ctx, m.DurationSeconds, opt)
	e.runsTotal.Add(ctx, 1, opt)

	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
