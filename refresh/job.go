package refresh

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/w-h-a/soul/corpus"
	"github.com/w-h-a/soul/embedder"
	"github.com/w-h-a/soul/record"
	"github.com/w-h-a/soul/retry"
	"github.com/w-h-a/soul/source"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"
)

var (
	ErrRefreshInProgress = errors.New("refresh already in progress")
)

var tracer = otel.Tracer("github.com/w-h-a/soul/refresh")

type Report struct {
	Fetched  int
	Embedded int
	Skipped  int
}

// Job rebuilds the corpus snapshot from the source. A run either replaces
// the target with a fully embedded snapshot or leaves it untouched.
type Job struct {
	options Options
	limiter *rate.Limiter
}

func (j *Job) Run(ctx context.Context) (report Report, err error) {
	ctx, span := tracer.Start(ctx, "refresh.Run")
	defer func() {
		span.SetAttributes(
			attribute.Int("refresh.fetched", report.Fetched),
			attribute.Int("refresh.embedded", report.Embedded),
			attribute.Int("refresh.skipped", report.Skipped),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	lock, err := acquireLock(j.options.Target + ".lock")
	if err != nil {
		return report, err
	}
	defer func() {
		if rerr := lock.release(); rerr != nil {
			slog.ErrorContext(ctx, "failed to release refresh lock", "error", rerr)
		}
	}()

	raw, err := j.options.Source.Fetch(ctx)
	if err != nil {
		if !errors.Is(err, source.ErrSourceUnavailable) {
			err = fmt.Errorf("%w: %w", source.ErrSourceUnavailable, err)
		}
		return report, err
	}

	report.Fetched = len(raw)
	slog.InfoContext(ctx, "fetched records, generating embeddings", "total", report.Fetched)

	embedded := make([]*record.Record, 0, len(raw))

	for i, rec := range raw {
		text, ok := SelectText(rec)
		if !ok {
			report.Skipped++
			slog.WarnContext(ctx, "skipping record without text", "index", i)
			j.progress(ctx, i+1, report.Fetched)
			continue
		}

		vector, err := j.embed(ctx, text)
		if err != nil {
			return report, fmt.Errorf("record %d: %w", i, err)
		}

		embedded = append(embedded, rec.WithEmbedding(vector, text))
		report.Embedded++

		j.progress(ctx, i+1, report.Fetched)
	}

	if err := corpus.WriteFile(j.options.Target, embedded); err != nil {
		return report, fmt.Errorf("write snapshot: %w", err)
	}

	slog.InfoContext(ctx, "embedding update complete", "target", j.options.Target, "embedded", report.Embedded, "skipped", report.Skipped)

	return report, nil
}

func (j *Job) embed(ctx context.Context, text string) ([]float32, error) {
	vector, attempts, err := retry.Do(ctx, j.options.Retry, func(ctx context.Context) ([]float32, error) {
		if j.limiter != nil {
			if err := j.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		v, err := j.options.Embedder.Embed(ctx, text)
		if err != nil {
			return nil, err
		}

		if len(v) == 0 {
			return nil, errors.New("empty vector")
		}

		return v, nil
	})
	if err != nil {
		if errors.Is(err, embedder.ErrEmbeddingFailed) {
			return nil, fmt.Errorf("gave up after %d attempts: %w", attempts, err)
		}
		return nil, fmt.Errorf("%w: gave up after %d attempts: %w", embedder.ErrEmbeddingFailed, attempts, err)
	}

	return vector, nil
}

func (j *Job) progress(ctx context.Context, done int, total int) {
	if j.options.ProgressEvery <= 0 {
		return
	}
	if done%j.options.ProgressEvery == 0 || done == total {
		slog.InfoContext(ctx, "processed records", "processed", done, "total", total)
	}
}

func NewJob(opts ...Option) *Job {
	options := NewOptions(opts...)

	if options.Source == nil {
		panic("source is required")
	}

	if options.Embedder == nil {
		panic("embedder is required")
	}

	if len(options.Target) == 0 {
		panic("target is required")
	}

	j := &Job{
		options: options,
	}

	if options.RateLimit > 0 {
		j.limiter = rate.NewLimiter(rate.Limit(options.RateLimit), 1)
	}

	return j
}
