package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/w-h-a/soul/embedder"
	"github.com/w-h-a/soul/generator"
	"github.com/w-h-a/soul/prompt"
	"github.com/w-h-a/soul/ranker"
	"github.com/w-h-a/soul/summarizer"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/semaphore"
)

var (
	ErrEmptyMessage   = errors.New("message is required")
	ErrVectorRequired = errors.New("query vector is required when no embedder is configured")
)

var tracer = otel.Tracer("github.com/w-h-a/soul/internal/service/chat")

// Service answers one chat message at a time. It holds no per-request state,
// so concurrent calls share nothing mutable besides the generation semaphore.
type Service struct {
	ranker    ranker.Ranker
	assembler *prompt.Assembler
	embedder  embedder.Embedder
	generator generator.Generator
	sem       *semaphore.Weighted
	timeout   time.Duration

	// the corpus never changes, so the summaries are rendered once
	stateSummary  string
	valuesSummary string
}

func (s *Service) Respond(ctx context.Context, message string, vector []float32) (reply string, err error) {
	ctx, span := tracer.Start(ctx, "chat.Respond")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	p, err := s.BuildPrompt(ctx, message, vector)
	if err != nil {
		return "", err
	}

	span.SetAttributes(attribute.Int("chat.prompt_length", len(p)))

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("%w: %w", generator.ErrGenerationFailed, err)
	}
	defer s.sem.Release(1)

	genCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	reply, err = s.generator.Generate(genCtx, p)
	if err != nil {
		if !errors.Is(err, generator.ErrGenerationFailed) {
			err = fmt.Errorf("%w: %w", generator.ErrGenerationFailed, err)
		}
		return "", err
	}

	return reply, nil
}

// BuildPrompt runs retrieval for message and returns the prompt that would be
// sent to the generator. vector may be nil, in which case the message is
// embedded first.
func (s *Service) BuildPrompt(ctx context.Context, message string, vector []float32) (string, error) {
	if len(strings.TrimSpace(message)) == 0 {
		return "", ErrEmptyMessage
	}

	query, err := s.queryVector(ctx, message, vector)
	if err != nil {
		return "", err
	}

	k := s.assembler.MaxMatches()
	if k < 0 {
		k = s.ranker.Eligible()
	}

	matches, err := s.ranker.TopK(ctx, query, k)
	if err != nil {
		return "", fmt.Errorf("rank: %w", err)
	}

	return s.assembler.Assemble(message, s.stateSummary, s.valuesSummary, ranker.Records(matches)), nil
}

func (s *Service) queryVector(ctx context.Context, message string, vector []float32) ([]float32, error) {
	if len(vector) > 0 {
		return vector, nil
	}

	if s.embedder == nil {
		return nil, ErrVectorRequired
	}

	embedCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	v, err := s.embedder.Embed(embedCtx, message)
	if err != nil {
		if !errors.Is(err, embedder.ErrEmbeddingFailed) {
			err = fmt.Errorf("%w: %w", embedder.ErrEmbeddingFailed, err)
		}
		return nil, err
	}

	return v, nil
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func New(
	rnk ranker.Ranker,
	sum *summarizer.Summarizer,
	assembler *prompt.Assembler,
	emb embedder.Embedder,
	gen generator.Generator,
	concurrency int,
	timeout time.Duration,
) *Service {
	if rnk == nil {
		panic("ranker is required")
	}

	if sum == nil {
		panic("summarizer is required")
	}

	if gen == nil {
		panic("generator is required")
	}

	if assembler == nil {
		assembler = prompt.NewAssembler()
	}

	if concurrency <= 0 {
		concurrency = 8
	}

	return &Service{
		ranker:        rnk,
		assembler:     assembler,
		embedder:      emb,
		generator:     gen,
		sem:           semaphore.NewWeighted(int64(concurrency)),
		timeout:       timeout,
		stateSummary:  sum.StateSummary(),
		valuesSummary: sum.ValuesSummary(),
	}
}
