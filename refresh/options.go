package refresh

import (
	"context"

	"github.com/w-h-a/soul/embedder"
	"github.com/w-h-a/soul/retry"
	"github.com/w-h-a/soul/source"
)

type Option func(*Options)

type Options struct {
	Source        source.Source
	Embedder      embedder.Embedder
	Target        string
	Retry         retry.Policy
	RateLimit     float64
	ProgressEvery int
	Context       context.Context
}

func WithSource(s source.Source) Option {
	return func(o *Options) {
		o.Source = s
	}
}

func WithEmbedder(e embedder.Embedder) Option {
	return func(o *Options) {
		o.Embedder = e
	}
}

// WithTarget sets the snapshot file the job replaces.
func WithTarget(path string) Option {
	return func(o *Options) {
		o.Target = path
	}
}

func WithRetryPolicy(p retry.Policy) Option {
	return func(o *Options) {
		o.Retry = p
	}
}

// WithRateLimit caps embedding calls per second. Zero means no limit.
func WithRateLimit(perSecond float64) Option {
	return func(o *Options) {
		o.RateLimit = perSecond
	}
}

func WithProgressEvery(n int) Option {
	return func(o *Options) {
		o.ProgressEvery = n
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Retry:         retry.DefaultPolicy(),
		ProgressEvery: 50,
		Context:       context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
