package ranker

import (
	"context"

	"github.com/w-h-a/soul/corpus"
)

type Option func(*Options)

type Options struct {
	Store   *corpus.Store
	Context context.Context
}

func WithStore(store *corpus.Store) Option {
	return func(o *Options) {
		o.Store = store
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
