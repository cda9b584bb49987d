package server

import (
	"context"
	"time"
)

type Option func(*Options)

type Options struct {
	Address         string
	ShutdownTimeout time.Duration
	Context         context.Context
}

func WithAddress(addr string) Option {
	return func(o *Options) {
		o.Address = addr
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Address:         ":10000",
		ShutdownTimeout: 10 * time.Second,
		Context:         context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
