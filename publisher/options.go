package publisher

import (
	"context"
	"time"
)

type Option func(*Options)

type Options struct {
	// Location identifies the destination document.
	Location    string
	Sheet       string
	Credentials []byte
	BaseURL     string
	Timeout     time.Duration
	Context     context.Context
}

func WithLocation(loc string) Option {
	return func(o *Options) {
		o.Location = loc
	}
}

func WithSheet(name string) Option {
	return func(o *Options) {
		o.Sheet = name
	}
}

// WithCredentials sets a service account key in JSON form.
func WithCredentials(creds []byte) Option {
	return func(o *Options) {
		o.Credentials = creds
	}
}

func WithBaseURL(url string) Option {
	return func(o *Options) {
		o.BaseURL = url
	}
}

func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Timeout = d
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Sheet:   "Soul Vectors",
		Timeout: 60 * time.Second,
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
