package main

import (
	"fmt"
	"time"

	"github.com/w-h-a/soul/embedder"
	googleembedder "github.com/w-h-a/soul/embedder/google"
	openaiembedder "github.com/w-h-a/soul/embedder/openai"
	"github.com/w-h-a/soul/generator"
	anthropicgenerator "github.com/w-h-a/soul/generator/anthropic"
	googlegenerator "github.com/w-h-a/soul/generator/google"
	openaigenerator "github.com/w-h-a/soul/generator/openai"
)

type embedderConfig struct {
	Provider string `help:"Embedding provider" enum:"openai,google" default:"openai" env:"EMBEDDER_PROVIDER"`
	Key      string `help:"API Key for the embedder" default:"" env:"EMBEDDER_KEY"`
	Model    string `help:"Model identifier for embedder (provider default when empty)" default:"" env:"EMBEDDER_MODEL"`
	URL      string `help:"Optional base URL of an OpenAI-compatible embedding API" default:"" env:"EMBEDDER_URL"`
}

type generatorConfig struct {
	Provider    string        `help:"Generation provider" enum:"openai,anthropic,google" default:"google" env:"GENERATOR_PROVIDER"`
	Key         string        `help:"API Key for the generator" default:"" env:"GENERATOR_KEY"`
	Model       string        `help:"Model identifier for generator (provider default when empty)" default:"" env:"GENERATOR_MODEL"`
	URL         string        `help:"Optional base URL of the generation API" default:"" env:"GENERATOR_URL"`
	MaxTokens   int           `help:"Maximum tokens per reply" default:"1024" env:"GENERATOR_MAX_TOKENS"`
	Timeout     time.Duration `help:"Timeout for each external call" default:"60s" env:"GENERATOR_TIMEOUT"`
	Concurrency int           `help:"Maximum concurrent generation calls" default:"8" env:"GENERATOR_CONCURRENCY"`
}

func newEmbedder(cfg embedderConfig) (embedder.Embedder, error) {
	opts := []embedder.Option{
		embedder.WithApiKey(cfg.Key),
		embedder.WithModel(cfg.Model),
		embedder.WithBaseURL(cfg.URL),
	}

	switch cfg.Provider {
	case "openai":
		return openaiembedder.NewEmbedder(opts...), nil
	case "google":
		return googleembedder.NewEmbedder(opts...), nil
	}

	return nil, fmt.Errorf("unknown embedder provider: %s", cfg.Provider)
}

func newGenerator(cfg generatorConfig) (generator.Generator, error) {
	opts := []generator.Option{
		generator.WithApiKey(cfg.Key),
		generator.WithModel(cfg.Model),
		generator.WithBaseURL(cfg.URL),
		generator.WithMaxTokens(cfg.MaxTokens),
	}

	switch cfg.Provider {
	case "openai":
		return openaigenerator.NewGenerator(opts...), nil
	case "anthropic":
		return anthropicgenerator.NewGenerator(opts...), nil
	case "google":
		return googlegenerator.NewGenerator(opts...), nil
	}

	return nil, fmt.Errorf("unknown generator provider: %s", cfg.Provider)
}
