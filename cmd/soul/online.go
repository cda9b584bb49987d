package main

import (
	"fmt"
	"log/slog"

	"github.com/w-h-a/soul/config"
	"github.com/w-h-a/soul/corpus"
	"github.com/w-h-a/soul/embedder"
	"github.com/w-h-a/soul/internal/service/chat"
	"github.com/w-h-a/soul/prompt"
	"github.com/w-h-a/soul/ranker"
	"github.com/w-h-a/soul/ranker/memory"
	"github.com/w-h-a/soul/summarizer"
)

type onlineConfig struct {
	Corpus       string          `help:"Path of the corpus snapshot" default:"soul_with_vectors.json" env:"SOUL_CORPUS"`
	EmbedQueries bool            `help:"Embed messages that arrive without a vector" default:"true" negatable:"" env:"SOUL_EMBED_QUERIES"`
	Embedder     embedderConfig  `embed:"" prefix:"embedder-"`
	Generator    generatorConfig `embed:"" prefix:"generator-"`
}

// buildService loads the snapshot once and wires the online path over it.
func buildService(g *globals, cfg onlineConfig) (*chat.Service, *corpus.Store, *summarizer.Summarizer, error) {
	profile, err := config.LoadProfile(g.Profile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load profile: %w", err)
	}

	store, err := corpus.LoadFile(cfg.Corpus)
	if err != nil {
		return nil, nil, nil, err
	}

	slog.Info("loaded corpus", "path", cfg.Corpus, "records", store.Len(), "dimension", store.Dimension())

	var emb embedder.Embedder
	if cfg.EmbedQueries {
		emb, err = newEmbedder(cfg.Embedder)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	gen, err := newGenerator(cfg.Generator)
	if err != nil {
		return nil, nil, nil, err
	}

	sum := summarizer.New(store, profile.SummarizerOptions()...)

	svc := chat.New(
		memory.NewRanker(ranker.WithStore(store)),
		sum,
		prompt.NewAssembler(profile.PromptOptions()...),
		emb,
		gen,
		cfg.Generator.Concurrency,
		cfg.Generator.Timeout,
	)

	return svc, store, sum, nil
}
