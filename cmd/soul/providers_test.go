package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmbedderRejectsUnknownProvider(t *testing.T) {
	_, err := newEmbedder(embedderConfig{Provider: "nope"})
	assert.Error(t, err)
}

func TestNewGeneratorRejectsUnknownProvider(t *testing.T) {
	_, err := newGenerator(generatorConfig{Provider: "nope"})
	assert.Error(t, err)
}

func TestNewGeneratorOpenAI(t *testing.T) {
	gen, err := newGenerator(generatorConfig{Provider: "openai", Key: "k", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.NotNil(t, gen)
}

func TestRefreshSourceSelection(t *testing.T) {
	c := &refreshCmd{Source: "https://example.com/export"}
	assert.Contains(t, typeName(c.newSource()), "httpSource")

	c = &refreshCmd{Source: "./export.json"}
	assert.Contains(t, typeName(c.newSource()), "fileSource")
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
