package google

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/w-h-a/soul/generator"
)

// closedEndpoint returns an address nothing listens on.
func closedEndpoint(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestGenerateFailureIsWrapped(t *testing.T) {
	g := NewGenerator(
		generator.WithApiKey("secret"),
		generator.WithBaseURL(closedEndpoint(t)),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := g.Generate(ctx, "hi")
	assert.ErrorIs(t, err, generator.ErrGenerationFailed)
}

func TestNewGeneratorDefaultsModel(t *testing.T) {
	g := NewGenerator(generator.WithApiKey("secret"), generator.WithBaseURL(closedEndpoint(t)))
	assert.Equal(t, "gemini-1.5-pro", g.(*googleGenerator).options.Model)
}
