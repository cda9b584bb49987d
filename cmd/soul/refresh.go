package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/w-h-a/soul/refresh"
	"github.com/w-h-a/soul/retry"
	"github.com/w-h-a/soul/source"
	filesource "github.com/w-h-a/soul/source/file"
	httpsource "github.com/w-h-a/soul/source/http"
)

type refreshCmd struct {
	Source    string         `help:"Data source URL, or a path to a local JSON export" required:"" env:"SOUL_SOURCE"`
	Target    string         `help:"Path of the corpus snapshot to replace" default:"soul_with_vectors.json" env:"SOUL_CORPUS"`
	Attempts  int            `help:"Embedding attempts per record" default:"3"`
	Delay     time.Duration  `help:"Delay between embedding attempts" default:"2s"`
	Timeout   time.Duration  `help:"Timeout for each external call" default:"30s"`
	RateLimit float64        `help:"Maximum embedding calls per second (0 for no limit)" default:"0"`
	Embedder  embedderConfig `embed:"" prefix:"embedder-"`
	Sheet     sheetConfig    `embed:"" prefix:"sheet-"`
}

func (c *refreshCmd) Run(g *globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	emb, err := newEmbedder(c.Embedder)
	if err != nil {
		return err
	}

	job := refresh.NewJob(
		refresh.WithSource(c.newSource()),
		refresh.WithEmbedder(emb),
		refresh.WithTarget(c.Target),
		refresh.WithRetryPolicy(retry.Policy{
			MaxAttempts: c.Attempts,
			Delay:       c.Delay,
			Timeout:     c.Timeout,
		}),
		refresh.WithRateLimit(c.RateLimit),
	)

	report, err := job.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Embedded %d of %d records (%d skipped) into %s\n", report.Embedded, report.Fetched, report.Skipped, c.Target)

	if len(c.Sheet.Spreadsheet) == 0 {
		return nil
	}

	return publishSnapshot(ctx, c.Sheet, c.Target)
}

func (c *refreshCmd) newSource() source.Source {
	opts := []source.Option{
		source.WithLocation(c.Source),
		source.WithTimeout(c.Timeout),
	}

	if strings.HasPrefix(c.Source, "http://") || strings.HasPrefix(c.Source, "https://") {
		return httpsource.NewSource(opts...)
	}

	return filesource.NewSource(opts...)
}
