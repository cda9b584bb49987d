package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/w-h-a/soul/corpus"
	"github.com/w-h-a/soul/publisher"
	"github.com/w-h-a/soul/publisher/sheets"
)

type sheetConfig struct {
	Spreadsheet string        `help:"Spreadsheet id the snapshot is published to" default:"" env:"SOUL_SPREADSHEET"`
	Name        string        `help:"Sheet name inside the spreadsheet" default:"Soul Vectors" env:"SOUL_SHEET"`
	Credentials string        `help:"Service account key JSON" default:"" env:"GOOGLE_SERVICE_ACCOUNT_JSON"`
	URL         string        `help:"Optional base URL of the Sheets API" default:"" env:"SOUL_SHEETS_URL"`
	Timeout     time.Duration `help:"Timeout for the publish calls" default:"60s"`
}

func (c sheetConfig) newPublisher() publisher.Publisher {
	return sheets.NewPublisher(
		publisher.WithLocation(c.Spreadsheet),
		publisher.WithSheet(c.Name),
		publisher.WithCredentials([]byte(c.Credentials)),
		publisher.WithBaseURL(c.URL),
		publisher.WithTimeout(c.Timeout),
	)
}

// publishSnapshot loads the snapshot at path and replaces the sheet with it.
func publishSnapshot(ctx context.Context, cfg sheetConfig, path string) error {
	store, err := corpus.LoadFile(path)
	if err != nil {
		return err
	}

	n, err := cfg.newPublisher().Publish(ctx, store.Records())
	if err != nil {
		return err
	}

	fmt.Printf("Updated %q with %d rows.\n", cfg.Name, n)

	return nil
}

type publishCmd struct {
	Corpus string      `help:"Path of the corpus snapshot" default:"soul_with_vectors.json" env:"SOUL_CORPUS"`
	Sheet  sheetConfig `embed:"" prefix:"sheet-"`
}

func (c *publishCmd) Run(g *globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(c.Sheet.Spreadsheet) == 0 {
		return errors.New("--sheet-spreadsheet is required")
	}

	return publishSnapshot(ctx, c.Sheet, c.Corpus)
}
