package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

type globals struct {
	Profile string
}

var (
	cli struct {
		Profile string `help:"Path of the YAML persona/summary profile" default:"profile.yaml" env:"SOUL_PROFILE"`
		Debug   bool   `help:"Enable debug logging" env:"SOUL_DEBUG"`

		Serve   serveCmd   `cmd:"" help:"Serve the chat API over a corpus snapshot."`
		Refresh refreshCmd `cmd:"" help:"Fetch source records, embed them and replace the corpus snapshot."`
		Ask     askCmd     `cmd:"" help:"Answer one question from the terminal."`
		Publish publishCmd `cmd:"" help:"Replace the published spreadsheet copy with a corpus snapshot."`
	}
)

func main() {
	// Parse inputs
	_ = godotenv.Load()
	ctx := kong.Parse(
		&cli,
		kong.Name("soul"),
		kong.Description("Retrieval-backed persona chat over an embedded record corpus."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	err := ctx.Run(&globals{Profile: cli.Profile})
	ctx.FatalIfErrorf(err)
}
