package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"voiceover-app/internal/client"
	"voiceover-app/internal/domain/voiceover"
	"voiceover-app/internal/infrastructure/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("voiceover", flag.ContinueOnError)
	fs.SetOutput(stderr)
	serverURL := fs.String("server", envOr("VOICEOVER_SERVER", "http://localhost:8080"), "voiceover server base URL")
	outDir := fs.String("out", ".", "directory to save "+voiceover.DownloadFileName+" into")
	logLevel := fs.String("log-level", envOr("LOG_LEVEL", "warn"), "log level")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	logger := logging.Component(logging.NewWithWriter(stderr, *logLevel, "console"), "cli")

	text := strings.Join(fs.Args(), " ")
	if text == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			logger.Error().Err(err).Msg("read stdin")
			return 1
		}
		text = string(b)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a, err := client.New(*serverURL).GenerateVoice(ctx, text)
	if err != nil {
		var rerr *client.RequestError
		switch {
		case errors.Is(err, client.ErrEmptyInput):
			fmt.Fprintln(stderr, err.Error())
		case errors.As(err, &rerr):
			fmt.Fprintln(stderr, rerr.Message)
			logger.Debug().Int("status", rerr.StatusCode).Bool("fallback", rerr.Fallback).Msg("request failed")
		default:
			fmt.Fprintln(stderr, err.Error())
		}
		return 1
	}

	path, err := client.SaveAudio(*outDir, a)
	if err != nil {
		logger.Error().Err(err).Msg("save audio")
		return 1
	}
	fmt.Fprintf(stdout, "saved %s (%d bytes)\n", path, a.Len())
	return 0
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
