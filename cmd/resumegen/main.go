// Package main implements resumegen, a command-line front end to the
// resume text-generation layer. Without a configured credential it answers
// from the built-in mock oracle, which makes it useful offline.
//
// Usage:
//
//	resumegen [-max-tokens N] [-temperature T] [-json] [prompt]
//
// The prompt is read from standard input when no argument is given.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/config"
	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/content"
	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/extract"
	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/generation"
	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/platform/gemini"
	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/platform/logger"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// options holds the parsed command line.
type options struct {
	maxTokens   int
	temperature float64
	asJSON      bool
	prompt      string

	// set records which flags were given explicitly, so unset ones fall back
	// to the configured defaults.
	set map[string]bool
}

func parseArgs(args []string, stdin io.Reader, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("resumegen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.IntVar(&opts.maxTokens, "max-tokens", generation.DefaultMaxTokens, "upper bound on generated tokens")
	fs.Float64Var(&opts.temperature, "temperature", generation.DefaultTemperature, "sampling temperature")
	fs.BoolVar(&opts.asJSON, "json", false, "print the JSON value recovered from the response")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: resumegen [-max-tokens N] [-temperature T] [-json] [prompt]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	if fs.NArg() > 0 {
		opts.prompt = strings.Join(fs.Args(), " ")
	} else {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return options{}, fmt.Errorf("failed to read prompt from stdin: %w", err)
		}
		opts.prompt = string(raw)
	}

	if strings.TrimSpace(opts.prompt) == "" {
		fs.Usage()
		return options{}, errors.New("prompt cannot be empty")
	}
	return opts, nil
}

func (o options) generationOptions() []generation.Option {
	var opts []generation.Option
	if o.set["max-tokens"] {
		opts = append(opts, generation.WithMaxTokens(o.maxTokens))
	}
	if o.set["temperature"] {
		opts = append(opts, generation.WithTemperature(o.temperature))
	}
	return opts
}

// run executes one generation and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stdin, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "error:", err)
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "failed to load configuration: %v\n", err)
		return exitFailed
	}

	log, err := logger.SetupWithWriter(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "failed to set up logger: %v\n", err)
		return exitFailed
	}

	svc, err := gemini.NewGenerator(ctx, log, cfg.LLM)
	if err != nil {
		log.ErrorContext(ctx, "failed to create generator", "error", err)
		fmt.Fprintln(stderr, content.UserMessage(err))
		return exitFailed
	}

	text, err := svc.GenerateText(ctx, opts.prompt, opts.generationOptions()...)
	if err != nil {
		fmt.Fprintln(stderr, content.UserMessage(err))
		return exitFailed
	}

	if !opts.asJSON {
		fmt.Fprintln(stdout, text)
		return exitOK
	}

	out := extract.Extract[any](text, nil)
	encoded, err := json.MarshalIndent(out.Value, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "failed to encode JSON: %v\n", err)
		return exitFailed
	}
	fmt.Fprintln(stdout, string(encoded))
	return exitOK
}
