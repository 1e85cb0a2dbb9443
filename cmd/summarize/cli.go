package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/yanqian/ai-summarizer/internal/domain/acquisition"
	"github.com/yanqian/ai-summarizer/internal/domain/summarizer"
	apperrors "github.com/yanqian/ai-summarizer/pkg/errors"
)

type options struct {
	text        string
	file        string
	length      string
	tone        string
	format      string
	temperature *float32
	out         string
	verbose     bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var (
		opts        options
		temperature float64
	)
	fs := flag.NewFlagSet("summarize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.text, "text", "", "text to summarize")
	fs.StringVar(&opts.file, "file", "", "path to a .txt or .pdf file")
	fs.StringVar(&opts.length, "length", string(summarizer.LengthShort), "Short, Medium or Detailed")
	fs.StringVar(&opts.tone, "tone", string(summarizer.ToneNeutral), "Neutral, Simple, Professional, Casual or Kid-friendly")
	fs.StringVar(&opts.format, "format", string(summarizer.FormatBullets), "Bullets, Paragraph, Bullets + Paragraph or TL;DR")
	fs.Float64Var(&temperature, "temperature", 0.4, "sampling temperature between 0 and 1")
	fs.StringVar(&opts.out, "out", "", "also write the summary to this file")
	fs.BoolVar(&opts.verbose, "v", false, "log at the configured level instead of warn")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "temperature" {
			t := float32(temperature)
			opts.temperature = &t
		}
	})
	if opts.text == "" && opts.file == "" && fs.NArg() > 0 {
		opts.text = strings.Join(fs.Args(), " ")
	}
	return opts, nil
}

// execute runs one submission and prints the result like the web form does.
func execute(ctx context.Context, opts options, svc summarizer.Service, acq *acquisition.Service, stdin io.Reader, out io.Writer) error {
	input, err := buildInput(opts, stdin)
	if err != nil {
		return err
	}
	doc, err := acq.Resolve(ctx, input)
	if err != nil {
		return err
	}

	dim := color.New(color.FgHiBlack)
	if doc.Stats.Words > 0 {
		dim.Fprintf(out, "Words: %d · Estimated tokens: ~%d\n", doc.Stats.Words, doc.Stats.EstimatedTokens)
	}

	resp, err := svc.Summarize(ctx, summarizer.Request{
		Text:        doc.Text,
		Length:      opts.length,
		Tone:        opts.tone,
		Format:      opts.format,
		Temperature: opts.temperature,
	})
	if err != nil {
		return err
	}

	warn := color.New(color.FgYellow)
	for _, w := range resp.Warnings {
		warn.Fprintln(out, w)
	}
	color.New(color.FgCyan, color.Bold).Fprintln(out, "Summary")
	fmt.Fprintln(out, resp.Summary)
	if resp.TokenUsage != nil {
		dim.Fprintln(out, resp.TokenUsage.Caption())
	}

	if opts.out != "" {
		if err := os.WriteFile(opts.out, []byte(resp.Summary), 0o644); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		dim.Fprintf(out, "Saved to %s\n", opts.out)
	}
	return nil
}

// buildInput reads the file flag, falling back to stdin when no text was given.
func buildInput(opts options, stdin io.Reader) (acquisition.Input, error) {
	input := acquisition.Input{Text: opts.text}
	switch {
	case opts.file != "":
		content, err := os.ReadFile(opts.file)
		if err != nil {
			return acquisition.Input{}, apperrors.Wrap(apperrors.CodeInvalidInput, "cannot read "+filepath.Base(opts.file), err)
		}
		input.Upload = &acquisition.Upload{Filename: filepath.Base(opts.file), Content: content}
	case opts.text == "" && stdin != nil:
		content, err := io.ReadAll(stdin)
		if err != nil {
			return acquisition.Input{}, fmt.Errorf("read stdin: %w", err)
		}
		input.Text = acquisition.DecodeText(content)
	}
	return input, nil
}
