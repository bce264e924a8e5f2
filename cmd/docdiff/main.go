// Command docdiff compares two versions of a document and prints the
// resulting change blocks with summary statistics.
//
// Usage:
//
//	docdiff [flags] OLD NEW
//
// The default path is a deterministic line/word alignment. With
// -semantic, the documents are split into token-budgeted chunks and
// each differing chunk pair is sent to the Gemini oracle; set
// GEMINI_API_KEY for this path.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/docdiff"
	"github.com/fwojciec/docdiff/chunk"
	"github.com/fwojciec/docdiff/compare"
	"github.com/fwojciec/docdiff/extract"
	"github.com/fwojciec/docdiff/gemini"
	"github.com/fwojciec/docdiff/tiktoken"
	"github.com/fwojciec/docdiff/worddiff"
)

// App encapsulates the application logic for testing.
type App struct {
	Args      []string
	Stdout    io.Writer
	Stderr    io.Writer
	Extractor docdiff.Extractor

	// NewOracle and NewCounter are invoked only for the semantic path,
	// so the basic path needs no API key or tokenizer data.
	NewOracle  func(ctx context.Context, model string) (docdiff.Oracle, error)
	NewCounter func() (docdiff.TokenCounter, error)
}

// Run parses flags, compares the two documents and prints the result.
func (a *App) Run(ctx context.Context) error {
	fs := flag.NewFlagSet("docdiff", flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	ignoreCase := fs.Bool("ignore-case", false, "case-insensitive comparison")
	ignorePunct := fs.Bool("ignore-punct", false, "ignore punctuation")
	dehyphenate := fs.Bool("dehyphenate", false, "rejoin words split by line-final hyphens")
	semantic := fs.Bool("semantic", false, "compare via the semantic oracle")
	model := fs.String("model", gemini.DefaultModel, "oracle model for -semantic")
	maxTokens := fs.Int("max-tokens", 2000, "token budget per chunk for -semantic")
	if err := fs.Parse(a.Args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errors.New("usage: docdiff [flags] OLD NEW")
	}

	oldText, err := a.extractFile(fs.Arg(0))
	if err != nil {
		return err
	}
	newText, err := a.extractFile(fs.Arg(1))
	if err != nil {
		return err
	}

	differ := worddiff.NewDiffer()
	var res *docdiff.Result
	if *semantic {
		oracle, err := a.NewOracle(ctx, *model)
		if err != nil {
			return err
		}
		counter, err := a.NewCounter()
		if err != nil {
			return err
		}
		cmp := compare.NewSemantic(oracle, chunk.NewSplitter(*maxTokens, counter), differ)
		res, err = cmp.Compare(ctx, oldText, newText)
		if err != nil {
			return err
		}
	} else {
		opts := docdiff.NormalizeOptions{
			FoldCase:         *ignoreCase,
			StripPunctuation: *ignorePunct,
			Dehyphenate:      *dehyphenate,
		}
		res = compare.NewBasic(opts, differ).Compare(oldText, newText)
	}

	if res.Identical {
		fmt.Fprintln(a.Stdout, "documents are identical")
		return nil
	}
	fmt.Fprint(a.Stdout, docdiff.FormatText(res))
	fmt.Fprintln(a.Stdout, docdiff.FormatSummary(res.Summary))
	return nil
}

func (a *App) extractFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	text, err := a.Extractor.Extract(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &App{
		Args:      os.Args[1:],
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Extractor: extract.NewText(),
		NewOracle: func(ctx context.Context, model string) (docdiff.Oracle, error) {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				return nil, errors.New("GEMINI_API_KEY must be set for -semantic")
			}
			client, err := gemini.NewClient(ctx, apiKey)
			if err != nil {
				return nil, err
			}
			return gemini.NewOracle(client, model), nil
		},
		NewCounter: func() (docdiff.TokenCounter, error) {
			return tiktoken.NewCounter()
		},
	}

	if err := app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
