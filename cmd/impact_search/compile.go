package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/impact-search/internal/observability"
	"github.com/jonathan/impact-search/internal/search"
	"github.com/jonathan/impact-search/internal/types"
)

// compileOutcome is one line of compile output
type compileOutcome struct {
	Query   string               `json:"query"`
	Success bool                 `json:"success"`
	Data    *types.SearchFilters `json:"data,omitempty"`
	Method  search.Method        `json:"method,omitempty"`
	Error   string               `json:"error,omitempty"`
}

type compileOptions struct {
	file        string
	concurrency int
	keywordOnly bool
	pretty      bool
}

func newCompileCmd(a *app) *cobra.Command {
	opts := compileOptions{}

	cmd := &cobra.Command{
		Use:   "compile [query...]",
		Short: "Compile search queries into filters",
		Long: `Compile one or more free-text queries and print the resulting filters as JSON lines.
Queries come from the arguments and, with --file, from a file with one query per line
("-" reads stdin; blank lines and lines starting with # are skipped).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			queries := append([]string(nil), args...)
			if opts.file != "" {
				fromFile, err := readQueries(opts.file, cmd.InOrStdin())
				if err != nil {
					return err
				}
				queries = append(queries, fromFile...)
			}
			if len(queries) == 0 {
				return fmt.Errorf("no queries given")
			}
			if opts.concurrency < 1 {
				return fmt.Errorf("--concurrency must be at least 1")
			}

			ctx := cmd.Context()
			c, err := buildComponents(ctx, a.cfg, a.logger, opts.keywordOnly)
			if err != nil {
				return err
			}
			defer c.Close()

			outcomes, err := compileAll(ctx, c.service, queries, opts.concurrency)
			if err != nil {
				return err
			}
			return writeOutcomes(cmd.OutOrStdout(), outcomes, opts.pretty)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Read queries from a file, one per line (- for stdin)")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 4, "Maximum queries compiled at once")
	cmd.Flags().BoolVar(&opts.keywordOnly, "keyword-only", false, "Skip the AI interpreter")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Print human-readable boxes instead of JSON lines")
	return cmd
}

// compileAll compiles queries concurrently, preserving input order.
// Validation failures are reported per query; only cancellation aborts the batch.
func compileAll(ctx context.Context, svc *search.Service, queries []string, limit int) ([]compileOutcome, error) {
	outcomes := make([]compileOutcome, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, q := range queries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := svc.Compile(gctx, q)
			if err != nil {
				outcomes[i] = compileOutcome{Query: q, Error: err.Error()}
				return nil
			}
			filters := result.Filters
			outcomes[i] = compileOutcome{Query: q, Success: true, Data: &filters, Method: result.Method}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func writeOutcomes(w io.Writer, outcomes []compileOutcome, pretty bool) error {
	if pretty {
		p := observability.NewPrinter(w)
		for _, o := range outcomes {
			if !o.Success {
				p.PrintError(o.Query, fmt.Errorf("%s", o.Error))
				continue
			}
			p.PrintSearchFilters(o.Query, string(o.Method), o.Data)
		}
		return nil
	}

	enc := json.NewEncoder(w)
	for _, o := range outcomes {
		if err := enc.Encode(o); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// readQueries reads one query per line from path, or from stdin when path is "-"
func readQueries(path string, stdin io.Reader) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open query file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var queries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read queries: %w", err)
	}
	return queries, nil
}
