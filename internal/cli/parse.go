package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"feedmill.app/internal/config"
	"feedmill.app/internal/logging"
	"feedmill.app/internal/metric"
	"feedmill.app/internal/reader/parser"
	"feedmill.app/internal/worker"
)

type parseFlags struct {
	baseURL       string
	stripTracking bool
	defaultRSS    string
	workers       int
	metricsFile   string
	pretty        bool
}

func newParseCmd() *cobra.Command {
	var flags parseFlags
	cmd := &cobra.Command{
		Use:   "parse [file|-]...",
		Short: "Convert documents into feeds",
		Long: `Convert every document into a feed and print it as one JSON value per
document, in the same order. Documents which are not feeds print null.
Without arguments, or for "-", the document is read from stdin. Gzipped
documents are decompressed.`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, args)
		},
	}

	cmd.Flags().StringVar(&flags.baseURL, "base-url", "",
		"Resolve relative URLs against this URL")
	cmd.Flags().BoolVar(&flags.stripTracking, "strip-tracking", false,
		"Remove tracking parameters from item URLs")
	cmd.Flags().StringVar(&flags.defaultRSS, "default-rss", "",
		"RSS version of documents without a version: 0.9, 1 or 2")
	cmd.Flags().IntVarP(&flags.workers, "workers", "j", 0,
		"Number of documents parsed in parallel")
	cmd.Flags().StringVar(&flags.metricsFile, "metrics-file", "",
		"Write parser metrics to this file in textfile format")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Indent JSON output")
	return cmd
}

func (self *parseFlags) run(cmd *cobra.Command, args []string) error {
	docs, err := readDocuments(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	opts, err := self.parserOptions(cmd)
	if err != nil {
		return err
	}

	workers := config.Opts.WorkerPoolSize()
	if cmd.Flags().Changed("workers") {
		workers = self.workers
	}

	ctx := logging.WithLogger(cmd.Context(), slog.Default())
	results := worker.NewPool(workers, opts...).Parse(ctx, docs)

	if err := self.writeResults(cmd.OutOrStdout(), results); err != nil {
		return err
	}
	return self.writeMetrics(cmd)
}

func (self *parseFlags) parserOptions(cmd *cobra.Command,
) ([]parser.Option, error) {
	opts := config.Opts.ParserOptions()
	flags := cmd.Flags()

	if flags.Changed("base-url") {
		opts = append(opts, parser.WithBaseURL(self.baseURL))
	}
	if flags.Changed("strip-tracking") {
		opts = append(opts, parser.WithStripTracking(self.stripTracking))
	}
	if flags.Changed("default-rss") {
		v, err := parser.ParseRSSVersion(self.defaultRSS)
		if err != nil {
			return nil, fmt.Errorf("cli: invalid --default-rss: %w", err)
		}
		opts = append(opts, parser.WithDefaultRSS(v))
	}
	return opts, nil
}

func (self *parseFlags) writeResults(w io.Writer, results []worker.Result,
) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if self.prettyOutput(w) {
		enc.SetIndent("", "  ")
	}

	for i := range results {
		r := &results[i]
		if r.Err != nil {
			if !errors.Is(r.Err, parser.ErrNotFeed) {
				return fmt.Errorf("cli: parse %q: %w", r.Name, r.Err)
			}
			slog.Warn("Document is not a feed",
				slog.String("document", r.Name),
				slog.String("format", r.Format.String()),
				slog.Any("error", r.Err))
		}
		if err := enc.Encode(r.Feed); err != nil {
			return fmt.Errorf("cli: encode %q: %w", r.Name, err)
		}
	}
	return nil
}

func (self *parseFlags) prettyOutput(w io.Writer) bool {
	if self.pretty || config.Opts.PrettyOutput() {
		return true
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (self *parseFlags) writeMetrics(cmd *cobra.Command) error {
	var filename string
	switch {
	case cmd.Flags().Changed("metrics-file"):
		filename = self.metricsFile
	case config.Opts.HasMetricsFile():
		filename = config.Opts.MetricsFile()
	}
	if filename == "" {
		return nil
	}

	if err := metric.WriteTextfile(filename); err != nil {
		return err
	}
	slog.Debug("Metrics written", slog.String("filename", filename))
	return nil
}
