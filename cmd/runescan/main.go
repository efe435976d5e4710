package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/scalecode-solutions/runescan"
	"github.com/scalecode-solutions/runescan/internal/config"
)

// maxLine bounds the length of a single input line.
const maxLine = 1 << 20

func main() {
	var (
		configDir = flag.String("config", ".", "Directory holding runescan.env")
		opName    = flag.String("op", "", "Operation: "+operationNames()+" (default from config)")
		logLevel  = flag.String("log", "", "Log level: debug, info, warn, error (default from config)")
		raw       = flag.Bool("raw", false, "Print text results without quoting")
	)
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Usage: runescan [-op name] [-config dir] [-log level] [-raw] [file]")
		os.Exit(1)
	}

	if err := run(*configDir, *opName, *logLevel, *raw, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configDir, opName, logLevel string, raw bool, path string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if opName != "" {
		cfg.Operation = opName
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if raw {
		cfg.Quote = false
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync fails on some terminals
	runescan.SetLogger(logger)

	op, ok := lookupOperation(cfg.Operation)
	if !ok {
		return fmt.Errorf("unknown operation %q, want one of %s", cfg.Operation, operationNames())
	}

	in := io.Reader(os.Stdin)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	lines, err := scan(in, os.Stdout, op, cfg.Quote)
	if err != nil {
		return err
	}
	logger.Debug("input processed", zap.String("op", op.name), zap.Int("lines", lines))
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// scan applies op to every line of r and writes one result line per input
// line to w. It returns the number of lines processed.
func scan(r io.Reader, w io.Writer, op operation, quote bool) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	out := bufio.NewWriter(w)

	lines := 0
	for scanner.Scan() {
		lines++
		if _, err := fmt.Fprintln(out, op.apply(scanner.Bytes(), quote)); err != nil {
			return lines, fmt.Errorf("write output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("read input: %w", err)
	}
	if err := out.Flush(); err != nil {
		return lines, fmt.Errorf("write output: %w", err)
	}
	return lines, nil
}
