package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/insightdelivered/card-statement-parser/internal/api"
	"github.com/insightdelivered/card-statement-parser/internal/config"
	"github.com/insightdelivered/card-statement-parser/internal/logger"
	"github.com/insightdelivered/card-statement-parser/internal/models"
	"github.com/insightdelivered/card-statement-parser/internal/parser"
	"github.com/insightdelivered/card-statement-parser/internal/service"
	"github.com/insightdelivered/card-statement-parser/internal/writer"
)

const version = "2.0.0"

func main() {
	// CLI flags
	issuerFlag := flag.String("issuer", "", "Card issuer: hdfc, icici, sbi, axis, amex (auto-detected if omitted)")
	outputFlag := flag.String("output", "", "Output file path (defaults to input filename with the format's extension; single input only)")
	formatFlag := flag.String("format", "csv", "Output format: csv, xlsx, json")
	headerFlag := flag.Bool("header", true, "Include statement summary rows (CSV) or sheet (XLSX)")
	serveFlag := flag.Bool("serve", false, "Run the HTTP API instead of converting files")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Credit Card Statement PDF Parser
by Insight Delivered

Extracts the card number, dates, amounts due and transactions from
Indian credit card statement PDFs into CSV, XLSX or JSON.

Usage:
  card-statement-parser [flags] <input.pdf> [input2.pdf ...]
  card-statement-parser -serve

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Auto-detect issuer and write statement.csv
  card-statement-parser statement.pdf

  # Force the issuer and write a workbook
  card-statement-parser -issuer=hdfc -format=xlsx statement.pdf

  # Full record including field trace
  card-statement-parser -format=json -output=- statement.pdf

  # HTTP API (HTTP_ADDR, LOG_LEVEL, MAX_UPLOAD_MB, ... from env or .env)
  card-statement-parser -serve

Supported Issuers:
  %s
`, strings.Join(parser.DefaultRegistry().Issuers(), ", "))
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("card-statement-parser v%s\n", version)
		os.Exit(0)
	}

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	svc := service.New(parser.DefaultRegistry())

	if *serveFlag {
		if err := serve(cfg, svc); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	inputFiles := flag.Args()
	if *outputFlag != "" && len(inputFiles) > 1 {
		fatalf("-output can only be used with a single input file\n")
	}

	// Validate issuer flag if provided
	if *issuerFlag != "" {
		s, ok := svc.Registry().Lookup(*issuerFlag)
		if !ok {
			fatalf("Unknown issuer %q. Supported: %s\n", *issuerFlag, strings.Join(svc.Registry().Issuers(), ", "))
		}
		*issuerFlag = s.Name()
	}

	w, err := writer.New(*formatFlag, *headerFlag)
	if err != nil {
		fatalf("%v\n", err)
	}

	ctx := logger.WithContext(context.Background(), log)
	for _, inputPath := range inputFiles {
		if err := processFile(ctx, svc, w, inputPath, *issuerFlag, *outputFlag, *formatFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

func processFile(ctx context.Context, svc *service.Service, w writer.Writer, inputPath, issuer, outputPath, format string) error {
	// Validate input file
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	ext := strings.ToLower(filepath.Ext(inputPath))
	if ext != ".pdf" {
		return fmt.Errorf("expected .pdf file, got %q", ext)
	}

	toStdout := outputPath == "-"
	status := os.Stdout
	if toStdout {
		status = os.Stderr
	}
	fmt.Fprintf(status, "Processing: %s\n", inputPath)

	record, err := svc.ParseFileAs(ctx, inputPath, issuer)
	if err != nil {
		return err
	}
	if record == nil {
		return errors.New("could not detect the card issuer; try -issuer")
	}

	if issuer == "" {
		fmt.Fprintf(status, "  Detected issuer: %s\n", record.IssuerName)
	}
	printSummary(status, record)

	if toStdout {
		return w.Write(os.Stdout, record)
	}

	// Determine output path
	outPath := outputPath
	if outPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outPath = base + "." + strings.ToLower(format)
	}
	if err := w.WriteToFile(outPath, record); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	fmt.Fprintf(status, "  Output: %s\n", outPath)
	fmt.Fprintln(status, "  Done.")
	return nil
}

func printSummary(out *os.File, r *models.StatementRecord) {
	if r.CardholderName != "" {
		fmt.Fprintf(out, "  Cardholder: %s\n", r.CardholderName)
	}
	if r.CardLastFour != "" {
		fmt.Fprintf(out, "  Card: XXXX %s", r.CardLastFour)
		if r.CardVariant != "" {
			fmt.Fprintf(out, " (%s)", r.CardVariant)
		}
		fmt.Fprintln(out)
	}
	if r.PaymentDueDate != nil {
		fmt.Fprintf(out, "  Payment due: %s\n", r.PaymentDueDate)
	}
	if r.TotalAmountDue != nil {
		fmt.Fprintf(out, "  Total due: %s\n", r.TotalAmountDue.StringFixed(2))
	}
	fmt.Fprintf(out, "  Found %d transaction(s)\n", len(r.Transactions))

	if !r.IsValid() {
		fmt.Fprintf(out, "  Warning: incomplete statement, missing %s.\n", strings.Join(r.Missing(), ", "))
		fmt.Fprintln(out, "  Try specifying the issuer explicitly with -issuer if auto-detection was used.")
	}
}

func serve(cfg *config.Config, svc *service.Service) error {
	log := logger.FromContext(context.Background())
	app := api.NewApp(svc, api.Options{
		Version:      version,
		ParseTimeout: cfg.ParseTimeout,
		BodyLimit:    cfg.MaxUploadBytes(),
		CORSOrigins:  cfg.CORSOrigins,
		Logger:       log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("version", version).Msg("listening")
		errc <- app.Listen(cfg.HTTPAddr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
