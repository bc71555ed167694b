package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/driver_sync/pkg/validate"
)

// CLI-приложение для проверки дампов заказов (ответы REST, выгрузки кэша).
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads JSONL from stdin.")
	outputPath := flag.String("out", "", "path for valid canonical orders. If empty, writes to stdout.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *inputPath, *outputPath, validate.InputFormat(*formatStr)); err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, inputPath, outputPath string, format validate.InputFormat) error {
	var out io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	orderValidator := validate.NewOrderValidator()

	var (
		summary string
		err     error
	)
	if inputPath == "" {
		summary, err = validate.ValidateReader(ctx, orderValidator, os.Stdin, format, out)
	} else {
		summary, err = validate.ValidateFile(ctx, orderValidator, inputPath, format, out)
	}
	if err != nil {
		return fmt.Errorf("%w (%s)", err, summary)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
	return nil
}
