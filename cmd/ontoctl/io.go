package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ontoverse/ontoforge/adapter/canonical"
	"github.com/ontoverse/ontoforge/config"
	"github.com/ontoverse/ontoforge/ontology"
)

// loaded bundles everything an operation needs to run and then write its
// result back out: the graph itself, the package tree Save needs to
// reproduce unchanged structure, and the logger every operation traces
// through.
type loaded struct {
	graph  *ontology.Graph
	model  *canonical.Model
	logger *slog.Logger
}

func loadInput(ctx context.Context, flags *globalFlags) (*loaded, error) {
	if flags.input == "" {
		return nil, fmt.Errorf("--input is required")
	}
	logger, err := newLogger(flags.logLevel)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(flags.input)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", flags.input, err)
	}

	g, model, diagnostics, err := canonical.Load(ctx, data, config.New(), logger)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", flags.input, err)
	}
	if diagnostics.HasWarnings() {
		logger.Warn(diagnostics.String())
	}
	return &loaded{graph: g, model: model, logger: logger}, nil
}

func writeOutput(ctx context.Context, flags *globalFlags, l *loaded) error {
	data, err := canonical.Save(ctx, l.graph, l.model)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if flags.output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(flags.output, data, 0o644)
}

// reportDiagnostics logs any issue accumulated during the operation itself
// (recovered InvariantViolation/Recursion warnings land here; BadInput and
// NotFound surface as a returned error instead, never as a diagnostic).
func reportDiagnostics(l *loaded) {
	result := l.graph.Diagnostics()
	if result.Len() > 0 {
		l.logger.Warn(result.String())
	}
}
