package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/spboyer/lattelab/internal/catalog"
	"github.com/spboyer/lattelab/internal/config"
	"github.com/spboyer/lattelab/internal/promptscore"
	"github.com/spboyer/lattelab/internal/service"
	"github.com/spboyer/lattelab/internal/simulation"
	"github.com/spboyer/lattelab/internal/store"
)

// loadCatalog returns the built-in catalog, or the operator-provided one
// when LATTE_LAB_SUITES points at a file.
func loadCatalog(settings *config.Settings) (*catalog.Catalog, error) {
	if settings.SuitesFile == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(settings.SuitesFile)
	if err != nil {
		return nil, fmt.Errorf("loading suite catalog: %w", err)
	}
	return cat, nil
}

// buildService wires store, engine, and scorer from settings. The returned
// close func releases the database and must be called before exit.
func buildService(settings *config.Settings, opts ...service.Option) (*service.Service, func() error, error) {
	cat, err := loadCatalog(settings)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.OpenBadger(settings.DBPath, store.WithInMemory(settings.DBInMemory))
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	engine := simulation.NewEngine(cat, simulation.WithSeed(settings.Seed))
	opts = append([]service.Option{service.WithMockMode(settings.MockMode)}, opts...)
	svc := service.New(st, engine, promptscore.HeuristicScorer{}, opts...)
	return svc, st.Close, nil
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// renderTable prints rows as aligned columns; the first row is the header.
func renderTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for _, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			if i > 0 {
				line.WriteString("  ")
			}
			line.WriteString(padRight(cell, widths[i]))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}
	return b.String()
}
