// Package datasync imports the JSON history into the database.
package datasync

import (
	"context"
	"fmt"
	"io"

	"github.com/mlindborg/learnflow/internal/learnlog"
)

type recordKey struct {
	category   learnlog.Category
	recordedAt string
	text       string
}

// ImportResult tracks counts for an import run.
type ImportResult struct {
	RecordsNew     int
	RecordsSkipped int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
}

// Importer writes history records into a record repository, skipping
// records that are already present.
type Importer struct {
	repo   learnlog.RecordRepository
	writer io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(repo learnlog.RecordRepository, writer io.Writer) *Importer {
	return &Importer{
		repo:   repo,
		writer: writer,
	}
}

// ImportStore imports every record of the store in category declaration
// order then insertion order. A record is a duplicate when an existing row
// matches its category, timestamp and text.
func (imp *Importer) ImportStore(ctx context.Context, store *learnlog.Store, opts ImportOptions) (*ImportResult, error) {
	existing, err := imp.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.FindAll() > %w", err)
	}

	seen := make(map[recordKey]bool, len(existing))
	for _, record := range existing {
		seen[keyOf(record)] = true
	}

	result := &ImportResult{}
	for _, category := range learnlog.Categories() {
		for _, record := range store.Records(category) {
			key := keyOf(record)
			if seen[key] {
				result.RecordsSkipped++
				fmt.Fprintf(imp.writer, "  [SKIP]  %s %q\n", record.Category, record.Text)
				continue
			}
			seen[key] = true

			if !opts.DryRun {
				if _, err := imp.repo.Create(ctx, record); err != nil {
					return nil, fmt.Errorf("repo.Create(%s %q) > %w", record.Category, record.Text, err)
				}
			}
			result.RecordsNew++
			fmt.Fprintf(imp.writer, "  [NEW]  %s %q\n", record.Category, record.Text)
		}
	}

	fmt.Fprintf(imp.writer, "Records: %d new, %d skipped\n", result.RecordsNew, result.RecordsSkipped)
	return result, nil
}

func keyOf(record learnlog.Record) recordKey {
	return recordKey{
		category:   record.Category,
		recordedAt: record.Timestamp,
		text:       record.Text,
	}
}
