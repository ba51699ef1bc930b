package learnlog

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"gopkg.in/yaml.v3"
)

// csvHeader is the exact header row consumers of the export rely on.
var csvHeader = []string{"EntryType", "Timestamp", "Text", "Mood", "Status"}

// WriteCSV exports every record to a CSV file, one row per record, in
// category declaration order then insertion order. Status is populated only
// for goal records. The export is write-only and lossy with respect to the
// record kind; it exists for spreadsheet consumption, not round-trips.
func WriteCSV(path string, store *Store) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("csv.Write(header) > %w", err)
	}
	for _, c := range categories {
		for _, record := range store.Records(c) {
			status := ""
			if record.Kind == KindGoal {
				status = record.Status
			}
			row := []string{string(record.Category), record.Timestamp, record.Text, record.Mood, status}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("csv.Write(row) > %w", err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv.Flush() > %w", err)
	}

	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("writeFileAtomic(%s) > %w", path, err)
	}
	return nil
}

// yamlRecord is the export shape of a record. Unlike CSV, the YAML export
// keeps the record kind, but it is still a write-only convenience format.
type yamlRecord struct {
	EntryType string `yaml:"entry_type"`
	Kind      string `yaml:"kind"`
	Text      string `yaml:"text"`
	Timestamp string `yaml:"timestamp"`
	Mood      string `yaml:"mood,omitempty"`
	Status    string `yaml:"status,omitempty"`
}

// WriteYAML exports every non-empty category to a YAML file keyed by
// category label.
func WriteYAML(path string, store *Store) error {
	out := make(map[string][]yamlRecord)
	for _, c := range categories {
		records := store.Records(c)
		if len(records) == 0 {
			continue
		}
		rows := make([]yamlRecord, 0, len(records))
		for _, record := range records {
			rows = append(rows, yamlRecord{
				EntryType: string(record.Category),
				Kind:      string(record.Kind),
				Text:      record.Text,
				Timestamp: record.Timestamp,
				Mood:      record.Mood,
				Status:    record.Status,
			})
		}
		out[string(c)] = rows
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("yaml.Encode() > %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("yaml.Encoder.Close() > %w", err)
	}

	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("writeFileAtomic(%s) > %w", path, err)
	}
	return nil
}
