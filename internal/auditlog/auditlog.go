// Package auditlog writes the append-only audit trail of committed records.
// The trail is write-only: nothing here truncates, rewrites or reads it.
package auditlog

import (
	"fmt"
	"os"

	"github.com/mlindborg/learnflow/internal/learnlog"
)

// FileWriter appends one line per record to a plain text file.
// It implements learnlog.AuditWriter.
type FileWriter struct {
	path string
}

// NewFileWriter creates a writer for the given log file path.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

// Write appends the record's audit line. The file is opened in append mode
// for every write so the trail survives interleaved invocations.
func (w *FileWriter) Write(record learnlog.Record) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("os.OpenFile(%s) > %w", w.path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := f.WriteString(Line(record) + "\n"); err != nil {
		return fmt.Errorf("f.WriteString(%s) > %w", w.path, err)
	}
	return nil
}

// Line renders the audit line for a record:
// "[{timestamp}] {category}: {text}", with a status suffix for goal records
// or a mood suffix for any other record that carries a mood.
func Line(record learnlog.Record) string {
	line := fmt.Sprintf("[%s] %s: %s", record.Timestamp, record.Category, record.Text)
	if record.Kind == learnlog.KindGoal {
		return line + fmt.Sprintf(" (Status: %s)", record.Status)
	}
	if record.Mood != "" {
		return line + fmt.Sprintf(" (Mood: %s)", record.Mood)
	}
	return line
}
