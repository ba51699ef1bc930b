// Package cli renders learnflow data for terminal consumption. It is a
// read-only presentation layer: it consumes summaries and snapshots and
// never touches store internals.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mlindborg/learnflow/internal/learnlog"
)

// Renderer writes summary and history views to a writer.
type Renderer struct {
	writer io.Writer
	bold   *color.Color
	italic *color.Color
}

// NewRenderer creates a renderer targeting the given writer.
func NewRenderer(writer io.Writer) *Renderer {
	return &Renderer{
		writer: writer,
		bold:   color.New(color.Bold),
		italic: color.New(color.Italic),
	}
}

// RenderSummary prints one line per category that has at least one record,
// in category declaration order.
func (r *Renderer) RenderSummary(summary map[learnlog.Category]string) {
	if len(summary) == 0 {
		fmt.Fprintln(r.writer, "No entries yet.")
		return
	}
	for _, category := range learnlog.Categories() {
		line, ok := summary[category]
		if !ok {
			continue
		}
		fmt.Fprintln(r.writer, line)
	}
}

// RenderHistory prints every record grouped under a bold category header.
// When only is non-empty, other categories are skipped.
func (r *Renderer) RenderHistory(store *learnlog.Store, only learnlog.Category) {
	empty := true
	for _, category := range learnlog.Categories() {
		if only != "" && category != only {
			continue
		}
		records := store.Records(category)
		if len(records) == 0 {
			continue
		}
		empty = false

		r.bold.Fprintf(r.writer, "%s\n", category)
		for _, record := range records {
			r.italic.Fprintf(r.writer, "  [%s]", record.Timestamp)
			fmt.Fprintf(r.writer, " %s%s\n", record.Text, recordSuffix(record))
		}
	}
	if empty {
		fmt.Fprintln(r.writer, "No entries yet.")
	}
}

// RenderLatest prints the latest text for a category, or a placeholder.
func (r *Renderer) RenderLatest(category learnlog.Category, text string) {
	if text == "" {
		fmt.Fprintf(r.writer, "%s: (none)\n", category)
		return
	}
	fmt.Fprintf(r.writer, "%s: %s\n", category, text)
}

func recordSuffix(record learnlog.Record) string {
	if record.Kind == learnlog.KindGoal {
		return fmt.Sprintf(" (Status: %s)", record.Status)
	}
	if record.Mood != "" {
		return fmt.Sprintf(" (Mood: %s)", record.Mood)
	}
	return ""
}
