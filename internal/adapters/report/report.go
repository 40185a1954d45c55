// Package report renders computed metrics tables for human or machine
// consumption.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/okian/metacog/internal/domain/types"
)

// Format selects the rendering of a report.
type Format string

// Supported formats.
const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// ParseFormat maps a format name onto a Format. Case-insensitive.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "table", "text":
		return FormatTable, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatTable, fmt.Errorf("unknown output format: %s", name)
	}
}

// Report is one rendered metrics table plus metadata.
type Report struct {
	Title string             `json:"title"`
	RunID string             `json:"run_id,omitempty"`
	Rows  []types.MetricsRow `json:"rows"`
}

// columns shared by every format, in render order.
var columnNames = []string{"key", "n", "accuracy", "confidence", "bias", "discrimination", "rank_discrimination"} //nolint:gochecknoglobals // render-order constant

// Renderer writes reports in a configured format.
type Renderer struct {
	format Format
}

// NewRenderer creates a Renderer with configuration options.
func NewRenderer(opts ...Option) *Renderer {
	o := newOptions(opts...)
	return &Renderer{format: o.format}
}

// Render writes the report to w in the renderer's format.
func (r *Renderer) Render(w io.Writer, rep Report) error {
	switch r.format {
	case FormatCSV:
		return renderCSV(w, rep)
	case FormatJSON:
		return renderJSON(w, rep)
	default:
		return renderTable(w, rep)
	}
}

func renderTable(w io.Writer, rep Report) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(rep.Title)

	header := make(table.Row, 0, len(columnNames))
	for _, c := range columnNames {
		header = append(header, c)
	}
	t.AppendHeader(header)

	for _, row := range rep.Rows {
		t.AppendRow(table.Row{
			row.Key,
			row.N,
			row.Accuracy.String(),
			row.Confidence.String(),
			row.Bias.String(),
			row.Discrimination.String(),
			row.RankDiscrimination.String(),
		})
	}
	t.Render()
	return nil
}

func renderCSV(w io.Writer, rep Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columnNames); err != nil {
		return err
	}
	for _, row := range rep.Rows {
		record := []string{
			row.Key,
			strconv.Itoa(row.N),
			row.Accuracy.String(),
			row.Confidence.String(),
			row.Bias.String(),
			row.Discrimination.String(),
			row.RankDiscrimination.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func renderJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
