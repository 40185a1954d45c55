// Package dataset loads wide-format confidence experiment tables and
// reshapes them into long-format observations.
//
// The wide convention: a participant-id column plus four per-item column
// families, a{n} correctness, c{n} confidence, d{n} decision and t{n}
// response time, for item indices 1..K. K is detected from the header;
// d{n} and t{n} are optional. Columns outside the convention are ignored.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/okian/metacog/internal/domain/model"
	"github.com/okian/metacog/internal/domain/stats"
)

// Column family prefixes of the wide convention.
const (
	familyCorrect    = 'a'
	familyConfidence = 'c'
	familyDecision   = 'd'
	familyRT         = 't'
)

// Loader reads wide CSV tables.
type Loader struct {
	idColumn string
	missing  map[string]struct{}
}

// NewLoader creates a Loader with configuration options.
func NewLoader(opts ...Option) *Loader {
	o := newOptions(opts...)
	missing := make(map[string]struct{}, len(o.missingTokens))
	for _, tok := range o.missingTokens {
		missing[tok] = struct{}{}
	}
	return &Loader{idColumn: o.idColumn, missing: missing}
}

// Load reads the wide CSV file at path.
func (l *Loader) Load(ctx context.Context, path string) ([]model.WideRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenDataset, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	return l.Read(ctx, f)
}

// header describes where each column family lives in the CSV row.
type header struct {
	idIdx int
	items int
	// per family: item index n (1-based) -> column index, -1 when absent
	correct    []int
	confidence []int
	decision   []int
	rt         []int
}

// Read parses a wide CSV table from r.
func (l *Loader) Read(ctx context.Context, r io.Reader) ([]model.WideRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}
	h, err := l.parseHeader(head)
	if err != nil {
		return nil, err
	}

	var records []model.WideRecord
	seen := make(map[string]struct{})
	for line := 2; ; line++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadValue, line, err)
		}

		rec, err := l.parseRow(h, row, line)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[rec.Participant]; dup {
			return nil, fmt.Errorf("%w: participant %q appears twice", ErrDuplicate, rec.Participant)
		}
		seen[rec.Participant] = struct{}{}
		records = append(records, rec)
	}
	return records, nil
}

func (l *Loader) parseHeader(head []string) (*header, error) {
	h := &header{idIdx: -1}

	// family prefix -> item index -> column index
	families := map[byte]map[int]int{
		familyCorrect:    {},
		familyConfidence: {},
		familyDecision:   {},
		familyRT:         {},
	}
	for col, name := range head {
		if name == l.idColumn {
			h.idIdx = col
			continue
		}
		if len(name) < 2 {
			continue
		}
		fam, ok := families[name[0]]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(name[1:])
		if err != nil || n < 1 {
			continue // not a family column, e.g. "age"
		}
		fam[n] = col
		if name[0] == familyCorrect && n > h.items {
			h.items = n
		}
	}

	if h.idIdx < 0 {
		return nil, fmt.Errorf("%w: id column %q not found", ErrBadHeader, l.idColumn)
	}
	if h.items == 0 {
		return nil, fmt.Errorf("%w: no correctness columns (a1..aK) found", ErrBadHeader)
	}

	index := func(fam map[int]int) []int {
		idx := make([]int, h.items)
		for n := 1; n <= h.items; n++ {
			if col, ok := fam[n]; ok {
				idx[n-1] = col
			} else {
				idx[n-1] = -1
			}
		}
		return idx
	}
	h.correct = index(families[familyCorrect])
	h.confidence = index(families[familyConfidence])
	h.decision = index(families[familyDecision])
	h.rt = index(families[familyRT])

	for n := 1; n <= h.items; n++ {
		if h.correct[n-1] < 0 {
			return nil, fmt.Errorf("%w: missing column a%d", ErrBadHeader, n)
		}
		if h.confidence[n-1] < 0 {
			return nil, fmt.Errorf("%w: missing column c%d", ErrBadHeader, n)
		}
	}
	return h, nil
}

func (l *Loader) parseRow(h *header, row []string, line int) (model.WideRecord, error) {
	cell := func(col int) (string, bool) {
		if col < 0 || col >= len(row) {
			return "", false
		}
		return row[col], true
	}

	id, ok := cell(h.idIdx)
	if !ok || id == "" {
		return model.WideRecord{}, fmt.Errorf("%w: line %d: empty participant id", ErrBadValue, line)
	}

	rec := model.WideRecord{
		Participant: id,
		Correct:     make([]float64, h.items),
		Confidence:  make([]float64, h.items),
		Decision:    make([]string, h.items),
		RT:          make([]float64, h.items),
	}

	for n := 0; n < h.items; n++ {
		v, err := l.numericCell(row, h.correct[n], line)
		if err != nil {
			return model.WideRecord{}, err
		}
		if !stats.IsMissing(v) && v != 0 && v != 1 {
			return model.WideRecord{}, fmt.Errorf("%w: line %d: correctness must be 0 or 1, got %g", ErrBadValue, line, v)
		}
		rec.Correct[n] = v

		if rec.Confidence[n], err = l.numericCell(row, h.confidence[n], line); err != nil {
			return model.WideRecord{}, err
		}
		if rec.RT[n], err = l.numericCell(row, h.rt[n], line); err != nil {
			return model.WideRecord{}, err
		}

		if s, ok := cell(h.decision[n]); ok {
			if _, miss := l.missing[s]; !miss {
				rec.Decision[n] = s
			}
		}
	}
	return rec, nil
}

// numericCell parses one numeric cell; absent columns and missing tokens map
// to the missing sentinel.
func (l *Loader) numericCell(row []string, col, line int) (float64, error) {
	if col < 0 || col >= len(row) {
		return stats.Missing(), nil
	}
	s := row[col]
	if _, miss := l.missing[s]; miss {
		return stats.Missing(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %q is not numeric", ErrBadValue, line, s)
	}
	return v, nil
}
