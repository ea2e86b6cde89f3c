package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Mode selects how a batch reaches the file.
type Mode int

const (
	// ModeCreate truncates the file and writes the header first.
	ModeCreate Mode = iota
	// ModeAppend adds rows without a header.
	ModeAppend
)

func (m Mode) String() string {
	if m == ModeCreate {
		return "create"
	}
	return "append"
}

// Sink receives batches of records.
type Sink interface {
	// Write persists records. Rows are durable once Write returns.
	Write(records []Record, mode Mode) error
	// Path identifies where the records go.
	Path() string
}

// RunFileName returns the file name for a run started at t.
func RunFileName(t time.Time) string {
	return t.Format("20060102_150405") + ".csv"
}

const maxRunFileAttempts = 1000

// ReserveRunFile creates an empty, previously absent file in dir named after
// t. When that name is taken, a numeric suffix is added (_2, _3, ...).
func ReserveRunFile(dir string, t time.Time) (string, error) {
	base := strings.TrimSuffix(RunFileName(t), ".csv")
	for i := 1; i <= maxRunFileAttempts; i++ {
		name := base + ".csv"
		if i > 1 {
			name = fmt.Sprintf("%s_%d.csv", base, i)
		}
		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("close %s: %w", path, err)
		}
		return path, nil
	}
	return "", fmt.Errorf("no free file name for %s in %s", base, dir)
}

// CSVSink writes comma-separated rows to a file on disk.
type CSVSink struct {
	path          string
	withReasoning bool
}

// NewCSVSink returns a sink for path. withReasoning fixes the column set
// for the whole file.
func NewCSVSink(path string, withReasoning bool) *CSVSink {
	return &CSVSink{path: path, withReasoning: withReasoning}
}

// Path returns the file path.
func (s *CSVSink) Path() string {
	return s.path
}

// Write writes records to the file. ModeCreate truncates and writes the
// header; ModeAppend appends rows only.
func (s *CSVSink) Write(records []Record, mode Mode) (err error) {
	flags := os.O_WRONLY | os.O_CREATE
	if mode == ModeCreate {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}

	f, err := os.OpenFile(s.path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", s.path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if mode == ModeCreate {
		if err := w.Write(Columns(s.withReasoning)); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for _, r := range records {
		if err := w.Write(r.row(s.withReasoning)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", s.path, err)
	}
	return f.Sync()
}

// ErrMissingColumn is returned by ReadAll when a required column is absent.
var ErrMissingColumn = errors.New("missing column")

// ReadAll reads every record from a file written by CSVSink. The reasoning
// pointer is set only when the file has a reasoning column.
func ReadAll(path string) ([]Record, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[col] = i
	}
	for _, col := range Columns(false) {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w %q in %s", ErrMissingColumn, col, path)
		}
	}
	reasoningIdx, withReasoning := idx[ColumnReasoning]

	var out []Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rec := Record{
			Text:  row[idx[ColumnText]],
			Label: row[idx[ColumnLabel]],
			Model: row[idx[ColumnModel]],
		}
		if withReasoning {
			reasoning := row[reasoningIdx]
			rec.Reasoning = &reasoning
		}
		out = append(out, rec)
	}
	return out, nil
}
