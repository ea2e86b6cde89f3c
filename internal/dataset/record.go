// Package dataset holds generated records and writes them to tabular files.
package dataset

// Column names, in file order.
const (
	ColumnText      = "text"
	ColumnLabel     = "label"
	ColumnModel     = "model"
	ColumnReasoning = "reasoning"
)

// Record is one generated row. Reasoning is nil when reasoning is not
// being saved. Records are values; copies never alias.
type Record struct {
	Text      string
	Label     string
	Model     string
	Reasoning *string
}

// NewRecord builds a record, attaching reasoning only when withReasoning
// is set.
func NewRecord(text, label, model, reasoning string, withReasoning bool) Record {
	r := Record{Text: text, Label: label, Model: model}
	if withReasoning {
		r.Reasoning = &reasoning
	}
	return r
}

// HasReasoning reports whether the record carries a reasoning value.
func (r Record) HasReasoning() bool {
	return r.Reasoning != nil
}

// Columns returns the header for a file with or without reasoning.
func Columns(withReasoning bool) []string {
	cols := []string{ColumnText, ColumnLabel, ColumnModel}
	if withReasoning {
		cols = append(cols, ColumnReasoning)
	}
	return cols
}

func (r Record) row(withReasoning bool) []string {
	row := []string{r.Text, r.Label, r.Model}
	if withReasoning {
		var reasoning string
		if r.Reasoning != nil {
			reasoning = *r.Reasoning
		}
		row = append(row, reasoning)
	}
	return row
}
