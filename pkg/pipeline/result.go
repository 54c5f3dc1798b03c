package pipeline

import (
	"fmt"
	"strings"

	"github.com/aeroquery/aeroquery/pkg/database"
)

// ResultKind discriminates the three disjoint shapes a query outcome can
// take. Callers must distinguish all three.
type ResultKind int

const (
	// ResultRows is a non-empty row sequence.
	ResultRows ResultKind = iota
	// ResultEmpty means the statement ran but returned no rows.
	ResultEmpty
	// ResultError carries the description of an execution failure.
	ResultError
)

// Result is the outcome of executing one statement.
type Result struct {
	Kind    ResultKind
	Columns []string
	Rows    [][]any
	Err     string // set only for ResultError
}

func resultFromQuery(qr *database.QueryResult) *Result {
	if qr.RowCount() == 0 {
		return &Result{Kind: ResultEmpty}
	}
	return &Result{
		Kind:    ResultRows,
		Columns: qr.Columns,
		Rows:    qr.Rows,
	}
}

func resultFromError(err error) *Result {
	return &Result{
		Kind: ResultError,
		Err:  fmt.Sprintf("SQL execution error: %v", err),
	}
}

// Render serializes the result to text. The same rendering feeds the
// summarizer and the console output, so all three shapes must produce
// something readable.
func (r *Result) Render() string {
	switch r.Kind {
	case ResultEmpty:
		return "Query ran but returned no rows."
	case ResultError:
		return r.Err
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(r.Columns, " | "))
	sb.WriteString("\n")
	for _, row := range r.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatValue(v)
		}
		sb.WriteString(strings.Join(cells, " | "))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RowCount returns the number of rows, zero for non-row results.
func (r *Result) RowCount() int {
	return len(r.Rows)
}

func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}
