package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// QueryResult holds the rows returned by one statement, columns in
// declaration order, rows in arrival order.
type QueryResult struct {
	Columns []string
	Rows    [][]any
}

// RowCount returns the number of rows.
func (r *QueryResult) RowCount() int {
	return len(r.Rows)
}

// Executor runs SQL statements against the pool.
type Executor struct {
	db     *DB
	logger *zap.Logger
}

// NewExecutor creates a new statement executor.
func NewExecutor(db *DB, logger *zap.Logger) *Executor {
	return &Executor{
		db:     db,
		logger: logger.Named("executor"),
	}
}

// ExecuteQuery runs exactly one SQL statement verbatim and returns the
// results. No rewriting, no parameterization: the statement text is what
// gets executed.
func (e *Executor) ExecuteQuery(ctx context.Context, sqlQuery string) (*QueryResult, error) {
	start := time.Now()

	rows, err := e.db.Query(ctx, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	fieldDescs := rows.FieldDescriptions()
	columns := make([]string, len(fieldDescs))
	for i, fd := range fieldDescs {
		columns[i] = string(fd.Name)
	}

	resultRows := make([][]any, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read row values: %w", err)
		}
		resultRows = append(resultRows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	e.logger.Debug("query executed",
		zap.Int("rows", len(resultRows)),
		zap.Duration("elapsed", time.Since(start)))

	return &QueryResult{
		Columns: columns,
		Rows:    resultRows,
	}, nil
}
