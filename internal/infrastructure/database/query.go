package database

import (
	"context"
	"fmt"
)

// Row is one result row keyed by column name.
//
// Values are normalised to int64, string or nil (SQL NULL). Column names are
// the names reported by the driver, so joined statements should select
// unambiguous columns (e.g. "users.*").
type Row map[string]any

// Query executes a parameterised statement and materialises every row before
// returning. Parameters bind positionally to the statement's ? placeholders.
//
// Rows are returned in the order the store produced them. A statement that
// matches nothing returns an empty, non-nil slice.
func (db *DB) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: reading columns: %w", ErrQueryFailed, err)
	}

	result := make([]Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %w", ErrQueryFailed, err)
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			v, err := normaliseValue(values[i])
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", col, err)
			}
			row[col] = v
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating rows: %w", ErrQueryFailed, err)
	}
	return result, nil
}

// normaliseValue maps a driver value onto the Row value domain.
func normaliseValue(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case int64:
		return val, nil
	case string:
		return val, nil
	case []byte:
		return string(val), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}
