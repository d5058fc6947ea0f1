package helpers

import (
	"fmt"
	"strings"
)

// UpdateBuilder assembles a sparse UPDATE statement: only columns that were
// present in the request are rewritten. Placeholders are numbered for pgx.
type UpdateBuilder struct {
	table   string
	columns []string
	args    []interface{}
}

// NewUpdateBuilder creates a builder for the given table.
func NewUpdateBuilder(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

// Set adds a column assignment.
func (b *UpdateBuilder) Set(column string, value interface{}) *UpdateBuilder {
	b.args = append(b.args, value)
	b.columns = append(b.columns, fmt.Sprintf("%s = $%d", column, len(b.args)))
	return b
}

// SetIfNotNil adds a column assignment only when the pointer is non-nil.
func (b *UpdateBuilder) SetIfNotNil(column string, value *string) *UpdateBuilder {
	if value != nil {
		b.Set(column, *value)
	}
	return b
}

// HasUpdates reports whether any column was set.
func (b *UpdateBuilder) HasUpdates() bool {
	return len(b.columns) > 0
}

// Build finalizes the statement with a WHERE clause on the given column.
func (b *UpdateBuilder) Build(whereColumn string, whereValue interface{}) (string, []interface{}) {
	b.args = append(b.args, whereValue)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		b.table, strings.Join(b.columns, ", "), whereColumn, len(b.args))
	return query, b.args
}
