package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateBuilderSingleColumn(t *testing.T) {
	builder := NewUpdateBuilder("students")
	builder.Set("name", "Ada")

	query, args := builder.Build("id", int64(7))

	assert.Equal(t, "UPDATE students SET name = $1 WHERE id = $2", query)
	assert.Equal(t, []interface{}{"Ada", int64(7)}, args)
}

func TestUpdateBuilderMultipleColumns(t *testing.T) {
	builder := NewUpdateBuilder("courses")
	builder.Set("name", "Algebra")
	builder.Set("dept_id", int64(3))

	query, args := builder.Build("id", int64(9))

	assert.Equal(t, "UPDATE courses SET name = $1, dept_id = $2 WHERE id = $3", query)
	assert.Equal(t, []interface{}{"Algebra", int64(3), int64(9)}, args)
}

func TestUpdateBuilderSetIfNotNil(t *testing.T) {
	name := "Ada"

	builder := NewUpdateBuilder("students")
	builder.SetIfNotNil("name", &name)
	builder.SetIfNotNil("nickname", nil)

	assert.True(t, builder.HasUpdates())

	query, _ := builder.Build("id", int64(1))
	assert.Equal(t, "UPDATE students SET name = $1 WHERE id = $2", query)
}

func TestUpdateBuilderNoColumns(t *testing.T) {
	builder := NewUpdateBuilder("students")
	builder.SetIfNotNil("name", nil)

	assert.False(t, builder.HasUpdates())
}
