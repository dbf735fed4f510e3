package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatch_SetClause(t *testing.T) {
	p := NewPatch().
		Set("name", "Rice 1kg").
		Set("price", "850.00")

	clause, args, next := p.SetClause()
	assert.Equal(t, "name = $1, price = $2", clause)
	assert.Equal(t, []any{"Rice 1kg", "850.00"}, args)
	assert.Equal(t, 3, next)
}

func TestPatch_SetSameColumnTwice(t *testing.T) {
	p := NewPatch().
		Set("stock", int64(10)).
		Set("stock", int64(25))

	clause, args, next := p.SetClause()
	assert.Equal(t, "stock = $1", clause)
	assert.Equal(t, []any{int64(25)}, args)
	assert.Equal(t, 2, next)
}

func TestPatch_IsEmpty(t *testing.T) {
	p := NewPatch()
	assert.True(t, p.IsEmpty())

	p.Set("name", "x")
	assert.False(t, p.IsEmpty())
}
