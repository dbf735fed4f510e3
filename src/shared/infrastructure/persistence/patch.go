package persistence

import (
	"fmt"
	"strings"
)

// Patch accumulates column assignments for a partial UPDATE. Columns are code
// literals, values travel as query parameters, so the rendered clause is
// injection-safe regardless of input.
type Patch struct {
	columns []string
	values  []any
}

// NewPatch creates an empty patch.
func NewPatch() *Patch {
	return &Patch{}
}

// Set records a new value for a column. Setting the same column twice
// replaces the earlier value instead of emitting a duplicate assignment.
func (p *Patch) Set(column string, value any) *Patch {
	for i, c := range p.columns {
		if c == column {
			p.values[i] = value
			return p
		}
	}
	p.columns = append(p.columns, column)
	p.values = append(p.values, value)
	return p
}

// IsEmpty reports whether no assignment was recorded.
func (p *Patch) IsEmpty() bool {
	return len(p.columns) == 0
}

// SetClause renders the assignments as a parameterized SQL fragment like
// "name = $1, price = $2". Placeholders start at $1; the caller continues
// numbering from the returned next index.
func (p *Patch) SetClause() (string, []any, int) {
	parts := make([]string, 0, len(p.columns))
	for i, c := range p.columns {
		parts = append(parts, fmt.Sprintf("%s = $%d", c, i+1))
	}
	return strings.Join(parts, ", "), p.values, len(p.columns) + 1
}
