// Package sqlset accumulates the column assignments of a partial UPDATE in
// the order they were given.
package sqlset

import (
	"errors"

	"gorm.io/gorm/clause"
)

var ErrEmpty = errors.New("sqlset: no assignments")

// Builder accumulates column assignments in insertion order. Setting the
// same column twice keeps the first position and the last value.
type Builder struct {
	set clause.Set
}

func New() *Builder {
	return &Builder{}
}

// Set records column = value.
func (b *Builder) Set(column string, value interface{}) *Builder {
	for i := range b.set {
		if b.set[i].Column.Name == column {
			b.set[i].Value = value
			return b
		}
	}
	b.set = append(b.set, clause.Assignment{Column: clause.Column{Name: column}, Value: value})
	return b
}

// SetIfNotEmpty records column = raw unless raw is the empty string.
func (b *Builder) SetIfNotEmpty(column, raw string) *Builder {
	if raw == "" {
		return b
	}
	return b.Set(column, raw)
}

func (b *Builder) Len() int {
	return len(b.set)
}

// Columns returns the assigned columns in order.
func (b *Builder) Columns() []string {
	out := make([]string, 0, len(b.set))
	for _, a := range b.set {
		out = append(out, a.Column.Name)
	}
	return out
}

// Values returns the assigned values in column order.
func (b *Builder) Values() []interface{} {
	out := make([]interface{}, 0, len(b.set))
	for _, a := range b.set {
		out = append(out, a.Value)
	}
	return out
}

// Clause returns the assignments as a gorm SET clause. The dialect quotes
// the column names when it is rendered.
func (b *Builder) Clause() (clause.Set, error) {
	if len(b.set) == 0 {
		return nil, ErrEmpty
	}
	out := make(clause.Set, len(b.set))
	copy(out, b.set)
	return out, nil
}
