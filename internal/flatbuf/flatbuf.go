// Copyright (C) 2025 CardinalHQ, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

// Package flatbuf implements the flat, column-oriented row buffer that a
// Block accumulates rows into. Columns are stored as independent Go slices
// so that a rollback can restore the buffer to an earlier row count by
// truncating each slice, with no risk of a partially-written row surviving
// a failed append.
package flatbuf

import (
	"fmt"

	"github.com/Gutomata/nebula/internal/pipeline"
	"github.com/Gutomata/nebula/internal/pipeline/wkk"
	"github.com/Gutomata/nebula/internal/schema"
)

// FlatBuffer accumulates rows for a single Schema into per-column slices.
// It is not safe for concurrent use; callers serialize access the way a
// Block serializes access to its buffer.
type FlatBuffer struct {
	schema  *schema.Schema
	order   []wkk.ColumnKey
	columns map[wkk.ColumnKey][]any
	rows    int
}

// New returns an empty FlatBuffer for s.
func New(s *schema.Schema) *FlatBuffer {
	order := make([]wkk.ColumnKey, len(s.Fields))
	columns := make(map[wkk.ColumnKey][]any, len(s.Fields))
	for i, f := range s.Fields {
		k := f.WireKey()
		order[i] = k
		columns[k] = nil
	}
	return &FlatBuffer{schema: s, order: order, columns: columns}
}

// Schema returns the buffer's column schema.
func (b *FlatBuffer) Schema() *schema.Schema { return b.schema }

// Len returns the number of complete rows currently held.
func (b *FlatBuffer) Len() int { return b.rows }

// Add appends one row, reading each schema column out of r by name. Add
// either appends a complete row to every column slice or, on error, leaves
// the buffer exactly as it was (no partial row is ever visible).
func (b *FlatBuffer) Add(r pipeline.Row) error {
	values := make([]any, len(b.order))
	for i, f := range b.schema.Fields {
		v, err := readColumn(r, f)
		if err != nil {
			return fmt.Errorf("flatbuf: add row: column %q: %w", f.Name, err)
		}
		values[i] = v
	}
	for i, k := range b.order {
		b.columns[k] = append(b.columns[k], values[i])
	}
	b.rows++
	return nil
}

func readColumn(r pipeline.Row, f *schema.Column) (any, error) {
	if r.IsNull(f.Name) {
		return nil, nil
	}
	switch f.Kind {
	case schema.KindBool:
		return r.ReadBool(f.Name), nil
	case schema.KindInt8:
		return r.ReadByte(f.Name), nil
	case schema.KindInt16:
		return r.ReadShort(f.Name), nil
	case schema.KindInt32:
		return r.ReadInt(f.Name), nil
	case schema.KindInt64:
		return r.ReadLong(f.Name), nil
	case schema.KindFloat32:
		return r.ReadFloat(f.Name), nil
	case schema.KindFloat64:
		return r.ReadDouble(f.Name), nil
	case schema.KindString:
		return r.ReadString(f.Name), nil
	case schema.KindList:
		return r.ReadList(f.Name), nil
	case schema.KindMap:
		return r.ReadMap(f.Name), nil
	default:
		return nil, fmt.Errorf("unsupported column kind %s", f.Kind)
	}
}

// Mark returns a rollback point for the buffer's current length. Pass the
// returned value to Rollback to discard every row added since.
func (b *FlatBuffer) Mark() int { return b.rows }

// Rollback truncates the buffer back to mark, which must have come from an
// earlier call to Mark on this buffer. Truncation only resets each column
// slice's length, so the restored state is byte-for-byte identical to the
// buffer's state when Mark was taken — no copy or rewrite is needed.
func (b *FlatBuffer) Rollback(mark int) {
	if mark < 0 || mark > b.rows {
		panic(fmt.Sprintf("flatbuf: rollback mark %d out of range [0,%d]", mark, b.rows))
	}
	for _, k := range b.order {
		b.columns[k] = b.columns[k][:mark]
	}
	b.rows = mark
}

// RollbackLast atomically discards the most recently added row, returning
// the buffer to the byte-exact state it was in before that Add. It panics
// if the buffer is empty, matching the source's treatment of rollback on
// an empty FlatBuffer as a programmer error.
func (b *FlatBuffer) RollbackLast() {
	if b.rows == 0 {
		panic("flatbuf: rollback on empty FlatBuffer")
	}
	b.Rollback(b.rows - 1)
}

// Row returns a read-only view over row i, 0 <= i < Len().
func (b *FlatBuffer) Row(i int) pipeline.Row {
	if i < 0 || i >= b.rows {
		panic(fmt.Sprintf("flatbuf: row index %d out of range [0,%d)", i, b.rows))
	}
	return rowView{buf: b, idx: i}
}

// Rows returns a view over every row currently held, in append order.
func (b *FlatBuffer) Rows() []pipeline.Row {
	out := make([]pipeline.Row, b.rows)
	for i := range out {
		out[i] = rowView{buf: b, idx: i}
	}
	return out
}

// rowView is a non-owning pipeline.Row over a single FlatBuffer row.
type rowView struct {
	buf *FlatBuffer
	idx int
}

var _ pipeline.Row = rowView{}

func (v rowView) value(name string) any {
	return v.buf.columns[wkk.NewColumnKey(name)][v.idx]
}

func (v rowView) IsNull(name string) bool {
	return v.value(name) == nil
}

func (v rowView) ReadBool(name string) bool {
	b, _ := v.value(name).(bool)
	return b
}

func (v rowView) ReadByte(name string) int8 {
	b, _ := v.value(name).(int8)
	return b
}

func (v rowView) ReadShort(name string) int16 {
	s, _ := v.value(name).(int16)
	return s
}

func (v rowView) ReadInt(name string) int32 {
	i, _ := v.value(name).(int32)
	return i
}

func (v rowView) ReadLong(name string) int64 {
	l, _ := v.value(name).(int64)
	return l
}

func (v rowView) ReadFloat(name string) float32 {
	f, _ := v.value(name).(float32)
	return f
}

func (v rowView) ReadDouble(name string) float64 {
	d, _ := v.value(name).(float64)
	return d
}

func (v rowView) ReadString(name string) string {
	s, _ := v.value(name).(string)
	return s
}

func (v rowView) ReadList(name string) pipeline.ListView {
	l, _ := v.value(name).(pipeline.ListView)
	return l
}

func (v rowView) ReadMap(name string) pipeline.MapView {
	m, _ := v.value(name).(pipeline.MapView)
	return m
}
