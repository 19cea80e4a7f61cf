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

// Package pipeline defines the row capability set shared by file readers,
// the row adapter, and the flat row buffer: a read-by-name view over typed
// primitive, list, and map columns.
package pipeline

import (
	"github.com/Gutomata/nebula/internal/pipeline/wkk"
)

// Row is a read-by-name view over a single record. Implementations back
// both raw rows produced by a FileSource and the rows stored in a
// FlatBuffer, so that a RowAdapter can wrap either transparently.
type Row interface {
	ReadBool(name string) bool
	ReadByte(name string) int8
	ReadShort(name string) int16
	ReadInt(name string) int32
	ReadLong(name string) int64
	ReadFloat(name string) float32
	ReadDouble(name string) float64
	ReadString(name string) string
	ReadList(name string) ListView
	ReadMap(name string) MapView
	IsNull(name string) bool
}

// ListView is a read-only view over a list<T> column value.
type ListView interface {
	Len() int
	IsNullAt(i int) bool
	ReadBoolAt(i int) bool
	ReadByteAt(i int) int8
	ReadShortAt(i int) int16
	ReadIntAt(i int) int32
	ReadLongAt(i int) int64
	ReadFloatAt(i int) float32
	ReadDoubleAt(i int) float64
	ReadStringAt(i int) string
}

// MapView is a read-only view over a map<K,V> column value.
type MapView interface {
	Len() int
	Keys() []string
	IsNull(key string) bool
	ReadBool(key string) bool
	ReadByte(key string) int8
	ReadShort(key string) int16
	ReadInt(key string) int32
	ReadLong(key string) int64
	ReadFloat(key string) float32
	ReadDouble(key string) float64
	ReadString(key string) string
}

// MapRow is a Row backed by a plain map keyed by interned column names. File
// readers populate a MapRow per record; it is the concrete analogue of the
// column-name-keyed row maps used throughout the source repository, layered
// with the typed accessors the ingest core requires.
type MapRow map[wkk.ColumnKey]any

// NewMapRow returns an empty MapRow.
func NewMapRow() MapRow {
	return make(MapRow)
}

// CopyRow returns a shallow copy of r; nested ListView/MapView values are
// not deep-copied since they are themselves immutable views.
func CopyRow(r MapRow) MapRow {
	out := make(MapRow, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// ToStringMap converts a MapRow to map[string]any for logging and tests.
func ToStringMap(r MapRow) map[string]any {
	out := make(map[string]any, len(r))
	for k, v := range r {
		out[wkk.ColumnKeyValue(k)] = v
	}
	return out
}

func (r MapRow) value(name string) any {
	return r[wkk.NewColumnKey(name)]
}

func (r MapRow) IsNull(name string) bool {
	v, ok := r[wkk.NewColumnKey(name)]
	return !ok || v == nil
}

func (r MapRow) ReadBool(name string) bool {
	v, _ := r.value(name).(bool)
	return v
}

func (r MapRow) ReadByte(name string) int8 {
	v, _ := r.value(name).(int8)
	return v
}

func (r MapRow) ReadShort(name string) int16 {
	v, _ := r.value(name).(int16)
	return v
}

func (r MapRow) ReadInt(name string) int32 {
	v, _ := r.value(name).(int32)
	return v
}

func (r MapRow) ReadLong(name string) int64 {
	switch v := r.value(name).(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	default:
		return 0
	}
}

func (r MapRow) ReadFloat(name string) float32 {
	v, _ := r.value(name).(float32)
	return v
}

func (r MapRow) ReadDouble(name string) float64 {
	switch v := r.value(name).(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	default:
		return 0
	}
}

func (r MapRow) ReadString(name string) string {
	v, _ := r.value(name).(string)
	return v
}

func (r MapRow) ReadList(name string) ListView {
	v, _ := r.value(name).(ListView)
	return v
}

func (r MapRow) ReadMap(name string) MapView {
	v, _ := r.value(name).(MapView)
	return v
}
