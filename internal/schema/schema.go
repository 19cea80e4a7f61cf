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

// Package schema models the column tree that a FlatBuffer is keyed by: a
// record of named, typed columns where the primitive types are the usual
// scalars and the compound types are list<T> and map<K,V>.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/Gutomata/nebula/internal/pipeline/wkk"
)

// Kind is a column's declared type.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindString
	KindList
	KindMap
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt8:
		return "i8"
	case KindInt16:
		return "i16"
	case KindInt32:
		return "i32"
	case KindInt64:
		return "i64"
	case KindFloat32:
		return "f32"
	case KindFloat64:
		return "f64"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindRecord:
		return "record"
	default:
		return "invalid"
	}
}

// Column is one node of the schema tree. A primitive column has no Elem,
// Key, Value, or Fields. A list<T> column carries Elem, a map<K,V> column
// carries Key and Value, and a record column carries Fields.
type Column struct {
	Name   string
	Kind   Kind
	Elem   *Column
	Key    *Column
	Value  *Column
	Fields []*Column
}

// WireKey returns the interned column-name handle for this column.
func (c *Column) WireKey() wkk.ColumnKey {
	return wkk.NewColumnKey(c.Name)
}

// Schema is a record schema: an ordered, name-unique list of columns.
type Schema struct {
	Fields []*Column
}

// Names returns the declared column names in order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Column looks up a column by name.
func (s *Schema) Column(name string) (*Column, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// WithColumn returns a new Schema with col appended. The receiver is left
// unmodified; a Schema is treated as immutable once constructed.
func (s *Schema) WithColumn(col *Column) *Schema {
	out := &Schema{Fields: make([]*Column, len(s.Fields)+1)}
	copy(out.Fields, s.Fields)
	out.Fields[len(s.Fields)] = col
	return out
}

// WithoutColumn returns a new Schema with the named column removed. If the
// column is absent, it returns a copy of the receiver unchanged.
func (s *Schema) WithoutColumn(name string) *Schema {
	out := &Schema{Fields: make([]*Column, 0, len(s.Fields))}
	for _, f := range s.Fields {
		if f.Name == name {
			continue
		}
		out.Fields = append(out.Fields, f)
	}
	return out
}

// wireColumn is the JSON wire format for a single column, used by Parse and
// Marshal. It mirrors the teacher's Parquet schemaNodes map (name -> node
// type) but is generalized to primitive, list and map columns. A "record"
// column's type is carried, but its child Fields are not: Parse yields a
// record column with no Fields, and Marshal drops them.
type wireColumn struct {
	Name  string      `json:"name"`
	Type  string      `json:"type"`
	Elem  *wireColumn `json:"elem,omitempty"`
	Key   *wireColumn `json:"key,omitempty"`
	Value *wireColumn `json:"value,omitempty"`
}

type wireSchema struct {
	Fields []wireColumn `json:"fields"`
}

// Parse decodes a TableSpec's serialized schema into a Schema tree.
func Parse(serialized string) (*Schema, error) {
	var ws wireSchema
	if err := json.Unmarshal([]byte(serialized), &ws); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	out := &Schema{Fields: make([]*Column, 0, len(ws.Fields))}
	seen := make(map[string]struct{}, len(ws.Fields))
	for _, wc := range ws.Fields {
		if _, dup := seen[wc.Name]; dup {
			return nil, fmt.Errorf("parse schema: duplicate column name %q", wc.Name)
		}
		seen[wc.Name] = struct{}{}
		col, err := parseColumn(wc)
		if err != nil {
			return nil, err
		}
		out.Fields = append(out.Fields, col)
	}
	return out, nil
}

func parseColumn(wc wireColumn) (*Column, error) {
	kind, err := kindOf(wc.Type)
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", wc.Name, err)
	}
	col := &Column{Name: wc.Name, Kind: kind}
	switch kind {
	case KindList:
		if wc.Elem == nil {
			return nil, fmt.Errorf("column %q: list requires elem", wc.Name)
		}
		elem, err := parseColumn(*wc.Elem)
		if err != nil {
			return nil, err
		}
		col.Elem = elem
	case KindMap:
		if wc.Key == nil || wc.Value == nil {
			return nil, fmt.Errorf("column %q: map requires key and value", wc.Name)
		}
		key, err := parseColumn(*wc.Key)
		if err != nil {
			return nil, err
		}
		val, err := parseColumn(*wc.Value)
		if err != nil {
			return nil, err
		}
		col.Key = key
		col.Value = val
	}
	return col, nil
}

func kindOf(t string) (Kind, error) {
	switch t {
	case "bool":
		return KindBool, nil
	case "i8":
		return KindInt8, nil
	case "i16":
		return KindInt16, nil
	case "i32":
		return KindInt32, nil
	case "i64":
		return KindInt64, nil
	case "f32":
		return KindFloat32, nil
	case "f64":
		return KindFloat64, nil
	case "string":
		return KindString, nil
	case "list":
		return KindList, nil
	case "map":
		return KindMap, nil
	case "record":
		return KindRecord, nil
	default:
		return KindInvalid, fmt.Errorf("unknown type %q", t)
	}
}

// Marshal encodes a Schema back to its wire form, the same form Parse and
// the CLI's --schema flag accept.
func Marshal(s *Schema) (string, error) {
	ws := wireSchema{Fields: make([]wireColumn, len(s.Fields))}
	for i, f := range s.Fields {
		ws.Fields[i] = marshalColumn(f)
	}
	b, err := json.Marshal(ws)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func marshalColumn(c *Column) wireColumn {
	wc := wireColumn{Name: c.Name, Type: c.Kind.String()}
	if c.Elem != nil {
		e := marshalColumn(c.Elem)
		wc.Elem = &e
	}
	if c.Key != nil {
		k := marshalColumn(c.Key)
		wc.Key = &k
	}
	if c.Value != nil {
		v := marshalColumn(c.Value)
		wc.Value = &v
	}
	return wc
}
