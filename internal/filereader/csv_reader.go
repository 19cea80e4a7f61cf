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

package filereader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Gutomata/nebula/internal/pipeline"
	"github.com/Gutomata/nebula/internal/schema"
)

// CSVReader reads headerless, delimiter-separated rows from a local file,
// mapping each positional field onto the column at the same position in s
// (the table's pre-`_time_` schema). CSV cannot represent list or map
// columns; a schema containing one is rejected at construction.
type CSVReader struct {
	file  *os.File
	r     *csv.Reader
	s     *schema.Schema
	line  int
	closed bool
}

var _ Reader = (*CSVReader)(nil)

// NewCSVReader opens path and prepares to read rows delimited by delim
// against schema s.
func NewCSVReader(path string, delim rune, s *schema.Schema) (*CSVReader, error) {
	for _, f := range s.Fields {
		if f.Kind == schema.KindList || f.Kind == schema.KindMap {
			return nil, fmt.Errorf("filereader: csv schema column %q: list/map columns are not representable in CSV", f.Name)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("filereader: open %s: %w", path, err)
	}

	cr := csv.NewReader(f)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	return &CSVReader{file: f, r: cr, s: s}, nil
}

func (r *CSVReader) GetRow() (pipeline.Row, error) {
	if r.closed {
		return nil, io.EOF
	}
	record, err := r.r.Read()
	if err != nil {
		return nil, err
	}
	r.line++
	rowsInCounter.Add(context.Background(), 1)

	row := pipeline.NewMapRow()
	for i, col := range r.s.Fields {
		if i >= len(record) {
			continue
		}
		raw := record[i]
		if raw == "" {
			continue
		}
		v, err := convertCSVField(raw, col.Kind)
		if err != nil {
			rowsDroppedCounter.Add(context.Background(), 1)
			return nil, &RowConversionError{Column: col.Name, Raw: raw, Err: fmt.Errorf("line %d: %w", r.line, err)}
		}
		row[col.WireKey()] = v
	}
	rowsOutCounter.Add(context.Background(), 1)
	return row, nil
}

func (r *CSVReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.file.Close()
}

func convertCSVField(raw string, kind schema.Kind) (any, error) {
	switch kind {
	case schema.KindBool:
		return strconv.ParseBool(raw)
	case schema.KindInt8:
		v, err := strconv.ParseInt(raw, 10, 8)
		return int8(v), err
	case schema.KindInt16:
		v, err := strconv.ParseInt(raw, 10, 16)
		return int16(v), err
	case schema.KindInt32:
		v, err := strconv.ParseInt(raw, 10, 32)
		return int32(v), err
	case schema.KindInt64:
		return strconv.ParseInt(raw, 10, 64)
	case schema.KindFloat32:
		v, err := strconv.ParseFloat(raw, 32)
		return float32(v), err
	case schema.KindFloat64:
		return strconv.ParseFloat(raw, 64)
	case schema.KindString:
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported CSV column kind %s", kind)
	}
}
