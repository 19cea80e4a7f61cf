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
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/Gutomata/nebula/internal/pipeline"
	"github.com/Gutomata/nebula/internal/schema"
)

// ParquetReader reads rows from a local Parquet file, converting each
// column present in s (the table's pre-`_time_`, "original" schema — see
// design note on keeping pre- and post-`_time_` schemas distinct) to its
// declared Go type.
type ParquetReader struct {
	file   *os.File
	pf     *parquet.File
	rows   *parquet.GenericReader[map[string]any]
	s      *schema.Schema
	closed bool
}

var _ Reader = (*ParquetReader)(nil)

// NewParquetReader opens path and prepares to read rows against the
// original (pre-`_time_`) schema s.
func NewParquetReader(path string, s *schema.Schema) (*ParquetReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("filereader: open %s: %w", path, err)
	}
	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("filereader: stat %s: %w", path, err)
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("filereader: open parquet file %s: %w", path, err)
	}
	rows := parquet.NewGenericReader[map[string]any](pf, pf.Schema())
	return &ParquetReader{file: f, pf: pf, rows: rows, s: s}, nil
}

func (r *ParquetReader) GetRow() (pipeline.Row, error) {
	if r.closed {
		return nil, io.EOF
	}
	buf := []map[string]any{make(map[string]any)}
	n, err := r.rows.Read(buf)
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return nil, err
	}
	if err != nil && err != io.EOF {
		return nil, err
	}
	rowsInCounter.Add(context.Background(), 1)

	row := pipeline.NewMapRow()
	for _, col := range r.s.Fields {
		raw, ok := buf[0][col.Name]
		if !ok || raw == nil {
			continue
		}
		v, convErr := convertParquetValue(raw, col)
		if convErr != nil {
			rowsDroppedCounter.Add(context.Background(), 1)
			return nil, &RowConversionError{Column: col.Name, Raw: raw, Err: convErr}
		}
		row[col.WireKey()] = v
	}
	rowsOutCounter.Add(context.Background(), 1)
	return row, nil
}

func (r *ParquetReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.rows != nil {
		_ = r.rows.Close()
	}
	return r.file.Close()
}

func convertParquetValue(raw any, col *schema.Column) (any, error) {
	switch col.Kind {
	case schema.KindBool, schema.KindInt8, schema.KindInt16, schema.KindInt32,
		schema.KindInt64, schema.KindFloat32, schema.KindFloat64, schema.KindString:
		return convertParquetScalar(raw, col.Kind)
	case schema.KindList:
		elems, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("expected list value, got %T", raw)
		}
		out := make(pipeline.SliceList, len(elems))
		for i, e := range elems {
			if e == nil {
				continue
			}
			v, err := convertParquetScalar(e, col.Elem.Kind)
			if err != nil {
				return nil, fmt.Errorf("list element %d: %w", i, err)
			}
			out[i] = v
		}
		return out, nil
	case schema.KindMap:
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected map value, got %T", raw)
		}
		out := make(pipeline.MapEntries, len(m))
		for k, e := range m {
			if e == nil {
				continue
			}
			v, err := convertParquetScalar(e, col.Value.Kind)
			if err != nil {
				return nil, fmt.Errorf("map entry %q: %w", k, err)
			}
			out[k] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported parquet column kind %s", col.Kind)
	}
}

func convertParquetScalar(raw any, kind schema.Kind) (any, error) {
	switch kind {
	case schema.KindBool:
		v, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", raw)
		}
		return v, nil
	case schema.KindInt8:
		v, err := asInt64(raw)
		return int8(v), err
	case schema.KindInt16:
		v, err := asInt64(raw)
		return int16(v), err
	case schema.KindInt32:
		v, err := asInt64(raw)
		return int32(v), err
	case schema.KindInt64:
		return asInt64(raw)
	case schema.KindFloat32:
		v, err := asFloat64(raw)
		return float32(v), err
	case schema.KindFloat64:
		return asFloat64(raw)
	case schema.KindString:
		switch v := raw.(type) {
		case string:
			return v, nil
		case []byte:
			return string(v), nil
		default:
			return fmt.Sprintf("%v", raw), nil
		}
	default:
		return nil, fmt.Errorf("unsupported scalar kind %s", kind)
	}
}

func asInt64(raw any) (int64, error) {
	switch v := raw.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", raw)
	}
}

func asFloat64(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("expected float, got %T", raw)
	}
}
