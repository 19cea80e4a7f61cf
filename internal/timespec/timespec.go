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

// Package timespec derives, from a table's declared TimeSpec, the function
// used to compute each row's `_time_` value during ingest.
package timespec

import (
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/Gutomata/nebula/internal/pipeline"
)

// Type is the TimeSpec variant.
type Type int

const (
	// Static assigns the same unix_time_value to every row.
	Static Type = iota
	// Current assigns the process clock at row-ingest time.
	Current
	// Column parses an input string column with a strftime-style pattern
	// into epoch seconds; the source column is dropped from the final
	// schema and replaced by `_time_`.
	Column
	// Macro yields a value named by a macro identifier. The only macro
	// currently defined is "date", which yields a caller-supplied date
	// value captured from the spec.
	Macro
	// Provided defers to the source itself (e.g. a broker message
	// timestamp). The ingest core never derives a TimeFunc for Provided;
	// it exists only so callers can recognize and reject the case.
	Provided
)

// TimeSpec is a table's time-derivation configuration, tagged by Type.
type TimeSpec struct {
	Type Type

	// UnixTimeValue is the constant used by Static.
	UnixTimeValue int64

	// ColName and Pattern identify the source column and strftime
	// pattern used by Column.
	ColName string
	Pattern string
}

// Func computes a row's `_time_` value in epoch seconds.
type Func func(r pipeline.Row) int64

// Derive returns the TimeFunc for ts, per the table below:
//
//	STATIC                 constant UnixTimeValue
//	CURRENT                process clock at call
//	COLUMN                 parse row.ReadString(ColName) with Pattern
//	MACRO, Pattern=="date" constant mdate
//	MACRO, other           constant 0 (see design notes on this choice)
//
// mdate is the caller's IngestSpec.Mdate, not a field of ts: per
// original_source/src/ingest/IngestSpec.cpp's mdate_, the macro date lives
// on the work unit being ingested, not on the table's declared TimeSpec.
//
// Derive panics for Provided: the ingest core never calls it for a
// streaming source, since Provided defers time derivation to the source
// itself.
func Derive(ts TimeSpec, mdate int64) Func {
	switch ts.Type {
	case Static:
		v := ts.UnixTimeValue
		return func(pipeline.Row) int64 { return v }
	case Current:
		return func(pipeline.Row) int64 { return time.Now().UTC().Unix() }
	case Column:
		colName, pattern := ts.ColName, ts.Pattern
		return func(r pipeline.Row) int64 {
			return parseColumnTime(r, colName, pattern)
		}
	case Macro:
		if ts.Pattern == "date" {
			v := mdate
			return func(pipeline.Row) int64 { return v }
		}
		// An undefined macro pattern falls back to a constant zero time
		// rather than failing the spec; see DESIGN.md open question 1.
		return func(pipeline.Row) int64 { return 0 }
	case Provided:
		panic("timespec: Derive called for Provided; the ingest core does not compute this TimeFunc")
	default:
		panic("timespec: unknown TimeSpec type")
	}
}

// parseColumnTime parses the named column's string value with a
// strftime-style pattern into epoch seconds. A missing column, a null
// value, or an unparseable value yields 0 rather than aborting the row;
// see DESIGN.md open question 2 for the reasoning behind this choice.
func parseColumnTime(r pipeline.Row, colName, pattern string) int64 {
	if r.IsNull(colName) {
		return 0
	}
	raw := r.ReadString(colName)
	layout, err := strftime.Layout(pattern)
	if err != nil {
		return 0
	}
	t, err := time.Parse(layout, raw)
	if err != nil {
		return 0
	}
	return t.UTC().Unix()
}
