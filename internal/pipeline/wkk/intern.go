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

// Package wkk interns column names into comparable handles so a schema's
// columns can be used as cheap, allocation-free map keys throughout the
// ingest core.
package wkk

import "unique"

type columnname string

// ColumnKey is an interned column name. Two ColumnKeys compare equal iff the
// underlying names are equal, without a string comparison.
type ColumnKey = unique.Handle[columnname]

// NewColumnKey interns s and returns its handle.
func NewColumnKey(s string) ColumnKey {
	return unique.Make(columnname(s))
}

// ColumnKeyValue returns the original string for a ColumnKey.
func ColumnKeyValue(ck ColumnKey) string {
	return string(ck.Value())
}

// TimeColumn is the reserved name of the schema-level ingestion-time column.
const TimeColumn = "_time_"

// ColumnKeyTime is the interned handle for the reserved _time_ column.
var ColumnKeyTime = NewColumnKey(TimeColumn)
