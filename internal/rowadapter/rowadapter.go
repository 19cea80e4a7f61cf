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

// Package rowadapter wraps a source pipeline.Row and overlays the reserved
// `_time_` column, computed by a timespec.Func, onto every other read
// passed straight through to the wrapped row.
package rowadapter

import (
	"github.com/Gutomata/nebula/internal/pipeline"
	"github.com/Gutomata/nebula/internal/pipeline/wkk"
	"github.com/Gutomata/nebula/internal/timespec"
)

// RowAdapter wraps a single source row at a time, non-owning: Set rebinds
// it to a new row so the ingest loop can reuse one adapter across an
// entire block instead of allocating per row.
type RowAdapter struct {
	row  pipeline.Row
	time timespec.Func
}

var _ pipeline.Row = (*RowAdapter)(nil)

// New returns a RowAdapter computing `_time_` with f. The adapter starts
// unbound; call Set before reading from it.
func New(f timespec.Func) *RowAdapter {
	return &RowAdapter{time: f}
}

// Set rebinds the adapter to wrap row.
func (a *RowAdapter) Set(row pipeline.Row) {
	a.row = row
}

func (a *RowAdapter) IsNull(name string) bool {
	if name == wkk.TimeColumn {
		return false
	}
	return a.row.IsNull(name)
}

func (a *RowAdapter) ReadBool(name string) bool { return a.row.ReadBool(name) }

func (a *RowAdapter) ReadByte(name string) int8 { return a.row.ReadByte(name) }

func (a *RowAdapter) ReadShort(name string) int16 { return a.row.ReadShort(name) }

func (a *RowAdapter) ReadInt(name string) int32 { return a.row.ReadInt(name) }

func (a *RowAdapter) ReadLong(name string) int64 {
	if name == wkk.TimeColumn {
		return a.time(a.row)
	}
	return a.row.ReadLong(name)
}

func (a *RowAdapter) ReadFloat(name string) float32 { return a.row.ReadFloat(name) }

func (a *RowAdapter) ReadDouble(name string) float64 { return a.row.ReadDouble(name) }

func (a *RowAdapter) ReadString(name string) string { return a.row.ReadString(name) }

func (a *RowAdapter) ReadList(name string) pipeline.ListView { return a.row.ReadList(name) }

func (a *RowAdapter) ReadMap(name string) pipeline.MapView { return a.row.ReadMap(name) }
