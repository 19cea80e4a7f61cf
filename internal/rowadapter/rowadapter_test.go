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

package rowadapter

import (
	"testing"

	"github.com/Gutomata/nebula/internal/pipeline"
	"github.com/Gutomata/nebula/internal/pipeline/wkk"
	"github.com/Gutomata/nebula/internal/timespec"
)

func TestRowAdapterOverlaysTimeColumn(t *testing.T) {
	a := New(timespec.Derive(timespec.TimeSpec{Type: timespec.Static, UnixTimeValue: 1000}, 0))

	row := pipeline.NewMapRow()
	row[wkk.NewColumnKey("id")] = int64(1)
	a.Set(row)

	if a.IsNull(wkk.TimeColumn) {
		t.Fatalf("expected _time_ to never be null")
	}
	if got := a.ReadLong(wkk.TimeColumn); got != 1000 {
		t.Fatalf("_time_ = %d, want 1000", got)
	}
	if got := a.ReadLong("id"); got != 1 {
		t.Fatalf("id = %d, want 1 (passthrough)", got)
	}
}

func TestRowAdapterSetRebinds(t *testing.T) {
	a := New(timespec.Derive(timespec.TimeSpec{Type: timespec.Static, UnixTimeValue: 1}, 0))

	first := pipeline.NewMapRow()
	first[wkk.NewColumnKey("id")] = int64(1)
	a.Set(first)
	if got := a.ReadLong("id"); got != 1 {
		t.Fatalf("id = %d, want 1", got)
	}

	second := pipeline.NewMapRow()
	second[wkk.NewColumnKey("id")] = int64(2)
	a.Set(second)
	if got := a.ReadLong("id"); got != 2 {
		t.Fatalf("id after rebind = %d, want 2", got)
	}
}
