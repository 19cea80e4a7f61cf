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

package timespec

import (
	"testing"

	"github.com/Gutomata/nebula/internal/pipeline"
	"github.com/Gutomata/nebula/internal/pipeline/wkk"
)

func TestDeriveStatic(t *testing.T) {
	f := Derive(TimeSpec{Type: Static, UnixTimeValue: 1000}, 0)
	if got := f(pipeline.NewMapRow()); got != 1000 {
		t.Fatalf("static time = %d, want 1000", got)
	}
}

func TestDeriveColumnParsesPattern(t *testing.T) {
	f := Derive(TimeSpec{Type: Column, ColName: "ts", Pattern: "%Y-%m-%d %H:%M:%S"}, 0)
	row := pipeline.NewMapRow()
	row[wkk.NewColumnKey("ts")] = "2020-01-01 00:00:10"
	if got := f(row); got != 1577836810 {
		t.Fatalf("column time = %d, want 1577836810", got)
	}
}

func TestDeriveColumnNullIsZero(t *testing.T) {
	f := Derive(TimeSpec{Type: Column, ColName: "ts", Pattern: "%Y-%m-%d %H:%M:%S"}, 0)
	if got := f(pipeline.NewMapRow()); got != 0 {
		t.Fatalf("null column time = %d, want 0", got)
	}
}

func TestDeriveColumnUnparseableIsZero(t *testing.T) {
	f := Derive(TimeSpec{Type: Column, ColName: "ts", Pattern: "%Y-%m-%d %H:%M:%S"}, 0)
	row := pipeline.NewMapRow()
	row[wkk.NewColumnKey("ts")] = "not a timestamp"
	if got := f(row); got != 0 {
		t.Fatalf("unparseable column time = %d, want 0", got)
	}
}

func TestDeriveMacroDate(t *testing.T) {
	f := Derive(TimeSpec{Type: Macro, Pattern: "date"}, 12345)
	if got := f(pipeline.NewMapRow()); got != 12345 {
		t.Fatalf("macro date time = %d, want 12345", got)
	}
}

func TestDeriveMacroOtherIsZero(t *testing.T) {
	f := Derive(TimeSpec{Type: Macro, Pattern: "unknown"}, 12345)
	if got := f(pipeline.NewMapRow()); got != 0 {
		t.Fatalf("unknown macro time = %d, want 0", got)
	}
}

func TestDeriveProvidedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for Provided TimeSpec")
		}
	}()
	Derive(TimeSpec{Type: Provided}, 0)
}
