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

package pipeline

import (
	"testing"

	"github.com/Gutomata/nebula/internal/pipeline/wkk"
)

func TestMapRowAccessors(t *testing.T) {
	row := NewMapRow()
	row[wkk.NewColumnKey("id")] = int64(42)
	row[wkk.NewColumnKey("name")] = "widget"
	row[wkk.NewColumnKey("tags")] = SliceList{"a", nil, "c"}

	if row.ReadLong("id") != 42 {
		t.Fatalf("expected id 42, got %d", row.ReadLong("id"))
	}
	if row.ReadString("name") != "widget" {
		t.Fatalf("expected name widget, got %s", row.ReadString("name"))
	}
	if row.IsNull("missing") != true {
		t.Fatalf("expected missing column to be null")
	}

	tags := row.ReadList("tags")
	if tags.Len() != 3 {
		t.Fatalf("expected 3 tags, got %d", tags.Len())
	}
	if !tags.IsNullAt(1) {
		t.Fatalf("expected element 1 to be null")
	}
	if tags.ReadStringAt(0) != "a" {
		t.Fatalf("expected element 0 to be a")
	}
}

func TestCopyRowIsIndependent(t *testing.T) {
	row := NewMapRow()
	row[wkk.NewColumnKey("id")] = int64(1)
	copied := CopyRow(row)
	copied[wkk.NewColumnKey("id")] = int64(2)

	if row.ReadLong("id") != 1 {
		t.Fatalf("expected original row to be unaffected by mutation of copy")
	}
}
